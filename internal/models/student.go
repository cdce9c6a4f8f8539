package models

import "time"

// Student is an attendee record held by the booking system
type Student struct {
	// ID is the booking system's id for the student
	ID string

	// Number is the student number used as the check-in identifier
	Number string

	// FirstName of the student
	FirstName string

	// LastName of the student
	LastName string
}

// EventListing is a summary of an event offered for loading
type EventListing struct {
	// ID is the event key
	ID string

	// Title of the event
	Title string

	// StartTime of the event
	StartTime time.Time
}
