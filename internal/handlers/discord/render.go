package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
)

// Button IDs
const (
	ButtonSave   = "swipe_save"
	ButtonStatus = "swipe_status"
)

// renderStatus renders the session status with a save button while check-ins are unsaved
func renderStatus(status *checkin.StatusOutput) *response {
	if !status.Loaded {
		return &response{Embed: embed("No event", "Load an event to start checking in.", messaging.SeverityInfo)}
	}

	severity := messaging.SeveritySuccess
	switch {
	case status.EventFull:
		severity = messaging.SeverityError
	case !status.Saved:
		severity = messaging.SeverityWarning
	case status.Mode == mode.StateOffline:
		severity = messaging.SeverityInfo
	}

	e := embed(status.Event.Title, status.Event.Venue, severity)
	e.URL = status.AdminURL
	e.Fields = []*discordgo.MessageEmbedField{
		{Name: "Mode", Value: string(status.Mode), Inline: true},
		{Name: "Saved", Value: yesNo(status.Saved), Inline: true},
		{Name: "Unsaved", Value: strconv.Itoa(status.Unsaved), Inline: true},
		{Name: "Checked in", Value: strconv.Itoa(status.Event.RecordedCount), Inline: true},
		{Name: "Bookings", Value: bookings(status.Event.BookingCount, status.Event.BookingLimit, status.Event.IsUnlimited), Inline: true},
		{Name: "Event full", Value: yesNo(status.EventFull), Inline: true},
	}

	resp := &response{Embed: e}
	if status.Unsaved > 0 {
		resp.Components = saveButtons()
	}

	return resp
}

func renderStudent(student *models.Student) *response {
	name := student.FirstName + " " + student.LastName
	return &response{
		Embed: embed(name, fmt.Sprintf("Student number %s", student.Number), messaging.SeverityInfo),
	}
}

func saveButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Save now",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonSave,
				},
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonStatus,
				},
			},
		},
	}
}

func bookings(count, limit int, unlimited bool) string {
	if unlimited || limit <= 0 {
		return strconv.Itoa(count)
	}

	return fmt.Sprintf("%d / %d", count, limit)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
