package careerhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
)

const defaultSearchResults = 100

type studentReply struct {
	ID         int     `json:"Id"`
	ExternalID any     `json:"ExternalId"`
	FirstName  *string `json:"FirstName"`
	LastName   *string `json:"LastName"`
}

func (r *studentReply) toStudent() *models.Student {
	number, _ := r.ExternalID.(string)

	return &models.Student{
		ID:        strconv.Itoa(r.ID),
		Number:    number,
		FirstName: deref(r.FirstName),
		LastName:  deref(r.LastName),
	}
}

// GetStudent returns the current student holding a student number
func (c *Client) GetStudent(ctx context.Context, input *booking.GetStudentInput) (*booking.GetStudentOutput, error) {
	query := url.Values{}
	query.Set("s", input.Number)
	query.Set("type", "JobSeeker")
	query.Set("maxResults", "1")
	query.Set("current", "Current")
	query.Set("active", "true")

	replies, err := c.suggest(ctx, "get_student", query)
	if err != nil {
		return nil, err
	}

	if len(replies) == 0 {
		return nil, fmt.Errorf("student %s: %w", input.Number, booking.ErrNoStudentFound)
	}

	student := replies[0].toStudent()
	if student.Number != input.Number {
		return nil, fmt.Errorf("student %s: %w", input.Number, booking.ErrNoStudentFound)
	}

	return &booking.GetStudentOutput{Student: student}, nil
}

// SearchStudents returns current students matching a search term
func (c *Client) SearchStudents(ctx context.Context, input *booking.SearchStudentsInput) (*booking.SearchStudentsOutput, error) {
	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}

	query := url.Values{}
	query.Set("s", input.Term)
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("current", "Current")
	query.Set("active", "true")

	replies, err := c.suggest(ctx, "search_students", query)
	if err != nil {
		return nil, err
	}

	output := &booking.SearchStudentsOutput{}
	for i := range replies {
		output.Students = append(output.Students, replies[i].toStudent())
	}

	return output, nil
}

func (c *Client) suggest(ctx context.Context, op string, query url.Values) ([]studentReply, error) {
	req, err := c.newAdminRequest(ctx, http.MethodGet, c.adminURL()+"suggest/JobSeeker?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var replies []studentReply
	if _, err := c.send(op, req, &replies); err != nil {
		return nil, err
	}

	return replies, nil
}
