package checkin

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/submission"
)

// ReplayUnsaved re-resolves every identifier in the unsaved ledger and
// submits it again. Identifiers that still fail stay in the ledger in
// their original order. Once the booking system reports the event full
// the rest of the ledger is kept untouched and the replay stops.
func (s *service) ReplayUnsaved(ctx context.Context) (*ReplayOutput, error) {
	summary, err := s.remoteEvent()
	if err != nil {
		return nil, err
	}

	s.replayMu.Lock()
	defer s.replayMu.Unlock()

	begun, err := s.ledger.BeginReplay(ctx, &unsaved.BeginReplayInput{EventID: summary.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to begin replay: %w", err)
	}

	identifiers := dedupe(begun.Identifiers)
	output := &ReplayOutput{}
	remaining := make([]string, 0, len(identifiers))

	for i, identifier := range identifiers {
		output.Attempted++

		b, err := s.resolve(ctx, summary.ID, identifier)
		if err != nil {
			log.Printf("Failed to resolve unsaved %s for event %s: %v", identifier, summary.ID, err)
			remaining = append(remaining, identifier)
			continue
		}

		if b.Status == models.BookingStatusAttended && b.BookingID != "" {
			output.Saved++
			s.snapshot.MarkRecorded(b)
			continue
		}

		out, err := s.queue.Submit(ctx, &submission.SubmitInput{EventID: summary.ID, Booking: b})
		if out == nil {
			out = &submission.SubmitOutput{Booking: b}
		}
		monitoring.TrackSubmission("replay", submission.Outcome(err))
		s.audit(ctx, summary.ID, &out.Booking, models.CheckInSourceReplay)

		if errors.Is(err, booking.ErrEventFull) {
			log.Printf("Event %s is full, keeping %d unsaved check-ins", summary.ID, len(identifiers)-i)
			remaining = append(remaining, identifiers[i:]...)
			output.EventFull = true
			s.eventFull.Store(true)
			break
		}

		if err != nil {
			log.Printf("Failed to replay %s for event %s: %v", identifier, summary.ID, err)
			remaining = append(remaining, identifier)
			continue
		}

		output.Saved++
		s.snapshot.MarkRecorded(out.Booking)
	}

	// commit and count with no append in flight so the saved flag matches the ledger
	var count *unsaved.CountOutput
	err = s.mode.Settle(func() (bool, error) {
		err := s.ledger.CommitReplay(ctx, &unsaved.CommitReplayInput{
			EventID:   summary.ID,
			Remaining: remaining,
		})
		if err != nil {
			monitoring.TrackReplay("failed")
			return false, fmt.Errorf("failed to commit replay: %w", err)
		}

		count, err = s.ledger.Count(ctx, &unsaved.CountInput{EventID: summary.ID})
		if err != nil {
			return false, fmt.Errorf("failed to count unsaved check-ins: %w", err)
		}
		return count.Count == 0, nil
	})
	if err != nil {
		return nil, err
	}
	output.Remaining = count.Count
	monitoring.SetUnsaved(summary.ID, count.Count)

	log.Printf("Replayed %d unsaved check-ins for event %s, %d saved, %d remaining",
		output.Attempted, summary.ID, output.Saved, output.Remaining)

	switch {
	case output.EventFull:
		monitoring.TrackReplay("event_full")
		return output, fmt.Errorf("replay stopped: %w", booking.ErrEventFull)
	case output.Remaining > 0:
		monitoring.TrackReplay("partial")
	default:
		monitoring.TrackReplay("complete")
	}

	return output, nil
}

// resolve finds the current booking of an unsaved identifier, asking the
// booking system when the booking list does not hold it
func (s *service) resolve(ctx context.Context, eventID, identifier string) (models.Booking, error) {
	if b, ok := s.snapshot.FindBooking(identifier); ok {
		b.IsBooked = true
		return b, nil
	}

	b, err := s.lookup(ctx, eventID, identifier)
	if err != nil {
		return models.Booking{}, err
	}
	b.IsBooked = true

	return b, nil
}

// dedupe keeps the first occurrence of each identifier
func dedupe(identifiers []string) []string {
	seen := make(map[string]struct{}, len(identifiers))
	unique := make([]string, 0, len(identifiers))

	for _, identifier := range identifiers {
		if _, ok := seen[identifier]; ok {
			continue
		}
		seen[identifier] = struct{}{}
		unique = append(unique, identifier)
	}

	return unique
}
