package checkin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/common/uuid"
	"github.com/KirkDiggler/eventswipe/internal/export"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
	"github.com/KirkDiggler/eventswipe/internal/repositories/attendance"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
	"github.com/KirkDiggler/eventswipe/internal/services/submission"
)

const defaultNoticeBuffer = 64

// service implements the Service interface
type service struct {
	provider   booking.Provider
	snapshot   snapshot.Snapshot
	mode       *mode.Controller
	queue      submission.Queue
	ledger     unsaved.Repository
	attendance attendance.Repository
	clock      clock.Clock
	uuid       uuid.UUID

	checkBookingList atomic.Bool
	checkWaitingList atomic.Bool
	eventFull        atomic.Bool

	// replayMu serializes replays and exports, both rewrite the ledger
	replayMu sync.Mutex

	notices      chan *Notice
	consumerDone chan struct{}
}

// New creates a new check-in service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Provider == nil {
		return nil, ErrNilProvider
	}

	if cfg.Snapshot == nil {
		return nil, ErrNilSnapshot
	}

	if cfg.Mode == nil {
		return nil, ErrNilMode
	}

	if cfg.Queue == nil {
		return nil, ErrNilQueue
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Attendance == nil {
		return nil, ErrNilAttendance
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	buffer := cfg.NoticeBuffer
	if buffer <= 0 {
		buffer = defaultNoticeBuffer
	}

	s := &service{
		provider:     cfg.Provider,
		snapshot:     cfg.Snapshot,
		mode:         cfg.Mode,
		queue:        cfg.Queue,
		ledger:       cfg.Ledger,
		attendance:   cfg.Attendance,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
		notices:      make(chan *Notice, buffer),
		consumerDone: make(chan struct{}),
	}
	s.checkBookingList.Store(cfg.CheckBookingList)
	s.checkWaitingList.Store(cfg.CheckWaitingList)

	return s, nil
}

func (s *service) Start(ctx context.Context) error {
	if err := s.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start submission queue: %w", err)
	}

	go s.consume(context.WithoutCancel(ctx), s.queue.Results())

	return nil
}

func (s *service) Stop(ctx context.Context) error {
	if err := s.queue.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop submission queue: %w", err)
	}

	select {
	case <-s.consumerDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) Notices() <-chan *Notice {
	return s.notices
}

// consume turns submission results into audit records and notices
func (s *service) consume(ctx context.Context, results <-chan *submission.Result) {
	defer close(s.consumerDone)
	defer close(s.notices)

	for result := range results {
		outcome := submission.Outcome(result.Err)
		if errors.Is(result.Err, booking.ErrEventFull) {
			s.eventFull.Store(true)
		}

		s.audit(ctx, result.EventID, &result.Booking, models.CheckInSourceSubmission)

		notice := &Notice{
			EventID:    result.EventID,
			Identifier: result.Booking.Identifier,
			Name:       result.Booking.FullName(),
			Status:     result.Booking.Status,
			Outcome:    outcome,
			Err:        result.Err,
			Unsaved:    result.Unsaved,
			Held:       result.Held,
		}

		select {
		case s.notices <- notice:
		default:
			log.Printf("Dropped %s notice for %s, nobody is reading notices", outcome, notice.Identifier)
		}
	}
}

func (s *service) SetBookingListChecking(enabled bool) {
	s.checkBookingList.Store(enabled)
}

func (s *service) SetWaitingListChecking(enabled bool) {
	s.checkWaitingList.Store(enabled)
}

// CheckIdentifier classifies an identifier against the loaded event
func (s *service) CheckIdentifier(ctx context.Context, input *CheckIdentifierInput) (*CheckIdentifierOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	if !s.provider.IsValidIdentifier(identifier) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, identifier)
	}

	if !s.snapshot.Loaded() {
		return nil, ErrNoEvent
	}

	if prior, ok := s.snapshot.Recorded(identifier); ok {
		prior.IsAlreadyRecorded = true
		monitoring.TrackCheckIn("already_recorded")
		return &CheckIdentifierOutput{Booking: prior}, nil
	}

	summary := s.snapshot.Summary()
	b := s.classify(ctx, identifier, summary)

	output := &CheckIdentifierOutput{}
	if b.IsBooked {
		if !s.snapshot.MarkRecorded(b) {
			// another lane recorded the identifier first
			prior, _ := s.snapshot.Recorded(identifier)
			prior.IsAlreadyRecorded = true
			monitoring.TrackCheckIn("already_recorded")
			return &CheckIdentifierOutput{Booking: prior}, nil
		}

		queued, err := s.recordAttendance(ctx, summary, &b)
		output.Queued = queued
		output.Held = errors.Is(err, unsaved.ErrHeld)
	}

	s.audit(ctx, summary.ID, &b, models.CheckInSourceScan)
	monitoring.TrackCheckIn(classification(&b))

	output.Booking = b

	return output, nil
}

// classify resolves an identifier from the lists, the booking system or
// local policy, in that order of preference
func (s *service) classify(ctx context.Context, identifier string, summary snapshot.Summary) models.Booking {
	if s.checkBookingList.Load() && !summary.IsDropIn {
		if b, ok := s.snapshot.FindBooking(identifier); ok && b.Status != models.BookingStatusNotBooked {
			b.IsBooked = true
			return b
		}

		b := models.Booking{
			Identifier: identifier,
			Status:     models.BookingStatusNotBooked,
		}
		if s.checkWaitingList.Load() && s.snapshot.OnWaitingList(identifier) {
			b.IsOnWaitingList = true
		}
		return b
	}

	if s.mode.IsOnline() && !summary.IsOffline {
		if b, ok := s.snapshot.FindBooking(identifier); ok {
			b.IsBooked = true
			return b
		}

		b, err := s.lookup(ctx, summary.ID, identifier)
		if err == nil {
			// unbooked identifiers are booked by the submission
			b.IsBooked = true
			return b
		}
		log.Printf("Failed to look up %s for event %s, recording as drop in: %v", identifier, summary.ID, err)
	}

	return models.Booking{
		Identifier: identifier,
		Status:     models.BookingStatusUnspecified,
		IsBooked:   true,
	}
}

// lookup asks the booking system for the live booking of an identifier
func (s *service) lookup(ctx context.Context, eventID, identifier string) (models.Booking, error) {
	out, err := s.provider.LookupBookingStatus(ctx, &booking.LookupBookingStatusInput{
		Identifier: identifier,
		EventKey:   eventID,
	})
	if err != nil {
		return models.Booking{}, err
	}

	if out.Booking == nil {
		return models.Booking{Identifier: identifier, Status: models.BookingStatusNotBooked}, nil
	}

	b := *out.Booking
	b.Identifier = identifier

	return b, nil
}

// recordAttendance is the single funnel for positive check-ins. It reports
// whether the identifier went into the unsaved ledger instead of the queue,
// along with any error writing the ledger.
func (s *service) recordAttendance(ctx context.Context, summary snapshot.Summary, b *models.Booking) (bool, error) {
	if !s.mode.IsOnline() || summary.IsOffline {
		return true, s.queueUnsaved(ctx, summary.ID, b.Identifier)
	}

	if s.snapshot.BeforeRegistration(s.clock.Now()) {
		b.Status = models.BookingStatusEarly
		s.snapshot.UpdateBooking(b.Identifier, func(stored *models.Booking) {
			stored.Status = models.BookingStatusEarly
		})
		return true, s.queueUnsaved(ctx, summary.ID, b.Identifier)
	}

	if b.Status == models.BookingStatusAttended && b.BookingID != "" {
		return false, nil
	}

	err := s.queue.Enqueue(&submission.EnqueueInput{EventID: summary.ID, Booking: *b})
	if err != nil {
		log.Printf("Failed to enqueue %s for event %s: %v", b.Identifier, summary.ID, err)
		return true, s.queueUnsaved(ctx, summary.ID, b.Identifier)
	}

	return false, nil
}

// queueUnsaved appends an identifier to the unsaved ledger and clears the saved flag
func (s *service) queueUnsaved(ctx context.Context, eventID, identifier string) error {
	err := s.mode.RecordUnsaved(func() error {
		return s.ledger.Push(ctx, &unsaved.PushInput{EventID: eventID, Identifier: identifier})
	})
	if err != nil {
		log.Printf("Failed to queue %s as unsaved for event %s: %v", identifier, eventID, err)
	}

	return err
}

func (s *service) audit(ctx context.Context, eventID string, b *models.Booking, source models.CheckInSource) {
	_, err := s.attendance.CreateRecord(ctx, &attendance.CreateRecordInput{
		EventID:   eventID,
		Booking:   b,
		Source:    source,
		Online:    s.mode.IsOnline(),
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		log.Printf("Failed to write %s record for %s: %v", source, b.Identifier, err)
	}
}

func classification(b *models.Booking) string {
	switch {
	case b.IsAlreadyRecorded:
		return "already_recorded"
	case b.Status == models.BookingStatusEarly:
		return "early"
	case b.IsBooked:
		return "booked"
	case b.IsOnWaitingList:
		return "waiting_list"
	default:
		return "not_booked"
	}
}

// LoadEvent replaces the loaded event with one from the booking system
func (s *service) LoadEvent(ctx context.Context, input *LoadEventInput) (*LoadEventOutput, error) {
	if !s.mode.RemoteEnabled() {
		return nil, booking.ErrNotConfigured
	}

	fetched, err := s.provider.FetchEvent(ctx, &booking.FetchEventInput{
		EventKey:        input.EventKey,
		IncludeBookings: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", input.EventKey, err)
	}

	event := fetched.Event
	if input.UseWaitingList {
		waiting, err := s.provider.FetchWaitingList(ctx, &booking.FetchWaitingListInput{EventKey: input.EventKey})
		if err != nil {
			return nil, fmt.Errorf("failed to load waiting list of event %s: %w", input.EventKey, err)
		}
		event.WaitingList = waiting.Identifiers
		if len(waiting.Identifiers) > 0 {
			s.checkWaitingList.Store(true)
		}
	}

	s.snapshot.Load(event)
	s.eventFull.Store(false)

	var count *unsaved.CountOutput
	err = s.mode.Settle(func() (bool, error) {
		count, err = s.ledger.Count(ctx, &unsaved.CountInput{EventID: event.ID})
		if err != nil {
			return false, err
		}
		return count.Count == 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count unsaved check-ins: %w", err)
	}

	if count.Count > 0 {
		log.Printf("Event %s has %d unsaved check-ins from an earlier run", event.ID, count.Count)
	}
	monitoring.SetUnsaved(event.ID, count.Count)

	log.Printf("Loaded event %s (%s) with %d bookings", event.ID, event.Title, len(event.Bookings))

	return &LoadEventOutput{
		Event:   s.snapshot.Summary(),
		Unsaved: count.Count,
	}, nil
}

// LoadOfflineEvent enters an event with one session per booking list
func (s *service) LoadOfflineEvent(ctx context.Context, input *LoadOfflineEventInput) (*LoadOfflineEventOutput, error) {
	event := &models.Event{
		ID:          "offline-" + s.uuid.NewUUID(),
		Title:       strings.TrimSpace(input.Title),
		IsUnlimited: true,
		IsOffline:   true,
		IsDropIn:    len(input.BookingLists) == 0,
	}

	for i, list := range input.BookingLists {
		sessionID := strconv.Itoa(i + 1)
		session := &models.Session{ID: sessionID}

		for _, line := range list {
			identifier := strings.TrimSpace(line)
			if identifier == "" {
				continue
			}
			event.Bookings = append(event.Bookings, &models.Booking{
				Identifier: identifier,
				SessionID:  sessionID,
				Status:     models.BookingStatusUnspecified,
				IsBooked:   true,
			})
			session.BookingCount++
		}

		event.Sessions = append(event.Sessions, session)
	}
	event.BookingCount = len(event.Bookings)

	s.snapshot.Load(event)
	s.eventFull.Store(false)
	s.mode.MarkSaved()

	log.Printf("Entered offline event %s (%s) with %d bookings", event.ID, event.Title, event.BookingCount)

	return &LoadOfflineEventOutput{
		Event:      s.snapshot.Summary(),
		SingleSlot: len(event.Sessions) == 1,
	}, nil
}

func (s *service) LoadWaitingList(ctx context.Context, input *LoadWaitingListInput) error {
	if !s.snapshot.Loaded() {
		return ErrNoEvent
	}

	identifiers := make([]string, 0, len(input.Identifiers))
	for _, line := range input.Identifiers {
		if identifier := strings.TrimSpace(line); identifier != "" {
			identifiers = append(identifiers, identifier)
		}
	}

	s.snapshot.SetWaitingList(identifiers)
	s.checkWaitingList.Store(len(identifiers) > 0)

	return nil
}

// GoOnline switches to online mode and replays whatever is unsaved
func (s *service) GoOnline(ctx context.Context) (*GoOnlineOutput, error) {
	changed, err := s.mode.GoOnline(ctx)
	if err != nil {
		return nil, err
	}

	output := &GoOnlineOutput{Changed: changed}

	summary := s.snapshot.Summary()
	if !s.snapshot.Loaded() || summary.IsOffline {
		return output, nil
	}

	replay, err := s.ReplayUnsaved(ctx)
	output.Replay = replay
	if err != nil {
		return output, err
	}

	return output, nil
}

func (s *service) GoOffline() {
	s.mode.GoOffline()
}

func (s *service) AddToEarlyList(ctx context.Context, input *AddToEarlyListInput) error {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		return ErrEmptyIdentifier
	}

	if !s.snapshot.Loaded() {
		return ErrNoEvent
	}

	return s.mode.RecordUnsaved(func() error {
		return s.ledger.Push(ctx, &unsaved.PushInput{
			EventID:    s.snapshot.Summary().ID,
			Identifier: identifier,
		})
	})
}

// Export writes the unsaved ledger and empties it. The ledger is restored
// when the write fails.
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if !s.snapshot.Loaded() {
		return nil, ErrNoEvent
	}

	s.replayMu.Lock()
	defer s.replayMu.Unlock()

	summary := s.snapshot.Summary()

	// appends wait until the drained ledger is written or restored
	var exported []string
	err := s.mode.Settle(func() (bool, error) {
		drained, err := s.ledger.Drain(ctx, &unsaved.DrainInput{EventID: summary.ID})
		if err != nil {
			return false, fmt.Errorf("failed to drain unsaved check-ins: %w", err)
		}

		err = export.Write(input.Writer, &export.Document{
			Title:       summary.Title,
			At:          s.clock.Now(),
			Identifiers: drained.Identifiers,
		})
		if err != nil {
			restoreErr := s.ledger.Restore(ctx, &unsaved.RestoreInput{
				EventID:     summary.ID,
				Identifiers: drained.Identifiers,
			})
			if restoreErr != nil {
				log.Printf("Failed to restore %d unsaved check-ins for event %s: %v", len(drained.Identifiers), summary.ID, restoreErr)
			}
			return false, fmt.Errorf("failed to export unsaved check-ins: %w", err)
		}

		exported = drained.Identifiers
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	monitoring.SetUnsaved(summary.ID, 0)

	log.Printf("Exported %d unsaved check-ins for event %s", len(exported), summary.ID)

	return &ExportOutput{Count: len(exported)}, nil
}

// Finish refuses to end an unsaved session
func (s *service) Finish(ctx context.Context, input *FinishInput) error {
	if !s.mode.IsSaved() {
		return ErrUnsaved
	}

	if !input.MarkAbsent {
		return nil
	}

	summary, err := s.remoteEvent()
	if err != nil {
		return err
	}

	err = s.provider.MarkAllUnspecifiedAbsent(ctx, &booking.MarkAllUnspecifiedAbsentInput{
		EventKey: summary.ID,
		Notify:   input.Notify,
	})
	if err != nil {
		return fmt.Errorf("failed to mark unattended bookings absent: %w", err)
	}

	return nil
}

func (s *service) Status(ctx context.Context) (*StatusOutput, error) {
	output := &StatusOutput{
		Loaded:           s.snapshot.Loaded(),
		Mode:             s.mode.State(),
		Saved:            s.mode.IsSaved(),
		CheckBookingList: s.checkBookingList.Load(),
		CheckWaitingList: s.checkWaitingList.Load(),
		EventFull:        s.eventFull.Load(),
		RemoteEnabled:    s.mode.RemoteEnabled(),
	}

	if !output.Loaded {
		return output, nil
	}

	output.Event = s.snapshot.Summary()
	output.EventFull = output.EventFull || output.Event.IsFull

	count, err := s.ledger.Count(ctx, &unsaved.CountInput{EventID: output.Event.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count unsaved check-ins: %w", err)
	}
	output.Unsaved = count.Count

	if output.RemoteEnabled && !output.Event.IsOffline {
		output.AdminURL = s.provider.AdminEventURL(output.Event.ID)
	}

	return output, nil
}

func (s *service) ListUnsaved(ctx context.Context) (*ListUnsavedOutput, error) {
	if !s.snapshot.Loaded() {
		return nil, ErrNoEvent
	}

	eventID := s.snapshot.Summary().ID
	list, err := s.ledger.List(ctx, &unsaved.ListInput{EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to list unsaved check-ins: %w", err)
	}

	return &ListUnsavedOutput{
		EventID:     eventID,
		Identifiers: list.Identifiers,
	}, nil
}

func (s *service) DiscardUnsaved(ctx context.Context) (*DiscardUnsavedOutput, error) {
	if !s.snapshot.Loaded() {
		return nil, ErrNoEvent
	}

	s.replayMu.Lock()
	defer s.replayMu.Unlock()

	eventID := s.snapshot.Summary().ID

	var discarded int
	err := s.mode.Settle(func() (bool, error) {
		count, err := s.ledger.Count(ctx, &unsaved.CountInput{EventID: eventID})
		if err != nil {
			return false, fmt.Errorf("failed to count unsaved check-ins: %w", err)
		}

		if err := s.ledger.Clear(ctx, &unsaved.ClearInput{EventID: eventID}); err != nil {
			return false, fmt.Errorf("failed to discard unsaved check-ins: %w", err)
		}

		discarded = count.Count
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Discarded %d unsaved check-ins of event %s", discarded, eventID)
	monitoring.SetUnsaved(eventID, 0)

	return &DiscardUnsavedOutput{Discarded: discarded}, nil
}

func (s *service) UnsavedCount(ctx context.Context) (string, int, error) {
	if !s.snapshot.Loaded() {
		return "", 0, nil
	}

	eventID := s.snapshot.Summary().ID
	count, err := s.ledger.Count(ctx, &unsaved.CountInput{EventID: eventID})
	if err != nil {
		return eventID, 0, err
	}

	return eventID, count.Count, nil
}

func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if !s.snapshot.Loaded() {
		return nil, ErrNoEvent
	}

	eventID := s.snapshot.Summary().ID

	if input.Identifier != "" {
		out, err := s.attendance.GetRecordsForIdentifier(ctx, &attendance.GetRecordsForIdentifierInput{
			EventID:    eventID,
			Identifier: strings.TrimSpace(input.Identifier),
		})
		if err != nil {
			return nil, err
		}
		return &HistoryOutput{Records: out.Records}, nil
	}

	out, err := s.attendance.GetRecordsForEvent(ctx, &attendance.GetRecordsForEventInput{EventID: eventID})
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{Records: out.Records}, nil
}

// remoteEvent returns the loaded event when the booking system knows it
func (s *service) remoteEvent() (snapshot.Summary, error) {
	if !s.snapshot.Loaded() {
		return snapshot.Summary{}, ErrNoEvent
	}

	summary := s.snapshot.Summary()
	if summary.IsOffline {
		return summary, ErrOfflineEvent
	}

	if !s.mode.IsOnline() {
		return summary, ErrOffline
	}

	return summary, nil
}
