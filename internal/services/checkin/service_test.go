package checkin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	bookingMocks "github.com/KirkDiggler/eventswipe/internal/booking/mocks"
	clockMocks "github.com/KirkDiggler/eventswipe/internal/common/clock/mocks"
	networkMocks "github.com/KirkDiggler/eventswipe/internal/common/network/mocks"
	uuidMocks "github.com/KirkDiggler/eventswipe/internal/common/uuid/mocks"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/repositories/attendance"
	attendanceMocks "github.com/KirkDiggler/eventswipe/internal/repositories/attendance/mocks"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	unsavedMocks "github.com/KirkDiggler/eventswipe/internal/repositories/unsaved/mocks"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
	"github.com/KirkDiggler/eventswipe/internal/services/submission"
	submissionMocks "github.com/KirkDiggler/eventswipe/internal/services/submission/mocks"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

type ServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockProvider   *bookingMocks.MockProvider
	mockQueue      *submissionMocks.MockQueue
	mockLedger     *unsavedMocks.MockRepository
	mockAttendance *attendanceMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockChecker    *networkMocks.MockChecker
	snapshot       snapshot.Snapshot
	mode           *mode.Controller
	service        *service
	ctx            context.Context
	now            time.Time
	event          *models.Event
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProvider = bookingMocks.NewMockProvider(s.ctrl)
	s.mockQueue = submissionMocks.NewMockQueue(s.ctrl)
	s.mockLedger = unsavedMocks.NewMockRepository(s.ctrl)
	s.mockAttendance = attendanceMocks.NewMockRepository(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.mockChecker = networkMocks.NewMockChecker(s.ctrl)
	s.ctx = context.Background()

	s.now = time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.mockProvider.EXPECT().IsValidIdentifier(gomock.Any()).Return(true).AnyTimes()
	s.mockAttendance.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(&attendance.CreateRecordOutput{}, nil).AnyTimes()

	start := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	s.event = &models.Event{
		ID:                   "42",
		Title:                "Careers Fair",
		StartTime:            start,
		RegistrationOpenTime: start.Add(-time.Hour),
		BookingLimit:         10,
		BookingCount:         2,
		Sessions: []*models.Session{
			{ID: "7", Start: start.Add(-time.Hour), End: start.Add(time.Hour)},
		},
		Bookings: []*models.Booking{
			{Identifier: "123456", BookingID: "9001", SessionID: "7", FirstName: "Ada", LastName: "Lovelace", Status: models.BookingStatusUnspecified, IsBooked: true},
			{Identifier: "234567", BookingID: "9002", SessionID: "7", Status: models.BookingStatusUnspecified, IsBooked: true},
		},
		WaitingList: []string{"777777"},
	}

	s.snapshot = snapshot.New()

	controller, err := mode.New(&mode.Config{
		Checker:       s.mockChecker,
		RemoteEnabled: true,
	})
	s.Require().NoError(err)
	s.mode = controller

	svc, err := New(&Config{
		Provider:         s.mockProvider,
		Snapshot:         s.snapshot,
		Mode:             s.mode,
		Queue:            s.mockQueue,
		Ledger:           s.mockLedger,
		Attendance:       s.mockAttendance,
		Clock:            s.mockClock,
		UUID:             s.mockUUID,
		CheckBookingList: true,
		CheckWaitingList: true,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) TearDownTest() {
	s.snapshot.Close()
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) goOnline() {
	s.mockChecker.EXPECT().Reachable(gomock.Any()).Return(true)
	_, err := s.mode.GoOnline(s.ctx)
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) load() {
	s.snapshot.Load(s.event)
}

func (s *ServiceTestSuite) check(identifier string) *CheckIdentifierOutput {
	out, err := s.service.CheckIdentifier(s.ctx, &CheckIdentifierInput{Identifier: identifier})
	s.Require().NoError(err)
	return out
}

func (s *ServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilProvider)

	_, err = New(&Config{Provider: s.mockProvider, Snapshot: s.snapshot, Mode: s.mode})
	s.ErrorIs(err, ErrNilQueue)

	_, err = New(&Config{
		Provider:   s.mockProvider,
		Snapshot:   s.snapshot,
		Mode:       s.mode,
		Queue:      s.mockQueue,
		Ledger:     s.mockLedger,
		Attendance: s.mockAttendance,
		Clock:      s.mockClock,
	})
	s.ErrorIs(err, ErrNilUUID)
}

func (s *ServiceTestSuite) TestCheckIdentifierValidation() {
	_, err := s.service.CheckIdentifier(s.ctx, &CheckIdentifierInput{Identifier: "  "})
	s.ErrorIs(err, ErrEmptyIdentifier)

	_, err = s.service.CheckIdentifier(s.ctx, &CheckIdentifierInput{Identifier: "123456"})
	s.ErrorIs(err, ErrNoEvent)
}

func (s *ServiceTestSuite) TestCheckIdentifierRejectsInvalidFormat() {
	ctrl := gomock.NewController(s.T())
	provider := bookingMocks.NewMockProvider(ctrl)
	provider.EXPECT().IsValidIdentifier("abc").Return(false)

	svc, err := New(&Config{
		Provider:   provider,
		Snapshot:   s.snapshot,
		Mode:       s.mode,
		Queue:      s.mockQueue,
		Ledger:     s.mockLedger,
		Attendance: s.mockAttendance,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = svc.CheckIdentifier(s.ctx, &CheckIdentifierInput{Identifier: "abc"})
	s.ErrorIs(err, ErrInvalidIdentifier)
}

func (s *ServiceTestSuite) TestBookedIdentifierIsSubmittedOnce() {
	s.load()
	s.goOnline()

	expected, _ := s.snapshot.FindBooking("123456")
	s.mockQueue.EXPECT().Enqueue(&submission.EnqueueInput{EventID: "42", Booking: expected}).Return(nil).Times(1)

	out := s.check("123456")

	s.True(out.Booking.IsBooked)
	s.False(out.Booking.IsAlreadyRecorded)
	s.False(out.Queued)
	s.Equal(models.BookingStatusUnspecified, out.Booking.Status)
	s.Equal("9001", out.Booking.BookingID)
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestSecondCheckIsAlreadyRecorded() {
	s.load()
	s.goOnline()
	s.mockQueue.EXPECT().Enqueue(gomock.Any()).Return(nil).Times(1)

	s.check("123456")
	before := s.snapshot.Summary()

	out := s.check(" 123456 ")

	s.True(out.Booking.IsAlreadyRecorded)
	s.True(out.Booking.IsBooked)
	s.Equal(before, s.snapshot.Summary())
	s.Equal(1, s.snapshot.Summary().RecordedCount)
}

func (s *ServiceTestSuite) TestBookingListNeedsNoProvider() {
	s.load()
	s.goOnline()
	s.mockQueue.EXPECT().Enqueue(gomock.Any()).Return(nil).Times(len(s.event.Bookings))

	for _, b := range s.event.Bookings {
		out := s.check(b.Identifier)
		s.True(out.Booking.IsBooked, b.Identifier)
	}
}

func (s *ServiceTestSuite) TestUnknownIdentifierIsNotBooked() {
	s.load()
	s.goOnline()

	out := s.check("999999")

	s.False(out.Booking.IsBooked)
	s.False(out.Booking.IsOnWaitingList)
	s.Equal(models.BookingStatusNotBooked, out.Booking.Status)
	s.Equal(0, s.snapshot.Summary().RecordedCount)
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestWaitingListIdentifier() {
	s.load()

	out := s.check("777777")

	s.False(out.Booking.IsBooked)
	s.True(out.Booking.IsOnWaitingList)

	s.service.SetWaitingListChecking(false)
	out = s.check("777777")
	s.False(out.Booking.IsOnWaitingList)
}

func (s *ServiceTestSuite) TestEarlyCheckInIsQueued() {
	s.now = time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC)
	s.service.SetBookingListChecking(false)
	s.load()
	s.goOnline()

	s.mockProvider.EXPECT().LookupBookingStatus(gomock.Any(), &booking.LookupBookingStatusInput{
		Identifier: "555555",
		EventKey:   "42",
	}).Return(&booking.LookupBookingStatusOutput{
		Booking: &models.Booking{Identifier: "555555", Status: models.BookingStatusNotBooked},
	}, nil)
	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "42", Identifier: "555555"}).Return(nil)

	out := s.check("555555")

	s.True(out.Booking.IsBooked)
	s.True(out.Queued)
	s.Equal(models.BookingStatusEarly, out.Booking.Status)
	s.False(s.mode.IsSaved())

	recorded, ok := s.snapshot.Recorded("555555")
	s.Require().True(ok)
	s.Equal(models.BookingStatusEarly, recorded.Status)
}

func (s *ServiceTestSuite) TestDropInWhileOffline() {
	s.event.IsDropIn = true
	s.event.Bookings = nil
	s.load()

	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "42", Identifier: "314159"}).Return(nil)

	out := s.check("314159")

	s.True(out.Booking.IsBooked)
	s.True(out.Queued)
	s.Equal(models.BookingStatusUnspecified, out.Booking.Status)
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestHeldDropInIsExported() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	redisLedger, err := unsaved.NewRedis(&unsaved.Config{RedisClient: client})
	s.Require().NoError(err)
	ledger, err := unsaved.NewFallback(redisLedger)
	s.Require().NoError(err)

	svc, err := New(&Config{
		Provider:   s.mockProvider,
		Snapshot:   s.snapshot,
		Mode:       s.mode,
		Queue:      s.mockQueue,
		Ledger:     ledger,
		Attendance: s.mockAttendance,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)

	s.event.IsDropIn = true
	s.event.Bookings = nil
	s.load()

	mr.SetError("redis: connection refused")
	out, err := svc.CheckIdentifier(s.ctx, &CheckIdentifierInput{Identifier: "314159"})
	s.Require().NoError(err)
	s.True(out.Queued)
	s.True(out.Held)
	s.False(s.mode.IsSaved())

	mr.SetError("")
	list, err := svc.ListUnsaved(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"314159"}, list.Identifiers)

	var buf bytes.Buffer
	exported, err := svc.Export(s.ctx, &ExportInput{Writer: &buf})
	s.Require().NoError(err)
	s.Equal(1, exported.Count)
	s.Contains(buf.String(), "314159\n")
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestLookupFailureFallsBackToDropIn() {
	s.service.SetBookingListChecking(false)
	s.load()
	s.goOnline()

	s.mockProvider.EXPECT().LookupBookingStatus(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("lookup: %w", booking.ErrUnexpectedResponse))
	s.mockQueue.EXPECT().Enqueue(&submission.EnqueueInput{
		EventID: "42",
		Booking: models.Booking{Identifier: "555555", Status: models.BookingStatusUnspecified, IsBooked: true},
	}).Return(nil)

	out := s.check("555555")

	s.True(out.Booking.IsBooked)
	s.False(out.Queued)
}

func (s *ServiceTestSuite) TestListCheckingOffUsesBookingListFirst() {
	s.service.SetBookingListChecking(false)
	s.load()
	s.goOnline()
	s.mockQueue.EXPECT().Enqueue(gomock.Any()).Return(nil)

	out := s.check("234567")

	s.True(out.Booking.IsBooked)
	s.Equal("9002", out.Booking.BookingID)
}

func (s *ServiceTestSuite) TestFullQueueFallsBackToLedger() {
	s.load()
	s.goOnline()

	s.mockQueue.EXPECT().Enqueue(gomock.Any()).Return(submission.ErrQueueFull)
	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "42", Identifier: "123456"}).Return(nil)

	out := s.check("123456")

	s.True(out.Queued)
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestReplayStopsAtEventFull() {
	s.load()
	s.goOnline()

	ids := []string{"100001", "100002", "100003", "100004", "100005"}
	s.mockLedger.EXPECT().BeginReplay(gomock.Any(), &unsaved.BeginReplayInput{EventID: "42"}).
		Return(&unsaved.BeginReplayOutput{Identifiers: ids}, nil)

	s.mockProvider.EXPECT().LookupBookingStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *booking.LookupBookingStatusInput) (*booking.LookupBookingStatusOutput, error) {
			return &booking.LookupBookingStatusOutput{
				Booking: &models.Booking{Identifier: input.Identifier, Status: models.BookingStatusNotBooked},
			}, nil
		}).Times(3)

	outcomes := map[string]error{
		"100001": nil,
		"100002": fmt.Errorf("mark attended: %w", booking.ErrUnexpectedResponse),
		"100003": fmt.Errorf("create booking: %w", booking.ErrEventFull),
	}
	s.mockQueue.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *submission.SubmitInput) (*submission.SubmitOutput, error) {
			return &submission.SubmitOutput{Booking: input.Booking}, outcomes[input.Booking.Identifier]
		}).Times(3)

	s.mockLedger.EXPECT().CommitReplay(gomock.Any(), &unsaved.CommitReplayInput{
		EventID:   "42",
		Remaining: []string{"100002", "100003", "100004", "100005"},
	}).Return(nil)
	s.mockLedger.EXPECT().Count(gomock.Any(), &unsaved.CountInput{EventID: "42"}).Return(&unsaved.CountOutput{Count: 4}, nil)

	out, err := s.service.ReplayUnsaved(s.ctx)

	s.ErrorIs(err, booking.ErrEventFull)
	s.Require().NotNil(out)
	s.True(out.EventFull)
	s.Equal(3, out.Attempted)
	s.Equal(1, out.Saved)
	s.Equal(4, out.Remaining)
	s.False(s.mode.IsSaved())
	s.True(s.service.eventFull.Load())

	recorded, ok := s.snapshot.Recorded("100001")
	s.True(ok)
	s.Equal("100001", recorded.Identifier)
}

func (s *ServiceTestSuite) TestReplayDeduplicates() {
	s.load()
	s.goOnline()

	s.mockLedger.EXPECT().BeginReplay(gomock.Any(), gomock.Any()).
		Return(&unsaved.BeginReplayOutput{Identifiers: []string{"123456", "123456"}}, nil)
	s.mockQueue.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *submission.SubmitInput) (*submission.SubmitOutput, error) {
			b := input.Booking
			b.Status = models.BookingStatusAttended
			return &submission.SubmitOutput{Booking: b}, nil
		}).Times(1)
	s.mockLedger.EXPECT().CommitReplay(gomock.Any(), &unsaved.CommitReplayInput{EventID: "42", Remaining: []string{}}).Return(nil)
	s.mockLedger.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&unsaved.CountOutput{}, nil)

	out, err := s.service.ReplayUnsaved(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, out.Attempted)
	s.Equal(1, out.Saved)

	recorded, ok := s.snapshot.Recorded("123456")
	s.True(ok)
	s.Equal(models.BookingStatusAttended, recorded.Status)
}

func (s *ServiceTestSuite) TestReplayRequiresOnline() {
	s.load()

	_, err := s.service.ReplayUnsaved(s.ctx)

	s.ErrorIs(err, ErrOffline)
}

func (s *ServiceTestSuite) TestGoOnlineReplaysEveryIdentifier() {
	s.load()
	s.mode.MarkUnsaved()
	s.mockChecker.EXPECT().Reachable(gomock.Any()).Return(true)

	s.mockLedger.EXPECT().BeginReplay(gomock.Any(), gomock.Any()).
		Return(&unsaved.BeginReplayOutput{Identifiers: []string{"123456", "555555"}}, nil)
	s.mockProvider.EXPECT().LookupBookingStatus(gomock.Any(), &booking.LookupBookingStatusInput{Identifier: "555555", EventKey: "42"}).
		Return(&booking.LookupBookingStatusOutput{Booking: &models.Booking{Identifier: "555555", BookingID: "9100", Status: models.BookingStatusUnspecified}}, nil)

	var submitted []string
	s.mockQueue.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *submission.SubmitInput) (*submission.SubmitOutput, error) {
			submitted = append(submitted, input.Booking.Identifier)
			return &submission.SubmitOutput{Booking: input.Booking}, nil
		}).Times(2)
	s.mockLedger.EXPECT().CommitReplay(gomock.Any(), gomock.Any()).Return(nil)
	s.mockLedger.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&unsaved.CountOutput{}, nil)

	out, err := s.service.GoOnline(s.ctx)

	s.Require().NoError(err)
	s.True(out.Changed)
	s.Require().NotNil(out.Replay)
	s.Equal([]string{"123456", "555555"}, submitted)
	s.True(s.mode.IsOnline())
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestGoOnlineWithoutConnectivity() {
	s.load()
	s.mockChecker.EXPECT().Reachable(gomock.Any()).Return(false)

	_, err := s.service.GoOnline(s.ctx)

	s.ErrorIs(err, mode.ErrNoConnectivity)
	s.False(s.mode.IsOnline())
}

func (s *ServiceTestSuite) TestExport() {
	s.load()
	s.mode.MarkUnsaved()
	s.mockLedger.EXPECT().Drain(gomock.Any(), &unsaved.DrainInput{EventID: "42"}).
		Return(&unsaved.DrainOutput{Identifiers: []string{"123456", "555555"}}, nil)

	var buf bytes.Buffer
	out, err := s.service.Export(s.ctx, &ExportInput{Writer: &buf})

	s.Require().NoError(err)
	s.Equal(2, out.Count)
	s.Equal("Event attendees - 01/05/2026 14:30:00\nCareers Fair\n123456\n555555\n", buf.String())
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestExportFailureRestoresLedger() {
	s.load()
	s.mode.MarkUnsaved()
	s.mockLedger.EXPECT().Drain(gomock.Any(), gomock.Any()).
		Return(&unsaved.DrainOutput{Identifiers: []string{"123456"}}, nil)
	s.mockLedger.EXPECT().Restore(gomock.Any(), &unsaved.RestoreInput{EventID: "42", Identifiers: []string{"123456"}}).Return(nil)

	_, err := s.service.Export(s.ctx, &ExportInput{Writer: failingWriter{}})

	s.Error(err)
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestPushDuringExportKeepsSessionUnsaved() {
	s.load()
	s.mode.MarkUnsaved()

	pushed := make(chan struct{})
	added := make(chan error, 1)
	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "42", Identifier: "555555"}).
		DoAndReturn(func(ctx context.Context, input *unsaved.PushInput) error {
			close(pushed)
			return nil
		})
	s.mockLedger.EXPECT().Drain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *unsaved.DrainInput) (*unsaved.DrainOutput, error) {
			go func() {
				added <- s.service.AddToEarlyList(s.ctx, &AddToEarlyListInput{Identifier: "555555"})
			}()

			select {
			case <-pushed:
				s.Fail("push landed while the ledger was draining")
			case <-time.After(100 * time.Millisecond):
			}

			return &unsaved.DrainOutput{Identifiers: []string{"123456"}}, nil
		})

	var buf bytes.Buffer
	_, err := s.service.Export(s.ctx, &ExportInput{Writer: &buf})
	s.Require().NoError(err)

	select {
	case err := <-added:
		s.Require().NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("push never ran")
	}
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestFinish() {
	s.load()
	s.goOnline()

	s.mode.MarkUnsaved()
	s.ErrorIs(s.service.Finish(s.ctx, &FinishInput{MarkAbsent: true}), ErrUnsaved)

	s.mode.MarkSaved()
	s.mockProvider.EXPECT().MarkAllUnspecifiedAbsent(gomock.Any(), &booking.MarkAllUnspecifiedAbsentInput{
		EventKey: "42",
		Notify:   true,
	}).Return(nil)

	s.NoError(s.service.Finish(s.ctx, &FinishInput{MarkAbsent: true, Notify: true}))
	s.NoError(s.service.Finish(s.ctx, &FinishInput{}))
}

func (s *ServiceTestSuite) TestLoadEvent() {
	s.service.SetWaitingListChecking(false)
	s.event.WaitingList = nil

	s.mockProvider.EXPECT().FetchEvent(gomock.Any(), &booking.FetchEventInput{EventKey: "42", IncludeBookings: true}).
		Return(&booking.FetchEventOutput{Event: s.event}, nil)
	s.mockProvider.EXPECT().FetchWaitingList(gomock.Any(), &booking.FetchWaitingListInput{EventKey: "42"}).
		Return(&booking.FetchWaitingListOutput{Identifiers: []string{"888888"}}, nil)
	s.mockLedger.EXPECT().Count(gomock.Any(), &unsaved.CountInput{EventID: "42"}).Return(&unsaved.CountOutput{Count: 2}, nil)

	out, err := s.service.LoadEvent(s.ctx, &LoadEventInput{EventKey: "42", UseWaitingList: true})

	s.Require().NoError(err)
	s.Equal("Careers Fair", out.Event.Title)
	s.Equal(1, out.Event.WaitingListSize)
	s.Equal(2, out.Unsaved)
	s.False(s.mode.IsSaved())
	s.True(s.service.checkWaitingList.Load())
	s.True(s.snapshot.OnWaitingList("888888"))
}

func (s *ServiceTestSuite) TestLoadEventClearsRecordedSet() {
	s.load()
	s.mockLedger.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil)
	s.check("123456")

	s.mockProvider.EXPECT().FetchEvent(gomock.Any(), gomock.Any()).Return(&booking.FetchEventOutput{Event: s.event}, nil)
	s.mockLedger.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&unsaved.CountOutput{}, nil)

	_, err := s.service.LoadEvent(s.ctx, &LoadEventInput{EventKey: "42"})
	s.Require().NoError(err)

	_, ok := s.snapshot.Recorded("123456")
	s.False(ok)
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestLoadOfflineEvent() {
	s.mockUUID.EXPECT().NewUUID().Return("abc")

	out, err := s.service.LoadOfflineEvent(s.ctx, &LoadOfflineEventInput{
		Title:        "Library tour",
		BookingLists: [][]string{{"111111", " 222222 ", ""}, {"333333"}},
	})

	s.Require().NoError(err)
	s.Equal("offline-abc", out.Event.ID)
	s.Equal(2, out.Event.SessionCount)
	s.Equal(3, out.Event.BookingListSize)
	s.True(out.Event.IsOffline)
	s.False(out.SingleSlot)

	b, ok := s.snapshot.FindBooking("333333")
	s.Require().True(ok)
	s.Equal("2", b.SessionID)

	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "offline-abc", Identifier: "222222"}).Return(nil)
	checked := s.check("222222")
	s.True(checked.Booking.IsBooked)
	s.True(checked.Queued)
}

func (s *ServiceTestSuite) TestLoadWaitingList() {
	s.ErrorIs(s.service.LoadWaitingList(s.ctx, &LoadWaitingListInput{}), ErrNoEvent)

	s.load()
	s.service.SetWaitingListChecking(false)

	s.Require().NoError(s.service.LoadWaitingList(s.ctx, &LoadWaitingListInput{Identifiers: []string{"444444", " "}}))

	s.True(s.snapshot.OnWaitingList("444444"))
	s.True(s.service.checkWaitingList.Load())
	s.True(s.check("444444").Booking.IsOnWaitingList)
}

func (s *ServiceTestSuite) TestAddToEarlyList() {
	s.load()
	s.mockLedger.EXPECT().Push(gomock.Any(), &unsaved.PushInput{EventID: "42", Identifier: "123456"}).Return(nil)

	s.NoError(s.service.AddToEarlyList(s.ctx, &AddToEarlyListInput{Identifier: "123456"}))
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestCancelBooking() {
	s.load()
	s.goOnline()

	s.mockProvider.EXPECT().CancelBooking(gomock.Any(), &booking.CancelBookingInput{
		Identifier: "123456",
		EventKey:   "42",
		SessionKey: "7",
	}).Return(nil)

	s.Require().NoError(s.service.CancelBooking(s.ctx, &CancelBookingInput{Identifier: "123456"}))

	out := s.check("123456")
	s.False(out.Booking.IsBooked)

	s.ErrorIs(s.service.CancelBooking(s.ctx, &CancelBookingInput{Identifier: "000000"}), ErrBookingNotFound)
}

func (s *ServiceTestSuite) TestStatus() {
	status, err := s.service.Status(s.ctx)
	s.Require().NoError(err)
	s.False(status.Loaded)
	s.Equal(mode.StateOffline, status.Mode)

	s.load()
	s.mockLedger.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&unsaved.CountOutput{Count: 3}, nil)
	s.mockProvider.EXPECT().AdminEventURL("42").Return("https://careers.example.edu/admin/events/edit/42")

	status, err = s.service.Status(s.ctx)
	s.Require().NoError(err)
	s.True(status.Loaded)
	s.Equal(3, status.Unsaved)
	s.Equal("Careers Fair", status.Event.Title)
	s.True(status.CheckBookingList)
	s.Equal("https://careers.example.edu/admin/events/edit/42", status.AdminURL)
}

func (s *ServiceTestSuite) TestListUnsaved() {
	_, err := s.service.ListUnsaved(s.ctx)
	s.ErrorIs(err, ErrNoEvent)

	s.load()
	s.mockLedger.EXPECT().
		List(gomock.Any(), &unsaved.ListInput{EventID: "42"}).
		Return(&unsaved.ListOutput{Identifiers: []string{"100001", "100002"}}, nil)

	out, err := s.service.ListUnsaved(s.ctx)
	s.Require().NoError(err)
	s.Equal("42", out.EventID)
	s.Equal([]string{"100001", "100002"}, out.Identifiers)
}

func (s *ServiceTestSuite) TestDiscardUnsaved() {
	s.load()
	s.mode.MarkUnsaved()

	s.mockLedger.EXPECT().Count(gomock.Any(), &unsaved.CountInput{EventID: "42"}).Return(&unsaved.CountOutput{Count: 2}, nil)
	s.mockLedger.EXPECT().Clear(gomock.Any(), &unsaved.ClearInput{EventID: "42"}).Return(nil)

	out, err := s.service.DiscardUnsaved(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, out.Discarded)
	s.True(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestDiscardUnsavedKeepsFlagOnFailure() {
	s.load()
	s.mode.MarkUnsaved()

	s.mockLedger.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&unsaved.CountOutput{Count: 2}, nil)
	s.mockLedger.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := s.service.DiscardUnsaved(s.ctx)
	s.Error(err)
	s.False(s.mode.IsSaved())
}

func (s *ServiceTestSuite) TestNoticesFromSubmissionResults() {
	results := make(chan *submission.Result, 1)
	s.mockQueue.EXPECT().Start(gomock.Any()).Return(nil)
	s.mockQueue.EXPECT().Results().Return(results)
	s.mockQueue.EXPECT().Stop(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(results)
		return nil
	})

	s.Require().NoError(s.service.Start(s.ctx))

	results <- &submission.Result{
		EventID: "42",
		Booking: models.Booking{Identifier: "555555", FirstName: "Grace", Status: models.BookingStatusEventFull},
		Err:     fmt.Errorf("create booking: %w", booking.ErrEventFull),
		Unsaved: true,
	}

	select {
	case notice := <-s.service.Notices():
		s.Equal("event_full", notice.Outcome)
		s.Equal("Grace", notice.Name)
		s.True(notice.Unsaved)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for a notice")
	}

	s.Require().NoError(s.service.Stop(s.ctx))
	s.True(s.service.eventFull.Load())

	_, open := <-s.service.Notices()
	s.False(open)
}
