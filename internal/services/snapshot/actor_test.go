package snapshot

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/eventswipe/internal/models"
)

type ActorTestSuite struct {
	suite.Suite
	snapshot *actor
	start    time.Time
	event    *models.Event
}

func (s *ActorTestSuite) SetupTest() {
	s.start = time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	s.event = &models.Event{
		ID:                   "42",
		Title:                "Careers Fair",
		StartTime:            s.start,
		RegistrationOpenTime: s.start.Add(-time.Hour),
		BookingLimit:         2,
		BookingCount:         1,
		Sessions: []*models.Session{
			{ID: "7", Start: s.start, End: s.start.Add(time.Hour)},
		},
		Bookings: []*models.Booking{
			{Identifier: "123456", BookingID: "9001", Status: models.BookingStatusUnspecified, IsBooked: true},
		},
		WaitingList: []string{"777777"},
	}

	s.snapshot = New()
	s.snapshot.Load(s.event)
}

func (s *ActorTestSuite) TearDownTest() {
	s.snapshot.Close()
}

func TestActorSuite(t *testing.T) {
	suite.Run(t, new(ActorTestSuite))
}

func (s *ActorTestSuite) TestLoadCopiesTheEvent() {
	s.event.Bookings[0].Status = models.BookingStatusAttended
	s.event.WaitingList[0] = "changed"

	b, ok := s.snapshot.FindBooking("123456")
	s.Require().True(ok)
	s.Equal(models.BookingStatusUnspecified, b.Status)
	s.True(s.snapshot.OnWaitingList("777777"))
}

func (s *ActorTestSuite) TestFindBookingMiss() {
	_, ok := s.snapshot.FindBooking("000000")
	s.False(ok)
}

func (s *ActorTestSuite) TestReturnedBookingsAreCopies() {
	b, _ := s.snapshot.FindBooking("123456")
	b.Status = models.BookingStatusAbsent

	again, _ := s.snapshot.FindBooking("123456")
	s.Equal(models.BookingStatusUnspecified, again.Status)
}

func (s *ActorTestSuite) TestMarkRecordedIsTestAndSet() {
	s.True(s.snapshot.MarkRecorded(models.Booking{Identifier: "123456", IsBooked: true}))
	s.False(s.snapshot.MarkRecorded(models.Booking{Identifier: "123456", IsBooked: false}))

	recorded, ok := s.snapshot.Recorded("123456")
	s.Require().True(ok)
	s.True(recorded.IsBooked)
	s.Equal(1, s.snapshot.Summary().RecordedCount)
}

func (s *ActorTestSuite) TestLoadOrdersSessionsByStart() {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s.event.Sessions = []*models.Session{
		{ID: "late", Start: day.Add(16 * time.Hour), End: day.Add(17 * time.Hour)},
		{ID: "early", Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}
	s.snapshot.Load(s.event)

	session, ok := s.snapshot.EffectiveSession(day.Add(19 * time.Hour))
	s.Require().True(ok)
	s.Equal("late", session.ID)

	session, ok = s.snapshot.EffectiveSession(day.Add(14*time.Hour + 30*time.Minute))
	s.Require().True(ok)
	s.Equal("early", session.ID)

	s.Equal("late", s.event.Sessions[0].ID)
}

func (s *ActorTestSuite) TestConcurrentMarkRecordedAdmitsOne() {
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.snapshot.MarkRecorded(models.Booking{Identifier: "555555"}) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
}

func (s *ActorTestSuite) TestUpdateBookingReachesListAndRecordedSet() {
	s.snapshot.MarkRecorded(models.Booking{Identifier: "123456", IsBooked: true})

	updated := s.snapshot.UpdateBooking("123456", func(b *models.Booking) {
		b.Status = models.BookingStatusAttended
	})
	s.True(updated)

	listed, _ := s.snapshot.FindBooking("123456")
	recorded, _ := s.snapshot.Recorded("123456")
	s.Equal(models.BookingStatusAttended, listed.Status)
	s.Equal(models.BookingStatusAttended, recorded.Status)

	s.False(s.snapshot.UpdateBooking("000000", func(b *models.Booking) {}))
}

func (s *ActorTestSuite) TestAddBooking() {
	s.snapshot.AddBooking(models.Booking{Identifier: "888888", BookingID: "9100", IsBooked: true})

	b, ok := s.snapshot.FindBooking("888888")
	s.Require().True(ok)
	s.Equal("9100", b.BookingID)

	summary := s.snapshot.Summary()
	s.Equal(2, summary.BookingListSize)
	s.Equal(2, summary.BookingCount)
	s.True(summary.IsFull)

	// a second add for the same identifier replaces the first
	s.snapshot.AddBooking(models.Booking{Identifier: "888888", BookingID: "9101", IsBooked: true})
	b, _ = s.snapshot.FindBooking("888888")
	s.Equal("9101", b.BookingID)
	s.Equal(2, s.snapshot.Summary().BookingListSize)
}

func (s *ActorTestSuite) TestSetWaitingList() {
	s.snapshot.SetWaitingList([]string{"111111"})

	s.True(s.snapshot.OnWaitingList("111111"))
	s.False(s.snapshot.OnWaitingList("777777"))
	s.Equal(1, s.snapshot.Summary().WaitingListSize)
}

func (s *ActorTestSuite) TestReloadForgetsRecorded() {
	s.snapshot.MarkRecorded(models.Booking{Identifier: "123456"})

	s.snapshot.Load(s.event)

	_, ok := s.snapshot.Recorded("123456")
	s.False(ok)
}

func (s *ActorTestSuite) TestRegistrationAndSessions() {
	s.True(s.snapshot.BeforeRegistration(s.start.Add(-2 * time.Hour)))
	s.False(s.snapshot.BeforeRegistration(s.start.Add(-30 * time.Minute)))

	session, ok := s.snapshot.EffectiveSession(s.start.Add(3 * time.Hour))
	s.Require().True(ok)
	s.Equal("7", session.ID)
}

func (s *ActorTestSuite) TestClosedSnapshotReturnsZeroValues() {
	s.snapshot.Close()

	s.False(s.snapshot.Loaded())
	_, ok := s.snapshot.FindBooking("123456")
	s.False(ok)
	s.False(s.snapshot.MarkRecorded(models.Booking{Identifier: "1"}))
}

func TestEmptySnapshot(t *testing.T) {
	snap := New()
	defer snap.Close()

	if snap.Loaded() {
		t.Fatal("new snapshot should not be loaded")
	}
	if _, ok := snap.EffectiveSession(time.Now()); ok {
		t.Fatal("empty snapshot has no sessions")
	}
	if snap.BeforeRegistration(time.Now()) {
		t.Fatal("empty snapshot is never before registration")
	}
}
