package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/eventswipe/internal/common/clock/mocks"
	"github.com/KirkDiggler/eventswipe/internal/models"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	checkinMocks "github.com/KirkDiggler/eventswipe/internal/services/checkin/mocks"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
)

type ConsoleTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCheckIn *checkinMocks.MockService
	mockClock   *clockMocks.MockClock
	messaging   messaging.Service
	out         *bytes.Buffer
	dir         string
	ctx         context.Context
}

func (s *ConsoleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCheckIn = checkinMocks.NewMockService(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC)).AnyTimes()
	s.out = &bytes.Buffer{}
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	svc, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)
	s.messaging = svc
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) run(input string) {
	c, err := New(&Config{
		CheckInService:   s.mockCheckIn,
		MessagingService: s.messaging,
		Clock:            s.mockClock,
		In:               strings.NewReader(input),
		Out:              s.out,
		ExportDir:        s.dir,
	})
	s.Require().NoError(err)
	s.Require().NoError(c.Run(s.ctx))
}

func (s *ConsoleTestSuite) TestScanChecksIdentifier() {
	s.mockCheckIn.EXPECT().CheckIdentifier(s.ctx, &checkin.CheckIdentifierInput{Identifier: "123456"}).
		Return(&checkin.CheckIdentifierOutput{
			Booking: models.Booking{Identifier: "123456", IsBooked: true, Status: models.BookingStatusUnspecified},
		}, nil)

	s.run("123456\n\n")

	s.Contains(s.out.String(), "[OK] Booked: 123456 is checked in.")
}

func (s *ConsoleTestSuite) TestNotBooked() {
	s.mockCheckIn.EXPECT().CheckIdentifier(s.ctx, gomock.Any()).
		Return(&checkin.CheckIdentifierOutput{
			Booking: models.Booking{Identifier: "999999", Status: models.BookingStatusNotBooked},
		}, nil)

	s.run("999999\n")

	s.Contains(s.out.String(), "[XX] Not booked")
}

func (s *ConsoleTestSuite) TestQuitRefusedWhileUnsaved() {
	gomock.InOrder(
		s.mockCheckIn.EXPECT().Status(s.ctx).Return(&checkin.StatusOutput{Saved: false}, nil),
		s.mockCheckIn.EXPECT().Status(s.ctx).Return(&checkin.StatusOutput{Saved: true}, nil),
	)

	s.run(":quit\n:quit\n123456\n")

	s.Contains(s.out.String(), "There are unsaved check-ins")
}

func (s *ConsoleTestSuite) TestQuitLeavingUnsaved() {
	s.run(":quit!\n123456\n")

	s.Contains(s.out.String(), "unsaved check-ins stay in the ledger")
}

func (s *ConsoleTestSuite) TestUnsavedAndDiscard() {
	s.mockCheckIn.EXPECT().ListUnsaved(s.ctx).Return(&checkin.ListUnsavedOutput{
		EventID:     "42",
		Identifiers: []string{"100001", "100002"},
	}, nil)
	s.mockCheckIn.EXPECT().DiscardUnsaved(s.ctx).Return(&checkin.DiscardUnsavedOutput{Discarded: 2}, nil)

	s.run(":unsaved\n:discard\n:discard yes\n")

	out := s.out.String()
	s.Contains(out, "  100002\n2 unsaved")
	s.Contains(out, "usage: :discard yes")
	s.Contains(out, "Discarded 2 unsaved check-ins")
}

func (s *ConsoleTestSuite) TestExportWritesFile() {
	s.mockCheckIn.EXPECT().Status(s.ctx).Return(&checkin.StatusOutput{
		Loaded: true,
		Event:  snapshot.Summary{ID: "42", Title: "Careers Fair"},
	}, nil)
	s.mockCheckIn.EXPECT().Export(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *checkin.ExportInput) (*checkin.ExportOutput, error) {
			_, err := io.WriteString(input.Writer, "Event attendees\n")
			return &checkin.ExportOutput{Count: 1}, err
		})

	s.run(":export\n")

	path := filepath.Join(s.dir, "Careers-Fair-20260501-143000.txt")
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("Event attendees\n", string(data))
	s.Contains(s.out.String(), "Exported 1 unsaved check-ins")
}

func (s *ConsoleTestSuite) TestToggles() {
	s.mockCheckIn.EXPECT().SetBookingListChecking(false)
	s.mockCheckIn.EXPECT().SetWaitingListChecking(true)

	s.run(":lists off\n:waiting on\n:lists maybe\n")

	s.Contains(s.out.String(), "usage: :lists on|off")
}

func (s *ConsoleTestSuite) TestOnlineReplay() {
	s.mockCheckIn.EXPECT().GoOnline(s.ctx).Return(&checkin.GoOnlineOutput{
		Changed: true,
		Replay:  &checkin.ReplayOutput{Attempted: 2, Saved: 2},
	}, nil)

	s.run(":online\n")

	s.Contains(s.out.String(), "All 2 unsaved check-ins saved.")
}

func (s *ConsoleTestSuite) TestOnlineWithoutConnectivity() {
	s.mockCheckIn.EXPECT().GoOnline(s.ctx).Return(nil, mode.ErrNoConnectivity)

	s.run(":online\n")

	s.Contains(s.out.String(), "No internet connection")
}

func (s *ConsoleTestSuite) TestWaitingListFile() {
	path := filepath.Join(s.dir, "waiting.txt")
	s.Require().NoError(os.WriteFile(path, []byte("111111\r\n222222\n\n"), 0o600))

	s.mockCheckIn.EXPECT().LoadWaitingList(s.ctx, &checkin.LoadWaitingListInput{Identifiers: []string{"111111", "222222"}}).Return(nil)

	s.run(":waitlist " + path + "\n")

	s.Contains(s.out.String(), "Loaded 2 waiting list numbers")
}

func (s *ConsoleTestSuite) TestOfflineEvent() {
	first := filepath.Join(s.dir, "first.txt")
	second := filepath.Join(s.dir, "second.txt")
	s.Require().NoError(os.WriteFile(first, []byte("111111\n"), 0o600))
	s.Require().NoError(os.WriteFile(second, []byte("222222\n333333\n"), 0o600))

	s.mockCheckIn.EXPECT().LoadOfflineEvent(s.ctx, &checkin.LoadOfflineEventInput{
		Title:        "Tour",
		BookingLists: [][]string{{"111111"}, {"222222", "333333"}},
	}).Return(&checkin.LoadOfflineEventOutput{
		Event: snapshot.Summary{Title: "Tour", SessionCount: 2, BookingListSize: 3},
	}, nil)

	s.run(":offline-event Tour " + first + " " + second + "\n")

	s.Contains(s.out.String(), "Entered Tour: 2 sessions, 3 bookings")
}

func (s *ConsoleTestSuite) TestFinishRefusedWhileUnsaved() {
	s.mockCheckIn.EXPECT().Finish(s.ctx, &checkin.FinishInput{MarkAbsent: true, Notify: true}).Return(checkin.ErrUnsaved)

	s.run(":finish absent notify\n")

	s.Contains(s.out.String(), ":save or :export them first")
}

func (s *ConsoleTestSuite) TestPrintNotice() {
	c, err := New(&Config{
		CheckInService:   s.mockCheckIn,
		MessagingService: s.messaging,
		Clock:            s.mockClock,
		In:               strings.NewReader(""),
		Out:              s.out,
	})
	s.Require().NoError(err)

	c.PrintNotice(s.ctx, &checkin.Notice{Identifier: "123456", Outcome: "event_full", Unsaved: true})

	s.Contains(s.out.String(), "[XX] Event is full, 123456 was added to the unsaved list.")
}

func (s *ConsoleTestSuite) TestUnknownCommand() {
	s.run(":dance\n")

	s.Contains(s.out.String(), "Unknown command :dance")
}
