package mode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	networkMocks "github.com/KirkDiggler/eventswipe/internal/common/network/mocks"
)

type ControllerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockChecker *networkMocks.MockChecker
	controller  *Controller
	ctx         context.Context
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockChecker = networkMocks.NewMockChecker(s.ctrl)
	s.ctx = context.Background()

	controller, err := New(&Config{
		Checker:       s.mockChecker,
		RemoteEnabled: true,
	})
	s.Require().NoError(err)
	s.controller = controller
}

func (s *ControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) TestStartsOfflineAndSaved() {
	s.Equal(StateOffline, s.controller.State())
	s.True(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestGoOnlineRequiresConnectivity() {
	s.mockChecker.EXPECT().Reachable(s.ctx).Return(false)

	changed, err := s.controller.GoOnline(s.ctx)

	s.ErrorIs(err, ErrNoConnectivity)
	s.False(changed)
	s.False(s.controller.IsOnline())
}

func (s *ControllerTestSuite) TestGoOnline() {
	s.mockChecker.EXPECT().Reachable(s.ctx).Return(true)

	changed, err := s.controller.GoOnline(s.ctx)

	s.Require().NoError(err)
	s.True(changed)
	s.True(s.controller.IsOnline())

	// already online, no second connectivity check
	changed, err = s.controller.GoOnline(s.ctx)
	s.Require().NoError(err)
	s.False(changed)
}

func (s *ControllerTestSuite) TestRemoteDisabledNeverGoesOnline() {
	controller, err := New(&Config{Checker: s.mockChecker})
	s.Require().NoError(err)

	_, err = controller.GoOnline(s.ctx)

	s.ErrorIs(err, ErrRemoteDisabled)
	s.False(controller.IsOnline())
}

func (s *ControllerTestSuite) TestGoOffline() {
	s.mockChecker.EXPECT().Reachable(s.ctx).Return(true)
	_, err := s.controller.GoOnline(s.ctx)
	s.Require().NoError(err)

	s.controller.GoOffline()

	s.Equal(StateOffline, s.controller.State())
}

func (s *ControllerTestSuite) TestSavedFlag() {
	s.controller.MarkUnsaved()
	s.False(s.controller.IsSaved())

	s.controller.MarkUnsaved()
	s.False(s.controller.IsSaved())

	s.controller.MarkSaved()
	s.True(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestRecordUnsavedClearsFlag() {
	pushed := false

	err := s.controller.RecordUnsaved(func() error {
		pushed = true
		return nil
	})

	s.NoError(err)
	s.True(pushed)
	s.False(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestRecordUnsavedReturnsPushError() {
	err := s.controller.RecordUnsaved(func() error {
		return errors.New("redis: connection refused")
	})

	s.EqualError(err, "redis: connection refused")
	s.False(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestSettleSetsFlagFromCheck() {
	s.controller.MarkUnsaved()

	s.Require().NoError(s.controller.Settle(func() (bool, error) { return true, nil }))
	s.True(s.controller.IsSaved())

	s.Require().NoError(s.controller.Settle(func() (bool, error) { return false, nil }))
	s.False(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestSettleKeepsFlagOnError() {
	s.controller.MarkUnsaved()

	err := s.controller.Settle(func() (bool, error) { return true, errors.New("drain failed") })

	s.EqualError(err, "drain failed")
	s.False(s.controller.IsSaved())
}

func (s *ControllerTestSuite) TestRecordUnsavedWaitsForSettle() {
	pushed := make(chan struct{})

	err := s.controller.Settle(func() (bool, error) {
		go func() {
			_ = s.controller.RecordUnsaved(func() error { return nil })
			close(pushed)
		}()

		select {
		case <-pushed:
			s.Fail("append ran while the ledger was settling")
		case <-time.After(50 * time.Millisecond):
		}

		return true, nil
	})
	s.Require().NoError(err)

	select {
	case <-pushed:
	case <-time.After(time.Second):
		s.Fail("append never ran")
	}
	s.False(s.controller.IsSaved())
}

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(nil); err != ErrNilConfig {
		t.Errorf("err = %v, want %v", err, ErrNilConfig)
	}
	if _, err := New(&Config{}); err != ErrNilChecker {
		t.Errorf("err = %v, want %v", err, ErrNilChecker)
	}
}
