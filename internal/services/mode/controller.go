package mode

import (
	"context"
	"sync"

	"github.com/KirkDiggler/eventswipe/internal/common/network"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
)

// State is the mode a session runs in
type State string

const (
	StateOnline  State = "online"
	StateOffline State = "offline"
)

// Config holds the starting state of a controller
type Config struct {
	// Checker confirms connectivity before going online
	Checker network.Checker

	// RemoteEnabled is false when the booking system is not configured.
	// The controller then never leaves offline mode.
	RemoteEnabled bool
}

// Controller tracks online or offline mode and whether the session's work is saved.
// It starts offline and saved.
type Controller struct {
	mu            sync.Mutex
	checker       network.Checker
	remoteEnabled bool
	state         State
	saved         bool

	// ledgerMu orders ledger appends against operations that settle the saved flag
	ledgerMu sync.RWMutex
}

func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Checker == nil {
		return nil, ErrNilChecker
	}

	monitoring.SetOnline(false)

	return &Controller{
		checker:       cfg.Checker,
		remoteEnabled: cfg.RemoteEnabled,
		state:         StateOffline,
		saved:         true,
	}, nil
}

// State returns the current mode
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsOnline reports whether submissions go to the booking system
func (c *Controller) IsOnline() bool {
	return c.State() == StateOnline
}

// RemoteEnabled reports whether the booking system may be called at all
func (c *Controller) RemoteEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remoteEnabled
}

// GoOnline switches to online mode once connectivity is confirmed. It
// reports whether the mode changed; going online while online is a no-op.
func (c *Controller) GoOnline(ctx context.Context) (bool, error) {
	if !c.RemoteEnabled() {
		return false, ErrRemoteDisabled
	}

	if c.IsOnline() {
		return false, nil
	}

	if !c.checker.Reachable(ctx) {
		return false, ErrNoConnectivity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.state != StateOnline
	c.state = StateOnline
	monitoring.SetOnline(true)

	return changed, nil
}

// GoOffline switches to offline mode. Only the operator calls it; failed
// submissions never demote the session.
func (c *Controller) GoOffline() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateOffline
	monitoring.SetOnline(false)
}

// IsSaved reports whether every check-in of the session is confirmed or exported
func (c *Controller) IsSaved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved
}

// MarkUnsaved records that an identifier entered the unsaved ledger
func (c *Controller) MarkUnsaved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saved = false
}

// MarkSaved records an export or a fully successful replay
func (c *Controller) MarkSaved() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saved = true
}

// RecordUnsaved clears the saved flag and runs push, which appends to the
// unsaved ledger. Appends run concurrently with each other but never while
// Settle is running, so a settle cannot miss an append it raced with.
func (c *Controller) RecordUnsaved(push func() error) error {
	c.ledgerMu.RLock()
	defer c.ledgerMu.RUnlock()

	c.MarkUnsaved()

	return push()
}

// Settle runs check with no append in progress and sets the saved flag to
// what it reports. The flag is left alone when check fails.
func (c *Controller) Settle(check func() (bool, error)) error {
	c.ledgerMu.Lock()
	defer c.ledgerMu.Unlock()

	saved, err := check()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.saved = saved
	c.mu.Unlock()

	return nil
}
