package network

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDNSCheckerDefaults(t *testing.T) {
	checker := NewDNSChecker("", 0)

	assert.Equal(t, DefaultHost, checker.host)
	assert.Equal(t, 3*time.Second, checker.timeout)
}

func TestReachableFailsForInvalidHost(t *testing.T) {
	checker := NewDNSChecker("host.invalid", 500*time.Millisecond)

	assert.False(t, checker.Reachable(context.Background()))
}
