package network

import (
	"context"
	"net"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_checker.go github.com/KirkDiggler/eventswipe/internal/common/network Checker

// Checker reports whether the wider internet can be reached
type Checker interface {
	Reachable(ctx context.Context) bool
}

// DefaultHost is resolved when no probe host is configured
const DefaultHost = "www.google.com"

// DNSChecker considers the network reachable when a well-known host resolves
type DNSChecker struct {
	host     string
	timeout  time.Duration
	resolver *net.Resolver
}

// NewDNSChecker creates a checker that resolves host, giving up after timeout
func NewDNSChecker(host string, timeout time.Duration) *DNSChecker {
	if host == "" {
		host = DefaultHost
	}

	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &DNSChecker{
		host:     host,
		timeout:  timeout,
		resolver: net.DefaultResolver,
	}
}

// Reachable resolves the probe host within the checker timeout
func (c *DNSChecker) Reachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	addrs, err := c.resolver.LookupHost(ctx, c.host)
	return err == nil && len(addrs) > 0
}
