package careerhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
)

const (
	eventsScope      = "Integrations.Events"
	authCookieName   = ".CHAUTH"
	defaultIDPattern = `^[0-9]+$`
)

// Config holds the settings of a CareerHub client
type Config struct {
	// Host is the CareerHub base URL, for example https://careers.example.edu/
	Host string

	// APIID and APISecret are the integration client credentials
	APIID     string
	APISecret string

	// IDPattern validates raw identifiers, digits only when empty
	IDPattern string

	// RequestsPerSecond caps outbound requests, unlimited when zero
	RequestsPerSecond float64

	// HTTPClient is used for every request, a client with a cookie jar is created when nil
	HTTPClient *http.Client

	Clock clock.Clock
}

// Client talks to CareerHub through its integrations API and its admin pages
type Client struct {
	host      string
	apiID     string
	apiSecret string
	idPattern *regexp.Regexp
	hc        *http.Client
	limiter   *rate.Limiter
	clock     clock.Clock
	tokens    *tokenCache
}

var _ booking.Provider = (*Client)(nil)

// New creates a CareerHub client. A client without a host or credentials is
// valid; its remote operations return booking.ErrNotConfigured.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	pattern := cfg.IDPattern
	if pattern == "" {
		pattern = defaultIDPattern
	}

	idPattern, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDPattern, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	hc := &http.Client{Timeout: 15 * time.Second}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		hc = &copied
	}
	if hc.Jar == nil {
		hc.Jar = jar
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	host := cfg.Host
	if host != "" && !strings.HasSuffix(host, "/") {
		host += "/"
	}

	c := &Client{
		host:      host,
		apiID:     cfg.APIID,
		apiSecret: cfg.APISecret,
		idPattern: idPattern,
		hc:        hc,
		limiter:   rate.NewLimiter(limit, 1),
		clock:     cfg.Clock,
	}
	c.tokens = newTokenCache(cfg.Clock, c.fetchToken)

	return c, nil
}

// IsValidIdentifier reports whether identifier matches the configured pattern
func (c *Client) IsValidIdentifier(identifier string) bool {
	return c.idPattern.MatchString(identifier)
}

// AdminEventURL returns the admin page of an event
func (c *Client) AdminEventURL(eventKey string) string {
	return c.adminURL() + "event.aspx?id=" + eventKey
}

func (c *Client) apiConfigured() bool {
	return c.host != "" && c.apiID != "" && c.apiSecret != ""
}

func (c *Client) adminURL() string {
	return c.host + "admin/"
}

func (c *Client) eventAPIURL() string {
	return c.host + "api/integrations/v1/events/"
}

func (c *Client) bookingURL(identifier, eventKey, sessionKey string) string {
	return fmt.Sprintf("%sbookings/%s/%s?sessionId=%s", c.eventAPIURL(), identifier, eventKey, sessionKey)
}

// newAPIRequest builds an integrations API request carrying a bearer token
func (c *Client) newAPIRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	if !c.apiConfigured() {
		return nil, booking.ErrNotConfigured
	}

	token, err := c.tokens.get(ctx, eventsScope)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// newAdminRequest builds an admin page request, authenticated by the session cookie
func (c *Client) newAdminRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	if c.host == "" {
		return nil, booking.ErrNotConfigured
	}

	return http.NewRequestWithContext(ctx, method, url, body)
}

// send performs req and decodes a JSON reply into out when out is not nil.
// Non 2xx replies return the status code with an error wrapping
// booking.ErrUnexpectedResponse, or booking.ErrUnauthorized for 401 and 403.
func (c *Client) send(op string, req *http.Request, out any) (int, error) {
	resp, err := c.do(op, req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%s: json.Decode: %w: %v", op, booking.ErrUnexpectedResponse, err)
	}

	return resp.StatusCode, nil
}

// do waits for the rate limiter and performs req, recording its duration
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("%s: rate limit: %w", op, err)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	monitoring.ObserveProviderRequest(op, code, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s: http.Do: %w", op, err)
	}

	return resp, nil
}

func checkStatus(op string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, booking.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, booking.ErrUnexpectedResponse)
	}

	return nil
}
