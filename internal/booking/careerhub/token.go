package careerhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
)

// accessToken is an integrations API token for one scope
type accessToken struct {
	scope     string
	value     string
	tokenType string
	expiry    time.Time
}

func (t *accessToken) validAt(now time.Time) bool {
	return t != nil && now.Before(t.expiry)
}

type fetchTokenFunc func(ctx context.Context, scope string) (*accessToken, error)

// tokenCache holds one token per scope for the whole process.
// Refreshes happen under the lock so concurrent callers never fetch twice.
type tokenCache struct {
	mu     sync.Mutex
	clock  clock.Clock
	fetch  fetchTokenFunc
	tokens map[string]*accessToken
}

func newTokenCache(c clock.Clock, fetch fetchTokenFunc) *tokenCache {
	return &tokenCache{
		clock:  c,
		fetch:  fetch,
		tokens: make(map[string]*accessToken),
	}
}

func (tc *tokenCache) get(ctx context.Context, scope string) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if t := tc.tokens[scope]; t.validAt(tc.clock.Now()) {
		return t.value, nil
	}

	t, err := tc.fetch(ctx, scope)
	if err != nil {
		return "", err
	}
	tc.tokens[scope] = t

	return t.value, nil
}

// fetchToken requests a client credentials token. The token is treated as
// expired one minute before the lifetime the server grants.
func (c *Client) fetchToken(ctx context.Context, scope string) (*accessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiID)
	form.Set("client_secret", c.apiSecret)
	form.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var reply struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if _, err := c.send("token", req, &reply); err != nil {
		return nil, err
	}

	if reply.AccessToken == "" {
		return nil, fmt.Errorf("token: empty access token: %w", booking.ErrUnexpectedResponse)
	}

	lifetime := time.Duration(reply.ExpiresIn/60-1) * time.Minute

	return &accessToken{
		scope:     scope,
		value:     reply.AccessToken,
		tokenType: reply.TokenType,
		expiry:    c.clock.Now().Add(lifetime),
	}, nil
}
