package careerhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/KirkDiggler/eventswipe/internal/booking"
)

const waitingListRows = "#ctl00_ctl00_mainContent_mainContent_grid > tbody > tr"

// Authenticate signs in to the admin pages. The session lives in the
// client's cookie jar and is reused while the auth cookie is present.
func (c *Client) Authenticate(ctx context.Context, input *booking.AuthenticateInput) (*booking.AuthenticateOutput, error) {
	if c.host == "" {
		return nil, booking.ErrNotConfigured
	}

	if c.loggedIn() {
		return &booking.AuthenticateOutput{Success: true}, nil
	}

	if input == nil || input.Username == "" {
		return &booking.AuthenticateOutput{Success: false}, nil
	}

	token, err := c.verificationToken(ctx)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("__RequestVerificationToken", token)
	form.Set("username", input.Username)
	form.Set("password", input.Password)
	form.Add("isPersistent", "true")
	form.Add("isPersistent", "false")

	req, err := c.newAdminRequest(ctx, http.MethodPost, c.loginURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.AddCookie(&http.Cookie{
		Name:  "CareerHubCookieCheck",
		Value: c.clock.Now().Format("02/01/2006 03:04:05"),
	})

	if _, err := c.send("login", req, nil); err != nil {
		return nil, err
	}

	return &booking.AuthenticateOutput{Success: c.loggedIn()}, nil
}

func (c *Client) loginURL() string {
	return c.adminURL() + "login/"
}

func (c *Client) loggedIn() bool {
	u, err := url.Parse(c.adminURL())
	if err != nil || c.hc.Jar == nil {
		return false
	}

	for _, cookie := range c.hc.Jar.Cookies(u) {
		if cookie.Name == authCookieName {
			return true
		}
	}

	return false
}

// verificationToken scrapes the anti forgery token from the login form
func (c *Client) verificationToken(ctx context.Context) (string, error) {
	doc, err := c.fetchDocument(ctx, "login_page", c.loginURL())
	if err != nil {
		return "", err
	}

	token, ok := doc.Find("input[name=__RequestVerificationToken]").First().Attr("value")
	if !ok {
		return "", fmt.Errorf("login page: no verification token: %w", booking.ErrUnexpectedResponse)
	}

	return token, nil
}

// FetchWaitingList scrapes the admin waiting list page. The third column of
// each row holds the student number.
func (c *Client) FetchWaitingList(ctx context.Context, input *booking.FetchWaitingListInput) (*booking.FetchWaitingListOutput, error) {
	doc, err := c.fetchDocument(ctx, "fetch_waiting_list", c.adminURL()+"eventwaitinglist.aspx?id="+url.QueryEscape(input.EventKey))
	if err != nil {
		return nil, err
	}

	output := &booking.FetchWaitingListOutput{}
	doc.Find(waitingListRows).Each(func(_ int, row *goquery.Selection) {
		identifier := strings.TrimSpace(row.Find("td:nth-child(3)").Text())
		if identifier != "" {
			output.Identifiers = append(output.Identifiers, identifier)
		}
	})

	return output, nil
}

func (c *Client) fetchDocument(ctx context.Context, op, pageURL string) (*goquery.Document, error) {
	req, err := c.newAdminRequest(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", op, err)
	}

	return doc, nil
}
