// Package reddit is a minimal read-only client for the Reddit data API,
// authenticated as an OAuth "script" app via the client credentials grant.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	perrors "personacard/src/errors"
)

const (
	defaultBaseURL = "https://oauth.reddit.com"
	tokenURL       = "https://www.reddit.com/api/v1/access_token"

	// Reddit caps listing pages at 100 items.
	maxPageSize = 100
)

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different API host, for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the OAuth-wrapped HTTP client, for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.client = h }
}

// NewClient builds a client that fetches app-only tokens with the given
// script app credentials. Token refresh is handled by the oauth2 transport.
func NewClient(clientID, clientSecret, userAgent string, opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		creds := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
		c.client = creds.Client(context.Background())
		c.client.Timeout = 30 * time.Second
	}
	return c
}

// Submissions returns up to limit of the user's newest posts that carry
// any text, newest first as returned by the API.
func (c *Client) Submissions(ctx context.Context, username string, limit int) ([]ActivityItem, error) {
	return c.listing(ctx, username, "submitted", KindSubmission, limit)
}

// Comments returns up to limit of the user's newest comments with a body,
// newest first as returned by the API.
func (c *Client) Comments(ctx context.Context, username string, limit int) ([]ActivityItem, error) {
	return c.listing(ctx, username, "comments", KindComment, limit)
}

// listing walks the paginated feed following the "after" fullname cursor
// until limit items are collected or the feed ends.
func (c *Client) listing(ctx context.Context, username, feed string, kind ActivityKind, limit int) ([]ActivityItem, error) {
	items := make([]ActivityItem, 0, limit)
	after := ""

	for len(items) < limit {
		page, err := c.fetchPage(ctx, username, feed, after, pageSize(limit-len(items)))
		if err != nil {
			return nil, err
		}

		for _, child := range page.Data.Children {
			if child.Data.empty(kind) {
				continue
			}
			items = append(items, child.Data.item(kind))
			if len(items) == limit {
				break
			}
		}

		after = page.Data.After
		if after == "" || len(page.Data.Children) == 0 {
			break
		}
	}

	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, username, feed, after string, size int) (*listing, error) {
	endpoint := fmt.Sprintf("%s/user/%s/%s", c.baseURL, url.PathEscape(username), feed)

	query := url.Values{}
	query.Set("limit", fmt.Sprint(size))
	query.Set("sort", "new")
	query.Set("raw_json", "1")
	if after != "" {
		query.Set("after", after)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &perrors.APIError{Service: "reddit", Op: "user " + feed, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusForbidden:
		// Forbidden covers suspended and private accounts.
		return nil, fmt.Errorf("user %q: %w", username, perrors.ErrUserNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, perrors.NewAPIError("reddit", "user "+feed, resp.StatusCode, string(body))
	}

	var page listing
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode %s listing: %w", feed, err)
	}
	return &page, nil
}

func pageSize(remaining int) int {
	if remaining > maxPageSize {
		return maxPageSize
	}
	return remaining
}
