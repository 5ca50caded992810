package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/soundforge-hq/soundforge-console/pkg/httpclient"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 15 * time.Second
)

// Client is a typed client for the dashboard REST API. The transport is
// injected so tests and callers can swap it; there is no package-level
// singleton. Every operation issues exactly one outbound request and
// propagates transport failures unchanged: no retry, cache, or dedupe.
type Client struct {
	baseURL string
	http    httpclient.Client
	headers map[string]string
}

// NewClient builds a dashboard API client for the given base URL.
// When client is nil a resty-backed transport with a default timeout is used.
func NewClient(baseURL string, client httpclient.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("dashboard client base url is empty")
	}
	if client == nil {
		client = httpclient.NewRestyClient(defaultTimeout)
	}
	return &Client{
		baseURL: baseURL,
		http:    client,
		headers: map[string]string{"Content-Type": "application/json"},
	}, nil
}

// endpoint joins the base URL, the /api prefix, and the given path parts.
func (c *Client) endpoint(parts ...string) string {
	return c.baseURL + apiPrefix + "/" + strings.Join(parts, "/")
}

// getJSON performs a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, url string, query map[string]string, out any) error {
	resp, err := c.http.Get(ctx, url, query, c.headers)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	return decodeResponse(url, resp, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {
	resp, err := c.http.Post(ctx, url, body, c.headers)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	return decodeResponse(url, resp, out)
}

// decodeResponse folds non-2xx statuses and decode failures into the single
// transport error kind the client exposes.
func decodeResponse(url string, resp httpclient.Response, out any) error {
	body := resp.Body()
	if resp.IsError() {
		return fmt.Errorf("%s returned status %d body: %s", url, resp.StatusCode(), responseSnippet(body))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
