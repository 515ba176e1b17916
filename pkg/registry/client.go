package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pindex-dev/pindex/pkg/errors"
	"github.com/pindex-dev/pindex/pkg/observability"
)

const httpTimeout = 10 * time.Second

// NewHTTPClient creates an HTTP client with a standard timeout for registry
// requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Client provides shared HTTP functionality for registry resolvers.
//
// Every call fetches fresh data; there is no caching and no retrying.
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a Client using the given HTTP client and user agent.
// A nil httpClient falls back to [NewHTTPClient]. Pass an empty userAgent
// to send requests without one.
func NewClient(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{http: httpClient, userAgent: userAgent}
}

// GetJSON performs an HTTP GET and decodes the JSON response into v.
//
// The body is read in full before decoding so that undecodable payloads can
// be reported verbatim: a decode failure returns
// [errors.ErrCodeMalformedResponse] with the raw body in the message.
// Transport failures and non-200 statuses return
// [errors.ErrCodeRegistryUnavailable].
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedResponse, err, "response was not well-formed JSON:\n%s", body)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, errors.Wrap(errors.ErrCodeRegistryUnavailable, err, "fetch %s", url)
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read response from %s", url)
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 500:
		return errors.New(errors.ErrCodeRegistryUnavailable, "%s: server error (status %d)", url, code)
	default:
		return errors.New(errors.ErrCodeRegistryUnavailable, "%s: unexpected status %d", url, code)
	}
}
