// Package opensea provides a thin client for the OpenSea v1 REST API.
package opensea

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/seaview/explorer/internal/config"
	"github.com/seaview/explorer/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// ProductionBaseURL is the mainnet API endpoint.
	ProductionBaseURL = "https://api.opensea.io/api/v1"
	// TestnetBaseURL is the testnets API endpoint.
	TestnetBaseURL = "https://testnets-api.opensea.io/api/v1"

	// apiKeyHeader carries the API key when one is configured.
	apiKeyHeader = "X-MBX-APIKEY"

	// settingsKey is the reserved parameter key whose entries are hoisted
	// into per-request transport settings instead of being sent on the wire.
	settingsKey = "requests_params"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/75.0.3770.100 Safari/537.36"

	defaultTimeout = 10 * time.Second
)

// Pair is a single body-style key/value request parameter.
type Pair struct {
	Key   string
	Value string
}

// Client is an immutable OpenSea API client. It holds the shared transport
// and default header configuration; individual requests carry no state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	overrides  url.Values
}

// Option configures a Client during construction.
type Option func(*Client)

// WithCredentials sets the API key and secret. The key is sent as a header
// on every request; the secret is held for parity with the API docs but no
// v1 endpoint consumes it.
func WithCredentials(key, secret string) Option {
	return func(c *Client) {
		c.apiKey = key
		c.apiSecret = secret
	}
}

// WithNetwork selects the production or testnet base URL.
func WithNetwork(n config.Network) Option {
	return func(c *Client) {
		if n == config.NetworkTestnet {
			c.baseURL = TestnetBaseURL
		} else {
			c.baseURL = ProductionBaseURL
		}
	}
}

// WithBaseURL overrides the base URL entirely (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithParams sets query parameters merged into every request. Entries under
// the reserved "requests_params" key are treated as transport settings
// (currently only "timeout", in seconds) and never reach the wire.
func WithParams(params url.Values) Option {
	return func(c *Client) {
		c.overrides = params
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New creates a Client. Without options it targets production with no
// credentials and a default request timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    ProductionBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request against the given API path.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (model.Object, error) {
	return c.Do(ctx, http.MethodGet, path, params, nil, false)
}

// Post issues a POST request with the given body pairs.
func (c *Client) Post(ctx context.Context, path string, params url.Values, data []Pair) (model.Object, error) {
	return c.Do(ctx, http.MethodPost, path, params, data, false)
}

// Put issues a PUT request with the given body pairs.
func (c *Client) Put(ctx context.Context, path string, params url.Values, data []Pair) (model.Object, error) {
	return c.Do(ctx, http.MethodPut, path, params, data, false)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params url.Values) (model.Object, error) {
	return c.Do(ctx, http.MethodDelete, path, params, nil, false)
}

// Do issues a request and classifies the response. Body pairs are folded
// into the query string for GET requests or when forceParams is set, so the
// same call shape works whether parameters arrive as a body-like sequence
// or as a flat mapping.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, data []Pair, forceParams bool) (model.Object, error) {
	merged := url.Values{}
	for key, vals := range params {
		merged[key] = vals
	}
	for key, vals := range c.overrides {
		merged[key] = vals
	}

	timeout := hoistSettings(merged)

	var folded string
	if len(data) > 0 && (method == http.MethodGet || forceParams) {
		parts := make([]string, len(data))
		for i, p := range data {
			parts[i] = p.Key + "=" + p.Value
		}
		folded = strings.Join(parts, "&")
		data = nil
	}

	rawURL := c.baseURL + "/" + path
	query := merged.Encode()
	if folded != "" {
		if query != "" {
			query += "&" + folded
		} else {
			query = folded
		}
	}
	if query != "" {
		rawURL += "?" + query
	}

	var body io.Reader
	if len(data) > 0 {
		form := url.Values{}
		for _, p := range data {
			form.Add(p.Key, p.Value)
		}
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	httpClient := c.httpClient
	if timeout > 0 {
		clone := *c.httpClient
		clone.Timeout = timeout
		httpClient = &clone
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}

	return classify(resp.StatusCode, raw)
}

// hoistSettings removes the reserved settings entries from the merged
// parameter set and returns the per-request timeout, if any.
func hoistSettings(merged url.Values) time.Duration {
	entries, ok := merged[settingsKey]
	if !ok {
		return 0
	}
	delete(merged, settingsKey)

	var timeout time.Duration
	for _, entry := range entries {
		name, value, found := strings.Cut(entry, "=")
		if !found || name != "timeout" {
			continue
		}
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return timeout
}

// classify turns a response into a parsed mapping or an APIError.
func classify(status int, body []byte) (model.Object, error) {
	if status < 200 || status >= 300 {
		return nil, newAPIError(status, body)
	}

	var parsed model.Object
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &APIError{
			Status:  status,
			Message: fmt.Sprintf("invalid response: %s", body),
		}
	}
	return parsed, nil
}

// newAPIError builds an APIError from an error response body. The body's
// status_code/msg fields win when it parses as JSON; otherwise the code
// stays 0 and the message falls back to the HTTP reason phrase.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Code int64  `json:"status_code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &APIError{
			Status:  status,
			Message: fmt.Sprintf("invalid JSON error message: %s", http.StatusText(status)),
		}
	}
	return &APIError{
		Status:  status,
		Code:    payload.Code,
		Message: payload.Msg,
	}
}
