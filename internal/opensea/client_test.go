package opensea

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/seaview/explorer/internal/config"
)

func TestAPIErrorFromJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code":404,"msg":"not found"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Get(context.Background(), "assets", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 404 {
		t.Errorf("expected code 404, got %d", apiErr.Code)
	}
	if apiErr.Message != "not found" {
		t.Errorf("expected message %q, got %q", "not found", apiErr.Message)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
}

func TestAPIErrorFromNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Get(context.Background(), "assets", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 0 {
		t.Errorf("expected code 0 for non-JSON body, got %d", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, http.StatusText(http.StatusBadGateway)) {
		t.Errorf("expected message to carry the reason phrase, got %q", apiErr.Message)
	}
}

func TestInvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	resp, err := client.Get(context.Background(), "assets", nil)
	if resp != nil {
		t.Errorf("expected no result for non-JSON 200 body, got %v", resp)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Message, "invalid response") {
		t.Errorf("expected invalid response message, got %q", apiErr.Message)
	}
}

func TestValidResponsePassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"assets":[{"token_id":"42","name":"Forty Two"}],"extra":true}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	resp, err := client.Get(context.Background(), "assets", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp["extra"] != true {
		t.Errorf("expected extra field to survive untouched, got %v", resp["extra"])
	}
	assets, ok := resp["assets"].([]any)
	if !ok || len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %v", resp["assets"])
	}
	asset, _ := assets[0].(map[string]any)
	if asset["token_id"] != "42" || asset["name"] != "Forty Two" {
		t.Errorf("expected fields unchanged, got %v", asset)
	}
}

func TestDefaultHeaders(t *testing.T) {
	var gotAccept, gotAgent, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		gotKey = r.Header.Get(apiKeyHeader)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithCredentials("secret-key", ""))
	if _, err := client.Get(context.Background(), "assets", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", gotAccept)
	}
	if gotAgent != userAgent {
		t.Errorf("expected fixed user agent, got %q", gotAgent)
	}
	if gotKey != "secret-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
}

func TestNoAPIKeyHeaderWithoutKey(t *testing.T) {
	var hasKey bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasKey = r.Header.Get(apiKeyHeader) != ""
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	if _, err := client.Get(context.Background(), "assets", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasKey {
		t.Error("expected no API key header when no key is configured")
	}
}

func TestGlobalOverridesMergedAndSettingsHoisted(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	overrides := url.Values{}
	overrides.Set("format", "json")
	overrides.Add(settingsKey, "timeout=5")

	client := New(WithBaseURL(server.URL), WithParams(overrides))
	params := url.Values{}
	params.Set("limit", "3")
	if _, err := client.Get(context.Background(), "assets", params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery.Get("format") != "json" {
		t.Errorf("expected override merged into query, got %v", gotQuery)
	}
	if gotQuery.Get("limit") != "3" {
		t.Errorf("expected call params kept, got %v", gotQuery)
	}
	if _, ok := gotQuery[settingsKey]; ok {
		t.Errorf("expected %s hoisted out of the query, got %v", settingsKey, gotQuery)
	}
}

func TestDataFoldedIntoQueryForGet(t *testing.T) {
	var gotRawQuery string
	var gotBodyLen int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		gotBodyLen = r.ContentLength
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	data := []Pair{{Key: "side", Value: "buy"}, {Key: "size", Value: "2"}}
	if _, err := client.Do(context.Background(), http.MethodGet, "orders", nil, data, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotRawQuery, "side=buy&size=2") {
		t.Errorf("expected data folded into ampersand-joined query, got %q", gotRawQuery)
	}
	if gotBodyLen > 0 {
		t.Errorf("expected empty body after folding, got %d bytes", gotBodyLen)
	}
}

func TestPostKeepsFormBody(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	data := []Pair{{Key: "side", Value: "buy"}}
	if _, err := client.Post(context.Background(), "orders", nil, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotForm.Get("side") != "buy" {
		t.Errorf("expected form body for POST, got %v", gotForm)
	}
}

func TestTransportFailure(t *testing.T) {
	// Closed server: the connection is refused before any response exists.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Get(context.Background(), "assets", nil)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message == "" {
		t.Error("expected a transport error message")
	}
}

func TestNetworkSelection(t *testing.T) {
	prod := New()
	if prod.baseURL != ProductionBaseURL {
		t.Errorf("expected production default, got %q", prod.baseURL)
	}

	testnet := New(WithNetwork(config.NetworkTestnet))
	if testnet.baseURL != TestnetBaseURL {
		t.Errorf("expected testnet base URL, got %q", testnet.baseURL)
	}
}
