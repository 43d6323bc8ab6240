package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-freshbooks/core"
	"github.com/goliatone/go-freshbooks/transport"
)

func TestREST_Do(t *testing.T) {
	var seen *http.Request
	var seenBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		seenBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	adapter := transport.NewREST(server.Client())
	adapter.BearerSource = func() string { return "tok1" }

	res, err := adapter.Do(context.Background(), core.TransportRequest{
		Method: http.MethodPost,
		URL:    server.URL + "/invoices/invoices/ACM123?per_page=15",
		Query:  map[string]string{"page": "2"},
		Body:   []byte(`{"invoice":{"customerid":777}}`),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}
	var payload map[string]any
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if res.Headers["Content-Type"] != "application/json" {
		t.Fatalf("unexpected response headers: %v", res.Headers)
	}
	if res.Metadata["request_id"] == "" {
		t.Fatalf("expected request id metadata, got %v", res.Metadata)
	}

	if seen.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", seen.Method)
	}
	if seen.URL.Path != "/invoices/invoices/ACM123" {
		t.Fatalf("unexpected path: %s", seen.URL.Path)
	}
	query := seen.URL.Query()
	if query.Get("page") != "2" || query.Get("per_page") != "15" {
		t.Fatalf("expected merged query, got %v", query)
	}
	if got := seen.Header.Get("Authorization"); got != "Bearer tok1" {
		t.Fatalf("unexpected authorization header: %q", got)
	}
	if got := seen.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("unexpected accept header: %q", got)
	}
	if got := seen.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if seen.Header.Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
	if !strings.Contains(string(seenBody), `"customerid":777`) {
		t.Fatalf("unexpected request body: %s", seenBody)
	}
}

func TestREST_DoReadsBearerPerRequest(t *testing.T) {
	var authorizations []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizations = append(authorizations, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	bearer := "tok_old"
	adapter := transport.NewREST(server.Client())
	adapter.BearerSource = func() string { return bearer }

	if _, err := adapter.Do(context.Background(), core.TransportRequest{URL: server.URL}); err != nil {
		t.Fatalf("first request: %v", err)
	}
	bearer = "tok_new"
	if _, err := adapter.Do(context.Background(), core.TransportRequest{URL: server.URL}); err != nil {
		t.Fatalf("second request: %v", err)
	}

	if len(authorizations) != 2 {
		t.Fatalf("expected two requests, got %d", len(authorizations))
	}
	if authorizations[0] != "Bearer tok_old" || authorizations[1] != "Bearer tok_new" {
		t.Fatalf("expected refreshed bearer on second request, got %v", authorizations)
	}
}

func TestREST_DoRequestHeadersWinOverBearer(t *testing.T) {
	var seenAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuthorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	adapter := transport.NewREST(server.Client())
	adapter.BearerSource = func() string { return "tok1" }

	_, err := adapter.Do(context.Background(), core.TransportRequest{
		URL:     server.URL,
		Headers: map[string]string{"Authorization": "Basic abc"},
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if seenAuthorization != "Basic abc" {
		t.Fatalf("expected per-request authorization to win, got %q", seenAuthorization)
	}
}

func TestREST_DoRequiresURL(t *testing.T) {
	adapter := transport.NewREST(nil)
	if _, err := adapter.Do(context.Background(), core.TransportRequest{}); !core.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestREST_DoConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	adapter := transport.NewREST(nil)
	_, err := adapter.Do(context.Background(), core.TransportRequest{URL: serverURL})
	if !core.IsAPI(err) {
		t.Fatalf("expected api error, got %v", err)
	}
	if got := core.StatusCode(err); got != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", got)
	}
}

func TestREST_DoEnforcesResponseBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	adapter := transport.NewREST(server.Client())
	adapter.MaxResponseBodyBytes = 16

	_, err := adapter.Do(context.Background(), core.TransportRequest{URL: server.URL})
	if !core.IsAPI(err) {
		t.Fatalf("expected api error for oversized body, got %v", err)
	}
	if !strings.Contains(err.Error(), "exceeds limit") {
		t.Fatalf("expected limit message, got %v", err)
	}
}

func TestREST_DoPerRequestLimitOverridesAdapterLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	adapter := transport.NewREST(server.Client())
	adapter.MaxResponseBodyBytes = 16

	res, err := adapter.Do(context.Background(), core.TransportRequest{
		URL:                  server.URL,
		MaxResponseBodyBytes: 128,
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(res.Body) != 64 {
		t.Fatalf("expected full body, got %d bytes", len(res.Body))
	}
}
