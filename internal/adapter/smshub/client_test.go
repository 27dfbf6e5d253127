package smshub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const testKey = "secret-key"

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL string, reg prometheus.Registerer) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, testKey, testLogger(), Options{Timeout: time.Second, Registerer: reg})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testKey, testLogger(), Options{}); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testKey, testLogger(), Options{}); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPClientCallSendsActionAndKey(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		got = r.URL.Query()
		_, _ = w.Write([]byte("ACCESS_NUMBER:1:2"))
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	client := newTestClient(t, srv.URL+"/stubs/handler_api.php", reg)

	body, err := client.Call(context.Background(), "getNumber", url.Values{"service": {"wa"}, "country": {"6"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "ACCESS_NUMBER:1:2" {
		t.Fatalf("unexpected body %q", body)
	}
	if got.Get("api_key") != testKey || got.Get("action") != "getNumber" {
		t.Fatalf("missing key or action: %v", got)
	}
	if got.Get("service") != "wa" || got.Get("country") != "6" {
		t.Fatalf("params not forwarded: %v", got)
	}
	if v := testutil.ToFloat64(client.requests.WithLabelValues("getNumber", "success")); v != 1 {
		t.Fatalf("expected one successful call, got %v", v)
	}
}

func TestHTTPClientCallDoesNotMutateParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	params := url.Values{"id": {"1"}}
	if _, err := client.Call(context.Background(), "getStatus", params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params) != 1 {
		t.Fatalf("params mutated: %v", params)
	}
}

func TestHTTPClientCallNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	_, err := client.Call(context.Background(), "getBalance", nil)
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if v := testutil.ToFloat64(client.requests.WithLabelValues("getBalance", "failure")); v != 1 {
		t.Fatalf("expected one failed call, got %v", v)
	}
}

func TestHTTPClientCallTimeoutHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testKey, testLogger(), Options{Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.Call(context.Background(), "getStatus", url.Values{"id": {"1"}})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if strings.Contains(err.Error(), testKey) {
		t.Fatalf("error leaks api key: %v", err)
	}
}

func TestHTTPClientCallCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Call(ctx, "getStatus", nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestNewHTTPClientSharesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := newTestClient(t, "http://example.com", reg)
	second := newTestClient(t, "http://example.com", reg)
	if first.requests != second.requests {
		t.Fatal("expected collectors to be reused on the same registry")
	}
}
