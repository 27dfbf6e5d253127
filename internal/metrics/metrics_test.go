package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterReusesExistingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := prometheus.CounterOpts{Namespace: Namespace, Name: "test_total", Help: "test counter"}

	first := Register(reg, prometheus.NewCounterVec(opts, []string{"kind"}))
	second := Register(reg, prometheus.NewCounterVec(opts, []string{"kind"}))
	if first != second {
		t.Fatal("expected second registration to return the existing collector")
	}
}

func TestRegisterPanicsOnConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg, prometheus.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "conflict", Help: "a"}))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for conflicting collector")
		}
	}()
	Register(reg, prometheus.NewGauge(prometheus.GaugeOpts{Namespace: Namespace, Name: "conflict", Help: "b"}))
}

func TestHandlerServesRegistry(t *testing.T) {
	reg := NewRegistry()
	counter := Register(reg, prometheus.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "served_total", Help: "served"}))
	counter.Inc()

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "smsrent_served_total 1") {
		t.Fatalf("expected counter in output, got %s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Fatalf("expected go collector metrics in output")
	}
}
