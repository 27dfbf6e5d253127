package smshub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/polkiloo/smsrent/internal/metrics"
)

const tracerName = "github.com/polkiloo/smsrent/internal/adapter/smshub"

// Client performs a single call against the provider handler endpoint.
type Client interface {
	Call(ctx context.Context, action string, params url.Values) (string, error)
}

// HTTPClient implements Client via the provider's GET handler API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// Options tune HTTPClient construction.
type Options struct {
	Timeout        time.Duration
	TracerProvider trace.TracerProvider
	Registerer     prometheus.Registerer
}

// NewHTTPClient creates provider client bound to an absolute handler URL.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger, opts Options) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("provider url must be absolute")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}

	c := &HTTPClient{
		baseURL:    parsed,
		apiKey:     apiKey,
		logger:     logger,
		httpClient: &http.Client{Timeout: opts.Timeout},
		requests: metrics.Register(opts.Registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "provider_requests_total",
			Help:      "Provider API calls by action and outcome.",
		}, []string{"action", "outcome"})),
		latency: metrics.Register(opts.Registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Provider API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"})),
	}
	if opts.TracerProvider != nil {
		c.tracer = opts.TracerProvider.Tracer(tracerName)
	} else {
		c.tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	return c, nil
}

// Call issues GET <base>?api_key=...&action=<action>&<params> and returns the
// response body. Transport errors and non-2xx statuses are returned as errors.
func (c *HTTPClient) Call(ctx context.Context, action string, params url.Values) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provider."+action,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("provider.action", action)),
	)
	defer span.End()

	start := time.Now()
	body, err := c.do(ctx, action, params)
	c.latency.WithLabelValues(action).Observe(time.Since(start).Seconds())

	if err != nil {
		c.requests.WithLabelValues(action, "failure").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("provider request failed", slog.String("action", action), slog.String("error", err.Error()))
		return "", err
	}
	c.requests.WithLabelValues(action, "success").Inc()
	return body, nil
}

func (c *HTTPClient) do(ctx context.Context, action string, params url.Values) (string, error) {
	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("api_key", c.apiKey)
	query.Set("action", action)

	endpoint := *c.baseURL
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL including the api key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return "", fmt.Errorf("provider %s: %w", action, uerr.Err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("provider error body", slog.String("action", action), slog.String("body", string(body)))
		return "", fmt.Errorf("provider error: %s", resp.Status)
	}

	return string(body), nil
}
