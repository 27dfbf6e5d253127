package smshub

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/polkiloo/smsrent/internal/config"
)

// Module exposes the provider gateway to the fx graph.
var Module = fx.Provide(
	newClient,
	newProvider,
)

type clientParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Registerer     prometheus.Registerer
	TracerProvider trace.TracerProvider
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ProviderURL, p.Config.APIKey, p.Logger, Options{
		Timeout:        p.Config.ProviderTimeout,
		TracerProvider: p.TracerProvider,
		Registerer:     p.Registerer,
	})
}

func newProvider(client Client, cfg *config.Config) *Provider {
	return NewProvider(client, cfg.PriceCurrency)
}
