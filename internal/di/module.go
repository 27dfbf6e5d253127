package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/smsrent/internal/adapter/smshub"
	"github.com/polkiloo/smsrent/internal/app"
	"github.com/polkiloo/smsrent/internal/catalog"
	"github.com/polkiloo/smsrent/internal/config"
	"github.com/polkiloo/smsrent/internal/logger"
	"github.com/polkiloo/smsrent/internal/metrics"
	"github.com/polkiloo/smsrent/internal/server/http/handlers"
	"github.com/polkiloo/smsrent/internal/server/http/router"
	"github.com/polkiloo/smsrent/internal/storage/postgres"
	"github.com/polkiloo/smsrent/internal/tracing"
	"github.com/polkiloo/smsrent/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		tracing.Module,
		catalog.Module,
		postgres.Module,
		smshub.Module,
		usecase.Module,
		fx.Provide(
			func(p *smshub.Provider) usecase.Gateway { return p },
			func(c *catalog.Catalog) usecase.Catalog { return c },
			func(f *app.ActivationFacade) handlers.ActivationFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
