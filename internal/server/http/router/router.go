package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/smsrent/internal/config"
	"github.com/polkiloo/smsrent/internal/metrics"
	"github.com/polkiloo/smsrent/internal/server/http/handlers"
	"github.com/polkiloo/smsrent/internal/server/http/middleware"
)

// Params groups router dependencies.
type Params struct {
	fx.In

	Facade   handlers.ActivationFacade
	Health   handlers.HealthChecker
	Registry *prometheus.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.HTTPMetrics(p.Registry))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(p.Facade)
	priceHandler := handlers.NewPriceHandler(p.Facade)
	balanceHandler := handlers.NewBalanceHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Health)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET(p.Config.MetricsPath, gin.WrapH(metrics.Handler(p.Registry)))

	api := engine.Group("/api")
	api.GET("/services", catalogHandler.Services)
	api.GET("/countries", catalogHandler.Countries)
	api.POST("/prices", priceHandler.List)
	api.GET("/balance", balanceHandler.Summary)

	api.GET("/orders", orderHandler.Active)
	api.GET("/history", orderHandler.History)
	api.POST("/create", orderHandler.Create)
	api.GET("/status/:id", orderHandler.Status)
	api.POST("/finish/:id", orderHandler.Finish)
	api.POST("/cancel/:id", orderHandler.Cancel)
	api.POST("/request_again/:id", orderHandler.RequestAgain)
	api.POST("/remove_order/:id", orderHandler.Remove)
	api.POST("/timeout/:id", orderHandler.Timeout)

	return engine
}
