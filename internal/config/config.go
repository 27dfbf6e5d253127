package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	ProviderURL     string
	APIKey          string
	ProviderTimeout time.Duration
	PriceCurrency   string
	CountriesFile   string
	ShutdownTimeout time.Duration
	LogLevel        string
	MetricsPath     string
	TraceExporter   string
}

const (
	defaultRunAddress      = ":8080"
	defaultProviderURL     = "https://smshub.org/stubs/handler_api.php"
	defaultProviderTimeout = 15 * time.Second
	defaultPriceCurrency   = "643"
	defaultCountriesFile   = "static/countries.json"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultMetricsPath     = "/metrics"
	defaultTraceExporter   = "none"
)

var loadEnvOnce sync.Once

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		ProviderURL:     getString(lookup, "SMSHUB_BASE_URL", defaultProviderURL),
		APIKey:          getString(lookup, "SMSHUB_API_KEY", ""),
		ProviderTimeout: getDuration(lookup, "PROVIDER_TIMEOUT", defaultProviderTimeout),
		PriceCurrency:   getString(lookup, "PRICE_CURRENCY", defaultPriceCurrency),
		CountriesFile:   getString(lookup, "COUNTRIES_FILE", defaultCountriesFile),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		MetricsPath:     getString(lookup, "METRICS_PATH", defaultMetricsPath),
		TraceExporter:   getString(lookup, "TRACE_EXPORTER", defaultTraceExporter),
	}

	fs := flag.NewFlagSet("smsrent", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		providerTimeoutStr = cfg.ProviderTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ProviderURL, "p", cfg.ProviderURL, "Activation provider handler URL")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Activation provider API key")
	fs.StringVar(&providerTimeoutStr, "provider-timeout", providerTimeoutStr, "Timeout of a single provider request")
	fs.StringVar(&cfg.PriceCurrency, "currency", cfg.PriceCurrency, "Currency code used for price lookups")
	fs.StringVar(&cfg.CountriesFile, "countries", cfg.CountriesFile, "JSON file with country code to name mapping")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.MetricsPath, "metrics-path", cfg.MetricsPath, "Prometheus metrics endpoint path")
	fs.StringVar(&cfg.TraceExporter, "trace-exporter", cfg.TraceExporter, "Trace exporter (none, stdout)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ProviderTimeout, err = time.ParseDuration(providerTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid provider timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if keyFile, ok := lookup("SMSHUB_API_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read api key file: %w", err)
		}
		cfg.APIKey = strings.TrimSpace(string(content))
	}

	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PriceCurrency == "" {
		cfg.PriceCurrency = defaultPriceCurrency
	}

	if !strings.HasPrefix(cfg.MetricsPath, "/") {
		cfg.MetricsPath = "/" + cfg.MetricsPath
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.TraceExporter = strings.ToLower(strings.TrimSpace(cfg.TraceExporter))
	switch cfg.TraceExporter {
	case "", "none":
		cfg.TraceExporter = defaultTraceExporter
	case "stdout":
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider API key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
