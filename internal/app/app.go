package app

import (
	"webhook-guard/internal/common/logging"
	"webhook-guard/internal/config"
	"webhook-guard/internal/handlers"
	"webhook-guard/internal/metrics"
	"webhook-guard/internal/middleware"
)

// App holds all the application dependencies
type App struct {
	Config   *config.Config
	Guard    *middleware.SignatureMiddleware
	Metrics  *metrics.Metrics
	Handlers *handlers.Handlers
	Logger   logging.Logger
}

// New creates a new application instance with all dependencies.
//
// The signature middleware derives its verification key here, so a missing
// channel secret fails the whole startup instead of surfacing per request.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "app"}),
	}

	if cfg.MetricsEnabled {
		app.Metrics = metrics.NewMetrics()
	}

	guardCfg := middleware.SignatureConfig{
		ChannelSecret: cfg.ChannelSecret,
		MaxBodyBytes:  cfg.MaxBodyBytes,
	}
	if app.Metrics != nil {
		guardCfg.Metrics = app.Metrics
	}

	guard, err := middleware.NewSignatureMiddleware(guardCfg)
	if err != nil {
		return nil, err
	}
	app.Guard = guard

	app.Handlers = handlers.New()

	return app, nil
}
