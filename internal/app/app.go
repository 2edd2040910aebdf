// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/law-makers/pricealert/internal/check"
	"github.com/law-makers/pricealert/internal/config"
	"github.com/law-makers/pricealert/internal/engine/extract"
	"github.com/law-makers/pricealert/internal/engine/static"
	"github.com/law-makers/pricealert/internal/proxy"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once per invocation. Use Close() to release the HTTP client.
type Application struct {
	Config     *config.Config
	Logger     *zerolog.Logger
	Proxies    *proxy.Pool
	HTTPClient *http.Client
	Scraper    *static.Scraper
	Selector   *extract.Selector
	startTime  time.Time
	closeOnce  sync.Once
	closed     bool
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the proxy pool
//   - Initializes the HTTP client (no timeout unless configured)
//   - Creates the static scraper and compiles the price selector
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := SetupLogger(cfg, os.Stderr)
	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	selector, err := extract.NewSelector(cfg.Tag, cfg.Class)
	if err != nil {
		return nil, fmt.Errorf("invalid price selector: %w", err)
	}

	proxies := proxy.NewPool(cfg.Proxies, cfg.ProxyCooldown)
	httpClient := static.NewClient(cfg.HTTPTimeout)
	scraper := static.New(proxies, httpClient, cfg.HTTPTimeout, cfg.UserAgent)

	logger.Debug().
		Str("scraper", scraper.String()).
		Str("selector", selector.String()).
		Msg("Scraper initialized")

	app := &Application{
		Config:     cfg,
		Logger:     &logger,
		Proxies:    proxies,
		HTTPClient: httpClient,
		Scraper:    scraper,
		Selector:   selector,
		startTime:  time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// SetupLogger configures the global zerolog logger from cfg and returns it.
// Logs never go to stdout, which is reserved for check output.
func SetupLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := zerolog.ErrorLevel
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.JSONLog {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}

// Checker builds a price checker for url writing to out.
// An empty url uses the configured one.
func (a *Application) Checker(url string, headers map[string]string, printBody bool, out io.Writer) *check.Checker {
	if url == "" {
		url = a.Config.URL
	}
	return check.New(a.Scraper, a.Selector, check.Options{
		URL:       url,
		Headers:   headers,
		PrintBody: printBody,
		Out:       out,
	})
}

// Close releases idle HTTP connections. Calling it again is a no-op.
func (a *Application) Close(ctx context.Context) error {
	a.closeOnce.Do(func() {
		if a.HTTPClient != nil {
			a.HTTPClient.CloseIdleConnections()
		}
		a.closed = true
		a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	})
	return nil
}

// Closed reports whether Close has run
func (a *Application) Closed() bool {
	return a.closed
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
