package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/localcore/internal/core/domain"
	httpapi "github.com/aussiebroadwan/localcore/internal/core/http"
	"github.com/aussiebroadwan/localcore/internal/core/service"
	"github.com/aussiebroadwan/localcore/internal/core/store"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/memory"
	"github.com/aussiebroadwan/localcore/internal/core/store/drivers/sqlite"
	"github.com/aussiebroadwan/localcore/pkg/cryptox"
	"github.com/aussiebroadwan/localcore/pkg/jwtx"
	"github.com/aussiebroadwan/localcore/pkg/slogx"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	// tabCookieMaxAge keeps a browser on the same tab for a year.
	tabCookieMaxAge = 365 * 24 * 60 * 60
)

// Application owns the mock core and its HTTP surface.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	kv       store.KV
	registry *prometheus.Registry
	metrics  *service.Metrics
	issuer   *jwtx.Issuer

	// Services
	sessionService      *service.SessionService
	collections         map[domain.Kind]*service.Collection
	dispatcher          *service.Dispatcher
	storage             *service.ObjectStorage
	billService         *service.BillService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "localcore",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			File:    cfg.LogFile,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	issuer, err := jwtx.NewIssuer(cfg.TokenIssuer, cfg.TokenTTL)
	if err != nil {
		_ = app.kv.Close()
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.issuer = issuer

	app.initMetrics()
	app.initServices(context.Background())

	if err := app.initHTTP(); err != nil {
		_ = app.kv.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("localcore starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"storage", app.cfg.StorageDriver,
		"latency", app.cfg.MockLatency,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.kv.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down localcore...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.kv.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("localcore stopped")
	return nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initStore opens the configured KV driver and applies migrations.
func (app *Application) initStore() error {
	switch app.cfg.StorageDriver {
	case StorageMemory:
		app.kv = memory.NewStore()
		app.logger.Warn("using in-memory storage; data is lost on exit")
		return nil

	case StorageSQLite:
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}

		app.kv = db
		app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownStorage, app.cfg.StorageDriver)
}

func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = service.NewMetrics(app.registry)
}

// initServices builds the mock core over the shared store.
func (app *Application) initServices(ctx context.Context) {
	var verifier service.CodeVerifier = service.SentinelVerifier{Code: service.SentinelCode}
	if app.cfg.ConfirmCodeMode == ConfirmTOTP {
		verifier = service.TOTPVerifier{Secret: app.cfg.ConfirmSecret}
		app.logger.Info("confirmation codes checked against TOTP")
	}

	app.sessionService = service.NewSessionService(ctx, app.kv, service.SessionConfig{
		Verifier: verifier,
		Hasher:   cryptox.Hasher{Pepper: app.cfg.SecretPepper},
		Latency:  app.cfg.MockLatency,
	})

	app.collections = make(map[domain.Kind]*service.Collection, len(domain.Kinds))
	all := make([]*service.Collection, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		c := service.NewCollection(k, app.kv, app.cfg.Retention)
		app.collections[k] = c
		all = append(all, c)
	}

	app.dispatcher = &service.Dispatcher{
		Users:     app.collections[domain.KindUsers],
		Portfolio: app.collections[domain.KindPortfolio],
		Latency:   app.cfg.MockLatency,
		Metrics:   app.metrics,
	}

	app.storage = &service.ObjectStorage{
		Store:   app.kv,
		Latency: app.cfg.MockLatency,
	}

	app.billService = service.NewBillService(app.kv, app.metrics)

	app.housekeepingService = service.NewHousekeepingService(
		all,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.metrics,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	cookies, err := app.tabCookieStore()
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(
		app.issuer,
		BuildVersion,
		app.kv,
		app.registry,
		app.logger,
	)

	router.SessionService = app.sessionService
	router.Collections = app.collections
	router.Dispatcher = app.dispatcher
	router.Storage = app.storage
	router.BillService = app.billService
	router.TabCookies = cookies
	router.SharedTab = app.cfg.TabSharedSession
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}

func (app *Application) tabCookieStore() (*sessions.CookieStore, error) {
	key := []byte(app.cfg.SessionCookieKey)
	if len(key) == 0 {
		b, err := cryptox.RandomBytes(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate cookie key: %w", err)
		}
		key = b
		app.logger.Warn("SESSION_COOKIE_KEY not set; tab cookies will not survive a restart")
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   tabCookieMaxAge,
		HttpOnly: true,
		Secure:   app.cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	}
	return cs, nil
}
