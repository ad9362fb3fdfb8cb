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

	httpapi "github.com/homeledger/inventory/internal/inventory/http"
	"github.com/homeledger/inventory/internal/inventory/service"
	"github.com/homeledger/inventory/internal/inventory/store/drivers/sqlite"
	"github.com/homeledger/inventory/pkg/cryptox"
	"github.com/homeledger/inventory/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the inventory service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db *sqlite.Store

	sessionService      *service.SessionService
	accessService       *service.AccessService
	userService         *service.UserService
	homeService         *service.HomeService
	inviteService       *service.InviteService
	roomService         *service.RoomService
	itemService         *service.ItemService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inventory",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.generatedSecret {
		app.logger.Warn("no session secret configured, generated one for this process; sessions will not survive a restart")
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("inventory service starting", "port", app.cfg.Port, "version", BuildVersion)

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
			_ = app.db.Close()
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

func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inventory service")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("inventory service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() error {
	sessions, err := service.NewSessionService(service.SessionOptions{
		Secret:           []byte(app.cfg.SessionSecret),
		Issuer:           app.cfg.Issuer,
		TTL:              app.cfg.SessionTTL,
		RefreshThreshold: app.cfg.RefreshThreshold,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise sessions: %w", err)
	}
	app.sessionService = sessions

	app.accessService = &service.AccessService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.homeService = &service.HomeService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:      app.db,
		Access:     app.accessService,
		DefaultTTL: app.cfg.InviteTTL,
	}
	app.roomService = &service.RoomService{Store: app.db, Access: app.accessService}
	app.itemService = &service.ItemService{Store: app.db, Access: app.accessService}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.SecureCookies = app.cfg.SecureCookies()
	router.SessionService = app.sessionService
	router.AccessService = app.accessService
	router.UserService = app.userService
	router.HomeService = app.homeService
	router.InviteService = app.inviteService
	router.RoomService = app.roomService
	router.ItemService = app.itemService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
