package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/pmguardian/guardian/internal/rbac/http"
	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/internal/rbac/store/drivers/sqlite"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
	"github.com/pmguardian/guardian/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the guardian service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	resourcesService   *service.ResourcesService
	permissionsService *service.PermissionsService
	policiesService    *service.PoliciesService
	rolesService       *service.RolesService
	userRolesService   *service.UserRolesService
	authorizer         *service.Authorizer

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "guardian",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("guardian starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"enforce_access", app.cfg.EnforceAccess,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down guardian...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("guardian stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	permAgg := service.NewPermissionAggregator(app.db, app.cfg.CacheSize)
	roleAgg := service.NewRoleAggregator(app.db, permAgg, app.cfg.CacheSize)

	app.resourcesService = &service.ResourcesService{Store: app.db}
	app.permissionsService = &service.PermissionsService{Store: app.db}
	app.policiesService = &service.PoliciesService{Store: app.db, Aggregator: permAgg}
	app.rolesService = &service.RolesService{Store: app.db, Aggregator: roleAgg}
	app.userRolesService = &service.UserRolesService{Store: app.db}

	app.authorizer = &service.Authorizer{
		Resources: &service.ResourceResolver{Store: app.db},
		Identity:  &service.StoreIdentityResolver{Store: app.db},
		Roles:     roleAgg,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.ResourcesService = app.resourcesService
	router.PermissionsService = app.permissionsService
	router.PoliciesService = app.policiesService
	router.RolesService = app.rolesService
	router.UserRolesService = app.userRolesService
	router.Authorizer = app.authorizer
	router.EnforceAccess = app.cfg.EnforceAccess
	router.RuntimeConfig = rbacsdk.ConfigResponse{
		Env:                 app.cfg.Env,
		Port:                app.cfg.Port,
		LogLevel:            app.cfg.LogLevel,
		LogFormat:           app.cfg.LogFormat,
		DatabaseFile:        app.cfg.DatabaseFile,
		ShutdownGracePeriod: app.cfg.ShutdownGracePeriod.String(),
		EnforceAccess:       app.cfg.EnforceAccess,
		CacheSize:           app.cfg.CacheSize,
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
