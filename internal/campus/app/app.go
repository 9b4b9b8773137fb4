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

	"github.com/uniendoculturas/campus/internal/campus/domain"
	httpapi "github.com/uniendoculturas/campus/internal/campus/http"
	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/internal/campus/store/drivers/sqlite"
	"github.com/uniendoculturas/campus/pkg/cryptox"
	"github.com/uniendoculturas/campus/pkg/idx"
	"github.com/uniendoculturas/campus/pkg/jwtx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the campus API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.Signer

	// Services
	authService         *service.AuthService
	verificationService *service.VerificationService
	referralService     *service.ReferralService
	courseService       *service.CourseService
	catalogService      *service.CatalogService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("CAMPUS_JWT_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.signer = &jwtx.Signer{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.Issuer,
		TTL:    cfg.AccessTokenTTL,
	}

	app.initServices()

	if err := app.bootstrap(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("campus api starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down campus api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("campus api stopped")
	return nil
}

// databaseDSN builds the sqlite connection string. modernc takes pragmas as
// _pragma=name(value) query parameters; the mattn-style _busy_timeout form is
// silently ignored by it.
func databaseDSN(file string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", file)
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(databaseDSN(app.cfg.DatabaseFile))
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

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.verificationService = &service.VerificationService{
		Store:    app.db,
		Notifier: &service.LogNotifier{Logger: app.logger},
		CodeTTL:  app.cfg.VerificationTTL,
	}

	app.authService = &service.AuthService{
		Store:        app.db,
		Verification: app.verificationService,
		Signer:       app.signer,
	}

	app.referralService = &service.ReferralService{Store: app.db}
	app.courseService = &service.CourseService{Store: app.db}
	app.catalogService = &service.CatalogService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// bootstrap performs one-time boot work: catalog seeding and promotion of the
// configured admin account. Both are idempotent across restarts.
func (app *Application) bootstrap(ctx context.Context) error {
	if app.cfg.SeedCatalog {
		if err := app.catalogService.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	if app.cfg.AdminEmail != "" {
		err := app.db.Users().PromoteUserToAdmin(ctx, app.cfg.AdminEmail)
		switch {
		case errors.Is(err, store.ErrNotFound) && app.cfg.AdminPassword != "":
			if err := app.createAdminAccount(ctx); err != nil {
				return fmt.Errorf("failed to create admin account: %w", err)
			}
			app.logger.Info("admin account created", "email", app.cfg.AdminEmail)
		case errors.Is(err, store.ErrNotFound):
			// Account not registered yet; promotion happens on a later boot.
			app.logger.Warn("admin account not found, skipping promotion",
				"email", app.cfg.AdminEmail)
		case err != nil:
			return fmt.Errorf("failed to promote admin account: %w", err)
		default:
			app.logger.Info("admin account promoted", "email", app.cfg.AdminEmail)
		}
	}

	return nil
}

// createAdminAccount provisions the configured admin directly, already
// verified, so a fresh deployment has a working admin without going through
// the email verification flow.
func (app *Application) createAdminAccount(ctx context.Context) error {
	hash, err := cryptox.HashPassword(app.cfg.AdminPassword)
	if err != nil {
		return err
	}

	id := idx.New().String()
	now := time.Now()
	return app.db.Users().CreateUser(ctx, domain.User{
		ID:           id,
		Name:         "Administrator",
		Email:        app.cfg.AdminEmail,
		IDNumber:     id, // placeholder, the column is unique and required
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.Verification = app.verificationService
	router.ReferralService = app.referralService
	router.CourseService = app.courseService
	router.CatalogService = app.catalogService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
