package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/booking"
	"github.com/metinatakli/seat-ledger/internal/domain"
	appvalidator "github.com/metinatakli/seat-ledger/internal/validator"
	"github.com/metinatakli/seat-ledger/internal/vcs"
	"github.com/riandyrn/otelchi"
)

const serviceName = "seat-ledger-api"

var _ api.ServerInterface = (*Application)(nil)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	registry  domain.BookingRegistry
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	Seed             bool
}

func NewApp(cfg Config, logger *slog.Logger, registry domain.BookingRegistry) *Application {
	return &Application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		registry:  registry,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint (host:port)")
	flag.BoolVar(&cfg.Seed, "seed", false, "Register demo theaters, movies and users at startup")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	app := &Application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	// built after telemetry so the registry logs and counts through it
	app.registry = booking.NewSystem(app.logger)

	if cfg.Seed {
		err = app.seed(context.Background())
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return app.run()
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.identifyUser)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireIdentity},
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
