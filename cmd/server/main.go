// Package main is the entry point for the draft service. It wires all
// dependencies using samber/do v2, starts the HTTP server and the idle-draft
// janitor, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/draftdesk/internal/adapters/http"
	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/draftdesk/internal/adapters/clients/acl/formdata"
	"github.com/jsamuelsen11/draftdesk/internal/app/draft"
	"github.com/jsamuelsen11/draftdesk/internal/app/session"
	"github.com/jsamuelsen11/draftdesk/internal/platform/config"
	"github.com/jsamuelsen11/draftdesk/internal/platform/health"
	"github.com/jsamuelsen11/draftdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/draftdesk/internal/platform/i18n"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
	"github.com/jsamuelsen11/draftdesk/internal/platform/telemetry"
	"github.com/jsamuelsen11/draftdesk/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	draftShutdownTimeout  = 10 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	drafts := do.MustInvoke[*session.Service](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.AdminClient](injector))
	registry.Register(drafts)

	janitorCtx, stopJanitor := context.WithCancel(context.WithoutCancel(ctx))
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		drafts.Run(janitorCtx)
	}()

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
		serverErr <- nil
	}

	// HTTP first so no new drafts arrive, then the janitor, then the open
	// drafts and their in-flight submits, and telemetry last so their
	// final metrics are flushed.
	steps := []shutdownStep{
		{"http server", serverShutdownTimeout, func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			<-serverErr
			return err
		}},
		{"draft janitor", 0, func(context.Context) error {
			stopJanitor()
			<-janitorDone
			return nil
		}},
		{"drafts", draftShutdownTimeout, drafts.Shutdown},
		{"telemetry", otelShutdownTimeout, otel.Shutdown},
	}
	for _, step := range steps {
		step.run(logger)
	}

	logger.Info("shutdown complete")
	return runErr
}

// shutdownStep is one stage of graceful shutdown. A zero timeout runs the
// stage without a deadline.
type shutdownStep struct {
	name    string
	timeout time.Duration
	fn      func(context.Context) error
}

func (s shutdownStep) run(logger *slog.Logger) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.fn(ctx); err != nil {
		logger.Error("shutdown step failed", slog.String("step", s.name), slog.Any("error", err))
		return
	}
	logger.Debug("shutdown step done", slog.String("step", s.name), slog.Duration("took", time.Since(start)))
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "admin-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.AdminClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewAdminClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*i18n.Catalog, error) {
		catalog, err := i18n.New(&cfg.I18n)
		if err != nil {
			return nil, fmt.Errorf("loading message catalog: %w", err)
		}
		return catalog, nil
	})

	do.Provide(injector, func(i do.Injector) (*session.Service, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		deps := draft.Deps{
			Invoker:    do.MustInvoke[*acl.AdminClient](i),
			Encoder:    formdata.New(),
			Translator: do.MustInvoke[*i18n.Catalog](i),
		}
		return session.NewService(deps, &cfg.Drafts, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DraftService, error) {
		return do.MustInvoke[*session.Service](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DraftHandler, error) {
		svc := do.MustInvoke[ports.DraftService](i)
		return handlers.NewDraftHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		draftH := do.MustInvoke[*handlers.DraftHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		catalog := do.MustInvoke[*i18n.Catalog](i)

		return adapthttp.NewRouter(draftH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Locale(catalog),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
