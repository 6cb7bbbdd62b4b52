// Package main is the entry point for the chatbot service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/jsamuelsen11/chatbot-service/internal/adapters/http"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/chatbot-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/chatbot-service/internal/app"
	"github.com/jsamuelsen11/chatbot-service/internal/app/agent"
	"github.com/jsamuelsen11/chatbot-service/internal/app/session"
	"github.com/jsamuelsen11/chatbot-service/internal/app/tools"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/config"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/health"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

// Dependency names for the two outbound HTTP clients, which share a type.
const (
	llmHTTPClient       = "httpclient.openai"
	wikipediaHTTPClient = "httpclient.wikipedia"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := config.FromEnvironment()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	store := do.MustInvoke[*sqlite.Store](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*acl.LLMClient](injector))
	registry.Register(do.MustInvoke[*acl.WikipediaClient](injector))

	sessions := do.MustInvoke[*session.Store](injector)
	go sessions.RunJanitor(ctx, cfg.Session.SweepInterval)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = store.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then stop background work.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr
	stop()

	if err := store.Close(); err != nil {
		logger.Error("closing user store", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
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
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
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

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(ctx, cfg.Database.Path, logger)
	})

	// Outbound clients.
	do.ProvideNamed(injector, llmHTTPClient, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.LLM.Client, "openai", metrics, logger,
			httpclient.WithHeader("Authorization", "Bearer "+cfg.LLM.APIKey),
		), nil
	})

	do.ProvideNamed(injector, wikipediaHTTPClient, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Wikipedia.Client, "wikipedia", metrics, logger,
			httpclient.WithHeader("User-Agent", cfg.Wikipedia.UserAgent),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.LLMClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, llmHTTPClient)
		return acl.NewLLMClient(client, cfg.LLM.Model, cfg.LLM.Temperature, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.WikipediaClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, wikipediaHTTPClient)
		return acl.NewWikipediaClient(client, logger), nil
	})

	// Agent and its tools.
	do.Provide(injector, func(_ do.Injector) (*tools.Clock, error) {
		return tools.NewClock(cfg.Agent.TimezoneName, cfg.Agent.TimezoneOffsetHours, nil), nil
	})

	do.Provide(injector, func(i do.Injector) (*agent.Executor, error) {
		llm := do.MustInvoke[*acl.LLMClient](i)
		wiki := do.MustInvoke[*acl.WikipediaClient](i)
		clock := do.MustInvoke[*tools.Clock](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		toolset := []ports.Tool{
			tools.NewWikipedia(wiki, cfg.Wikipedia.Sentences, logger),
			clock,
		}
		return agent.NewExecutor(llm, toolset, cfg.Agent.MaxIterations, metrics, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (*app.AuthService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAuthService(store, cfg.Auth.BcryptCost, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*session.Store, error) {
		return session.NewStore(cfg.Session.Lifetime, logger), nil
	})

	// Chat memory follows the session set: it is kept only for live sessions
	// and dropped when the store expires one.
	do.Provide(injector, func(i do.Injector) (*app.ChatService, error) {
		executor := do.MustInvoke[*agent.Executor](i)
		llm := do.MustInvoke[*acl.LLMClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		sessions := do.MustInvoke[*session.Store](i)

		chat := app.NewChatService(executor, llm, cfg.Agent.MemoryWindow, metrics, logger,
			app.WithLiveSessions(sessions.Alive),
		)
		sessions.OnExpire(chat.Forget)
		return chat, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP.
	cookie := middleware.SessionCookie{
		Name:     cfg.Session.CookieName,
		Secure:   cfg.Session.Secure,
		Lifetime: cfg.Session.Lifetime,
	}

	do.Provide(injector, func(_ do.Injector) (*handlers.Pages, error) {
		return handlers.NewPages()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(
			do.MustInvoke[*app.AuthService](i),
			do.MustInvoke[*app.ChatService](i),
			do.MustInvoke[*session.Store](i),
			cookie,
			do.MustInvoke[*handlers.Pages](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ChatHandler, error) {
		chat := do.MustInvoke[*app.ChatService](i)
		clock := do.MustInvoke[*tools.Clock](i)
		return handlers.NewChatHandler(chat, clock), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		authH := do.MustInvoke[*handlers.AuthHandler](i)
		chatH := do.MustInvoke[*handlers.ChatHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		sessions := do.MustInvoke[*session.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var debugH *handlers.DebugHandler
		if cfg.Debug.ViewDB {
			logger.Warn("debug user listing enabled at /view_db")
			debugH = handlers.NewDebugHandler(do.MustInvoke[*app.AuthService](i))
		}

		return adapthttp.NewRouter(authH, chatH, debugH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.CORS(cfg.Server.CORS.AllowedOrigins, cfg.Server.CORS.MaxAge),
			middleware.OpenTelemetry(metrics),
			middleware.Session(sessions, cookie),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
