package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/0x6flab/namegenerator"
	"github.com/absmach/fibonacci"
	"github.com/absmach/fibonacci/calculator"
	"github.com/absmach/fibonacci/calculator/middleware"
	"github.com/absmach/fibonacci/pkg/format"
	"github.com/absmach/fibonacci/shell"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"
)

const svcName = "fibonacci"

type config struct {
	LogLevel     string `env:"FIB_LOG_LEVEL"     envDefault:"info"`
	InstanceID   string `env:"FIB_INSTANCE_ID"`
	InstanceName string `env:"FIB_INSTANCE_NAME"`
	Format       string `env:"FIB_FORMAT"`
	Trace        bool   `env:"FIB_TRACE"         envDefault:"false"`
	ConfigPath   string `env:"FIB_CONFIG"        envDefault:"config.toml"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err.Error())
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}
	if cfg.InstanceName == "" {
		cfg.InstanceName = namegenerator.NewGenerator().Generate()
	}

	conf, err := fibonacci.LoadConfig(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load TOML configuration: %s", err.Error())
	}
	if cfg.Format != "" {
		conf.Shell.Format = cfg.Format
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to parse log level: %s", err.Error())
	}
	logHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(logHandler).With(
		slog.String("instance_id", cfg.InstanceID),
		slog.String("instance_name", cfg.InstanceName),
	)
	slog.SetDefault(logger)

	var tp trace.TracerProvider
	switch {
	case !cfg.Trace:
		tp = noop.NewTracerProvider()
	default:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			logger.Error("failed to initialize trace exporter", slog.String("error", err.Error()))

			return
		}
		sdktp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		defer func() {
			if err := sdktp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer provider", slog.Any("error", err))
			}
		}()
		tp = sdktp
	}
	tracer := tp.Tracer(svcName)

	formatter, err := format.NewRegistry().Get(conf.Shell.Format)
	if err != nil {
		logger.Error("failed to select output format", slog.String("error", err.Error()))

		return
	}

	svc := calculator.NewService()
	svc = middleware.Logging(logger, svc)
	svc = middleware.Tracing(tracer, svc)

	sh := shell.New(svc, formatter, shell.Config{
		DemoTerms:   conf.Shell.DemoTerms,
		DemoIndices: conf.Shell.DemoIndices,
	}, logger)

	g.Go(func() error {
		defer cancel()

		return sh.Run(ctx, os.Stdin, os.Stdout)
	})

	g.Go(func() error {
		return stopSignalHandler(ctx, logger)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s exited with error: %s", svcName, err))
	}
}

func stopSignalHandler(ctx context.Context, logger *slog.Logger) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		logger.Info(fmt.Sprintf("%s shutdown by signal: %s", svcName, sig))
		// A blocking stdin read cannot be interrupted, so exit directly.
		os.Exit(130)
	case <-ctx.Done():
	}

	return nil
}
