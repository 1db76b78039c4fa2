// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// funcsrv serves an exported descriptor directory over the metadata API,
// for hosts and tooling that read descriptors without loading app code.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"golang.org/x/sync/errgroup"

	"github.com/funchost/sdk/function/server"
	"github.com/funchost/sdk/function/store"
)

var (
	logger   *slog.Logger
	exporter *prometheus.Exporter

	configFile = flag.String("config", "", "path to funcsrv.yaml")
)

func main() {
	flag.Parse()
	var err error

	logger = slog.Default()

	cfg, err := loadConfig(afero.NewOsFs(), *configFile)
	if err != nil {
		logger.Error("unable to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := server.NewContext(context.Background(), logger)
	ctx, cancel := context.WithCancel(ctx)
	grp, ctx := errgroup.WithContext(ctx)

	defer cancel()

	exporter, err = prometheus.New()
	if err != nil {
		logger.Error("unable to create a prometheus exporter", "error", err)
		os.Exit(1)
	}
	// Create a new MeterProvider with the Prometheus exporter
	provider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("funchost"),
		)),
	)
	otel.SetMeterProvider(provider)

	src := store.NewDir(afero.NewOsFs(), cfg.DescriptorDir)
	httpServer := server.RunServer(ctx, grp, src, cfg.LocalhostOnly)

	handleIntercepts(ctx, grp, httpServer, cfg.GracePeriodSeconds)

	if errGrp := grp.Wait(); errGrp != nil {
		logger.Error("application unexpectedly shut down", "error", errGrp)
		os.Exit(1)
	}

	logger.Info("application gracefully shut down")
}

func interceptSignals(ctx context.Context) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	select {
	case <-ctx.Done():
	case sig := <-sigc:
		logger.Info("intercepted signal", "signal", sig)
	}
}

func handleIntercepts(ctx context.Context, grp *errgroup.Group, httpServer *echo.Echo, gracePeriodSeconds int) {
	grp.Go(func() error {
		interceptSignals(ctx)

		go func() {
			interceptSignals(ctx)
			logger.Error("forcibly shutting down on second signal")
			os.Exit(1)
		}()

		shutdownCtx, shutCancel := context.WithTimeout(ctx, time.Duration(gracePeriodSeconds)*time.Second)
		defer shutCancel()

		if httpServer != nil {
			return shutdown(shutdownCtx, httpServer)
		}
		return nil
	})
}

func shutdown(ctx context.Context, httpServer *echo.Echo) (errs error) {
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if err := errors.WithStack(httpServer.Shutdown(ctx)); err != nil {
			errs = errors.Join(errs, err)
		}
	}()

	wg.Wait()

	return
}
