// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

// Define a context key for the logger
type contextKey struct{}

var loggerKey = contextKey{}

// fromContext extracts slog.Logger from context, fallback to default if not found
func fromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// NewContext adds slog.Logger to context for use by RunServer.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// echoLogger provides simple request logging for Echo framework middleware.
// This is local to the metadata server and doesn't pollute the core logging.
type echoLogger struct {
	*slog.Logger
}

func newEchoLogger(l *slog.Logger) *echoLogger {
	return &echoLogger{l}
}

// logRequest logs HTTP request information.
func (l *echoLogger) logRequest(method, uri string, status int, err error) {
	if err != nil {
		l.Error("request failed", "error", err, "method", method, "uri", uri, "status", status)
	} else {
		l.Info("request completed", "method", method, "uri", uri, "status", status)
	}
}

// RunServer starts the metadata server for the given descriptor source on
// the errgroup. The port comes from FUNCHOST_APP_PORT (default 8085).
func RunServer(ctx context.Context, grp *errgroup.Group, src Source, localhostOnly bool) *echo.Echo {
	httpServer := newHTTPServer(ctx, src)

	port := os.Getenv("FUNCHOST_APP_PORT")
	if port == "" {
		port = "8085"
	}
	addr := ""
	if localhostOnly {
		addr = "127.0.0.1"
	}
	bindAddr := addr + ":" + port

	grp.Go(func() error {
		logger := fromContext(ctx)
		logger.Info("starting metadata server", "address", bindAddr)
		err := httpServer.Start(bindAddr)
		// We need to check ErrServerClosed because otherwise it will cause the whole group to be canceled
		// on the first shutdown call.
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server unexpected failure")
		}
		return nil
	})

	return httpServer
}

func newHTTPServer(ctx context.Context, src Source) *echo.Echo {
	rootRouter := echo.New()
	rootRouter.HideBanner = true
	useGlobalMiddlewares(ctx, rootRouter)

	rootRouter.Server.ReadTimeout = time.Second * 30
	rootRouter.Server.WriteTimeout = time.Second * 60
	rootRouter.Server.IdleTimeout = time.Second * 60
	rootRouter.Server.ReadHeaderTimeout = time.Second * 5

	echoSetup(rootRouter, src)

	return rootRouter
}

// NewTestHTTPRouter returns a bare router without middleware or timeouts,
// for use in tests.
func NewTestHTTPRouter(src Source) *echo.Echo {
	rootRouter := echo.New()
	echoSetup(rootRouter, src)
	return rootRouter
}

func useGlobalMiddlewares(ctx context.Context, router *echo.Echo) {
	logger := fromContext(ctx)
	echoLogger := newEchoLogger(logger)

	router.Use(
		middleware.RequestID(),
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogURI:     true,
			LogStatus:  true,
			LogMethod:  true,
			LogLatency: true,
			LogError:   true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				echoLogger.logRequest(v.Method, v.URI, v.Status, v.Error)
				return nil
			},
		}),
		middleware.Timeout(), // 30*time.Second
	)
}
