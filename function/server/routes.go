// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// Package server exposes a function app's descriptors over HTTP so the host
// runtime and tooling can read them without loading the app's code.
package server

import (
	"net/http"
	"os"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/funchost/sdk/function/api"
)

// Source provides the descriptors to serve. Both a live *function.App and a
// store.Dir over an exported directory satisfy it.
type Source interface {
	Descriptors() ([]api.FunctionDescriptor, error)
}

// metadataHandler serves one descriptor source. The instance ID identifies
// this server process to clients across restarts.
type metadataHandler struct {
	src        Source
	instanceID uuid.UUID
}

type infoResponse struct {
	InstanceID    uuid.UUID
	FunctionCount int
}

func echoSetup(rootRouter *echo.Echo, src Source) {
	h := &metadataHandler{
		src:        src,
		instanceID: uuid.New(),
	}
	appRouter := rootRouter.Group("/app")
	appRouter.GET("/ok", basicOk())
	appRouter.GET("/info", h.info)
	appRouter.POST("/shutdown", shutdownHandler())
	appRouter.GET("/functions", h.listFunctions)
	appRouter.GET("/functions/:name", h.getFunction)
}

func basicOk() echo.HandlerFunc {
	return func(c echo.Context) error {
		// Sanity check for client routing
		return c.JSON(http.StatusOK, "OK")
	}
}

func shutdownHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		process, _ := os.FindProcess(os.Getpid())
		process.Signal(syscall.SIGINT)
		return c.JSON(http.StatusOK, "OK")
	}
}

func (h *metadataHandler) info(c echo.Context) error {
	descriptors, err := h.src.Descriptors()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, infoResponse{
		InstanceID:    h.instanceID,
		FunctionCount: len(descriptors),
	})
}

func (h *metadataHandler) listFunctions(c echo.Context) error {
	descriptors, err := h.src.Descriptors()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, descriptors) //nolint:wrapcheck // basic return
}

func (h *metadataHandler) getFunction(c echo.Context) error {
	name := c.Param("name")
	descriptors, err := h.src.Descriptors()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for _, d := range descriptors {
		if d.FunctionName == name {
			return c.JSONBlob(http.StatusOK, d.Descriptor) //nolint:wrapcheck // basic return
		}
	}
	log.Infof("descriptor for function %s not found", name)
	return echo.NewHTTPError(http.StatusNotFound, "function "+name+" not found")
}
