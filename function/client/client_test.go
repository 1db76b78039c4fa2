// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package client

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funchost/sdk/function"
	"github.com/funchost/sdk/function/api"
	"github.com/funchost/sdk/function/server"
)

func clientHandler(order string) string {
	return order
}

func startTestServer(t *testing.T) *TransportConfig {
	t.Helper()

	app := function.NewApp("handlers.go")
	_, err := app.OnTrigger(api.NewHTTPTrigger("req", nil, "", ""))(clientHandler)
	require.NoError(t, err)

	srv := httptest.NewServer(server.NewTestHTTPRouter(app))
	t.Cleanup(srv.Close)

	parsed, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return &TransportConfig{
		Host:      parsed.Host,
		BasePath:  "/app",
		Scheme:    parsed.Scheme,
		UserAgent: "client-test",
	}
}

func TestTransportConfigDefaults(t *testing.T) {
	tc := &TransportConfig{Host: "localhost:8085", BasePath: "/app", Scheme: "http"}
	assert.Equal(t, "http://localhost:8085/app", tc.GetBaseURL())
	assert.Equal(t, "unknown-client", tc.GetUserAgent())
	assert.Equal(t, "application/json", tc.GetContentType())
}

func TestOk(t *testing.T) {
	tc := startTestServer(t)
	assert.NoError(t, Ok(tc))
}

func TestListFunctions(t *testing.T) {
	tc := startTestServer(t)
	descriptors, err := ListFunctions(tc)
	require.NoError(t, err)
	require.Len(t, descriptors, 1)
	assert.Equal(t, "clientHandler", descriptors[0].FunctionName)
	assert.JSONEq(t,
		`{"scriptFile":"handlers.go","bindings":[{"authLevel":"anonymous","type":"httpTrigger","direction":"in","name":"req"}]}`,
		string(descriptors[0].Descriptor))
}

func TestGetFunctionJSON(t *testing.T) {
	tc := startTestServer(t)
	body, err := GetFunctionJSON(tc, "clientHandler")
	require.NoError(t, err)
	assert.Equal(t,
		`{"scriptFile":"handlers.go","bindings":[{"authLevel":"anonymous","type":"httpTrigger","direction":"in","name":"req"}]}`,
		string(body))
}

func TestGetFunctionJSONNotFound(t *testing.T) {
	tc := startTestServer(t)
	_, err := GetFunctionJSON(tc, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
