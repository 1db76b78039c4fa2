// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funchost/sdk/function"
	"github.com/funchost/sdk/function/api"
	"github.com/funchost/sdk/function/store"
)

// Both descriptor sources must satisfy the serving interface.
var (
	_ Source = (*function.App)(nil)
	_ Source = (*store.Dir)(nil)
)

func webHandler(order string) string {
	return order
}

func testApp(t *testing.T) *function.App {
	t.Helper()
	app := function.NewApp("handlers.go")
	f, err := app.Binding(api.NewHTTP("res"))(webHandler)
	require.NoError(t, err)
	_, err = app.OnTrigger(api.NewHTTPTrigger("req", []api.HTTPMethod{api.HTTPMethodGet}, "", ""))(f)
	require.NoError(t, err)
	return app
}

func doRequest(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOkEndpoint(t *testing.T) {
	router := NewTestHTTPRouter(testApp(t))
	rec := doRequest(router, http.MethodGet, "/app/ok")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInfoEndpoint(t *testing.T) {
	router := NewTestHTTPRouter(testApp(t))
	rec := doRequest(router, http.MethodGet, "/app/info")
	require.Equal(t, http.StatusOK, rec.Code)

	var info infoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.NotEqual(t, uuid.Nil, info.InstanceID)
	assert.Equal(t, 1, info.FunctionCount)
}

func TestListFunctionsEndpoint(t *testing.T) {
	router := NewTestHTTPRouter(testApp(t))
	rec := doRequest(router, http.MethodGet, "/app/functions")
	require.Equal(t, http.StatusOK, rec.Code)

	var descriptors []api.FunctionDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descriptors))
	require.Len(t, descriptors, 1)
	assert.Equal(t, "webHandler", descriptors[0].FunctionName)
	assert.JSONEq(t,
		`{"scriptFile":"handlers.go","bindings":[`+
			`{"type":"http","direction":"out","name":"res"},`+
			`{"authLevel":"anonymous","type":"httpTrigger","direction":"in","name":"req","methods":["GET"]}]}`,
		string(descriptors[0].Descriptor))
}

func TestGetFunctionEndpointReturnsExactBytes(t *testing.T) {
	app := testApp(t)
	descriptors, err := app.Descriptors()
	require.NoError(t, err)

	router := NewTestHTTPRouter(app)
	rec := doRequest(router, http.MethodGet, "/app/functions/webHandler")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(descriptors[0].Descriptor), rec.Body.String())
}

func TestGetFunctionEndpointNotFound(t *testing.T) {
	router := NewTestHTTPRouter(testApp(t))
	rec := doRequest(router, http.MethodGet, "/app/functions/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
