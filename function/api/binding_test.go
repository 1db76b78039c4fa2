// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reprJSON(t *testing.T, b Binding) string {
	t.Helper()
	out, err := json.Marshal(b.DictRepr())
	require.NoError(t, err)
	return string(out)
}

func TestEnumStringification(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "direction in", value: BindingDirectionIn.String(), expected: "in"},
		{name: "direction out", value: BindingDirectionOut.String(), expected: "out"},
		{name: "method get", value: HTTPMethodGet.String(), expected: "GET"},
		{name: "method post", value: HTTPMethodPost.String(), expected: "POST"},
		{name: "method patch", value: HTTPMethodPatch.String(), expected: "PATCH"},
		{name: "method put", value: HTTPMethodPut.String(), expected: "PUT"},
		{name: "auth function", value: AuthLevelFunction.String(), expected: "function"},
		{name: "auth anonymous", value: AuthLevelAnonymous.String(), expected: "anonymous"},
		{name: "auth admin", value: AuthLevelAdmin.String(), expected: "admin"},
		{name: "data string", value: DataTypeString.String(), expected: "string"},
		{name: "data binary", value: DataTypeBinary.String(), expected: "binary"},
		{name: "data stream", value: DataTypeStream.String(), expected: "stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value)
		})
	}
}

func TestHTTPTriggerDefaults(t *testing.T) {
	trigger := NewHTTPTrigger("req", nil, "", "")
	assert.Equal(t, AuthLevelAnonymous, trigger.AuthLevel)
	assert.Equal(t, DefaultRoute, trigger.Route)
	assert.Nil(t, trigger.Methods)
}

func TestHTTPTriggerDictRepr(t *testing.T) {
	trigger := NewHTTPTrigger("req", []HTTPMethod{HTTPMethodGet, HTTPMethodPost}, AuthLevelAnonymous, "/api")
	assert.Equal(t,
		`{"authLevel":"anonymous","type":"httpTrigger","direction":"in","name":"req","methods":["GET","POST"]}`,
		reprJSON(t, trigger))
}

func TestHTTPTriggerDictReprOmitsMethodsWhenNil(t *testing.T) {
	trigger := NewHTTPTrigger("req", nil, AuthLevelFunction, "/api")
	assert.Equal(t,
		`{"authLevel":"function","type":"httpTrigger","direction":"in","name":"req"}`,
		reprJSON(t, trigger))
}

func TestHTTPTriggerDictReprKeepsEmptyMethods(t *testing.T) {
	// An empty but non-nil slice is serialized, only nil is omitted.
	trigger := NewHTTPTrigger("req", []HTTPMethod{}, AuthLevelAnonymous, "/api")
	assert.Equal(t,
		`{"authLevel":"anonymous","type":"httpTrigger","direction":"in","name":"req","methods":[]}`,
		reprJSON(t, trigger))
}

func TestHTTPTriggerRouteNotSerialized(t *testing.T) {
	trigger := NewHTTPTrigger("req", nil, AuthLevelAnonymous, "/api/custom")
	assert.NotContains(t, reprJSON(t, trigger), "route")
}

func TestHTTPOutputDictRepr(t *testing.T) {
	output := NewHTTP("res")
	assert.Equal(t, "http", output.BindingType())
	assert.Equal(t, BindingDirectionOut, output.Direction())
	assert.Equal(t,
		`{"type":"http","direction":"out","name":"res"}`,
		reprJSON(t, output))
}

func TestBlobVariantsDictRepr(t *testing.T) {
	tests := []struct {
		name     string
		binding  Binding
		expected string
	}{
		{
			name:     "blob input",
			binding:  NewBlobInput("file", "STORAGE", "container/in.txt", DataTypeString),
			expected: `{"type":"blob","direction":"in","name":"file","dataType":"string","path":"container/in.txt","connection":"STORAGE"}`,
		},
		{
			name:     "blob output",
			binding:  NewBlobOutput("out", "STORAGE", "container/out.bin", DataTypeBinary),
			expected: `{"type":"blob","direction":"out","name":"out","dataType":"binary","path":"container/out.bin","connection":"STORAGE"}`,
		},
		{
			name:     "blob trigger",
			binding:  NewBlobTrigger("blob", "STORAGE", "container/{name}", DataTypeStream),
			expected: `{"type":"blobTrigger","direction":"in","name":"blob","dataType":"stream","path":"container/{name}","connection":"STORAGE"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reprJSON(t, tt.binding))
		})
	}
}

func TestEventHubTriggerDictRepr(t *testing.T) {
	// The abbreviated form: no type, no direction.
	trigger := NewEventHubTrigger("event", "myconn")
	assert.Equal(t, "EventHubTrigger", trigger.BindingType())
	assert.Equal(t, BindingDirectionIn, trigger.Direction())
	assert.Equal(t, `{"connection":"myconn","name":"event"}`, reprJSON(t, trigger))
}

func TestTriggerVariantsAreTriggers(t *testing.T) {
	triggers := []Binding{
		NewHTTPTrigger("req", nil, "", ""),
		NewBlobTrigger("blob", "STORAGE", "container/{name}", DataTypeString),
		NewEventHubTrigger("event", "myconn"),
	}
	for _, b := range triggers {
		_, ok := b.(Trigger)
		assert.True(t, ok, "%s should be a trigger", b.BindingType())
		assert.Equal(t, BindingDirectionIn, b.Direction())
	}

	outputs := []Binding{
		NewHTTP("res"),
		NewBlobOutput("out", "STORAGE", "container/out", DataTypeString),
	}
	for _, b := range outputs {
		_, ok := b.(Trigger)
		assert.False(t, ok, "%s should not be a trigger", b.BindingType())
	}

	input := Binding(NewBlobInput("in", "STORAGE", "container/in", DataTypeString))
	_, ok := input.(Trigger)
	assert.False(t, ok, "blob input should not be a trigger")
	assert.Equal(t, BindingDirectionIn, input.Direction())
}
