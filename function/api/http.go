// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// DefaultRoute is the route prefix the host assumes when none is given.
	DefaultRoute = "/api"
)

// HTTPTrigger declares that the function executes in response to an HTTP
// request. Route is recorded on the trigger for tooling but is not part of
// the serialized descriptor; the host derives routes separately.
type HTTPTrigger struct {
	Name      string
	Methods   []HTTPMethod
	AuthLevel AuthLevel
	Route     string
}

// NewHTTPTrigger applies the defaults: anonymous auth and the "/api" route.
// A nil methods slice means "accept the host's default method set" and is
// omitted from the descriptor; an empty non-nil slice is serialized as-is.
func NewHTTPTrigger(name string, methods []HTTPMethod, authLevel AuthLevel, route string) *HTTPTrigger {
	if authLevel == AuthLevel("") {
		authLevel = AuthLevelAnonymous
	}
	if route == "" {
		route = DefaultRoute
	}
	return &HTTPTrigger{
		Name:      name,
		Methods:   methods,
		AuthLevel: authLevel,
		Route:     route,
	}
}

func (t *HTTPTrigger) BindingType() string {
	return "httpTrigger"
}

func (t *HTTPTrigger) BindingName() string {
	return t.Name
}

func (t *HTTPTrigger) Direction() BindingDirection {
	return BindingDirectionIn
}

func (t *HTTPTrigger) DictRepr() *orderedmap.OrderedMap[string, any] {
	repr := orderedmap.New[string, any]()
	repr.Set("authLevel", t.AuthLevel)
	repr.Set("type", t.BindingType())
	repr.Set("direction", t.Direction())
	repr.Set("name", t.Name)
	if t.Methods != nil {
		methods := make([]string, 0, len(t.Methods))
		for _, m := range t.Methods {
			methods = append(methods, m.String())
		}
		repr.Set("methods", methods)
	}
	return repr
}

func (t *HTTPTrigger) isTrigger() {}

// HTTP declares an HTTP response output binding. It carries no fields
// beyond the bound parameter name.
type HTTP struct {
	Name string
}

func NewHTTP(name string) *HTTP {
	return &HTTP{Name: name}
}

func (b *HTTP) BindingType() string {
	return "http"
}

func (b *HTTP) BindingName() string {
	return b.Name
}

func (b *HTTP) Direction() BindingDirection {
	return BindingDirectionOut
}

func (b *HTTP) DictRepr() *orderedmap.OrderedMap[string, any] {
	return newDictRepr(b.BindingType(), b.Direction(), b.Name)
}
