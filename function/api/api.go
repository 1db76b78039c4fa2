// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// Package api implements the data types that describe a function app's
// triggers and bindings, and their canonical serialized form, in Go.
// The serialized descriptors are consumed by the function host runtime;
// this package never executes triggers or touches the bound resources.
package api

import "encoding/json"

// BindingDirection indicates whether a binding feeds data into the user
// function or receives data from it. Triggers and input bindings are "in",
// output bindings are "out".
type BindingDirection string

const (
	BindingDirectionIn  = BindingDirection("in")
	BindingDirectionOut = BindingDirection("out")
)

func (d BindingDirection) String() string {
	return string(d)
}

// HTTPMethod enumerates the HTTP methods an HTTP trigger can accept.
// The values are serialized literally, uppercase.
type HTTPMethod string

const (
	HTTPMethodGet   = HTTPMethod("GET")
	HTTPMethodPost  = HTTPMethod("POST")
	HTTPMethodPatch = HTTPMethod("PATCH")
	HTTPMethodPut   = HTTPMethod("PUT")
)

func (m HTTPMethod) String() string {
	return string(m)
}

// AuthLevel controls what keys, if any, must be present on an HTTP request
// for the host to invoke the function.
type AuthLevel string

const (
	AuthLevelFunction  = AuthLevel("function")
	AuthLevelAnonymous = AuthLevel("anonymous")
	AuthLevelAdmin     = AuthLevel("admin")
)

func (a AuthLevel) String() string {
	return string(a)
}

// DataType selects the representation of a blob payload handed to or
// received from the user function.
type DataType string

const (
	DataTypeString = DataType("string")
	DataTypeBinary = DataType("binary")
	DataTypeStream = DataType("stream")
)

func (d DataType) String() string {
	return string(d)
}

// FunctionDescriptor pairs a function's name with its serialized
// function.json document. It is the unit exchanged between the app,
// the descriptor store, and the metadata server and its clients.
type FunctionDescriptor struct {
	FunctionName string          `description:"Name of the function"`
	Descriptor   json.RawMessage `swaggertype:"string" description:"The function.json document for the function"`
}
