// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

// Package client fetches function descriptors from a running metadata
// server, in Go.
package client

type TransportConfig struct {
	Host      string
	BasePath  string
	Scheme    string
	UserAgent string
}

func (tc *TransportConfig) GetBaseURL() string {
	return tc.Scheme + "://" + tc.Host + tc.BasePath
}

func (tc *TransportConfig) GetUserAgent() string {
	if tc.UserAgent == "" {
		return "unknown-client"
	}
	return tc.UserAgent
}

func (tc *TransportConfig) GetContentType() string {
	return "application/json"
}
