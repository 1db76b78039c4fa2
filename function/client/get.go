// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// GetFunctionJSON fetches the raw function.json bytes for one function.
func GetFunctionJSON(transportConfig *TransportConfig, functionName string) ([]byte, error) {
	// Send the request
	url := transportConfig.GetBaseURL() + "/functions/" + functionName
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, bytes.NewReader([]byte{})) //nolint:G107 // dynamic URL for testing
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", transportConfig.GetContentType())
	req.Header.Set("User-Agent", transportConfig.GetUserAgent())
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Newf("function %s not found", functionName)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.WithStack(errors.New(http.StatusText(resp.StatusCode)))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return respBody, nil
}
