// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/funchost/sdk/function/client"
)

var rootCmd = &cobra.Command{
	Use:   "funcctl",
	Short: "Command line tool for inspecting and exporting function descriptors",
	Long: `funcctl talks to a running function metadata server and lets you list
declared functions, fetch their function.json descriptors, and export the
descriptor directory layout consumed by the host runtime.

To change the default server, set the FUNCHOST_URL environment variable or
pass --server.`,
}

var serverURL string
var jsonOutput = false

func init() {
	defaultURL := os.Getenv("FUNCHOST_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8085"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "base URL of the metadata server")
}

func transportConfig() *client.TransportConfig {
	parsed, err := url.Parse(serverURL)
	failOnError(err)
	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return &client.TransportConfig{
		Host:      parsed.Host,
		BasePath:  "/app",
		Scheme:    scheme,
		UserAgent: "funcctl",
	}
}

func failOnError(err error) {
	if err != nil {
		tprintErr("Failed: %s", err.Error())
		os.Exit(1)
	}
}

func tableView() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)
	return table
}

// tprint stands for terminal print
func tprint(format string, args ...interface{}) {
	// Ensure there are no leading newlines and exactly one trailing newline.
	format = strings.Trim(format, "\n") + "\n"
	fmt.Printf(format, args...)
}

func tprintErr(format string, args ...interface{}) {
	red := color.New(color.FgRed).Add(color.Bold)
	redf := red.SprintFunc()
	// Ensure there are no leading newlines and exactly one trailing newline.
	format = strings.Trim(format, "\n") + "\n"
	fmt.Fprint(os.Stderr, redf(fmt.Sprintf(format, args...)))
}

func tprintRaw(output string) {
	// Ensure there are no leading newlines and exactly one trailing newline.
	output = strings.Trim(output, "\n") + "\n"
	fmt.Print(output)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
