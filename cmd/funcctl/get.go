// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/funchost/sdk/function/client"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get the function.json descriptor of a function",
	Long: `Fetch one function's descriptor from the metadata server.

Examples:
  # Pretty-print the descriptor
  funcctl get HandleOrder

  # Print the exact bytes the host consumes
  funcctl get --json HandleOrder
`,
	Args: cobra.ExactArgs(1),
	RunE: getCmdRun,
}

func init() {
	getCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the descriptor bytes unformatted")
	rootCmd.AddCommand(getCmd)
}

func getCmdRun(cmd *cobra.Command, args []string) error {
	descriptor, err := client.GetFunctionJSON(transportConfig(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		tprintRaw(string(descriptor))
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, descriptor, "", "  "); err != nil {
		return err
	}
	tprintRaw(pretty.String())
	return nil
}
