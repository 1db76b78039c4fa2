// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funchost/sdk/function/api"
	"github.com/funchost/sdk/function/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the functions declared on the server",
	Long: `List every function the metadata server knows, with its trigger type
and binding count.

Examples:
  # List functions in table format
  funcctl list

  # List functions as raw descriptor JSON
  funcctl list --json
`,
	Args: cobra.NoArgs,
	RunE: listCmdRun,
}

func init() {
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "print raw descriptor JSON")
	rootCmd.AddCommand(listCmd)
}

// descriptorSummary is the subset of a function.json needed for the table
// view. Binding entries are kept as raw maps because variants disagree on
// which keys they carry.
type descriptorSummary struct {
	ScriptFile string           `json:"scriptFile"`
	Bindings   []map[string]any `json:"bindings"`
}

func listCmdRun(cmd *cobra.Command, args []string) error {
	descriptors, err := client.ListFunctions(transportConfig())
	if err != nil {
		return err
	}

	if jsonOutput {
		out, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return err
		}
		tprintRaw(string(out))
		return nil
	}

	table := tableView()
	table.SetHeader([]string{"Name", "Trigger", "Bindings", "ScriptFile"})
	for _, d := range descriptors {
		summary, err := summarize(d)
		if err != nil {
			return err
		}
		table.Append([]string{
			d.FunctionName,
			triggerType(summary),
			fmt.Sprintf("%d", len(summary.Bindings)),
			summary.ScriptFile,
		})
	}
	table.Render()
	return nil
}

func summarize(d api.FunctionDescriptor) (*descriptorSummary, error) {
	var summary descriptorSummary
	if err := json.Unmarshal(d.Descriptor, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// triggerType finds the trigger entry in the bindings list. Trigger types
// end in "Trigger"; an entry with no type key at all is the abbreviated
// event hub trigger form.
func triggerType(summary *descriptorSummary) string {
	for _, b := range summary.Bindings {
		t, ok := b["type"].(string)
		if !ok {
			return "EventHubTrigger"
		}
		if strings.HasSuffix(t, "Trigger") {
			return t
		}
	}
	return "-"
}
