// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/funchost/sdk/function/client"
	"github.com/funchost/sdk/function/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export all descriptors into the host directory layout",
	Long: `Fetch every function descriptor from the metadata server and write the
<dir>/<functionName>/function.json layout the host runtime reads.

Examples:
  # Export into ./functions
  funcctl export functions
`,
	Args: cobra.ExactArgs(1),
	RunE: exportCmdRun,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func exportCmdRun(cmd *cobra.Command, args []string) error {
	descriptors, err := client.ListFunctions(transportConfig())
	if err != nil {
		return err
	}
	if err := store.Write(afero.NewOsFs(), args[0], descriptors); err != nil {
		return err
	}
	tprint("Exported %d function descriptors to %s", len(descriptors), args[0])
	return nil
}
