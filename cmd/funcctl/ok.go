// Copyright (C) FuncHost, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/funchost/sdk/function/client"
)

var okCmd = &cobra.Command{
	Use:   "ok",
	Short: "Check that the metadata server is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.Ok(transportConfig()); err != nil {
			return err
		}
		tprint("OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(okCmd)
}
