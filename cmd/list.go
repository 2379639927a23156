// Copyright (C) 2025 Mono Technologies Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available keyboards",
	Long:  `Lists every keyboard Keymapp knows about, in Keymapp's order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeList(ctx, w, api, listJSON)
	})
}

// executeList prints one "<id>: <name>" line per keyboard.
func executeList(ctx context.Context, w io.Writer, api KeyboardAPI, asJSON bool) error {
	keyboards, err := api.ListKeyboards(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		return writeStructured(w, outputJSON, keyboards)
	}

	if len(keyboards) == 0 {
		fmt.Fprintln(w, "No keyboards found")
		return nil
	}
	for _, kb := range keyboards {
		if kb.IsConnected {
			fmt.Fprintf(w, "%d: %s (connected)\n", kb.ID, kb.FriendlyName)
		} else {
			fmt.Fprintf(w, "%d: %s\n", kb.ID, kb.FriendlyName)
		}
	}
	return nil
}
