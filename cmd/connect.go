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
	"io"

	"github.com/spf13/cobra"

	"github.com/we-are-mono/kontroll/validation"
)

var connectIndex int

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a keyboard given the index returned by the list command",
	Example: `  kontroll list
  kontroll connect --index 1`,
	Args: cobra.NoArgs,
	RunE: runConnect,
}

var connectAnyCmd = &cobra.Command{
	Use:   "connect-any",
	Short: "Connect to the first keyboard detected by keymapp",
	Args:  cobra.NoArgs,
	RunE:  runConnectAny,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect from the currently connected keyboard",
	Args:  cobra.NoArgs,
	RunE:  runDisconnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(connectAnyCmd)
	rootCmd.AddCommand(disconnectCmd)

	connectCmd.Flags().IntVarP(&connectIndex, "index", "i", 0, "Keyboard index from the list command")
	_ = connectCmd.MarkFlagRequired("index")
}

func runConnect(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateIndex("keyboard index", connectIndex); err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeConnect(ctx, w, api, connectIndex)
	})
}

func executeConnect(ctx context.Context, w io.Writer, api KeyboardAPI, index int) error {
	ok, err := api.Connect(ctx, index)
	if err != nil {
		return err
	}
	return confirm(w, ok, "connect", "Connected to keyboard %d", index)
}

func runConnectAny(cmd *cobra.Command, args []string) error {
	return withClient(cmd, executeConnectAny)
}

func executeConnectAny(ctx context.Context, w io.Writer, api KeyboardAPI) error {
	ok, err := api.ConnectAny(ctx)
	if err != nil {
		return err
	}
	return confirm(w, ok, "connect", "Connected to the first keyboard detected by keymapp")
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	return withClient(cmd, executeDisconnect)
}

func executeDisconnect(ctx context.Context, w io.Writer, api KeyboardAPI) error {
	ok, err := api.Disconnect(ctx)
	if err != nil {
		return err
	}
	return confirm(w, ok, "disconnect", "Disconnected from the currently connected keyboard")
}
