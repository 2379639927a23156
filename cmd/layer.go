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

var (
	setLayerIndex   int
	unsetLayerIndex int
)

var setLayerCmd = &cobra.Command{
	Use:   "set-layer",
	Short: "Set the layer of the currently connected keyboard",
	Args:  cobra.NoArgs,
	RunE:  runSetLayer,
}

var unsetLayerCmd = &cobra.Command{
	Use:   "unset-layer",
	Short: "Unset a layer previously set with set-layer",
	Args:  cobra.NoArgs,
	RunE:  runUnsetLayer,
}

func init() {
	rootCmd.AddCommand(setLayerCmd)
	rootCmd.AddCommand(unsetLayerCmd)

	setLayerCmd.Flags().IntVarP(&setLayerIndex, "index", "i", 0, "Layer index")
	_ = setLayerCmd.MarkFlagRequired("index")

	unsetLayerCmd.Flags().IntVarP(&unsetLayerIndex, "index", "i", 0, "Layer index")
	_ = unsetLayerCmd.MarkFlagRequired("index")
}

func runSetLayer(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateIndex("layer", setLayerIndex); err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeSetLayer(ctx, w, api, setLayerIndex)
	})
}

func executeSetLayer(ctx context.Context, w io.Writer, api KeyboardAPI, index int) error {
	ok, err := api.SetLayer(ctx, index)
	if err != nil {
		return err
	}
	return confirm(w, ok, "set layer", "Layer set to %d", index)
}

func runUnsetLayer(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateIndex("layer", unsetLayerIndex); err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeUnsetLayer(ctx, w, api, unsetLayerIndex)
	})
}

func executeUnsetLayer(ctx context.Context, w io.Writer, api KeyboardAPI, index int) error {
	ok, err := api.UnsetLayer(ctx, index)
	if err != nil {
		return err
	}
	return confirm(w, ok, "unset layer", "Layer %d unset", index)
}
