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
	increaseSteps int
	decreaseSteps int
)

var increaseBrightnessCmd = &cobra.Command{
	Use:   "increase-brightness",
	Short: "Increase the brightness of the keyboard's LEDs",
	Long: `Increases the brightness one step at a time. Stops at the first step
Keymapp refuses, leaving the earlier steps applied.`,
	Args: cobra.NoArgs,
	RunE: runIncreaseBrightness,
}

var decreaseBrightnessCmd = &cobra.Command{
	Use:   "decrease-brightness",
	Short: "Decrease the brightness of the keyboard's LEDs",
	Long: `Decreases the brightness one step at a time. Stops at the first step
Keymapp refuses, leaving the earlier steps applied.`,
	Args: cobra.NoArgs,
	RunE: runDecreaseBrightness,
}

func init() {
	rootCmd.AddCommand(increaseBrightnessCmd)
	rootCmd.AddCommand(decreaseBrightnessCmd)

	increaseBrightnessCmd.Flags().IntVarP(&increaseSteps, "steps", "s", 1, "Number of steps, 1-255")
	decreaseBrightnessCmd.Flags().IntVarP(&decreaseSteps, "steps", "s", 1, "Number of steps, 1-255")
}

func runIncreaseBrightness(cmd *cobra.Command, args []string) error {
	return runBrightness(cmd, true, increaseSteps)
}

func runDecreaseBrightness(cmd *cobra.Command, args []string) error {
	return runBrightness(cmd, false, decreaseSteps)
}

func runBrightness(cmd *cobra.Command, increase bool, steps int) error {
	if err := validation.ValidateBrightnessSteps(steps); err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeBrightness(ctx, w, api, increase, steps)
	})
}

func executeBrightness(ctx context.Context, w io.Writer, api KeyboardAPI, increase bool, steps int) error {
	ok, err := api.UpdateBrightness(ctx, increase, steps)
	if err != nil {
		return err
	}
	if increase {
		return confirm(w, ok, "increase brightness", "Brightness increased")
	}
	return confirm(w, ok, "decrease brightness", "Brightness decreased")
}
