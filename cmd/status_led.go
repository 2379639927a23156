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
	statusLed        int
	statusLedOff     bool
	statusLedSustain int32
)

var setStatusLedCmd = &cobra.Command{
	Use:   "set-status-led",
	Short: "Set / Unset a status LED",
	Example: `  kontroll set-status-led --led 2
  kontroll set-status-led --led 2 --off`,
	Args: cobra.NoArgs,
	RunE: runSetStatusLed,
}

var restoreStatusLedsCmd = &cobra.Command{
	Use:   "restore-status-leds",
	Short: "Restores the status of all status LEDs to their default",
	Args:  cobra.NoArgs,
	RunE:  runRestoreStatusLeds,
}

func init() {
	rootCmd.AddCommand(setStatusLedCmd)
	rootCmd.AddCommand(restoreStatusLedsCmd)

	setStatusLedCmd.Flags().IntVarP(&statusLed, "led", "l", 0, "Status LED index")
	setStatusLedCmd.Flags().BoolVarP(&statusLedOff, "off", "o", false, "Turn the LED off instead of on")
	setStatusLedCmd.Flags().Int32VarP(&statusLedSustain, "sustain", "s", 0, "Restore the previous state after this long (0 keeps it)")
	_ = setStatusLedCmd.MarkFlagRequired("led")
}

func runSetStatusLed(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateIndex("led", statusLed); err != nil {
		return err
	}
	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeSetStatusLed(ctx, w, api, statusLed, !statusLedOff, statusLedSustain)
	})
}

func executeSetStatusLed(ctx context.Context, w io.Writer, api KeyboardAPI, index int, on bool, sustain int32) error {
	ok, err := api.SetStatusLed(ctx, index, on, sustain)
	if err != nil {
		return err
	}
	state := "off"
	if on {
		state = "on"
	}
	return confirm(w, ok, "set status led", "Status LED %d turned %s", index, state)
}

func runRestoreStatusLeds(cmd *cobra.Command, args []string) error {
	return withClient(cmd, executeRestoreStatusLeds)
}

func executeRestoreStatusLeds(ctx context.Context, w io.Writer, api KeyboardAPI) error {
	ok, err := api.RestoreStatusLeds(ctx)
	if err != nil {
		return err
	}
	return confirm(w, ok, "restore status leds", "All status LEDs restored to their default state")
}
