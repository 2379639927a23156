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

	"github.com/we-are-mono/kontroll/led"
	"github.com/we-are-mono/kontroll/validation"
)

var (
	rgbLed     int
	rgbColumn  int
	rgbRow     int
	rgbColor   string
	rgbSustain int32

	rgbAllColor   string
	rgbAllSustain int32
)

var setRGBCmd = &cobra.Command{
	Use:   "set-rgb",
	Short: "Sets the RGB color of a LED",
	Long: `Sets the RGB color of a single LED, given either its index or its
position on a Voyager's key grid (12 columns, 5 rows, thumb keys on the
bottom row).

A non-zero --sustain asks Keymapp to restore the previous color after
that long.`,
	Example: `  kontroll set-rgb --led 12 --color "#3edece"
  kontroll set-rgb --col 4 --row 4 --color ff0000 --sustain 500`,
	Args: cobra.NoArgs,
	RunE: runSetRGB,
}

var setRGBAllCmd = &cobra.Command{
	Use:     "set-rgb-all",
	Short:   "Sets the RGB color of all LEDs",
	Example: `  kontroll set-rgb-all --color "#000000"`,
	Args:    cobra.NoArgs,
	RunE:    runSetRGBAll,
}

var restoreRGBLedsCmd = &cobra.Command{
	Use:   "restore-rgb-leds",
	Short: "Restores the RGB color of all LEDs to their default",
	Args:  cobra.NoArgs,
	RunE:  runRestoreRGBLeds,
}

func init() {
	rootCmd.AddCommand(setRGBCmd)
	rootCmd.AddCommand(setRGBAllCmd)
	rootCmd.AddCommand(restoreRGBLedsCmd)

	f := setRGBCmd.Flags()
	f.IntVarP(&rgbLed, "led", "l", 0, "LED index")
	f.IntVar(&rgbColumn, "col", 0, "Key column on a Voyager, 0-11")
	f.IntVar(&rgbRow, "row", 0, "Key row on a Voyager, 0-4")
	f.StringVarP(&rgbColor, "color", "c", "", "Hex color, with or without a leading #")
	f.Int32VarP(&rgbSustain, "sustain", "s", 0, "Restore the previous color after this long (0 keeps it)")
	_ = setRGBCmd.MarkFlagRequired("color")
	setRGBCmd.MarkFlagsOneRequired("led", "col")
	setRGBCmd.MarkFlagsMutuallyExclusive("led", "col")
	setRGBCmd.MarkFlagsRequiredTogether("col", "row")

	setRGBAllCmd.Flags().StringVarP(&rgbAllColor, "color", "c", "", "Hex color, with or without a leading #")
	setRGBAllCmd.Flags().Int32VarP(&rgbAllSustain, "sustain", "s", 0, "Restore the previous colors after this long (0 keeps them)")
	_ = setRGBAllCmd.MarkFlagRequired("color")
}

// resolveLED returns the LED index for either an explicit index or a grid
// position.
func resolveLED(byPosition bool, index, column, row int) (int, error) {
	if !byPosition {
		if err := validation.ValidateIndex("led", index); err != nil {
			return 0, err
		}
		return index, nil
	}

	index, err := led.PosToLEDIndex(column, row)
	if err != nil {
		return 0, err
	}
	if !led.HasLED(index) {
		return 0, fmt.Errorf("position (%d, %d) has no LED", column, row)
	}
	return index, nil
}

func runSetRGB(cmd *cobra.Command, args []string) error {
	index, err := resolveLED(cmd.Flags().Changed("col"), rgbLed, rgbColumn, rgbRow)
	if err != nil {
		return err
	}
	color, err := led.HexToRGB(rgbColor)
	if err != nil {
		return err
	}

	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeSetRGB(ctx, w, api, index, color, rgbColor, rgbSustain)
	})
}

// executeSetRGB confirms with the color as the user typed it.
func executeSetRGB(ctx context.Context, w io.Writer, api KeyboardAPI, index int, color led.Color, typed string, sustain int32) error {
	ok, err := api.SetRGBLed(ctx, index, color, sustain)
	if err != nil {
		return err
	}
	return confirm(w, ok, "set rgb", "LED %d set to color %s", index, typed)
}

func runSetRGBAll(cmd *cobra.Command, args []string) error {
	color, err := led.HexToRGB(rgbAllColor)
	if err != nil {
		return err
	}

	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeSetRGBAll(ctx, w, api, color, rgbAllColor, rgbAllSustain)
	})
}

func executeSetRGBAll(ctx context.Context, w io.Writer, api KeyboardAPI, color led.Color, typed string, sustain int32) error {
	ok, err := api.SetRGBAll(ctx, color, sustain)
	if err != nil {
		return err
	}
	return confirm(w, ok, "set rgb", "All LEDs set to color %s", typed)
}

func runRestoreRGBLeds(cmd *cobra.Command, args []string) error {
	return withClient(cmd, executeRestoreRGBLeds)
}

func executeRestoreRGBLeds(ctx context.Context, w io.Writer, api KeyboardAPI) error {
	ok, err := api.RestoreRGBLeds(ctx)
	if err != nil {
		return err
	}
	return confirm(w, ok, "restore rgb leds", "All LEDs restored to their default color")
}
