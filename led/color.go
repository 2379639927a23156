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

// Package led converts user-facing LED descriptions (hex colors, grid
// positions) into the values Keymapp expects.
package led

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color is not six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ColorError reports which input failed to parse.
type ColorError struct {
	Input  string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%s is not a valid hex color: %s", e.Input, e.Reason)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidColorFormat
}

// Color is an RGB triple with one byte per channel.
type Color struct {
	R uint8 `json:"red"`
	G uint8 `json:"green"`
	B uint8 `json:"blue"`
}

// HexToRGB parses "#rrggbb" or "rrggbb" into its three channels.
func HexToRGB(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color{}, &ColorError{
			Input:  hex,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits)),
		}
	}

	var channels [3]uint8
	for i := range channels {
		pair := digits[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Color{}, &ColorError{
				Input:  hex,
				Reason: fmt.Sprintf("%q is not a hex byte", pair),
			}
		}
		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// String renders the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
