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

package led

import (
	"errors"
	"fmt"
)

const (
	// Columns is the width of the Voyager key grid (both halves).
	Columns = 12
	// Rows is the height of the Voyager key grid, thumb row included.
	Rows = 5
	// Unused marks grid cells without a physical LED.
	Unused = 60
)

// ErrPositionOutOfRange is returned for coordinates outside the grid.
var ErrPositionOutOfRange = errors.New("position out of range")

// PositionError carries the rejected coordinates.
type PositionError struct {
	Column int
	Row    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position (%d, %d) out of range [0, %d) x [0, %d)", e.Column, e.Row, Columns, Rows)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}

// voyagerLayout maps [row][column] to an LED index.
//
//	 0..23  left half, four rows of six
//	26..49  right half, four rows of six
//	24, 25  left thumb keys
//	50, 51  right thumb keys
var voyagerLayout = [Rows][Columns]int{
	{0, 1, 2, 3, 4, 5 /* | */, 26, 27, 28, 29, 30, 31},
	{6, 7, 8, 9, 10, 11 /* | */, 32, 33, 34, 35, 36, 37},
	{12, 13, 14, 15, 16, 17 /* | */, 38, 39, 40, 41, 42, 43},
	{18, 19, 20, 21, 22, 23 /* | */, 44, 45, 46, 47, 48, 49},
	{Unused, Unused, Unused, Unused, 24, 25 /* | */, 50, 51, Unused, Unused, Unused, Unused},
}

// PosToLEDIndex translates a (column, row) grid position on a Voyager into
// the LED index Keymapp uses. Cells in the thumb row without a key return
// Unused.
func PosToLEDIndex(column, row int) (int, error) {
	if column < 0 || column >= Columns || row < 0 || row >= Rows {
		return 0, &PositionError{Column: column, Row: row}
	}
	return voyagerLayout[row][column], nil
}

// HasLED reports whether an index returned by PosToLEDIndex is backed by a
// physical LED.
func HasLED(index int) bool {
	return index != Unused
}
