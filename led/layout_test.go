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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosToLEDIndex(t *testing.T) {
	tests := []struct {
		name   string
		column int
		row    int
		want   int
	}{
		{name: "top left", column: 0, row: 0, want: 0},
		{name: "end of left top row", column: 5, row: 0, want: 5},
		{name: "start of right top row", column: 6, row: 0, want: 26},
		{name: "top right", column: 11, row: 0, want: 31},
		{name: "left second row", column: 0, row: 1, want: 6},
		{name: "right third row", column: 8, row: 2, want: 40},
		{name: "bottom left of main block", column: 0, row: 3, want: 18},
		{name: "bottom right of main block", column: 11, row: 3, want: 49},
		{name: "left inner thumb", column: 4, row: 4, want: 24},
		{name: "left outer thumb", column: 5, row: 4, want: 25},
		{name: "right inner thumb", column: 6, row: 4, want: 50},
		{name: "right outer thumb", column: 7, row: 4, want: 51},
		{name: "left thumb gap", column: 0, row: 4, want: Unused},
		{name: "left thumb gap next to key", column: 3, row: 4, want: Unused},
		{name: "right thumb gap next to key", column: 8, row: 4, want: Unused},
		{name: "right thumb gap", column: 11, row: 4, want: Unused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PosToLEDIndex(tt.column, tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPosToLEDIndex_CoversEveryLEDOnce(t *testing.T) {
	seen := make(map[int]int)
	gaps := 0

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			idx, err := PosToLEDIndex(col, row)
			require.NoError(t, err)
			if !HasLED(idx) {
				assert.Equal(t, 4, row, "only the thumb row has gaps")
				gaps++
				continue
			}
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 52)
			seen[idx]++
		}
	}

	assert.Equal(t, 8, gaps)
	assert.Len(t, seen, 52)
	for idx, n := range seen {
		assert.Equal(t, 1, n, "LED %d mapped more than once", idx)
	}
}

func TestPosToLEDIndex_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		column int
		row    int
	}{
		{name: "negative column", column: -1, row: 0},
		{name: "column past right edge", column: 12, row: 0},
		{name: "negative row", column: 0, row: -1},
		{name: "row past thumb row", column: 0, row: 5},
		{name: "both out", column: 100, row: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PosToLEDIndex(tt.column, tt.row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPositionOutOfRange))

			var posErr *PositionError
			require.True(t, errors.As(err, &posErr))
			assert.Equal(t, tt.column, posErr.Column)
			assert.Equal(t, tt.row, posErr.Row)
		})
	}
}
