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
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/we-are-mono/kontroll/led"
)

var teal = led.Color{R: 62, G: 222, B: 206}

// TestExecuteCommands covers every command that reports a success flag.
func TestExecuteCommands(t *testing.T) {
	tests := []struct {
		name       string
		run        func(ctx context.Context, w io.Writer, api KeyboardAPI) error
		wantOutput string
		wantCall   mockCall
		rejectErr  string
	}{
		{
			name: "connect",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeConnect(ctx, w, api, 2)
			},
			wantOutput: "Connected to keyboard 2\n",
			wantCall:   mockCall{Method: "Connect", Index: 2},
			rejectErr:  "keymapp rejected connect",
		},
		{
			name:       "connect any",
			run:        executeConnectAny,
			wantOutput: "Connected to the first keyboard detected by keymapp\n",
			wantCall:   mockCall{Method: "ConnectAny"},
			rejectErr:  "keymapp rejected connect",
		},
		{
			name:       "disconnect",
			run:        executeDisconnect,
			wantOutput: "Disconnected from the currently connected keyboard\n",
			wantCall:   mockCall{Method: "Disconnect"},
			rejectErr:  "keymapp rejected disconnect",
		},
		{
			name: "set layer",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeSetLayer(ctx, w, api, 3)
			},
			wantOutput: "Layer set to 3\n",
			wantCall:   mockCall{Method: "SetLayer", Index: 3},
			rejectErr:  "keymapp rejected set layer",
		},
		{
			name: "unset layer",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeUnsetLayer(ctx, w, api, 3)
			},
			wantOutput: "Layer 3 unset\n",
			wantCall:   mockCall{Method: "UnsetLayer", Index: 3},
			rejectErr:  "keymapp rejected unset layer",
		},
		{
			name: "set rgb",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeSetRGB(ctx, w, api, 12, teal, "#3edece", 500)
			},
			wantOutput: "LED 12 set to color #3edece\n",
			wantCall:   mockCall{Method: "SetRGBLed", Index: 12, Color: teal, Sustain: 500},
			rejectErr:  "keymapp rejected set rgb",
		},
		{
			name: "set rgb all",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeSetRGBAll(ctx, w, api, teal, "3EDECE", 0)
			},
			wantOutput: "All LEDs set to color 3EDECE\n",
			wantCall:   mockCall{Method: "SetRGBAll", Color: teal},
			rejectErr:  "keymapp rejected set rgb",
		},
		{
			name:       "restore rgb leds",
			run:        executeRestoreRGBLeds,
			wantOutput: "All LEDs restored to their default color\n",
			wantCall:   mockCall{Method: "RestoreRGBLeds"},
			rejectErr:  "keymapp rejected restore rgb leds",
		},
		{
			name: "status led on",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeSetStatusLed(ctx, w, api, 1, true, 0)
			},
			wantOutput: "Status LED 1 turned on\n",
			wantCall:   mockCall{Method: "SetStatusLed", Index: 1, On: true},
			rejectErr:  "keymapp rejected set status led",
		},
		{
			name: "status led off",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeSetStatusLed(ctx, w, api, 1, false, 100)
			},
			wantOutput: "Status LED 1 turned off\n",
			wantCall:   mockCall{Method: "SetStatusLed", Index: 1, Sustain: 100},
			rejectErr:  "keymapp rejected set status led",
		},
		{
			name:       "restore status leds",
			run:        executeRestoreStatusLeds,
			wantOutput: "All status LEDs restored to their default state\n",
			wantCall:   mockCall{Method: "RestoreStatusLeds"},
			rejectErr:  "keymapp rejected restore status leds",
		},
		{
			name: "increase brightness",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeBrightness(ctx, w, api, true, 5)
			},
			wantOutput: "Brightness increased\n",
			wantCall:   mockCall{Method: "UpdateBrightness", Up: true, Steps: 5},
			rejectErr:  "keymapp rejected increase brightness",
		},
		{
			name: "decrease brightness",
			run: func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
				return executeBrightness(ctx, w, api, false, 1)
			},
			wantOutput: "Brightness decreased\n",
			wantCall:   mockCall{Method: "UpdateBrightness", Steps: 1},
			rejectErr:  "keymapp rejected decrease brightness",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" succeeds", func(t *testing.T) {
			var buf bytes.Buffer
			mock := &mockClient{}

			err := tt.run(context.Background(), &buf, mock)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, buf.String())
			assert.Equal(t, []mockCall{tt.wantCall}, mock.calls)
		})

		t.Run(tt.name+" rejected", func(t *testing.T) {
			var buf bytes.Buffer
			mock := &mockClient{rejected: true}

			err := tt.run(context.Background(), &buf, mock)

			require.Error(t, err)
			assert.Equal(t, tt.rejectErr, err.Error())
			assert.Empty(t, buf.String())
		})

		t.Run(tt.name+" fails", func(t *testing.T) {
			var buf bytes.Buffer
			mock := &mockClient{err: errors.New("Failed to do it: keymapp is gone")}

			err := tt.run(context.Background(), &buf, mock)

			require.Error(t, err)
			assert.Equal(t, "Failed to do it: keymapp is gone", err.Error())
			assert.Empty(t, buf.String())
		})
	}
}

func TestResolveLED(t *testing.T) {
	tests := []struct {
		name       string
		byPosition bool
		index      int
		column     int
		row        int
		want       int
		wantErr    string
		wantIs     error
	}{
		{name: "explicit index", index: 12, want: 12},
		{name: "negative index", index: -1, wantErr: "led must not be negative, got -1"},
		{name: "top left key", byPosition: true, column: 0, row: 0, want: 0},
		{name: "right half", byPosition: true, column: 6, row: 0, want: 26},
		{name: "left thumb", byPosition: true, column: 4, row: 4, want: 24},
		{name: "right thumb", byPosition: true, column: 7, row: 4, want: 51},
		{name: "thumb row gap", byPosition: true, column: 0, row: 4, wantErr: "position (0, 4) has no LED"},
		{name: "column off grid", byPosition: true, column: 12, row: 0, wantIs: led.ErrPositionOutOfRange},
		{name: "row off grid", byPosition: true, column: 0, row: 5, wantIs: led.ErrPositionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLED(tt.byPosition, tt.index, tt.column, tt.row)
			switch {
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			case tt.wantIs != nil:
				assert.True(t, errors.Is(err, tt.wantIs), "got %v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
