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

	"github.com/we-are-mono/kontroll/client"
	"github.com/we-are-mono/kontroll/led"
)

// mockCall records one KeyboardAPI invocation.
type mockCall struct {
	Method  string
	Index   int
	Color   led.Color
	Sustain int32
	On      bool
	Up      bool
	Steps   int
}

// mockClient is a mock implementation of KeyboardAPI for testing.
// Every method succeeds unless ok is false or err is set.
type mockClient struct {
	status    *client.Status
	keyboards []client.Keyboard
	rejected  bool
	err       error
	calls     []mockCall
	closed    bool
}

func (m *mockClient) record(c mockCall) (bool, error) {
	m.calls = append(m.calls, c)
	if m.err != nil {
		return false, m.err
	}
	return !m.rejected, nil
}

func (m *mockClient) GetStatus(ctx context.Context) (*client.Status, error) {
	m.calls = append(m.calls, mockCall{Method: "GetStatus"})
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

func (m *mockClient) ListKeyboards(ctx context.Context) ([]client.Keyboard, error) {
	m.calls = append(m.calls, mockCall{Method: "ListKeyboards"})
	if m.err != nil {
		return nil, m.err
	}
	return m.keyboards, nil
}

func (m *mockClient) Connect(ctx context.Context, index int) (bool, error) {
	return m.record(mockCall{Method: "Connect", Index: index})
}

func (m *mockClient) ConnectAny(ctx context.Context) (bool, error) {
	return m.record(mockCall{Method: "ConnectAny"})
}

func (m *mockClient) Disconnect(ctx context.Context) (bool, error) {
	return m.record(mockCall{Method: "Disconnect"})
}

func (m *mockClient) SetLayer(ctx context.Context, index int) (bool, error) {
	return m.record(mockCall{Method: "SetLayer", Index: index})
}

func (m *mockClient) UnsetLayer(ctx context.Context, index int) (bool, error) {
	return m.record(mockCall{Method: "UnsetLayer", Index: index})
}

func (m *mockClient) SetRGBLed(ctx context.Context, index int, color led.Color, sustain int32) (bool, error) {
	return m.record(mockCall{Method: "SetRGBLed", Index: index, Color: color, Sustain: sustain})
}

func (m *mockClient) SetRGBAll(ctx context.Context, color led.Color, sustain int32) (bool, error) {
	return m.record(mockCall{Method: "SetRGBAll", Color: color, Sustain: sustain})
}

func (m *mockClient) RestoreRGBLeds(ctx context.Context) (bool, error) {
	return m.record(mockCall{Method: "RestoreRGBLeds"})
}

func (m *mockClient) SetStatusLed(ctx context.Context, index int, on bool, sustain int32) (bool, error) {
	return m.record(mockCall{Method: "SetStatusLed", Index: index, On: on, Sustain: sustain})
}

func (m *mockClient) RestoreStatusLeds(ctx context.Context) (bool, error) {
	return m.record(mockCall{Method: "RestoreStatusLeds"})
}

func (m *mockClient) UpdateBrightness(ctx context.Context, increase bool, steps int) (bool, error) {
	return m.record(mockCall{Method: "UpdateBrightness", Up: increase, Steps: steps})
}

func (m *mockClient) Close() error {
	m.closed = true
	return nil
}
