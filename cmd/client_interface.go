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

	"github.com/we-are-mono/kontroll/client"
	"github.com/we-are-mono/kontroll/led"
)

// KeyboardAPI is the part of client.Kontroll the commands use.
// Tests replace it with a mock implementation.
type KeyboardAPI interface {
	GetStatus(ctx context.Context) (*client.Status, error)
	ListKeyboards(ctx context.Context) ([]client.Keyboard, error)
	Connect(ctx context.Context, index int) (bool, error)
	ConnectAny(ctx context.Context) (bool, error)
	Disconnect(ctx context.Context) (bool, error)
	SetLayer(ctx context.Context, index int) (bool, error)
	UnsetLayer(ctx context.Context, index int) (bool, error)
	SetRGBLed(ctx context.Context, index int, color led.Color, sustain int32) (bool, error)
	SetRGBAll(ctx context.Context, color led.Color, sustain int32) (bool, error)
	RestoreRGBLeds(ctx context.Context) (bool, error)
	SetStatusLed(ctx context.Context, index int, on bool, sustain int32) (bool, error)
	RestoreStatusLeds(ctx context.Context) (bool, error)
	UpdateBrightness(ctx context.Context, increase bool, steps int) (bool, error)
	Close() error
}

// newClient connects to Keymapp using the global flags and the environment.
// Tests can replace it to avoid a real connection.
var newClient = func(cmd *cobra.Command) (KeyboardAPI, error) {
	cfg, err := client.LoadConfig(client.Overrides{
		SocketPath: socketFlag,
		Port:       portFlag,
		Timeout:    timeoutFlag,
	})
	if err != nil {
		return nil, err
	}
	cfg.ClientVersion = Version
	cfg.Logger = newLogger(cmd.ErrOrStderr())

	k, err := client.New(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// withClient connects, runs fn against stdout and closes the connection.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, w io.Writer, api KeyboardAPI) error) error {
	api, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer api.Close()

	return fn(cmd.Context(), cmd.OutOrStdout(), api)
}

// confirm turns a success flag into the confirmation line or an error.
func confirm(w io.Writer, ok bool, op string, format string, args ...interface{}) error {
	if !ok {
		return fmt.Errorf("keymapp rejected %s", op)
	}
	fmt.Fprintf(w, format+"\n", args...)
	return nil
}
