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

// Package client provides Kontroll, a client library for Keymapp's API.
//
// A Kontroll owns one connection and may be used for any number of calls.
// Every call is a single remote request, except UpdateBrightness which
// issues one request per step.
package client

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"

	"github.com/we-are-mono/kontroll/keymapp"
	"github.com/we-are-mono/kontroll/led"
	"github.com/we-are-mono/kontroll/validation"
)

// Kontroll is the Keymapp API client.
type Kontroll struct {
	conn    *grpc.ClientConn
	svc     keymapp.KeyboardServiceClient
	version string
	logger  hclog.Logger
}

// New connects to Keymapp as described by cfg.
func New(ctx context.Context, cfg Config) (*Kontroll, error) {
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	cfg.Logger = cfg.Logger.With("session", cfg.SessionID)

	conn, err := Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	k := NewWithService(keymapp.NewKeyboardServiceClient(conn), cfg)
	k.conn = conn
	return k, nil
}

// NewWithService builds a Kontroll on top of an existing service client.
// Only ClientVersion and Logger are read from cfg.
func NewWithService(svc keymapp.KeyboardServiceClient, cfg Config) *Kontroll {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	version := cfg.ClientVersion
	if version == "" {
		version = "dev"
	}
	return &Kontroll{
		svc:     svc,
		version: version,
		logger:  logger.Named("client"),
	}
}

// Close releases the connection. It is safe to call on a Kontroll built
// with NewWithService.
func (k *Kontroll) Close() error {
	if k.conn == nil {
		return nil
	}
	return k.conn.Close()
}

// GetStatus gets Keymapp's version, Kontroll's version and the connected
// keyboard's information.
func (k *Kontroll) GetStatus(ctx context.Context) (*Status, error) {
	reply, err := k.svc.GetStatus(ctx, &keymapp.GetStatusRequest{})
	if err != nil {
		return nil, k.fail("get status", err)
	}

	status := &Status{
		KeymappVersion:  reply.GetKeymappVersion(),
		KontrollVersion: k.version,
	}
	if kb := reply.GetConnectedKeyboard(); kb != nil {
		status.Keyboard = &ConnectedKeyboard{
			FriendlyName:    kb.GetFriendlyName(),
			FirmwareVersion: kb.GetFirmwareVersion(),
			CurrentLayer:    kb.GetCurrentLayer(),
		}
	}
	k.logger.Debug("status", "keymapp_version", status.KeymappVersion, "connected", status.Keyboard != nil)
	return status, nil
}

// ListKeyboards returns every keyboard Keymapp knows, in Keymapp's order.
func (k *Kontroll) ListKeyboards(ctx context.Context) ([]Keyboard, error) {
	reply, err := k.svc.GetKeyboards(ctx, &keymapp.GetKeyboardsRequest{})
	if err != nil {
		return nil, k.fail("get keyboards", err)
	}

	keyboards := make([]Keyboard, 0, len(reply.GetKeyboards()))
	for _, kb := range reply.GetKeyboards() {
		keyboards = append(keyboards, Keyboard{
			ID:           kb.GetId(),
			FriendlyName: kb.GetFriendlyName(),
			IsConnected:  kb.GetIsConnected(),
		})
	}
	k.logger.Debug("keyboards listed", "count", len(keyboards))
	return keyboards, nil
}

// Connect connects to a keyboard by the id returned from ListKeyboards.
func (k *Kontroll) Connect(ctx context.Context, index int) (bool, error) {
	id, err := int32Arg("keyboard index", index)
	if err != nil {
		return false, err
	}
	return k.success("connect", func() (*keymapp.SuccessReply, error) {
		return k.svc.ConnectKeyboard(ctx, &keymapp.ConnectKeyboardRequest{Id: id})
	})
}

// ConnectAny connects to the first keyboard Keymapp detected.
func (k *Kontroll) ConnectAny(ctx context.Context) (bool, error) {
	return k.success("connect", func() (*keymapp.SuccessReply, error) {
		return k.svc.ConnectAnyKeyboard(ctx, &keymapp.ConnectAnyKeyboardRequest{})
	})
}

// Disconnect disconnects the connected keyboard.
func (k *Kontroll) Disconnect(ctx context.Context) (bool, error) {
	return k.success("disconnect", func() (*keymapp.SuccessReply, error) {
		return k.svc.DisconnectKeyboard(ctx, &keymapp.DisconnectKeyboardRequest{})
	})
}

// SetLayer sets a layer by index on the connected keyboard. Range checks are
// left to Keymapp.
func (k *Kontroll) SetLayer(ctx context.Context, index int) (bool, error) {
	layer, err := int32Arg("layer", index)
	if err != nil {
		return false, err
	}
	return k.success("set layer", func() (*keymapp.SuccessReply, error) {
		return k.svc.SetLayer(ctx, &keymapp.SetLayerRequest{Layer: layer})
	})
}

// UnsetLayer releases a layer previously set with SetLayer.
func (k *Kontroll) UnsetLayer(ctx context.Context, index int) (bool, error) {
	layer, err := int32Arg("layer", index)
	if err != nil {
		return false, err
	}
	return k.success("unset layer", func() (*keymapp.SuccessReply, error) {
		return k.svc.UnsetLayer(ctx, &keymapp.SetLayerRequest{Layer: layer})
	})
}

// SetRGBLed sets one RGB LED. A non-zero sustain asks Keymapp to revert the
// change after that long; 0 keeps it.
func (k *Kontroll) SetRGBLed(ctx context.Context, index int, color led.Color, sustain int32) (bool, error) {
	ledIndex, err := int32Arg("led", index)
	if err != nil {
		return false, err
	}
	return k.success("set rgb", func() (*keymapp.SuccessReply, error) {
		return k.svc.SetRGBLed(ctx, &keymapp.SetRGBLedRequest{
			Led:     ledIndex,
			Red:     int32(color.R),
			Green:   int32(color.G),
			Blue:    int32(color.B),
			Sustain: sustain,
		})
	})
}

// SetRGBAll sets every RGB LED to the same color.
func (k *Kontroll) SetRGBAll(ctx context.Context, color led.Color, sustain int32) (bool, error) {
	return k.success("set rgb", func() (*keymapp.SuccessReply, error) {
		return k.svc.SetRGBAll(ctx, &keymapp.SetRGBAllRequest{
			Red:     int32(color.R),
			Green:   int32(color.G),
			Blue:    int32(color.B),
			Sustain: sustain,
		})
	})
}

// RestoreRGBLeds blanks every LED for one sustain unit, after which Keymapp
// puts back the layout's own colors.
func (k *Kontroll) RestoreRGBLeds(ctx context.Context) (bool, error) {
	return k.SetRGBAll(ctx, led.Color{}, 1)
}

// SetStatusLed turns a status LED on or off.
func (k *Kontroll) SetStatusLed(ctx context.Context, index int, on bool, sustain int32) (bool, error) {
	ledIndex, err := int32Arg("led", index)
	if err != nil {
		return false, err
	}
	return k.success("set status led", func() (*keymapp.SuccessReply, error) {
		return k.svc.SetStatusLed(ctx, &keymapp.SetStatusLedRequest{
			Led:     ledIndex,
			On:      on,
			Sustain: sustain,
		})
	})
}

// RestoreStatusLeds hands the status LEDs back to the firmware.
func (k *Kontroll) RestoreStatusLeds(ctx context.Context) (bool, error) {
	return k.SetStatusLed(ctx, 0, false, 1)
}

// UpdateBrightness moves the brightness by steps, one call per step. It
// stops at the first step Keymapp rejects or fails, so earlier steps stay
// applied. steps must be within [1, 255].
func (k *Kontroll) UpdateBrightness(ctx context.Context, increase bool, steps int) (bool, error) {
	if err := validation.ValidateBrightnessSteps(steps); err != nil {
		return false, err
	}

	op := "decrease brightness"
	step := func() (*keymapp.SuccessReply, error) {
		return k.svc.DecreaseBrightness(ctx, &keymapp.DecreaseBrightnessRequest{})
	}
	if increase {
		op = "increase brightness"
		step = func() (*keymapp.SuccessReply, error) {
			return k.svc.IncreaseBrightness(ctx, &keymapp.IncreaseBrightnessRequest{})
		}
	}

	for i := 0; i < steps; i++ {
		ok, err := k.success(op, step)
		if err != nil {
			return false, err
		}
		if !ok {
			k.logger.Debug("brightness change stopped early", "applied", i, "requested", steps)
			return false, nil
		}
	}
	return true, nil
}

// success runs one call whose reply is a success flag.
func (k *Kontroll) success(op string, call func() (*keymapp.SuccessReply, error)) (bool, error) {
	reply, err := call()
	if err != nil {
		return false, k.fail(op, err)
	}
	k.logger.Debug("call finished", "op", op, "success", reply.GetSuccess())
	return reply.GetSuccess(), nil
}

func (k *Kontroll) fail(op string, err error) error {
	k.logger.Debug("call failed", "op", op, "error", err)
	return newRemoteCallError(op, err)
}

func int32Arg(name string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s %d out of range", name, v)
	}
	return int32(v), nil
}
