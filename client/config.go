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

package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/we-are-mono/kontroll/validation"
)

// Environment variables read by LoadConfig.
const (
	EnvSocket  = "KEYMAPP_SOCKET"
	EnvPort    = "KEYMAPP_PORT"
	EnvTimeout = "KEYMAPP_TIMEOUT"
)

const (
	DefaultPort           = 50051
	DefaultConnectTimeout = 5 * time.Second
)

// Transport selects how Kontroll reaches Keymapp.
type Transport string

const (
	TransportUnix Transport = "unix"
	TransportTCP  Transport = "tcp"
)

// Config describes one connection to Keymapp.
type Config struct {
	Transport      Transport
	SocketPath     string
	Port           int
	ConnectTimeout time.Duration

	// ClientVersion is reported as the Kontroll version in Status.
	ClientVersion string
	// SessionID is attached to every call as x-kontroll-session metadata.
	// New generates one when empty.
	SessionID string
	Logger    hclog.Logger
}

// Overrides are values given explicitly on the command line. Empty fields
// fall back to the environment, then to defaults.
type Overrides struct {
	SocketPath string
	Port       string
	Timeout    time.Duration
}

// GetSocketPath returns the socket path, preferring an explicit path, then
// KEYMAPP_SOCKET, then <user config dir>/.keymapp/keymapp.sock.
func GetSocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path := os.Getenv(EnvSocket); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, ".keymapp", "keymapp.sock"), nil
}

// GetPort returns the TCP port, preferring an explicit value, then
// KEYMAPP_PORT, then DefaultPort.
func GetPort(explicit string) (int, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvPort)
	}
	if explicit == "" {
		return DefaultPort, nil
	}
	return validation.ParsePort(explicit)
}

// selectTransport picks the strategy. An explicit socket beats an explicit
// port; in the environment KEYMAPP_SOCKET beats KEYMAPP_PORT.
func selectTransport(o Overrides) Transport {
	switch {
	case o.SocketPath != "":
		return TransportUnix
	case o.Port != "":
		return TransportTCP
	case os.Getenv(EnvSocket) != "":
		return TransportUnix
	case os.Getenv(EnvPort) != "":
		return TransportTCP
	}
	return defaultTransport()
}

// LoadConfig resolves a Config from overrides and the environment.
func LoadConfig(o Overrides) (Config, error) {
	cfg := Config{
		Transport:      selectTransport(o),
		ConnectTimeout: o.Timeout,
	}

	var err error
	switch cfg.Transport {
	case TransportUnix:
		cfg.SocketPath, err = GetSocketPath(o.SocketPath)
	case TransportTCP:
		cfg.Port, err = GetPort(o.Port)
	}
	if err != nil {
		return Config{}, err
	}

	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
		if v := os.Getenv(EnvTimeout); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
			}
			cfg.ConnectTimeout = d
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Transport {
	case TransportUnix:
		errs = append(errs, validation.ValidateSocketPath(c.SocketPath))
	case TransportTCP:
		errs = append(errs, validation.ValidatePort(c.Port))
	default:
		errs = append(errs, fmt.Errorf("unknown transport %q", c.Transport))
	}
	errs = append(errs, validation.ValidateTimeout(c.ConnectTimeout))
	return errors.Join(errs...)
}

// Target describes where the connection points, for messages and logs.
func (c Config) Target() string {
	if c.Transport == TransportTCP {
		return fmt.Sprintf("port %d", c.Port)
	}
	return c.SocketPath
}
