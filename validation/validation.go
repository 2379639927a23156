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

// Package validation provides reusable range checks for Kontroll settings
// and command arguments.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinBrightnessSteps = 1
	MaxBrightnessSteps = 255
)

// ErrInvalidStepCount is returned when a brightness step count is outside
// [MinBrightnessSteps, MaxBrightnessSteps].
var ErrInvalidStepCount = errors.New("brightness steps must be between 1 and 255")

// ValidatePort validates that a port number is in the valid range [1, 65535].
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of valid range [1, 65535]", port)
	}
	return nil
}

// ParsePort parses and validates a port given as text (flag or env var).
func ParsePort(portStr string) (int, error) {
	portStr = strings.TrimSpace(portStr)
	if portStr == "" {
		return 0, fmt.Errorf("port cannot be empty")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %s: %w", portStr, err)
	}

	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

// ValidateBrightnessSteps checks the number of single-step brightness calls.
func ValidateBrightnessSteps(steps int) error {
	if steps < MinBrightnessSteps || steps > MaxBrightnessSteps {
		return fmt.Errorf("%w (got %d)", ErrInvalidStepCount, steps)
	}
	return nil
}

// ValidateTimeout requires a strictly positive connection timeout.
func ValidateTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", timeout)
	}
	return nil
}

// ValidateSocketPath rejects empty paths and paths longer than a Unix socket
// address can hold.
func ValidateSocketPath(path string) error {
	if path == "" {
		return fmt.Errorf("socket path cannot be empty")
	}
	// sun_path is 108 bytes on Linux, 104 on macOS; one byte is the NUL.
	if len(path) > 103 {
		return fmt.Errorf("socket path %s is too long (%d bytes, max 103)", path, len(path))
	}
	return nil
}

// ValidateIndex rejects negative keyboard, layer and LED indices.
func ValidateIndex(name string, index int) error {
	if index < 0 {
		return fmt.Errorf("%s must not be negative, got %d", name, index)
	}
	return nil
}
