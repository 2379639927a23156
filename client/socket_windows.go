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

//go:build windows

package client

import "os"

// Keymapp on Windows only listens on TCP.
func defaultTransport() Transport {
	return TransportTCP
}

func checkSocket(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &ConnectionUnavailableError{Path: path, Err: err}
	}
	return nil
}
