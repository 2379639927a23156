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

//go:build !windows

package client

import (
	"errors"

	"golang.org/x/sys/unix"
)

func defaultTransport() Transport {
	return TransportUnix
}

// checkSocket fails unless path exists and is a socket.
func checkSocket(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &ConnectionUnavailableError{Path: path, Err: err}
	}
	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFSOCK {
		return &ConnectionUnavailableError{Path: path, Err: errors.New("not a socket")}
	}
	return nil
}
