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
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/we-are-mono/kontroll/validation"
)

// ErrInvalidStepCount is returned by UpdateBrightness before any call is made.
var ErrInvalidStepCount = validation.ErrInvalidStepCount

// ConnectionUnavailableError means the Keymapp socket is missing.
type ConnectionUnavailableError struct {
	Path string
	Err  error
}

func (e *ConnectionUnavailableError) Error() string {
	return fmt.Sprintf("Keymapp socket not found at %s, make sure Keymapp is running and the API is started.", e.Path)
}

func (e *ConnectionUnavailableError) Unwrap() error { return e.Err }

// ConnectionTimedOutError means Keymapp did not accept the connection in time.
type ConnectionTimedOutError struct {
	Target  string
	Timeout time.Duration
}

func (e *ConnectionTimedOutError) Error() string {
	return fmt.Sprintf("Connection to Keymapp timed out after %s, make sure the API is running and listening on %s", e.Timeout, e.Target)
}

// ConnectionFailedError wraps a transport level failure while connecting.
type ConnectionFailedError struct {
	Target string
	Err    error
}

func (e *ConnectionFailedError) Error() string {
	return fmt.Sprintf("Failed to connect to Keymapp on %s: %v", e.Target, e.Err)
}

func (e *ConnectionFailedError) Unwrap() error { return e.Err }

// RemoteCallError is any failure of a single remote operation.
type RemoteCallError struct {
	Operation string
	Message   string
	Code      codes.Code
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Operation, e.Message)
}

func newRemoteCallError(op string, err error) *RemoteCallError {
	if st, ok := status.FromError(err); ok {
		return &RemoteCallError{Operation: op, Message: st.Message(), Code: st.Code()}
	}
	return &RemoteCallError{Operation: op, Message: err.Error(), Code: codes.Unknown}
}
