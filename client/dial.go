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
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SessionMetadataKey carries the invocation's session id to Keymapp.
const SessionMetadataKey = "x-kontroll-session"

// Dial opens a gRPC connection to Keymapp and waits until it is ready or
// cfg.ConnectTimeout elapses. A missing Unix socket fails before dialing.
func Dial(ctx context.Context, cfg Config) (*grpc.ClientConn, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var target string
	switch cfg.Transport {
	case TransportUnix:
		if err := checkSocket(cfg.SocketPath); err != nil {
			return nil, err
		}
		target = "unix:" + cfg.SocketPath
	case TransportTCP:
		target = net.JoinHostPort("localhost", strconv.Itoa(cfg.Port))
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}

	logger.Debug("connecting to keymapp", "target", target, "timeout", cfg.ConnectTimeout)

	dialCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
		grpc.FailOnNonTempDialError(true),
		grpc.WithUnaryInterceptor(callInterceptor(cfg.SessionID, logger)),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &ConnectionTimedOutError{Target: cfg.Target(), Timeout: cfg.ConnectTimeout}
		}
		return nil, &ConnectionFailedError{Target: cfg.Target(), Err: err}
	}

	logger.Debug("connected to keymapp", "target", target)
	return conn, nil
}

// callInterceptor tags each call with the session id and logs its outcome.
func callInterceptor(sessionID string, logger hclog.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if sessionID != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, SessionMetadataKey, sessionID)
		}

		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		logger.Debug("rpc finished",
			"method", method,
			"code", status.Code(err).String(),
			"duration", time.Since(start))
		return err
	}
}
