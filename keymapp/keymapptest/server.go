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

// Package keymapptest provides an in-process Keymapp stand-in that serves
// api.KeyboardService on a Unix socket or a loopback TCP port, for use in
// tests.
package keymapptest

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/we-are-mono/kontroll/keymapp"
)

const (
	DefaultKeymappVersion  = "1.3.1"
	DefaultFirmwareVersion = "24.0.0"
	DefaultMaxBrightness   = 10

	// SessionHeader is the metadata key Kontroll tags calls with.
	SessionHeader = "x-kontroll-session"
)

// Server is a stub Keymapp. The zero value is not usable; call New.
type Server struct {
	keymapp.UnimplementedKeyboardServiceServer

	KeymappVersion  string
	FirmwareVersion string

	mu            sync.Mutex
	keyboards     []*keymapp.Keyboard
	connectedID   int32
	connected     bool
	layer         int32
	brightness    int
	maxBrightness int
	failNext      bool
	calls         map[string]int
	requests      map[string][]proto.Message
	sessions      []string

	grpcServer *grpc.Server
	socketDir  string
	socketPath string
}

// New returns a stub knowing one disconnected "Voyager" with id 1.
func New() *Server {
	return &Server{
		KeymappVersion:  DefaultKeymappVersion,
		FirmwareVersion: DefaultFirmwareVersion,
		keyboards: []*keymapp.Keyboard{
			{Id: 1, FriendlyName: "Voyager"},
		},
		brightness:    DefaultMaxBrightness / 2,
		maxBrightness: DefaultMaxBrightness,
		calls:         make(map[string]int),
		requests:      make(map[string][]proto.Message),
	}
}

// Start listens on a fresh socket under the system temp dir and serves in
// the background. It returns the socket path.
func (s *Server) Start() (string, error) {
	// Keep the path short; sun_path is limited to ~104 bytes on some systems.
	dir, err := os.MkdirTemp("", "keymapp")
	if err != nil {
		return "", fmt.Errorf("failed to create socket dir: %w", err)
	}
	path := filepath.Join(dir, "keymapp.sock")

	listener, err := net.Listen("unix", path)
	if err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("failed to create socket: %w", err)
	}

	s.socketDir = dir
	s.socketPath = path
	s.serve(listener)

	return path, nil
}

// StartTCP listens on an ephemeral loopback port and serves in the
// background. It returns the port.
func (s *Server) StartTCP() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to listen: %w", err)
	}

	s.serve(listener)

	return listener.Addr().(*net.TCPAddr).Port, nil
}

func (s *Server) serve(listener net.Listener) {
	s.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(s.intercept))
	keymapp.RegisterKeyboardServiceServer(s.grpcServer, s)

	go func() {
		_ = s.grpcServer.Serve(listener)
	}()
}

// SocketPath returns the path Start listened on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Close stops serving and removes the socket.
func (s *Server) Close() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.socketDir != "" {
		os.RemoveAll(s.socketDir)
	}
}

// intercept records every call and applies FailNextRequest.
func (s *Server) intercept(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	s.mu.Lock()
	s.calls[info.FullMethod]++
	if msg, ok := req.(proto.Message); ok {
		s.requests[info.FullMethod] = append(s.requests[info.FullMethod], msg)
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		s.sessions = append(s.sessions, md.Get(SessionHeader)...)
	}
	fail := s.failNext
	s.failNext = false
	s.mu.Unlock()

	if fail {
		return nil, status.Error(codes.Internal, "request failed on purpose")
	}
	return handler(ctx, req)
}

// SetKeyboards replaces the keyboards the stub reports and disconnects.
func (s *Server) SetKeyboards(keyboards ...*keymapp.Keyboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboards = keyboards
	s.connected = false
}

// SetConnected marks the keyboard with the given id as connected.
func (s *Server) SetConnected(id int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectedID = id
	s.connected = true
}

// SetBrightness sets the current level and the inclusive maximum.
func (s *Server) SetBrightness(level, maxLevel int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = level
	s.maxBrightness = maxLevel
}

// FailNextRequest makes the next call return codes.Internal.
func (s *Server) FailNextRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

// Calls returns how many times a full method name was invoked.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// Requests returns the decoded requests received for a method, in order.
func (s *Server) Requests(method string) []proto.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]proto.Message, len(s.requests[method]))
	copy(out, s.requests[method])
	return out
}

// Sessions returns the session ids seen in call metadata, one per call.
func (s *Server) Sessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sessions...)
}

func (s *Server) Brightness() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightness
}

func (s *Server) Layer() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layer
}

// Connected returns the connected keyboard id, if any.
func (s *Server) Connected() (int32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectedID, s.connected
}

// connectedKeyboard must be called with mu held.
func (s *Server) connectedKeyboard() *keymapp.Keyboard {
	if !s.connected {
		return nil
	}
	for _, kb := range s.keyboards {
		if kb.GetId() == s.connectedID {
			return kb
		}
	}
	return nil
}

// requireKeyboard must be called with mu held.
func (s *Server) requireKeyboard() error {
	if s.connectedKeyboard() == nil {
		return status.Error(codes.FailedPrecondition, "no keyboard connected")
	}
	return nil
}

func (s *Server) GetStatus(ctx context.Context, in *keymapp.GetStatusRequest) (*keymapp.GetStatusReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := &keymapp.GetStatusReply{KeymappVersion: s.KeymappVersion}
	if kb := s.connectedKeyboard(); kb != nil {
		reply.ConnectedKeyboard = &keymapp.ConnectedKeyboard{
			FriendlyName:    kb.GetFriendlyName(),
			FirmwareVersion: s.FirmwareVersion,
			CurrentLayer:    s.layer,
		}
	}
	return reply, nil
}

func (s *Server) GetKeyboards(ctx context.Context, in *keymapp.GetKeyboardsRequest) (*keymapp.GetKeyboardsReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := &keymapp.GetKeyboardsReply{}
	for _, kb := range s.keyboards {
		reply.Keyboards = append(reply.Keyboards, &keymapp.Keyboard{
			Id:           kb.GetId(),
			FriendlyName: kb.GetFriendlyName(),
			IsConnected:  s.connected && kb.GetId() == s.connectedID,
		})
	}
	return reply, nil
}

func (s *Server) ConnectKeyboard(ctx context.Context, in *keymapp.ConnectKeyboardRequest) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kb := range s.keyboards {
		if kb.GetId() == in.GetId() {
			s.connectedID = kb.GetId()
			s.connected = true
			return &keymapp.SuccessReply{Success: true}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "keyboard %d not found", in.GetId())
}

func (s *Server) ConnectAnyKeyboard(ctx context.Context, in *keymapp.ConnectAnyKeyboardRequest) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.keyboards) == 0 {
		return &keymapp.SuccessReply{Success: false}, nil
	}
	s.connectedID = s.keyboards[0].GetId()
	s.connected = true
	return &keymapp.SuccessReply{Success: true}, nil
}

func (s *Server) DisconnectKeyboard(ctx context.Context, in *keymapp.DisconnectKeyboardRequest) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return &keymapp.SuccessReply{Success: false}, nil
	}
	s.connected = false
	s.layer = 0
	return &keymapp.SuccessReply{Success: true}, nil
}

func (s *Server) SetLayer(ctx context.Context, in *keymapp.SetLayerRequest) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireKeyboard(); err != nil {
		return nil, err
	}
	s.layer = in.GetLayer()
	return &keymapp.SuccessReply{Success: true}, nil
}

func (s *Server) UnsetLayer(ctx context.Context, in *keymapp.SetLayerRequest) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireKeyboard(); err != nil {
		return nil, err
	}
	if s.layer != in.GetLayer() {
		return &keymapp.SuccessReply{Success: false}, nil
	}
	s.layer = 0
	return &keymapp.SuccessReply{Success: true}, nil
}

func (s *Server) SetRGBLed(ctx context.Context, in *keymapp.SetRGBLedRequest) (*keymapp.SuccessReply, error) {
	return s.ledReply()
}

func (s *Server) SetRGBAll(ctx context.Context, in *keymapp.SetRGBAllRequest) (*keymapp.SuccessReply, error) {
	return s.ledReply()
}

func (s *Server) SetStatusLed(ctx context.Context, in *keymapp.SetStatusLedRequest) (*keymapp.SuccessReply, error) {
	return s.ledReply()
}

func (s *Server) ledReply() (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireKeyboard(); err != nil {
		return nil, err
	}
	return &keymapp.SuccessReply{Success: true}, nil
}

func (s *Server) IncreaseBrightness(ctx context.Context, in *keymapp.IncreaseBrightnessRequest) (*keymapp.SuccessReply, error) {
	return s.stepBrightness(1)
}

func (s *Server) DecreaseBrightness(ctx context.Context, in *keymapp.DecreaseBrightnessRequest) (*keymapp.SuccessReply, error) {
	return s.stepBrightness(-1)
}

// stepBrightness reports false once the level would leave [0, max].
func (s *Server) stepBrightness(delta int) (*keymapp.SuccessReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireKeyboard(); err != nil {
		return nil, err
	}
	next := s.brightness + delta
	if next < 0 || next > s.maxBrightness {
		return &keymapp.SuccessReply{Success: false}, nil
	}
	s.brightness = next
	return &keymapp.SuccessReply{Success: true}, nil
}
