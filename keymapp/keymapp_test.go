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

package keymapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestMarshalGolden(t *testing.T) {
	tests := []struct {
		name string
		msg  proto.Message
		want []byte
	}{
		{
			name: "empty request encodes to nothing",
			msg:  &GetStatusRequest{},
			want: []byte{},
		},
		{
			name: "rgb led skips zero fields",
			msg:  &SetRGBLedRequest{Led: 3, Red: 255, Blue: 16},
			want: []byte{0x08, 0x03, 0x10, 0xff, 0x01, 0x20, 0x10},
		},
		{
			name: "rgb all restore",
			msg:  &SetRGBAllRequest{Sustain: 1},
			want: []byte{0x20, 0x01},
		},
		{
			name: "status led on",
			msg:  &SetStatusLedRequest{Led: 2, On: true, Sustain: 500},
			want: []byte{0x08, 0x02, 0x10, 0x01, 0x18, 0xf4, 0x03},
		},
		{
			name: "negative layer is sign extended",
			msg:  &SetLayerRequest{Layer: -1},
			want: []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		},
		{
			name: "connect by id",
			msg:  &ConnectKeyboardRequest{Id: 4},
			want: []byte{0x08, 0x04},
		},
		{
			name: "success reply",
			msg:  &SuccessReply{Success: true},
			want: []byte{0x08, 0x01},
		},
		{
			name: "keyboard",
			msg:  &Keyboard{Id: 1, FriendlyName: "Voyager", IsConnected: true},
			want: append(append([]byte{0x08, 0x01, 0x12, 0x07}, "Voyager"...), 0x18, 0x01),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := proto.Marshal(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUnmarshal_StatusReplyWithKeyboard(t *testing.T) {
	in := &GetStatusReply{
		KeymappVersion: "1.3.1",
		ConnectedKeyboard: &ConnectedKeyboard{
			FriendlyName:    "Voyager",
			FirmwareVersion: "24.0.0",
			CurrentLayer:    2,
		},
	}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &GetStatusReply{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out), "got %v", out)
	assert.Equal(t, "Voyager", out.GetConnectedKeyboard().GetFriendlyName())
}

func TestUnmarshal_NoKeyboard(t *testing.T) {
	b, err := proto.Marshal(&GetStatusReply{KeymappVersion: "1.3.1"})
	require.NoError(t, err)

	out := &GetStatusReply{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.Nil(t, out.GetConnectedKeyboard())
	assert.Equal(t, int32(0), out.GetConnectedKeyboard().GetCurrentLayer())
}

func TestUnmarshal_KeepsKeyboardOrder(t *testing.T) {
	in := &GetKeyboardsReply{Keyboards: []*Keyboard{
		{Id: 4, FriendlyName: "Moonlander"},
		{Id: 1, FriendlyName: "Voyager", IsConnected: true},
	}}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &GetKeyboardsReply{}
	require.NoError(t, proto.Unmarshal(b, out))
	require.Len(t, out.GetKeyboards(), 2)
	assert.Equal(t, int32(4), out.GetKeyboards()[0].GetId())
	assert.True(t, out.GetKeyboards()[1].GetIsConnected())
}

func TestUnmarshal_RejectsTruncatedInput(t *testing.T) {
	err := proto.Unmarshal([]byte{0x0a, 0x05, 'a'}, &GetStatusReply{})
	assert.Error(t, err)
}

func TestFileDescriptor(t *testing.T) {
	fd := File_keymapp_proto
	assert.Equal(t, protoreflect.FullName("api"), fd.Package())
	assert.Equal(t, 16, fd.Messages().Len())

	svc := fd.Services().ByName("KeyboardService")
	require.NotNil(t, svc)
	assert.Equal(t, 12, svc.Methods().Len())
	assert.Equal(t, KeyboardService_ServiceDesc.ServiceName, string(svc.FullName()))

	unset := svc.Methods().ByName("UnsetLayer")
	require.NotNil(t, unset)
	assert.Equal(t, protoreflect.FullName("api.SetLayerRequest"), unset.Input().FullName())
	assert.Equal(t, protoreflect.FullName("api.SuccessReply"), unset.Output().FullName())
}

func TestFieldNumbers(t *testing.T) {
	tests := []struct {
		msg    proto.Message
		field  protoreflect.Name
		number protoreflect.FieldNumber
	}{
		{&GetStatusReply{}, "connected_keyboard", 2},
		{&ConnectedKeyboard{}, "current_layer", 3},
		{&Keyboard{}, "is_connected", 3},
		{&SetRGBLedRequest{}, "sustain", 5},
		{&SetRGBAllRequest{}, "sustain", 4},
		{&SetStatusLedRequest{}, "on", 2},
	}

	for _, tt := range tests {
		desc := tt.msg.ProtoReflect().Descriptor()
		t.Run(string(desc.Name())+"."+string(tt.field), func(t *testing.T) {
			fd := desc.Fields().ByName(tt.field)
			require.NotNil(t, fd)
			assert.Equal(t, tt.number, fd.Number())
		})
	}
}
