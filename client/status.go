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

import "fmt"

// ConnectedKeyboard summarises the keyboard Keymapp is attached to.
type ConnectedKeyboard struct {
	FriendlyName    string `json:"friendly_name" yaml:"friendly_name"`
	FirmwareVersion string `json:"firmware_version" yaml:"firmware_version"`
	CurrentLayer    int32  `json:"current_layer" yaml:"current_layer"`
}

// Status combines the Keymapp and Kontroll versions with the connected
// keyboard, if any.
type Status struct {
	KeymappVersion  string             `json:"keymapp_version" yaml:"keymapp_version"`
	KontrollVersion string             `json:"kontroll_version" yaml:"kontroll_version"`
	Keyboard        *ConnectedKeyboard `json:"keyboard" yaml:"keyboard"`
}

func (s *Status) String() string {
	keyboard := "No keyboard connected"
	if k := s.Keyboard; k != nil {
		keyboard = fmt.Sprintf("Connected keyboard:\t%s\nFirmware version:\t%s\nCurrent layer:\t\t%d",
			k.FriendlyName, k.FirmwareVersion, k.CurrentLayer)
	}
	return fmt.Sprintf("Keymapp version:\t%s\nKontroll version:\t%s\n%s\n",
		s.KeymappVersion, s.KontrollVersion, keyboard)
}

// Keyboard is a keyboard known to Keymapp.
type Keyboard struct {
	ID           int32  `json:"id" yaml:"id"`
	FriendlyName string `json:"friendly_name" yaml:"friendly_name"`
	IsConnected  bool   `json:"is_connected" yaml:"is_connected"`
}
