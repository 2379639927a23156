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

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/we-are-mono/kontroll/client"
)

func connectedStatus() *client.Status {
	return &client.Status{
		KeymappVersion:  "1.3.1",
		KontrollVersion: "1.0.0",
		Keyboard: &client.ConnectedKeyboard{
			FriendlyName:    "Voyager",
			FirmwareVersion: "24.0.0",
			CurrentLayer:    2,
		},
	}
}

func TestExecuteStatus_Text(t *testing.T) {
	tests := []struct {
		name       string
		status     *client.Status
		wantOutput string
	}{
		{
			name:   "connected keyboard",
			status: connectedStatus(),
			wantOutput: "Keymapp version:\t1.3.1\n" +
				"Kontroll version:\t1.0.0\n" +
				"Connected keyboard:\tVoyager\n" +
				"Firmware version:\t24.0.0\n" +
				"Current layer:\t\t2\n",
		},
		{
			name:   "no keyboard",
			status: &client.Status{KeymappVersion: "1.3.1", KontrollVersion: "1.0.0"},
			wantOutput: "Keymapp version:\t1.3.1\n" +
				"Kontroll version:\t1.0.0\n" +
				"No keyboard connected\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mock := &mockClient{status: tt.status}

			err := executeStatus(context.Background(), &buf, mock, outputText)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestExecuteStatus_JSON(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockClient{status: connectedStatus()}

	require.NoError(t, executeStatus(context.Background(), &buf, mock, outputJSON))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.3.1", got["keymapp_version"])
	assert.Equal(t, "1.0.0", got["kontroll_version"])
	keyboard, ok := got["keyboard"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Voyager", keyboard["friendly_name"])
	assert.Equal(t, float64(2), keyboard["current_layer"])
}

func TestExecuteStatus_JSONWithoutKeyboard(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockClient{status: &client.Status{KeymappVersion: "1.3.1", KontrollVersion: "1.0.0"}}

	require.NoError(t, executeStatus(context.Background(), &buf, mock, outputJSON))
	assert.Contains(t, buf.String(), `"keyboard": null`)
}

func TestExecuteStatus_YAML(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockClient{status: connectedStatus()}

	require.NoError(t, executeStatus(context.Background(), &buf, mock, outputYAML))

	var got client.Status
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *connectedStatus(), got)
	assert.Contains(t, buf.String(), "keymapp_version: 1.3.1")
}

func TestExecuteStatus_Error(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockClient{err: errors.New("Failed to get status: unavailable")}

	err := executeStatus(context.Background(), &buf, mock, outputText)

	require.Error(t, err)
	assert.Equal(t, "Failed to get status: unavailable", err.Error())
	assert.Empty(t, buf.String())
}

func TestValidateOutput(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, validateOutput(format), format)
	}
	err := validateOutput("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestExecuteList(t *testing.T) {
	keyboards := []client.Keyboard{
		{ID: 4, FriendlyName: "Moonlander"},
		{ID: 1, FriendlyName: "Voyager", IsConnected: true},
	}

	tests := []struct {
		name       string
		keyboards  []client.Keyboard
		asJSON     bool
		wantOutput string
	}{
		{
			name:       "keeps keymapp order",
			keyboards:  keyboards,
			wantOutput: "4: Moonlander\n1: Voyager (connected)\n",
		},
		{
			name:       "no keyboards",
			wantOutput: "No keyboards found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mock := &mockClient{keyboards: tt.keyboards}

			err := executeList(context.Background(), &buf, mock, tt.asJSON)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestExecuteList_JSON(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockClient{keyboards: []client.Keyboard{{ID: 1, FriendlyName: "Voyager", IsConnected: true}}}

	require.NoError(t, executeList(context.Background(), &buf, mock, true))

	var got []client.Keyboard
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, mock.keyboards, got)
}
