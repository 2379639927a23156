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
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadConfig reads for the rest of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSocket, EnvPort, EnvTimeout} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetSocketPath(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		envValue string
		expected string
	}{
		{
			name:     "explicit path wins over env",
			explicit: "/tmp/explicit.sock",
			envValue: "/tmp/env.sock",
			expected: "/tmp/explicit.sock",
		},
		{
			name:     "custom path from env",
			envValue: "/tmp/custom-keymapp.sock",
			expected: "/tmp/custom-keymapp.sock",
		},
		{
			name:     "relative path from env",
			envValue: "./keymapp.sock",
			expected: "./keymapp.sock",
		},
		{
			name:     "absolute path with spaces",
			envValue: "/tmp/path with spaces/keymapp.sock",
			expected: "/tmp/path with spaces/keymapp.sock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.envValue != "" {
				t.Setenv(EnvSocket, tt.envValue)
			}

			result, err := GetSocketPath(tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetSocketPath_Default(t *testing.T) {
	clearEnv(t)
	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}

	result, err := GetSocketPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, ".keymapp", "keymapp.sock"), result)
}

func TestGetPort(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		envValue  string
		want      int
		wantError bool
	}{
		{name: "default", want: DefaultPort},
		{name: "from env", envValue: "50052", want: 50052},
		{name: "explicit wins", explicit: "6000", envValue: "50052", want: 6000},
		{name: "invalid env", envValue: "keymapp", wantError: true},
		{name: "out of range", explicit: "0", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.envValue != "" {
				t.Setenv(EnvPort, tt.envValue)
			}

			got, err := GetPort(tt.explicit)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig_TransportSelection(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		env       map[string]string
		want      Transport
		wantPort  int
		wantPath  string
	}{
		{
			name:      "explicit socket",
			overrides: Overrides{SocketPath: "/tmp/a.sock", Port: "6000"},
			want:      TransportUnix,
			wantPath:  "/tmp/a.sock",
		},
		{
			name:      "explicit port",
			overrides: Overrides{Port: "6000"},
			env:       map[string]string{EnvSocket: "/tmp/env.sock"},
			want:      TransportTCP,
			wantPort:  6000,
		},
		{
			name:     "socket env beats port env",
			env:      map[string]string{EnvSocket: "/tmp/env.sock", EnvPort: "6000"},
			want:     TransportUnix,
			wantPath: "/tmp/env.sock",
		},
		{
			name:     "port env",
			env:      map[string]string{EnvPort: "6001"},
			want:     TransportTCP,
			wantPort: 6001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Transport)
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantPath, cfg.SocketPath)
			assert.Equal(t, DefaultConnectTimeout, cfg.ConnectTimeout)
		})
	}
}

func TestLoadConfig_PlatformDefault(t *testing.T) {
	clearEnv(t)
	if _, err := os.UserConfigDir(); err != nil {
		t.Skipf("no user config dir: %v", err)
	}

	cfg, err := LoadConfig(Overrides{})
	require.NoError(t, err)
	if runtime.GOOS == "windows" {
		assert.Equal(t, TransportTCP, cfg.Transport)
		assert.Equal(t, DefaultPort, cfg.Port)
	} else {
		assert.Equal(t, TransportUnix, cfg.Transport)
		assert.Contains(t, cfg.SocketPath, filepath.Join(".keymapp", "keymapp.sock"))
	}
}

func TestLoadConfig_Timeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "250ms")

	cfg, err := LoadConfig(Overrides{SocketPath: "/tmp/a.sock"})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.ConnectTimeout)

	cfg, err = LoadConfig(Overrides{SocketPath: "/tmp/a.sock", Timeout: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.ConnectTimeout)

	t.Setenv(EnvTimeout, "soon")
	_, err = LoadConfig(Overrides{SocketPath: "/tmp/a.sock"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(Overrides{Port: "99999"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of valid range")
}

func TestConfigValidate_CollectsErrors(t *testing.T) {
	err := Config{Transport: TransportTCP, Port: 0, ConnectTimeout: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port 0")
	assert.Contains(t, err.Error(), "timeout must be positive")

	err = Config{Transport: "carrier-pigeon", ConnectTimeout: time.Second}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestConfigTarget(t *testing.T) {
	assert.Equal(t, "port 50051", Config{Transport: TransportTCP, Port: 50051}.Target())
	assert.Equal(t, "/tmp/k.sock", Config{Transport: TransportUnix, SocketPath: "/tmp/k.sock"}.Target())
}
