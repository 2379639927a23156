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

// Package cmd implements the CLI commands for Kontroll using cobra.
// It provides the root command structure and version management.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// EnvDebug enables debug logging when set to any non-empty value.
const EnvDebug = "KONTROLL_DEBUG"

// Version is the application version string.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Global connection flags, shared by every subcommand.
var (
	socketFlag  string
	portFlag    string
	timeoutFlag time.Duration
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "kontroll",
	Short: "Kontroll - control your ZSA keyboard from the command line",
	Long: `Kontroll talks to Keymapp's API to control a ZSA keyboard.

Keymapp must be running with its API started. Kontroll connects through
Keymapp's Unix socket, or through a local TCP port when --port or
KEYMAPP_PORT is given (always on Windows).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate(Version, BuildTime))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&socketFlag, "socket", "", "Path to Keymapp's API socket (env KEYMAPP_SOCKET)")
	pf.StringVar(&portFlag, "port", "", "Connect over TCP to this local port (env KEYMAPP_PORT)")
	pf.DurationVar(&timeoutFlag, "timeout", 0, "How long to wait for Keymapp to accept the connection (env KEYMAPP_TIMEOUT, default 5s)")
	pf.BoolVar(&debugFlag, "debug", false, "Log debug output to stderr (env KONTROLL_DEBUG)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(fmt.Sprintf("[ERROR] %v", err))
		return 1
	}
	return 0
}

// SetVersion updates the version and build time for display in help and version output.
func SetVersion(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate(version, buildTime))
}

func versionTemplate(version, buildTime string) string {
	return fmt.Sprintf("Kontroll v%s (built: %s)\n", version, buildTime)
}

// newLogger builds the invocation logger. Only errors are shown unless
// debug output was requested.
func newLogger(w io.Writer) hclog.Logger {
	level := hclog.Error
	if debugFlag || os.Getenv(EnvDebug) != "" {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "kontroll",
		Output: w,
		Level:  level,
	})
}
