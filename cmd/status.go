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
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	statusJSON   bool
	statusOutput string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get the status of Keymapp and the connected keyboard",
	Long: `Shows Keymapp's version, Kontroll's version and, when a keyboard is
connected, its name, firmware version and current layer.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&statusJSON, "json", "j", false, "Output as JSON (same as --output json)")
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", outputText, "Output format: text, json or yaml")
	statusCmd.MarkFlagsMutuallyExclusive("json", "output")
}

func runStatus(cmd *cobra.Command, args []string) error {
	format := statusOutput
	if statusJSON {
		format = outputJSON
	}
	if err := validateOutput(format); err != nil {
		return err
	}

	return withClient(cmd, func(ctx context.Context, w io.Writer, api KeyboardAPI) error {
		return executeStatus(ctx, w, api, format)
	})
}

// executeStatus prints the status in the given format.
func executeStatus(ctx context.Context, w io.Writer, api KeyboardAPI, format string) error {
	status, err := api.GetStatus(ctx)
	if err != nil {
		return err
	}

	if format == outputText {
		fmt.Fprint(w, status.String())
		return nil
	}
	return writeStructured(w, format, status)
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// writeStructured serializes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
