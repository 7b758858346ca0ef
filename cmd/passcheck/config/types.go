// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the passcheck YAML configuration.
//
// The file only covers presentation and logging. Scoring criteria,
// thresholds and the generated length are fixed in package strength and
// cannot be configured.
package config

// PasscheckConfig is the on-disk configuration.
type PasscheckConfig struct {
	// UI: how the checker looks when it starts
	UI UIConfig `yaml:"ui"`

	// Logging: where diagnostics go
	Logging LoggingConfig `yaml:"logging"`

	// Clipboard: whether copy actions touch the system clipboard
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

type UIConfig struct {
	// ShowPassword starts the TUI unmasked.
	ShowPassword bool `yaml:"show_password"`

	// ShowHelp renders the key-binding footer.
	ShowHelp bool `yaml:"show_help"`

	// Personality is one of full, standard, minimal, machine.
	Personality string `yaml:"personality" validate:"omitempty,oneof=full standard minimal machine"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Dir   string `yaml:"dir,omitempty"` // e.g. ~/.passcheck/logs
	JSON  bool   `yaml:"json"`
}

type ClipboardConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() PasscheckConfig {
	return PasscheckConfig{
		UI: UIConfig{
			ShowPassword: false,
			ShowHelp:     true,
			Personality:  "full",
		},
		Logging: LoggingConfig{
			Level: "warn",
			Dir:   "",
			JSON:  false,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
	}
}
