// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// DefaultPath returns ~/.passcheck/passcheck.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".passcheck", "passcheck.yaml"), nil
}

// Load reads the config at path, creating it with defaults on first run.
// An empty path means DefaultPath.
func Load(path string) (PasscheckConfig, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return PasscheckConfig{}, err
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return PasscheckConfig{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PasscheckConfig{}, fmt.Errorf("failed to read the config file %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PasscheckConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return PasscheckConfig{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func Validate(cfg PasscheckConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// personalityTag matches the validate tag on UIConfig.Personality.
const personalityTag = "oneof=full standard minimal machine"

// ValidatePersonality rejects personality names the config file would reject.
func ValidatePersonality(name string) error {
	if err := validate.Var(name, personalityTag); err != nil {
		return fmt.Errorf("%w: personality %q must be one of full, standard, minimal, machine", ErrInvalidConfig, name)
	}
	return nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
