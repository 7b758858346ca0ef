// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/AleutianAI/passcheck/cmd/passcheck/config"
	"github.com/AleutianAI/passcheck/pkg/clipboard"
	"github.com/AleutianAI/passcheck/pkg/logging"
	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/awnumar/memguard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// passwordGenerator is satisfied by *strength.Generator.
type passwordGenerator interface {
	Generate() (string, error)
	GenerateLocked() (*memguard.LockedBuffer, error)
}

// app carries the state shared by every command in one invocation.
type app struct {
	// flags
	configPath  string
	personality string
	logLevel    string

	cfg       config.PasscheckConfig
	logger    *logging.Logger
	generator passwordGenerator

	// clip overrides the configured clipboard when non-nil (tests).
	clip clipboard.Clipboard
}

func newApp() *app {
	return &app{generator: strength.NewGenerator()}
}

// log returns the session logger, or a default one before setup ran.
func (a *app) log() *logging.Logger {
	if a.logger == nil {
		a.logger = logging.Default()
	}
	return a.logger
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

func (a *app) activeClipboard() clipboard.Clipboard {
	if a.clip != nil {
		return a.clip
	}
	if !a.cfg.Clipboard.Enabled {
		return clipboard.Disabled{}
	}
	return clipboard.NewSystem()
}

// setup loads config, applies flag overrides and builds the logger.
// quiet keeps log lines off the terminal (the TUI owns it).
func (a *app) setup(cmd *cobra.Command, quiet bool) error {
	if a.personality != "" {
		if err := config.ValidatePersonality(a.personality); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	ux.InitPersonality(cfg.UI.Personality)
	if a.personality != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(a.personality))
	}

	levelName := cfg.Logging.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	base := logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: "passcheck",
		JSON:    cfg.Logging.JSON,
		Quiet:   quiet,
		Output:  cmd.ErrOrStderr(),
	})
	if a.logger != nil {
		_ = a.logger.Close()
	}
	a.logger = base.With("session_id", uuid.NewString(), "command", cmd.Name())
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Check password strength and generate strong passwords",
		Long: `passcheck scores a password against five fixed criteria
(length, uppercase, lowercase, digit, special character) and generates
random 12-character passwords that satisfy all of them.

Run without a subcommand to open the interactive checker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a, cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.passcheck/passcheck.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.personality, "personality", "", "output style: full, standard, minimal, machine")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newTUICmd(a),
		newCheckCmd(a),
		newGenerateCmd(a),
	)
	return rootCmd
}
