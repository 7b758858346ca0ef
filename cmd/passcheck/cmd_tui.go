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
	"errors"
	"fmt"
	"os"

	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/AleutianAI/passcheck/services/checker/tui"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned when the TUI is requested without a terminal.
var errNotInteractive = errors.New("interactive checker needs a terminal; use 'passcheck check' instead")

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive password checker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a, cmd)
		},
	}
}

func runTUI(a *app, cmd *cobra.Command) error {
	if err := a.setup(cmd, true); err != nil {
		return err
	}
	if !ux.IsTerminal(os.Stdin) || !ux.IsTerminal(os.Stdout) {
		return errNotInteractive
	}

	cfg := tui.DefaultConfig()
	cfg.ShowPassword = a.cfg.UI.ShowPassword
	cfg.ShowHelp = a.cfg.UI.ShowHelp && ux.GetPersonality().ShowTips

	a.log().Info("starting interactive checker")
	if err := tui.Run(cfg, a.generator, a.activeClipboard(), a.log()); err != nil {
		return fmt.Errorf("interactive checker: %w", err)
	}
	return nil
}
