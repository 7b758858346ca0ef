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
	"strings"

	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/spf13/cobra"
)

const maxGenerateCount = 100

var (
	errBadCount     = fmt.Errorf("--count must be between 1 and %d", maxGenerateCount)
	errCopyMultiple = errors.New("--copy works with a single password only")
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		count  int
		copyIt bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random 12-character password that meets every criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > maxGenerateCount {
				return errBadCount
			}
			if copyIt && count != 1 {
				return errCopyMultiple
			}
			if err := a.setup(cmd, false); err != nil {
				return err
			}

			if copyIt {
				return generateToClipboard(a, cmd)
			}
			return generateToOutput(a, cmd, count, asJSON)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVarP(&copyIt, "copy", "c", false, "copy the password to the clipboard instead of printing it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print passwords and reports as JSON")
	return cmd
}

func generateToOutput(a *app, cmd *cobra.Command, count int, asJSON bool) error {
	out := cmd.OutOrStdout()
	machine := ux.GetPersonality().Level == ux.PersonalityMachine
	reports := make([]reportJSON, 0, count)

	for i := 0; i < count; i++ {
		lb, err := a.generator.GenerateLocked()
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		password := lb.String()
		result := strength.Evaluate(password)

		switch {
		case asJSON:
			report := newReportJSON(result)
			// lb.String aliases locked memory that Destroy unmaps.
			report.Password = strings.Clone(password)
			reports = append(reports, report)
		case machine:
			fmt.Fprintln(out, password)
		default:
			fmt.Fprintln(out, ux.Styles.Highlight.Render(password))
			ux.Report(out, result)
		}
		lb.Destroy()
	}

	a.log().Info("generated passwords", "count", count)
	if asJSON {
		return writeJSON(out, reports)
	}
	return nil
}

func generateToClipboard(a *app, cmd *cobra.Command) error {
	lb, err := a.generator.GenerateLocked()
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	defer lb.Destroy()

	result := strength.Evaluate(lb.String())
	if err := a.activeClipboard().Write(lb.String()); err != nil {
		a.log().Warn("clipboard write failed", "error", err)
		return fmt.Errorf("copy password: %w", err)
	}

	a.log().Info("copied generated password", "length", result.Length, "score", result.Score)
	out := cmd.OutOrStdout()
	ux.Success(out, "Password copied to clipboard")
	ux.Report(out, result)
	return nil
}
