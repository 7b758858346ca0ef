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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// reportJSON is the --json shape of an evaluation.
type reportJSON struct {
	Password string          `json:"password,omitempty"`
	Score    int             `json:"score"`
	MaxScore int             `json:"max_score"`
	Label    string          `json:"label"`
	Length   int             `json:"length"`
	Met      int             `json:"met"`
	Criteria map[string]bool `json:"criteria"`
}

func newReportJSON(r strength.Result) reportJSON {
	criteria := make(map[string]bool, len(strength.Criteria))
	for _, c := range strength.Criteria {
		criteria[c.String()] = r.Met(c)
	}
	return reportJSON{
		Score:    r.Score,
		MaxScore: strength.MaxScore,
		Label:    string(r.Label()),
		Length:   r.Length,
		Met:      r.MetCount(),
		Criteria: criteria,
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password once and print the checklist",
		Long: `Score a password and print its strength label and criteria checklist.

With no argument the password is prompted for (masked) on a terminal, or
read as one line from stdin otherwise. Passing the password as an argument
leaves it in your shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}

			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}

			result := strength.Evaluate(password)
			a.log().Info("evaluated password",
				"length", result.Length,
				"score", result.Score,
				"label", string(result.Label()),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, newReportJSON(result))
			}
			ux.Report(out, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

// readPassword takes the argument, a masked prompt, or one stdin line.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		ux.Warning(cmd.ErrOrStderr(), "Passwords given as arguments may remain in shell history")
		return args[0], nil
	}

	if ux.IsInteractive() && cmd.InOrStdin() == os.Stdin {
		var password string
		err := huh.NewInput().
			Title("Enter Password:").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Run()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return password, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	// Only the line ending is stripped; spaces are valid password characters.
	return strings.TrimRight(line, "\r\n"), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
