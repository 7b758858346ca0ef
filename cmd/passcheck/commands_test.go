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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AleutianAI/passcheck/cmd/passcheck/config"
	"github.com/AleutianAI/passcheck/pkg/clipboard"
	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with a temp config and machine output.
func execute(t *testing.T, a *app, stdin string, args ...string) cliResult {
	t.Helper()

	orig := ux.GetPersonality()
	t.Cleanup(func() { ux.SetPersonality(orig) })

	configPath := filepath.Join(t.TempDir(), "passcheck.yaml")
	root := newRootCmd(a)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", configPath, "--personality", "machine"}, args...))

	err := root.Execute()
	a.close()
	return cliResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func testApp() *app {
	a := newApp()
	a.clip = clipboard.NewMemory()
	return a
}

// =============================================================================
// check
// =============================================================================

func TestCheck_Argument(t *testing.T) {
	res := execute(t, testApp(), "", "check", "Abcdefgh")
	require.NoError(t, res.err)

	want := "score=3 max=6 label=Moderate\n" +
		"length\tmet\n" +
		"uppercase\tmet\n" +
		"lowercase\tmet\n" +
		"digit\tmissing\n" +
		"special\tmissing\n"
	assert.Equal(t, want, res.stdout)
}

func TestCheck_ArgumentWarnsAboutHistory(t *testing.T) {
	res := execute(t, testApp(), "", "check", "Abcdefgh")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "WARN: Passwords given as arguments may remain in shell history")
	assert.NotContains(t, res.stdout, "WARN")
}

func TestCheck_Stdin(t *testing.T) {
	res := execute(t, testApp(), "abc\n", "check")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "score=1 max=6 label=Very Weak\n"), res.stdout)
}

func TestCheck_StdinKeepsSpaces(t *testing.T) {
	res := execute(t, testApp(), "  ab  \r\n", "check", "--json")
	require.NoError(t, res.err)

	var report reportJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 6, report.Length)
}

func TestCheck_EmptyStdin(t *testing.T) {
	res := execute(t, testApp(), "", "check", "--json")
	require.NoError(t, res.err)

	var report reportJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, "", report.Label)
	for name, met := range report.Criteria {
		assert.False(t, met, name)
	}
}

func TestCheck_JSON(t *testing.T) {
	res := execute(t, testApp(), "", "check", "--json", "Abcdefgh1!")
	require.NoError(t, res.err)

	var report reportJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))

	assert.Equal(t, 5, report.Score)
	assert.Equal(t, 5, report.Met)
	assert.Equal(t, strength.MaxScore, report.MaxScore)
	assert.Equal(t, "Strong", report.Label)
	assert.Empty(t, report.Password)
	assert.Len(t, report.Criteria, 5)
	for name, met := range report.Criteria {
		assert.True(t, met, name)
	}
}

func TestCheck_TooManyArgs(t *testing.T) {
	res := execute(t, testApp(), "", "check", "a", "b")
	assert.Error(t, res.err)
}

// =============================================================================
// generate
// =============================================================================

func TestGenerate_Single(t *testing.T) {
	res := execute(t, testApp(), "", "generate")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], strength.GeneratedLength)
	assert.Equal(t, strength.MaxScore, strength.Evaluate(lines[0]).Score)
}

func TestGenerate_Count(t *testing.T) {
	res := execute(t, testApp(), "", "generate", "-n", "5")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 5)
	for _, pw := range lines {
		assert.Equal(t, strength.MaxScore, strength.Evaluate(pw).Score, pw)
	}
}

func TestGenerate_JSON(t *testing.T) {
	res := execute(t, testApp(), "", "generate", "--json", "--count", "3")
	require.NoError(t, res.err)

	var reports []reportJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.Len(t, r.Password, strength.GeneratedLength)
		assert.Equal(t, strength.MaxScore, r.Score)
		assert.Equal(t, "Strong", r.Label)
	}
}

func TestGenerate_Copy(t *testing.T) {
	a := testApp()
	clip := a.clip.(*clipboard.Memory)

	res := execute(t, a, "", "generate", "--copy")
	require.NoError(t, res.err)

	require.Equal(t, 1, clip.Writes())
	assert.Len(t, clip.Text(), strength.GeneratedLength)
	assert.Equal(t, strength.MaxScore, strength.Evaluate(clip.Text()).Score)
	assert.Contains(t, res.stdout, "OK: Password copied to clipboard")
	assert.NotContains(t, res.stdout, clip.Text())
}

func TestGenerate_CopyFailure(t *testing.T) {
	a := testApp()
	a.clip.(*clipboard.Memory).FailWith(clipboard.ErrUnsupported)

	res := execute(t, a, "", "generate", "--copy")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, clipboard.ErrUnsupported)
}

func TestGenerate_CopyDisabledByConfig(t *testing.T) {
	a := newApp()
	a.cfg.Clipboard.Enabled = false
	assert.IsType(t, clipboard.Disabled{}, a.activeClipboard())
}

func TestGenerate_FlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero count", []string{"generate", "--count", "0"}, errBadCount},
		{"too many", []string{"generate", "--count", "101"}, errBadCount},
		{"copy multiple", []string{"generate", "--copy", "-n", "2"}, errCopyMultiple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, testApp(), "", tt.args...)
			assert.ErrorIs(t, res.err, tt.want)
		})
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_EntropyFailureIsFatal(t *testing.T) {
	a := testApp()
	a.generator = strength.NewGeneratorWithSource(errReader{})

	res := execute(t, a, "", "generate")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, strength.ErrEntropy)
	assert.Empty(t, res.stdout)
}

// =============================================================================
// Setup / config
// =============================================================================

func TestSetup_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "passcheck.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ui:\n  personality: loud\n"), 0644))

	a := testApp()
	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", configPath, "check", "x"})

	err := root.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSetup_InvalidPersonalityFlag(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "passcheck.yaml")

	a := testApp()
	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", configPath, "--personality", "loud", "check", "x"})

	err := root.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSetup_BadLogLevel(t *testing.T) {
	res := execute(t, testApp(), "", "--log-level", "loud", "check", "x")
	assert.Error(t, res.err)
}

func TestSetup_DebugLogsCarrySession(t *testing.T) {
	res := execute(t, testApp(), "", "--log-level", "debug", "check", "Abcdefgh")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "session_id=")
	assert.Contains(t, res.stderr, "evaluated password")
	assert.NotContains(t, res.stderr, "Abcdefgh")
}

func TestTUI_RequiresTerminal(t *testing.T) {
	if ux.IsTerminal(os.Stdin) && ux.IsTerminal(os.Stdout) {
		t.Skip("running on a terminal")
	}
	res := execute(t, testApp(), "", "tui")
	assert.ErrorIs(t, res.err, errNotInteractive)
}

func TestRun_PrintsCommandError(t *testing.T) {
	orig := ux.GetPersonality()
	t.Cleanup(func() { ux.SetPersonality(orig) })
	ux.SetPersonalityLevel(ux.PersonalityMachine)

	var stderr bytes.Buffer
	code := run([]string{"generate", "--count", "0"}, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "ERROR: "+errBadCount.Error()+"\n", stderr.String())
}
