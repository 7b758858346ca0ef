// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tui provides the interactive password checker.
//
// # Description
//
// The checker shows a masked password field, a strength label, a progress
// bar and the criteria checklist. Every edit re-runs strength.Evaluate and
// the view is rebuilt from the Result; the model keeps no derived widget
// state of its own. Generate fills the field with a fresh password and
// re-evaluates it. Copy hands the current value to the clipboard.
//
// # Thread Safety
//
// TUI components are designed for single-threaded use within the bubbletea
// event loop. Do not access TUI state from multiple goroutines.
package tui

import (
	"errors"
	"time"

	"github.com/AleutianAI/passcheck/pkg/clipboard"
	"github.com/AleutianAI/passcheck/pkg/logging"
	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 3 * time.Second

// =============================================================================
// Collaborators
// =============================================================================

// Generator produces a new password. *strength.Generator satisfies it.
type Generator interface {
	Generate() (string, error)
}

// =============================================================================
// Messages
// =============================================================================

// clearStatusMsg expires the status line set with the matching sequence.
type clearStatusMsg struct {
	seq int
}

// =============================================================================
// Config
// =============================================================================

// Config configures the checker TUI.
type Config struct {
	// ShowPassword starts with the field unmasked.
	ShowPassword bool

	// ShowHelp renders the key-binding footer.
	ShowHelp bool

	// Width overrides the terminal width (0 = auto-detect).
	Width int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ShowPassword: false,
		ShowHelp:     true,
	}
}

// =============================================================================
// Model
// =============================================================================

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
)

// Model is the bubbletea model for the password checker.
type Model struct {
	config Config
	keys   KeyMap

	input textinput.Model
	bar   progress.Model
	help  help.Model

	generator Generator
	clip      clipboard.Clipboard
	logger    *logging.Logger

	// result is the evaluation of the current input value.
	result strength.Result

	showPassword bool
	width        int

	status     string
	statusKind statusKind
	statusSeq  int

	quitting bool
}

// NewModel creates a checker model.
//
// # Inputs
//
//   - config: Display options.
//   - gen: Password generator used by the generate action.
//   - clip: Clipboard used by the copy action.
//   - logger: Receives metadata only, never password text. May be nil.
//
// # Outputs
//
//   - Model: Ready-to-use model for tea.NewProgram.
func NewModel(config Config, gen Generator, clip clipboard.Clipboard, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true})
	}
	if clip == nil {
		clip = clipboard.Disabled{}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type a password"
	ti.EchoCharacter = '*'
	// 0 is unlimited; the field never truncates.
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	m := Model{
		config:       config,
		keys:         DefaultKeyMap(),
		input:        ti,
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
		help:         help.New(),
		generator:    gen,
		clip:         clip,
		logger:       logger,
		showPassword: config.ShowPassword,
		width:        config.Width,
	}
	m.applyEchoMode()
	m.evaluate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.config.Width == 0 {
			m.width = msg.Width
		}
		m.resize()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusKind = statusNone
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Generate):
			return m, m.generate()

		case key.Matches(msg, m.keys.Copy):
			return m, m.copy()

		case key.Matches(msg, m.keys.Toggle):
			m.showPassword = !m.showPassword
			m.applyEchoMode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.evaluate()
	}
	return m, cmd
}

// Result returns the evaluation of the current input.
func (m Model) Result() strength.Result {
	return m.result
}

// Value returns the current password field contents.
func (m Model) Value() string {
	return m.input.Value()
}

// =============================================================================
// Actions
// =============================================================================

func (m *Model) evaluate() {
	m.result = strength.Evaluate(m.input.Value())
	m.logger.Debug("evaluated password",
		"length", m.result.Length,
		"score", m.result.Score,
		"label", string(m.result.Label()),
	)
}

func (m *Model) generate() tea.Cmd {
	if m.generator == nil {
		return m.setStatus(statusError, "No generator configured")
	}

	pw, err := m.generator.Generate()
	if err != nil {
		m.logger.Error("password generation failed", "error", err)
		if errors.Is(err, strength.ErrEntropy) {
			return m.setStatus(statusError, "Secure random source unavailable; password not generated")
		}
		return m.setStatus(statusError, "Generation failed: "+err.Error())
	}

	m.input.SetValue(pw)
	m.input.CursorEnd()
	m.evaluate()
	m.logger.Info("generated password", "length", m.result.Length, "score", m.result.Score)
	return m.setStatus(statusInfo, "Generated a new password")
}

func (m *Model) copy() tea.Cmd {
	value := m.input.Value()
	if value == "" {
		return m.setStatus(statusError, "Nothing to copy")
	}

	if err := m.clip.Write(value); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return m.setStatus(statusError, "Copy failed: "+err.Error())
	}
	m.logger.Info("copied password to clipboard", "length", m.result.Length)
	return m.setStatus(statusInfo, "Password copied to clipboard")
}

func (m *Model) applyEchoMode() {
	if m.showPassword {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

// setStatus shows text and schedules its removal.
func (m *Model) setStatus(kind statusKind, text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusKind = kind

	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) resize() {
	w := m.width - 6
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
	m.input.Width = w
	m.help.Width = m.width
}

// =============================================================================
// Program
// =============================================================================

// Run starts the checker on the terminal and blocks until the user quits.
func Run(config Config, gen Generator, clip clipboard.Clipboard, logger *logging.Logger) error {
	m := NewModel(config, gen, clip, logger)
	_, err := tea.NewProgram(m).Run()
	return err
}
