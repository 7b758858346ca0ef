// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the passcheck CLI and TUI.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/charmbracelet/lipgloss"
)

// Color palette - deep ocean teals plus the traffic-light strength colors
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // highlights
	ColorTealPrimary = lipgloss.Color("#20B9B4") // main brand color
	ColorTealDeep    = lipgloss.Color("#16858E") // borders
	ColorSlate       = lipgloss.Color("#2C4A54") // muted text

	ColorSuccess = lipgloss.Color("#2ECC71")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = ColorSlate

	// Strength label colors
	ColorWeak     = ColorError
	ColorModerate = lipgloss.Color("#E67E22")
	ColorStrong   = ColorSuccess
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box      lipgloss.Style
	ErrorBox lipgloss.Style

	CriterionMet    lipgloss.Style
	CriterionMissed lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	CriterionMet:    lipgloss.NewStyle().Foreground(ColorStrong),
	CriterionMissed: lipgloss.NewStyle().Foreground(ColorWeak),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconPending Icon = "○"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconPending:
		return Styles.Muted.Render(string(i))
	default:
		return string(i)
	}
}

// LabelStyle returns the style for a strength label: red, orange or green.
func LabelStyle(label strength.Label) lipgloss.Style {
	base := Styles.Bold
	switch label {
	case strength.LabelVeryWeak:
		return base.Foreground(ColorWeak)
	case strength.LabelModerate:
		return base.Foreground(ColorModerate)
	case strength.LabelStrong:
		return base.Foreground(ColorStrong)
	default:
		return base
	}
}

// CriterionLine renders one checklist entry.
func CriterionLine(c strength.Criterion, met bool) string {
	if met {
		return IconSuccess.Render() + " " + Styles.CriterionMet.Render(c.Description())
	}
	return IconError.Render() + " " + Styles.CriterionMissed.Render(c.Description())
}

// Print helpers that respect personality level

// Success writes a success message with checkmark
func Success(w io.Writer, text string) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "OK: %s\n", text)
	case PersonalityMinimal:
		fmt.Fprintf(w, "%s %s\n", IconSuccess.Render(), text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
	}
}

// Warning writes a warning message
func Warning(w io.Writer, text string) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "WARN: %s\n", text)
	case PersonalityMinimal:
		fmt.Fprintf(w, "%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error writes an error message
func Error(w io.Writer, text string) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Fprintf(w, "%s %s\n", IconError.Render(), text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// ProgressBar renders a simple progress bar
func ProgressBar(current, total int, width int) string {
	if GetPersonality().Level == PersonalityMachine {
		return fmt.Sprintf("%d/%d", current, total)
	}
	if total <= 0 {
		total = 1
	}
	pct := float64(current) / float64(total)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := Styles.Success.Render(strings.Repeat("█", filled)) +
		Styles.Muted.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s %d/%d", bar, current, total)
}

// Report writes the evaluation of a password: label, score and checklist.
//
// # Description
//
// Machine personality writes stable key=value and tab-separated lines:
//
//	score=5 max=6 label=Strong
//	length	met
//	uppercase	met
//	...
//
// Other personalities write the styled checklist; full wraps it in a box.
func Report(w io.Writer, r strength.Result) {
	p := GetPersonality()

	if p.Level == PersonalityMachine {
		fmt.Fprintf(w, "score=%d max=%d label=%s\n", r.Score, strength.MaxScore, string(r.Label()))
		for _, c := range strength.Criteria {
			state := "missing"
			if r.Met(c) {
				state = "met"
			}
			fmt.Fprintf(w, "%s\t%s\n", c, state)
		}
		return
	}

	var b strings.Builder
	b.WriteString("Password Strength: ")
	b.WriteString(LabelStyle(r.Label()).Render(string(r.Label())))
	b.WriteString("\n")
	if p.Level != PersonalityMinimal {
		b.WriteString(ProgressBar(r.Score, strength.MaxScore, 30))
		b.WriteString("\n")
	}
	for i, c := range strength.Criteria {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(CriterionLine(c, r.Met(c)))
	}

	if p.Level == PersonalityFull {
		fmt.Fprintln(w, Styles.Box.Render(b.String()))
		return
	}
	fmt.Fprintln(w, b.String())
}
