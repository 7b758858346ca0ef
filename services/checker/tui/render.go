// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/passcheck/pkg/strength"
	"github.com/AleutianAI/passcheck/pkg/ux"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = ux.Styles.Title.MarginBottom(1)

	fieldLabelStyle = ux.Styles.Subtitle

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ux.ColorTealDeep).
			Padding(0, 1)

	toggleStyle = lipgloss.NewStyle().
			Foreground(ux.ColorMuted)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(ux.ColorSuccess)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Complexity Checker"))
	b.WriteString("\n")

	b.WriteString(fieldLabelStyle.Render("Enter Password:"))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderToggle())
	b.WriteString("\n\n")

	b.WriteString(m.renderStrength())
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.result.Fraction()))
	b.WriteString(fmt.Sprintf("  %d/%d", m.result.Score, strength.MaxScore))
	b.WriteString("\n\n")

	b.WriteString(m.renderChecklist())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	if m.config.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderToggle() string {
	box := "[ ]"
	if m.showPassword {
		box = "[x]"
	}
	return toggleStyle.Render(box + " Show Password")
}

func (m Model) renderStrength() string {
	label := m.result.Label()
	return fieldLabelStyle.Render("Password Strength: ") + ux.LabelStyle(label).Render(string(label))
}

func (m Model) renderChecklist() string {
	lines := make([]string, 0, len(strength.Criteria))
	for _, c := range strength.Criteria {
		lines = append(lines, ux.CriterionLine(c, m.result.Met(c)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.statusKind == statusError {
		return ux.Styles.ErrorBox.Render(ux.IconError.Render() + " " + m.status)
	}
	return statusInfoStyle.Render(string(ux.IconSuccess) + " " + m.status)
}
