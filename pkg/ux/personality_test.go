// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"os"
	"testing"
)

// =============================================================================
// GetPersonality / SetPersonality Tests
// =============================================================================

func TestSetPersonality_AndGet(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonality(Personality{Level: PersonalityMinimal, ShowTips: false})

	got := GetPersonality()
	if got.Level != PersonalityMinimal {
		t.Errorf("expected level %v, got %v", PersonalityMinimal, got.Level)
	}
	if got.ShowTips {
		t.Errorf("expected ShowTips false")
	}
}

func TestDefaultPersonality(t *testing.T) {
	p := DefaultPersonality()
	if p.Level != PersonalityFull {
		t.Errorf("expected full, got %v", p.Level)
	}
	if !p.ShowTips {
		t.Error("expected ShowTips true")
	}
}

// =============================================================================
// ParsePersonalityLevel Tests
// =============================================================================

func TestParsePersonalityLevel(t *testing.T) {
	tests := []struct {
		in   string
		want PersonalityLevel
	}{
		{"full", PersonalityFull},
		{"F", PersonalityFull},
		{"standard", PersonalityStandard},
		{"std", PersonalityStandard},
		{"minimal", PersonalityMinimal},
		{"m", PersonalityMinimal},
		{"machine", PersonalityMachine},
		{"quiet", PersonalityMachine},
		{"bogus", PersonalityStandard},
		{"", PersonalityStandard},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePersonalityLevel(tt.in); got != tt.want {
				t.Errorf("ParsePersonalityLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// =============================================================================
// InitPersonality Tests
// =============================================================================

func TestInitPersonality_EnvWins(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	t.Setenv(PersonalityEnvVar, "minimal")
	InitPersonality("full")

	if got := GetPersonality().Level; got != PersonalityMinimal {
		t.Errorf("expected minimal from env, got %v", got)
	}
}

func TestInitPersonality_NonTerminalIsMachine(t *testing.T) {
	if IsTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	orig := GetPersonality()
	defer SetPersonality(orig)

	t.Setenv(PersonalityEnvVar, "")
	InitPersonality("full")

	if got := GetPersonality().Level; got != PersonalityMachine {
		t.Errorf("expected machine for non-terminal stdout, got %v", got)
	}
}

func TestIsTerminal_NilAndFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file is not a terminal")
	}
}
