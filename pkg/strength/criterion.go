// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package strength scores candidate passwords and generates strong ones.
//
// # Description
//
// Two operations live here:
//
//   - Evaluate: a pure function from a password to a Result holding the
//     score (0-6), the per-criterion checklist and the strength label.
//   - Generator: produces a 12-character password that satisfies every
//     criterion, drawing all randomness from a cryptographically secure
//     source.
//
// The criteria, the special-character set and the thresholds are fixed.
// Nothing in this package reads configuration.
//
// # Thread Safety
//
// Evaluate holds no state and is safe for concurrent use. A Generator only
// reads from its entropy source; sharing one is safe when the source is.
package strength

// =============================================================================
// Constants
// =============================================================================

const (
	// MinLength is the minimum number of characters for the length criterion.
	MinLength = 8

	// RecommendedLength earns the bonus length point.
	RecommendedLength = 12

	// MaxScore is the highest achievable score: two length points plus one
	// point for each character class.
	MaxScore = 6

	// GeneratedLength is the length of every generated password.
	GeneratedLength = 12

	// SpecialChars is the fixed set of characters that satisfy CriterionSpecial.
	SpecialChars = "@#$%^&*(),.?!"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
)

// =============================================================================
// Criterion
// =============================================================================

// Criterion is one of the five fixed checks applied to a password.
type Criterion int

const (
	// CriterionLength requires at least MinLength characters.
	CriterionLength Criterion = iota

	// CriterionUppercase requires an ASCII uppercase letter.
	CriterionUppercase

	// CriterionLowercase requires an ASCII lowercase letter.
	CriterionLowercase

	// CriterionDigit requires an ASCII digit.
	CriterionDigit

	// CriterionSpecial requires a character from SpecialChars.
	CriterionSpecial
)

// Criteria lists every criterion in checklist order.
var Criteria = []Criterion{
	CriterionLength,
	CriterionUppercase,
	CriterionLowercase,
	CriterionDigit,
	CriterionSpecial,
}

// String returns the stable criterion name used in reports and JSON output.
func (c Criterion) String() string {
	switch c {
	case CriterionLength:
		return "length"
	case CriterionUppercase:
		return "uppercase"
	case CriterionLowercase:
		return "lowercase"
	case CriterionDigit:
		return "digit"
	case CriterionSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Description returns the checklist text shown next to the criterion.
func (c Criterion) Description() string {
	switch c {
	case CriterionLength:
		return "Minimum 8 characters (12+ recommended)"
	case CriterionUppercase:
		return "At least one uppercase letter (A-Z)"
	case CriterionLowercase:
		return "At least one lowercase letter (a-z)"
	case CriterionDigit:
		return "At least one number (0-9)"
	case CriterionSpecial:
		return "At least one special character (@, #, $, %, etc.)"
	default:
		return ""
	}
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpecial(r rune) bool {
	for _, s := range SpecialChars {
		if r == s {
			return true
		}
	}
	return false
}
