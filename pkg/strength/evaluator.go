// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package strength

import "unicode/utf8"

// =============================================================================
// Label
// =============================================================================

// Label is the human-readable strength bucket for a score.
type Label string

const (
	// LabelNone is used for the empty password.
	LabelNone Label = ""

	// LabelVeryWeak covers scores 0 through 2.
	LabelVeryWeak Label = "Very Weak"

	// LabelModerate covers scores 3 and 4.
	LabelModerate Label = "Moderate"

	// LabelStrong covers scores 5 and 6.
	LabelStrong Label = "Strong"
)

// LabelFor buckets a score. It does not know about the empty password;
// use Result.Label for the display rule.
func LabelFor(score int) Label {
	switch {
	case score <= 2:
		return LabelVeryWeak
	case score <= 4:
		return LabelModerate
	default:
		return LabelStrong
	}
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a single evaluation.
//
// # Description
//
// A Result is built fresh by every Evaluate call and is never modified
// afterwards. Criteria always carries all five entries.
type Result struct {
	// Score is the point total, 0..MaxScore.
	Score int

	// Criteria maps each criterion to whether it is satisfied.
	Criteria map[Criterion]bool

	// Length is the password length in characters.
	Length int
}

// Met reports whether criterion c is satisfied.
func (r Result) Met(c Criterion) bool {
	return r.Criteria[c]
}

// Empty reports whether the evaluated password was empty.
func (r Result) Empty() bool {
	return r.Length == 0
}

// Label returns the strength label, or LabelNone for the empty password
// regardless of score.
func (r Result) Label() Label {
	if r.Empty() {
		return LabelNone
	}
	return LabelFor(r.Score)
}

// Fraction returns Score / MaxScore for progress indicators.
func (r Result) Fraction() float64 {
	return float64(r.Score) / float64(MaxScore)
}

// MetCount returns how many of the five criteria are satisfied.
func (r Result) MetCount() int {
	n := 0
	for _, ok := range r.Criteria {
		if ok {
			n++
		}
	}
	return n
}

// =============================================================================
// Evaluate
// =============================================================================

// Evaluate scores a password against the fixed criteria.
//
// # Description
//
// Length earns one point at MinLength characters and a bonus point at
// RecommendedLength. Each of the four character classes earns one point
// when at least one character of that class is present. Only ASCII
// letters and digits count toward their classes.
//
// # Inputs
//
//   - password: Any string, including the empty string.
//
// # Outputs
//
//   - Result: Score, checklist and length. Never fails.
//
// # Examples
//
//	r := strength.Evaluate("Abcdefgh1!")
//	fmt.Println(r.Score, r.Label()) // 5 Strong
func Evaluate(password string) Result {
	length := utf8.RuneCountInString(password)

	criteria := make(map[Criterion]bool, len(Criteria))
	for _, c := range Criteria {
		criteria[c] = false
	}

	for _, r := range password {
		switch {
		case isUpper(r):
			criteria[CriterionUppercase] = true
		case isLower(r):
			criteria[CriterionLowercase] = true
		case isDigit(r):
			criteria[CriterionDigit] = true
		case isSpecial(r):
			criteria[CriterionSpecial] = true
		}
	}

	score := 0
	if length >= MinLength {
		criteria[CriterionLength] = true
		score++
		if length >= RecommendedLength {
			score++
		}
	}
	for _, c := range []Criterion{CriterionUppercase, CriterionLowercase, CriterionDigit, CriterionSpecial} {
		if criteria[c] {
			score++
		}
	}

	return Result{
		Score:    score,
		Criteria: criteria,
		Length:   length,
	}
}
