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

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/awnumar/memguard"
)

// ErrEntropy is returned when the secure random source cannot be read.
// Generation is aborted; there is no fallback source.
var ErrEntropy = errors.New("secure random source unavailable")

// requiredClasses are the character classes every generated password
// draws one character from before filling the rest.
var requiredClasses = []string{upperChars, lowerChars, digitChars, SpecialChars}

// fullAlphabet is the union of the required classes.
var fullAlphabet = upperChars + lowerChars + digitChars + SpecialChars

// =============================================================================
// Generator
// =============================================================================

// Generator produces passwords that satisfy every criterion.
//
// # Description
//
// All selections and the final shuffle draw from the same entropy source,
// which defaults to crypto/rand.Reader. Draws use rejection sampling, so
// every character in a set is equally likely.
//
// # Thread Safety
//
// Safe for concurrent use if the entropy source is. crypto/rand.Reader is.
type Generator struct {
	source io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{source: rand.Reader}
}

// NewGeneratorWithSource returns a Generator reading from source.
//
// # Description
//
// Intended for tests that need to simulate an exhausted source. Passing
// anything other than a cryptographically secure reader in production
// defeats the purpose of the generator.
func NewGeneratorWithSource(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Generate returns a fresh GeneratedLength-character password.
//
// # Description
//
// One character is drawn from each of uppercase, lowercase, digits and
// SpecialChars, the remaining positions are drawn from their union, and
// the result is shuffled with Fisher-Yates. Evaluate on the output always
// yields MaxScore.
//
// # Outputs
//
//   - string: The password.
//   - error: Wraps ErrEntropy if the source failed.
func (g *Generator) Generate() (string, error) {
	buf, err := g.generate()
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(buf)
	return string(buf), nil
}

// GenerateLocked is like Generate but returns the password in a
// memguard.LockedBuffer.
//
// # Description
//
// The scratch buffer is moved into mlocked memory and wiped. The caller
// owns the returned buffer and must Destroy it.
//
// # Examples
//
//	lb, err := gen.GenerateLocked()
//	if err != nil {
//	    return err
//	}
//	defer lb.Destroy()
//	_ = clip.Write(lb.String())
func (g *Generator) GenerateLocked() (*memguard.LockedBuffer, error) {
	buf, err := g.generate()
	if err != nil {
		return nil, err
	}
	// NewBufferFromBytes wipes buf after copying.
	return memguard.NewBufferFromBytes(buf), nil
}

func (g *Generator) generate() ([]byte, error) {
	out := make([]byte, 0, GeneratedLength)

	for _, class := range requiredClasses {
		c, err := g.pick(class)
		if err != nil {
			memguard.WipeBytes(out)
			return nil, err
		}
		out = append(out, c)
	}

	for len(out) < GeneratedLength {
		c, err := g.pick(fullAlphabet)
		if err != nil {
			memguard.WipeBytes(out)
			return nil, err
		}
		out = append(out, c)
	}

	if err := g.shuffle(out); err != nil {
		memguard.WipeBytes(out)
		return nil, err
	}
	return out, nil
}

// pick draws one byte uniformly from set.
func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle permutes b in place with Fisher-Yates.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// intn returns a uniform integer in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.source, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return int(v.Int64()), nil
}
