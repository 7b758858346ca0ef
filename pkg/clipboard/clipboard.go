// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package clipboard abstracts the system clipboard behind a small interface
// so the copy action can be tested without a display server.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
// (no xclip/xsel/wl-copy on Linux, headless sessions, CI).
var ErrUnsupported = errors.New("clipboard not supported on this system")

// ErrDisabled is returned by a Disabled clipboard.
var ErrDisabled = errors.New("clipboard disabled by configuration")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	// Write replaces the clipboard contents with text.
	Write(text string) error
}

// =============================================================================
// System
// =============================================================================

// System is the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// Write implements Clipboard.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// =============================================================================
// Disabled
// =============================================================================

// Disabled rejects every write.
type Disabled struct{}

// Write implements Clipboard.
func (Disabled) Write(string) error {
	return ErrDisabled
}

// =============================================================================
// Memory
// =============================================================================

// Memory is an in-process clipboard for tests.
//
// # Thread Safety
//
// Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	err    error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes subsequent writes return err. Pass nil to clear.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Write implements Clipboard.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	// Callers may pass memory they are about to wipe.
	m.text = strings.Clone(text)
	m.writes++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many writes succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
