// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Write(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Write("first"))
	require.NoError(t, m.Write("second"))

	assert.Equal(t, "second", m.Text())
	assert.Equal(t, 2, m.Writes())
}

func TestMemory_FailWith(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")

	m.FailWith(boom)
	err := m.Write("secret")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, m.Text())
	assert.Zero(t, m.Writes())

	m.FailWith(nil)
	require.NoError(t, m.Write("secret"))
	assert.Equal(t, "secret", m.Text())
}

func TestDisabled_Write(t *testing.T) {
	var c Clipboard = Disabled{}
	assert.ErrorIs(t, c.Write("x"), ErrDisabled)
}

func TestSystem_ImplementsClipboard(t *testing.T) {
	var _ Clipboard = NewSystem()
}
