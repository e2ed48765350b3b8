// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matrixString draws m with '#' for dark and '.' for light modules,
// one line per row.
func matrixString(m *Matrix) string {
	var sb strings.Builder
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			switch m.At(i, j) {
			case Dark:
				sb.WriteByte('#')
			case Light:
				sb.WriteByte('.')
			default:
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestModuleString(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "Module(7)", Module(7).String())
	assert.Equal(t, Dark, module(true))
	assert.Equal(t, Light, module(false))
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(9)
	assert.Equal(t, 9, m.Size())
	assert.Equal(t, 81, m.Count(Unset))
	assert.False(t, m.Resolved())

	m.Set(0, 8, Dark)
	m.Set(8, 0, Light)
	assert.Equal(t, Dark, m.At(0, 8))
	assert.Equal(t, Light, m.At(8, 0))
	assert.Equal(t, Unset, m.At(8, 8))

	dark, err := m.IsDark(0, 8)
	require.NoError(t, err)
	assert.True(t, dark)
	dark, err = m.IsDark(8, 0)
	require.NoError(t, err)
	assert.False(t, dark)

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if m.At(i, j) == Unset {
				m.Set(i, j, Light)
			}
		}
	}
	assert.True(t, m.Resolved())
	assert.Equal(t, 1, m.Count(Dark))
	assert.Equal(t, 80, m.Count(Light))
}

func TestMatrixRange(t *testing.T) {
	m := NewMatrix(21)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}, {100, 100}} {
		_, err := m.IsDark(c[0], c[1])
		var re RangeError
		require.True(t, errors.As(err, &re), "%v", c)
		assert.Equal(t, RangeError{c[0], c[1], 21}, re)
		assert.Panics(t, func() { m.At(c[0], c[1]) })
		assert.Panics(t, func() { m.Set(c[0], c[1], Dark) })
	}
	assert.EqualError(t, RangeError{21, 3, 21}, "qr: module (21, 3) outside 21×21 matrix")
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrix(5)
	m.Set(2, 2, Dark)
	c := m.Clone()
	c.Set(2, 2, Light)
	c.Set(0, 0, Dark)
	assert.Equal(t, Dark, m.At(2, 2))
	assert.Equal(t, Unset, m.At(0, 0))
	assert.Equal(t, 5, c.Size())
}

func TestMatrixBitmap(t *testing.T) {
	m := NewMatrix(10)
	m.Set(0, 0, Dark)
	m.Set(0, 9, Dark)
	m.Set(1, 7, Dark)
	m.Set(1, 8, Dark)
	m.Set(9, 4, Light)
	b, stride := m.Bitmap()
	assert.Equal(t, 2, stride)
	require.Len(t, b, 20)
	assert.Equal(t, []byte{0x80, 0x40, 0x01, 0x80}, b[:4])
	for _, x := range b[4:] {
		assert.Zero(t, x)
	}
}
