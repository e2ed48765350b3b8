// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Module is the state of one cell of a symbol under construction.
type Module byte

const (
	Unset Module = iota // not yet assigned
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Unset:
		return "unset"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Module(%d)", byte(m))
}

// module returns Dark if dark is true, Light otherwise.
func module(dark bool) Module {
	if dark {
		return Dark
	}
	return Light
}

// RangeError is returned for a coordinate outside the matrix.
type RangeError struct {
	Row, Col int
	Size     int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("qr: module (%d, %d) outside %d×%d matrix",
		e.Row, e.Col, e.Size, e.Size)
}

// A Matrix is a square grid of modules addressed by row and column.
type Matrix struct {
	size int
	m    []Module
}

// NewMatrix returns a size×size matrix of Unset modules.
func NewMatrix(size int) *Matrix {
	return &Matrix{size: size, m: make([]Module, size*size)}
}

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return m.size }

// At returns the module at row i, column j.  It panics if the
// coordinate is outside the matrix.
func (m *Matrix) At(i, j int) Module {
	if err := m.check(i, j); err != nil {
		panic(err)
	}
	return m.m[i*m.size+j]
}

// Set sets the module at row i, column j.  It panics if the
// coordinate is outside the matrix.
func (m *Matrix) Set(i, j int, v Module) {
	if err := m.check(i, j); err != nil {
		panic(err)
	}
	m.m[i*m.size+j] = v
}

func (m *Matrix) check(i, j int) error {
	if uint(i) >= uint(m.size) || uint(j) >= uint(m.size) {
		return RangeError{i, j, m.size}
	}
	return nil
}

// IsDark reports whether the module at row i, column j is dark.
func (m *Matrix) IsDark(i, j int) (bool, error) {
	if err := m.check(i, j); err != nil {
		return false, err
	}
	return m.m[i*m.size+j] == Dark, nil
}

// dark is IsDark without the range check.
func (m *Matrix) dark(i, j int) bool { return m.m[i*m.size+j] == Dark }

// Resolved reports whether no module of m is Unset.
func (m *Matrix) Resolved() bool {
	for _, v := range m.m {
		if v == Unset {
			return false
		}
	}
	return true
}

// Count returns the number of modules of m in state v.
func (m *Matrix) Count(v Module) int {
	n := 0
	for _, x := range m.m {
		if x == v {
			n++
		}
	}
	return n
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{size: m.size, m: append([]Module(nil), m.m...)}
}

// Bitmap returns the dark modules of m packed 8 to a byte, most
// significant bit first, each row starting on a byte boundary, and the
// number of bytes per row.
func (m *Matrix) Bitmap() ([]byte, int) {
	stride := (m.size + 7) >> 3
	b := make([]byte, stride*m.size)
	for i := 0; i < m.size; i++ {
		row := b[i*stride:]
		for j, v := range m.m[i*m.size : (i+1)*m.size] {
			if v == Dark {
				row[j>>3] |= 0x80 >> (j & 7)
			}
		}
	}
	return b, stride
}
