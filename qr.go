// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes byte mode QR codes.

Encode picks the smallest version that holds the data at the requested
error correction level; EncodeVersion uses a fixed one.  A Symbol
accumulates several data segments before building:

	s := qr.NewSymbol(qr.M)
	s.AddData([]byte("hello "))
	s.AddData([]byte("world"))
	c, err := s.Build()
*/
package qr // import "github.com/unixdj/qrbyte"

import (
	"image/color"

	"github.com/unixdj/qrbyte/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// Errors returned by Encode and Build.  Capacity errors are of type
// coding.CapacityError and match ErrCapacity with errors.Is.
var (
	ErrCapacity = coding.ErrCapacity
	ErrNoData   = coding.ErrNoData
	ErrLevel    = coding.ErrLevel
	ErrVersion  = coding.ErrVersion
)

// A State is the build state of a Symbol.
type State int

const (
	Empty  State = iota // no data
	Staged              // data added, not built
	Built               // Code built from current data
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Staged:
		return "staged"
	case Built:
		return "built"
	}
	return "unknown"
}

// A Symbol builds a QR code from one or more byte mode segments.
// The exported fields must be set before the first call to Build and
// not changed afterwards unless more data is added.  A Symbol is not
// safe for concurrent use; distinct Symbols are independent.
type Symbol struct {
	Version coding.Version    // fixed version, or 0 to choose the smallest
	Level   Level             // error correction level
	Blocks  coding.BlockTable // block structure, nil for the standard table
	Scorer  coding.Scorer     // mask scorer, nil for the standard penalty

	segs  []coding.Segment
	ver   coding.Version // resolved version of words
	words []byte         // codeword cache
	code  *Code
}

// NewSymbol returns an empty Symbol with error correction level l and
// automatic version selection.
func NewSymbol(l Level) *Symbol {
	return &Symbol{Level: l}
}

// AddData appends a segment holding a copy of data to s, discarding
// any cached codewords and built Code.
func (s *Symbol) AddData(data []byte) {
	s.segs = append(s.segs, coding.NewSegment(data))
	s.words = nil
	s.code = nil
}

// State returns the build state of s.
func (s *Symbol) State() State {
	switch {
	case len(s.segs) == 0:
		return Empty
	case s.code == nil:
		return Staged
	}
	return Built
}

// Build returns a QR code of the data added to s.  Calling Build
// again without adding data returns the same Code.
func (s *Symbol) Build() (*Code, error) {
	if s.code != nil {
		return s.code, nil
	}
	if len(s.segs) == 0 {
		return nil, ErrNoData
	}
	l := coding.Level(s.Level)
	if !l.Valid() {
		return nil, ErrLevel
	}
	if s.words == nil {
		v, err := s.chooseVersion(l)
		if err != nil {
			return nil, err
		}
		words, err := coding.Codewords(v, l, s.Blocks, s.segs...)
		if err != nil {
			return nil, err
		}
		s.ver, s.words = v, words
	}
	p, err := coding.NewPlan(s.ver)
	if err != nil {
		return nil, err
	}
	m, mask, err := p.Encode(s.words, l, s.Scorer)
	if err != nil {
		return nil, err
	}
	s.code = newCode(m, s.ver, s.Level, mask)
	return s.code, nil
}

// chooseVersion returns the requested version, or the smallest one
// whose data capacity holds all segments.
func (s *Symbol) chooseVersion(l coding.Level) (coding.Version, error) {
	if s.Version != 0 {
		if !s.Version.Valid() {
			return 0, ErrVersion
		}
		return s.Version, nil
	}
	t := s.Blocks
	if t == nil {
		t = coding.StandardBlocks
	}
	var n, capacity int
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		blocks, err := t.Blocks(v, l)
		if err != nil {
			return 0, err
		}
		n = coding.EncodedBits(v, s.segs...)
		capacity = coding.DataBytes(blocks) * 8
		if n <= capacity {
			return v, nil
		}
	}
	return 0, coding.CapacityError{Bits: n, Capacity: capacity, Level: l}
}

// Encode returns an encoding of data at the given error correction
// level in the smallest version that holds it.
func Encode(data []byte, level Level) (*Code, error) {
	return EncodeVersion(data, level, 0)
}

// EncodeVersion returns an encoding of data at the given error
// correction level and version.  Version 0 selects the smallest one
// that holds the data.
func EncodeVersion(data []byte, level Level, version coding.Version) (*Code, error) {
	s := NewSymbol(level)
	s.Version = version
	s.AddData(data)
	return s.Build()
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap []byte // 1 is dark, 0 is light
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version coding.Version // QR version
	Level   Level          // error correction level
	Mask    coding.Mask    // mask pattern

	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Reverse bool            // reverse colours
	Palette *[2]color.Color // background and foreground, nil for white and black
}

// Default image parameters.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

func newCode(m *coding.Matrix, v coding.Version, l Level, mask coding.Mask) *Code {
	bm, stride := m.Bitmap()
	return &Code{
		Bitmap:  bm,
		Size:    m.Size(),
		Stride:  stride,
		Version: v,
		Level:   l,
		Mask:    mask,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
	}
}

// Black returns true if the pixel at (x,y) is black.  Pixels outside
// the code, in the quiet zone, are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// Dark reports whether the module at the given row and column is
// dark.  It fails with coding.RangeError outside the code.
func (c *Code) Dark(row, col int) (bool, error) {
	if uint(row) >= uint(c.Size) || uint(col) >= uint(c.Size) {
		return false, coding.RangeError{Row: row, Col: col, Size: c.Size}
	}
	return c.Black(col, row), nil
}

// Modules returns the code as rows of modules, true for dark.  The
// result is a fresh copy.
func (c *Code) Modules() [][]bool {
	rows := make([][]bool, c.Size)
	for y := range rows {
		rows[y] = make([]bool, c.Size)
		for x := range rows[y] {
			rows[y][x] = c.Black(x, y)
		}
	}
	return rows
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride == (c.Size+7)>>3 &&
		len(c.Bitmap) == c.Stride*c.Size && c.Scale > 0 && c.Border >= 0
}
