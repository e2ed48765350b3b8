// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes the function patterns of a QR code with a specific
// version: finder patterns with their separators, alignment patterns
// and timing patterns.  Format and version information, the dark
// module and the data are added by Render.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	// DataModules is the number of modules left for data and error
	// correction codewords, including remainder bits.
	DataModules int

	base *Matrix // function patterns, the rest Unset
}

// Pre-allocated Plans.  A Plan is created the first time a version
// is used and is read-only afterwards.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.
func NewPlan(v Version) (*Plan, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// mustPlan returns the Plan for a valid version v.
func mustPlan(v Version) *Plan {
	p, err := NewPlan(v)
	if err != nil {
		panic("qr: internal error: " + err.Error())
	}
	return p
}

// Codewords returns the number of codewords in the symbol.
func (p *Plan) Codewords() int { return p.DataModules / 8 }

// RemainderBits returns the number of data modules left over after
// the last codeword.
func (p *Plan) RemainderBits() int { return p.DataModules % 8 }

// Base returns a copy of the function patterns of p.
func (p *Plan) Base() *Matrix { return p.base.Clone() }

// totalCodewords returns the number of codewords in version v.
func totalCodewords(v Version) int { return mustPlan(v).Codewords() }

// Alignment pattern centres: 6, then first, first+stride and so on up
// to size-7, in both directions.  Version 1 has none.
var align = [MaxVersion + 1]struct{ first, stride int }{
	{},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1-5
	{34, 0}, {22, 16}, {24, 18}, {26, 20}, {28, 22}, // 6-10
	{30, 24}, {32, 26}, {34, 28}, {26, 20}, {26, 22}, // 11-15
	{26, 24}, {30, 24}, {30, 26}, {30, 28}, {34, 28}, // 16-20
	{28, 22}, {26, 24}, {30, 24}, {28, 26}, {32, 26}, // 21-25
	{30, 28}, {34, 28}, {26, 24}, {30, 24}, {26, 26}, // 26-30
	{30, 26}, {34, 26}, {30, 28}, {34, 28}, {30, 24}, // 31-35
	{24, 26}, {28, 26}, {32, 26}, {26, 28}, {30, 28}, // 36-40
}

// alignPos returns the alignment pattern centre coordinates for v.
func alignPos(v Version) []int {
	a := align[v]
	if a.first == 0 {
		return nil
	}
	last := v.Size() - 7
	stride := a.stride
	if stride == 0 {
		stride = last
	}
	pos := []int{6}
	for x := a.first; x <= last; x += stride {
		pos = append(pos, x)
	}
	return pos
}

// format and version information and the dark module.
const reservedModules = 15*2 + 1

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	m := NewMatrix(siz)

	// Position boxes with separators.
	finderBox(m, 0, 0)
	finderBox(m, siz-7, 0)
	finderBox(m, 0, siz-7)

	// Alignment boxes, skipped where they would cover a finder.
	pos := alignPos(v)
	for _, row := range pos {
		for _, col := range pos {
			if m.At(row, col) != Unset {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					dark := r == -2 || r == 2 || c == -2 || c == 2 ||
						r == 0 && c == 0
					m.Set(row+r, col+c, module(dark))
				}
			}
		}
	}

	// Timing markers, not overwriting alignment boxes.
	for i := 8; i < siz-8; i++ {
		if m.At(i, 6) == Unset {
			m.Set(i, 6, module(i%2 == 0))
		}
		if m.At(6, i) == Unset {
			m.Set(6, i, module(i%2 == 0))
		}
	}

	n := m.Count(Unset) - reservedModules
	if v >= 7 {
		n -= 18 * 2
	}
	return &Plan{Version: v, Size: siz, DataModules: n, base: m}
}

// finderBox draws a finder pattern with upper left corner at row,
// col, and its light separator where it falls inside the matrix.
func finderBox(m *Matrix, row, col int) {
	for r := -1; r <= 7; r++ {
		if i := row + r; i < 0 || i >= m.size {
			continue
		}
		for c := -1; c <= 7; c++ {
			if j := col + c; j < 0 || j >= m.size {
				continue
			}
			dark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
				0 <= c && c <= 6 && (r == 0 || r == 6) ||
				2 <= r && r <= 4 && 2 <= c && c <= 4
			m.Set(row+r, col+c, module(dark))
		}
	}
}

// setFormat writes format information for level l and mask into m,
// all light if trial is set, and the dark module.
func setFormat(m *Matrix, l Level, mask Mask, trial bool) {
	siz := m.size
	fb := FormatInfo(l, mask)
	for i := 0; i < 15; i++ {
		mod := module(!trial && fb>>i&1 != 0)
		// vertical, next to the left finders
		switch {
		case i < 6:
			m.Set(i, 8, mod)
		case i < 8:
			m.Set(i+1, 8, mod)
		default:
			m.Set(siz-15+i, 8, mod)
		}
		// horizontal, below the top finders
		switch {
		case i < 8:
			m.Set(8, siz-i-1, mod)
		case i == 8:
			m.Set(8, 7, mod)
		default:
			m.Set(8, 14-i, mod)
		}
	}
	// One lonely black pixel
	m.Set(siz-8, 8, module(!trial))
}

// setVersion writes version information into m, 3×6 modules left of
// the top right finder and 6×3 above the bottom left one.
func setVersion(m *Matrix, v Version, trial bool) {
	siz := m.size
	vb := VersionInfo(v)
	for i := 0; i < 18; i++ {
		mod := module(!trial && vb>>i&1 != 0)
		m.Set(i/3, i%3+siz-11, mod)
		m.Set(i%3+siz-11, i/3, mod)
	}
}

// mapData writes words into the Unset modules of m in zigzag scan
// order, two columns at a time from the right, skipping the vertical
// timing column.  Bits are inverted where mask holds.  Modules past
// the end of words are light before masking.
func mapData(m *Matrix, words []byte, mask func(i, j int) bool) {
	siz := m.size
	bit := 0
	row, inc := siz-1, -1
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 { // vertical timing strip
			col--
		}
		for ; 0 <= row && row < siz; row += inc {
			for j := col; j > col-2; j-- {
				if m.At(row, j) != Unset {
					continue
				}
				var dark bool
				if k := bit >> 3; k < len(words) {
					dark = words[k]>>(7&^bit)&1 != 0
				}
				m.Set(row, j, module(dark != mask(row, j)))
				bit++
			}
		}
		row -= inc
		inc = -inc
	}
}

// Render returns a symbol with the plan's function patterns, format
// information for level l and mask, version information, and words
// mapped with mask applied.  If trial is set, format and version
// information and the dark module are rendered light, for scoring.
func (p *Plan) Render(words []byte, l Level, mask Mask, trial bool) (*Matrix, error) {
	if !l.Valid() {
		return nil, ErrLevel
	}
	f, err := mask.Func()
	if err != nil {
		return nil, err
	}
	if n := p.Codewords(); len(words) > n {
		return nil, CapacityError{len(words) * 8, n * 8, p.Version, l}
	}
	m := p.base.Clone()
	setFormat(m, l, mask, trial)
	if p.Version >= 7 {
		setVersion(m, p.Version, trial)
	}
	mapData(m, words, f)
	if !m.Resolved() {
		panic("qr: internal error: unset modules")
	}
	return m, nil
}

// Scores returns the score of a trial rendering of words with each
// mask.
func (p *Plan) Scores(words []byte, l Level, s Scorer) ([NumMasks]float64, error) {
	var scores [NumMasks]float64
	for mask := Mask(0); mask < NumMasks; mask++ {
		m, err := p.Render(words, l, mask, true)
		if err != nil {
			return scores, err
		}
		scores[mask] = s.Score(m)
	}
	return scores, nil
}

// Encode renders words at level l with the mask scored lowest by s,
// the first one on ties.  If s is nil, StandardPenalty is used.
func (p *Plan) Encode(words []byte, l Level, s Scorer) (*Matrix, Mask, error) {
	if s == nil {
		s = StandardPenalty
	}
	scores, err := p.Scores(words, l, s)
	if err != nil {
		return nil, 0, err
	}
	var best Mask
	for mask, score := range scores {
		if score < scores[best] {
			best = Mask(mask)
		}
	}
	m, err := p.Render(words, l, best, false)
	if err != nil {
		return nil, 0, err
	}
	return m, best, nil
}
