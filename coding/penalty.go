// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

// A Scorer rates a fully rendered symbol.  The mask giving the lowest
// score is chosen; ties go to the lowest mask number.
type Scorer interface {
	Score(m *Matrix) float64
}

// StandardPenalty scores symbols with Penalty.
var StandardPenalty Scorer = penaltyScorer{}

type penaltyScorer struct{}

func (penaltyScorer) Score(m *Matrix) float64 { return Penalty(m) }

// Penalty points.
const (
	adjacentPP = 3  // base points for a crowded module
	boxPP      = 3  // points per uniform 2×2 box
	finderPP   = 40 // points per finder-like run
	balancePP  = 10 // points per 5% deviation from 50% dark
)

// Penalty returns the penalty score for a symbol, the sum of
//
//   - for each module with n > 5 of its up to 8 neighbours of the
//     same colour, 3+(n-5);
//   - 3 for each 2×2 box of one colour, overlapping;
//   - 40 for each horizontal or vertical dark-light-dark-dark-dark-
//     light-dark run;
//   - |100·dark/size/size - 50| / 5 · 10, in floating point.
func Penalty(m *Matrix) float64 {
	p := adjacentPenalty(m) + boxPenalty(m) + finderPenalty(m)
	return float64(p) + balancePenalty(m)
}

func adjacentPenalty(m *Matrix) int {
	n := m.size
	p := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dark := m.dark(row, col)
			same := 0
			for r := max(row-1, 0); r <= min(row+1, n-1); r++ {
				for c := max(col-1, 0); c <= min(col+1, n-1); c++ {
					if (r != row || c != col) && m.dark(r, c) == dark {
						same++
					}
				}
			}
			if same > 5 {
				p += adjacentPP + same - 5
			}
		}
	}
	return p
}

func boxPenalty(m *Matrix) int {
	n := m.size
	p := 0
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			k := 0
			for _, d := range [4]bool{
				m.dark(row, col), m.dark(row+1, col),
				m.dark(row, col+1), m.dark(row+1, col+1),
			} {
				if d {
					k++
				}
			}
			if k == 0 || k == 4 {
				p += boxPP
			}
		}
	}
	return p
}

// finder is the 1:1:3:1:1 finder pattern, dark is true.
var finder = [7]bool{true, false, true, true, true, false, true}

func finderPenalty(m *Matrix) int {
	n := m.size
	p := 0
	for a := 0; a < n; a++ {
		for b := 0; b < n-6; b++ {
			h, v := true, true
			for k, d := range finder {
				h = h && m.dark(a, b+k) == d
				v = v && m.dark(b+k, a) == d
			}
			if h {
				p += finderPP
			}
			if v {
				p += finderPP
			}
		}
	}
	return p
}

func balancePenalty(m *Matrix) float64 {
	n := float64(m.size)
	dark := float64(m.Count(Dark))
	ratio := math.Abs(100*dark/n/n-50) / 5
	return ratio * balancePP
}
