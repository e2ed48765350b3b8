// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// An RSEncoder computes Reed-Solomon error correction codewords.
// Generator polynomials are built on first use and cached; an
// RSEncoder is safe for concurrent use.
type RSEncoder struct {
	f   *Field
	mu  sync.Mutex
	gen map[int]Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given field.
func NewRSEncoder(f *Field) *RSEncoder {
	return &RSEncoder{f: f, gen: make(map[int]Poly)}
}

// Generator returns the generator polynomial of degree n.
func (rs *RSEncoder) Generator(n int) Poly {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	g, ok := rs.gen[n]
	if !ok {
		g = Generator(rs.f, n)
		rs.gen[n] = g
	}
	return g
}

// ECC writes len(check) error correction codewords for data to check.
// The codewords are the remainder of data·x^len(check) divided by the
// generator of degree len(check), left-padded with zeros.
func (rs *RSEncoder) ECC(data, check []byte) {
	n := len(check)
	g := rs.Generator(n)
	r := NewPoly(rs.f, data, n).Mod(g)
	z := n - r.Len()
	for i := range check[:z] {
		check[i] = 0
	}
	copy(check[z:], r.c)
}
