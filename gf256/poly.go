// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial with coefficients in a Field, highest degree
// first.  Leading zero coefficients are stripped on creation.  A Poly
// is immutable: Multiply and Mod return new polynomials.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial with coefficients coef multiplied by
// x^shift.  coef is copied.
func NewPoly(f *Field, coef []byte, shift int) Poly {
	for len(coef) > 0 && coef[0] == 0 {
		coef = coef[1:]
	}
	if shift < 0 {
		panic("gf256: negative shift")
	}
	c := make([]byte, len(coef)+shift)
	copy(c, coef)
	return Poly{f, c}
}

// Len returns the number of coefficients in p, one more than its
// degree.  The zero polynomial has length 0.
func (p Poly) Len() int { return len(p.c) }

// Coef returns the i'th coefficient of p, counting from the highest
// degree term.
func (p Poly) Coef(i int) byte { return p.c[i] }

// Coefs returns a copy of the coefficients of p.
func (p Poly) Coefs() []byte { return append([]byte(nil), p.c...) }

// Multiply returns p*q.
func (p Poly) Multiply(q Poly) Poly {
	if p.Len() == 0 || q.Len() == 0 {
		return Poly{p.f, nil}
	}
	c := make([]byte, p.Len()+q.Len()-1)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j] ^= p.f.Mul(a, b)
		}
	}
	return NewPoly(p.f, c, 0)
}

// Mod returns the remainder of dividing p by d.  d must not be the
// zero polynomial.
func (p Poly) Mod(d Poly) Poly {
	if d.Len() == 0 {
		panic("gf256: division by zero polynomial")
	}
	f := p.f
	c := append([]byte(nil), p.c...)
	// Leading coefficients of both are non-zero, so log is defined.
	ld := f.log[d.c[0]]
	for len(c) >= len(d.c) {
		if c[0] != 0 {
			ratio := f.log[c[0]] - ld
			for i, v := range d.c {
				if v != 0 {
					c[i] ^= f.Exp(f.log[v] + ratio)
				}
			}
		}
		c = c[1:]
	}
	return NewPoly(f, c, 0)
}

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x - α^i) for i in 0..n-1.
func Generator(f *Field, n int) Poly {
	g := NewPoly(f, []byte{1}, 0)
	for i := 0; i < n; i++ {
		g = g.Multiply(NewPoly(f, []byte{1, f.Exp(i)}, 0))
	}
	return g
}
