// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the polynomial and Reed-Solomon arithmetic built on it.
package gf256 // import "github.com/unixdj/qrbyte/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is read-only after creation and may be shared.
type Field struct {
	log [256]int  // log[0] is unused
	exp [256]byte // exp[255] == exp[0]
}

// DomainError is returned by Log for arguments outside 1..255,
// zero in particular, which has no logarithm.
type DomainError int

func (e DomainError) Error() string {
	return "gf256: log(" + strconv.Itoa(int(e)) + ") undefined"
}

// NewField returns a new field corresponding to the reducing
// polynomial poly with generator α.  Most callers want NewQRField.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.log[x] = i
		x = mul(x, α, poly)
	}
	f.exp[255] = f.exp[0]
	f.log[0] = 255 // sentinel, never returned
	return &f
}

// NewQRField returns the QR Code field, x⁸+x⁴+x³+x²+1 with α = 2,
// built from the recurrence
//
//	exp[i] = 1<<i                                     for i < 8
//	exp[i] = exp[i-4] ^ exp[i-5] ^ exp[i-6] ^ exp[i-8] for 8 <= i < 256
//
// which is the field's defining relation α⁸ = α⁴+α³+α²+1 unrolled.
func NewQRField() *Field {
	var f Field
	for i := 0; i < 8; i++ {
		f.exp[i] = 1 << i
	}
	for i := 8; i < 256; i++ {
		f.exp[i] = f.exp[i-4] ^ f.exp[i-5] ^ f.exp[i-6] ^ f.exp[i-8]
	}
	for i := 0; i < 255; i++ {
		f.log[f.exp[i]] = i
	}
	f.log[0] = 255
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyDiv divides the polynomial p by q and returns the remainder.
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// Multiplying n-bit * n-bit produces (2n-1)-bit,
	// so if p is reducible, one of its factors must be
	// of np/2+1 bits or fewer.
	np := nbit(p)
	for q := 2; q < 1<<(np/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// Exp is total: e is reduced modulo 255, so negative exponents
// are accepted.
func (f *Field) Exp(e int) byte {
	if e %= 255; e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Log returns the base-α logarithm of x in the field.
// It fails with DomainError if x is not in 1..255.
func (f *Field) Log(x int) (int, error) {
	if x < 1 || x > 255 {
		return 0, DomainError(x)
	}
	return f.log[x], nil
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
// Zero absorbs without consulting the log table.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.Exp(f.log[x] + f.log[y])
}
