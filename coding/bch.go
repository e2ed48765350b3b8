// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// BCH generator polynomials and the format information mask.
const (
	G15     = 1<<10 | 1<<8 | 1<<5 | 1<<4 | 1<<2 | 1<<1 | 1 // 0x537
	G18     = 1<<12 | 1<<11 | 1<<10 | 1<<9 | 1<<8 | 1<<5 | 1<<2 | 1
	G15Mask = 1<<14 | 1<<12 | 1<<10 | 1<<4 | 1<<1 // 0x5412
)

// bchDigit returns the number of bits needed to represent x.
func bchDigit(x int) int {
	n := 0
	for ; x != 0; x >>= 1 {
		n++
	}
	return n
}

// bch returns data followed by the remainder of dividing data·x^n by
// the generator g of degree n.
func bch(data, g, n int) int {
	d := data << n
	for dg := bchDigit(g); bchDigit(d) >= dg; {
		d ^= g << (bchDigit(d) - dg)
	}
	return data<<n | d
}

// TypeInfo returns the 15 bit BCH coded format information for the 5
// data bits, masked with G15Mask.
func TypeInfo(data int) int {
	return bch(data, G15, 10) ^ G15Mask
}

// FormatInfo returns the format information for level l and mask m.
func FormatInfo(l Level, m Mask) int {
	return TypeInfo(l.bits()<<3 | int(m))
}

// VersionInfo returns the 18 bit BCH coded version information for v.
// It is only placed in symbols of version 7 and up.
func VersionInfo(v Version) int {
	return bch(int(v), G18, 12)
}
