// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern number, 0 to 7.
type Mask int

// NumMasks is the number of mask patterns.
const NumMasks = 8

// MaskError represents a mask pattern number outside 0..7.
type MaskError Mask

func (e MaskError) Error() string {
	return "qr: unknown mask pattern " + strconv.Itoa(int(e))
}

// Mask predicates for row i, column j.  Drawn with the predicate
// holding on blank cells:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var maskFuncs = [NumMasks]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return (i*j%3+(i+j)%2)%2 == 0 },
}

// Valid reports whether m is a mask pattern number.
func (m Mask) Valid() bool { return 0 <= m && m < NumMasks }

// Func returns the predicate for mask m.
func (m Mask) Func() (func(i, j int) bool, error) {
	if !m.Valid() {
		return nil, MaskError(m)
	}
	return maskFuncs[m], nil
}

// Dark reports whether mask m inverts the module at row i, column j.
// It panics if m is not valid.
func (m Mask) Dark(i, j int) bool {
	if !m.Valid() {
		panic(MaskError(m))
	}
	return maskFuncs[m](i, j)
}
