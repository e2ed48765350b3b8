// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level byte mode QR coding details.
package coding // import "github.com/unixdj/qrbyte/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrbyte/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrCapacity = errors.New("qr: data too long")
	ErrNoData   = errors.New("qr: no data")
)

// Field is the field for QR error correction.
var Field = gf256.NewQRField()

// rs computes error correction codewords for all symbols.
var rs = gf256.NewRSEncoder(Field)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is in MinVersion..MaxVersion.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a version v symbol.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.Valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of L, M, Q, H.
func (l Level) Valid() bool { return L <= l && l <= H }

// bits returns the two level bits of the format information:
// L is 01, M is 00, Q is 11, H is 10.
func (l Level) bits() int { return int(l) ^ 1 }

// Bits is an append-only bit buffer.  Bits are written most
// significant first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for n bytes.
func NewBits(n int) *Bits {
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the bytes written to b.  The bit count must be a
// multiple of 8.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v to b, nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBit appends one bit to b.
func (b *Bits) WriteBit(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}

// pad adds a terminator of up to 4 zero bits to b if it fits in n
// bits, zero pads to a byte boundary and fills up to n bits with
// alternating 0xec, 0x11 bytes.  n must be a multiple of 8.
func (b *Bits) pad(n int) {
	if b.nbit+4 <= n {
		b.Write(0, 4)
	}
	if rem := -b.nbit & 7; rem != 0 {
		b.Write(0, rem)
	}
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// CapacityError is returned when data does not fit into a symbol of
// the requested version and level, or into any symbol at the
// requested level when Version is 0.
type CapacityError struct {
	Bits     int // encoded data length in bits
	Capacity int // data capacity in bits of the largest version tried
	Version  Version
	Level    Level
}

func (e CapacityError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("qr: data too long: %d bits, level %s holds %d",
			e.Bits, e.Level, e.Capacity)
	}
	return fmt.Sprintf("qr: data too long: %d bits, version %s-%s holds %d",
		e.Bits, e.Version, e.Level, e.Capacity)
}

// Is reports whether target is ErrCapacity.
func (e CapacityError) Is(target error) bool { return target == ErrCapacity }
