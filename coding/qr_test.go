// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, 21, Version(1).Size())
	assert.Equal(t, 177, MaxVersion.Size())
	assert.False(t, Version(0).Valid())
	assert.False(t, Version(41).Valid())
	assert.True(t, Version(40).Valid())
	for v, want := range map[Version]int{1: Class0, 9: Class0, 10: Class1,
		26: Class1, 27: Class2, 40: Class2} {
		assert.Equal(t, want, v.SizeClass(), "version %d", v)
	}
	assert.Equal(t, "17", Version(17).String())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "LMQH", L.String()+M.String()+Q.String()+H.String())
	assert.Equal(t, "4", Level(4).String())
	assert.False(t, Level(-1).Valid())
	// L=01 M=00 Q=11 H=10
	assert.Equal(t, []int{1, 0, 3, 2}, []int{L.bits(), M.bits(), Q.bits(), H.bits()})
}

func TestBitsWrite(t *testing.T) {
	b := NewBits(0)
	b.Write(ByteMode, 4)
	b.Write(1, 8)
	b.Write(0x41, 8)
	b.Write(0, 4)
	assert.Equal(t, 24, b.Bits())
	assert.Equal(t, []byte{0x40, 0x14, 0x10}, b.Bytes())

	b.Reset()
	assert.Equal(t, 0, b.Bits())
	for _, bit := range []bool{true, false, true, true, false, false, true, false, true} {
		b.WriteBit(bit)
	}
	assert.Equal(t, 9, b.Bits())
	assert.Panics(t, func() { b.Bytes() })
	b.Write(0, 7)
	assert.Equal(t, []byte{0xb2, 0x80}, b.Bytes())

	b.Reset()
	b.Write(0x5, 3)
	b.Write(0xdeadbeef, 32)
	b.Write(0, 5)
	assert.Equal(t, []byte{0xbb, 0xd5, 0xb7, 0xdd, 0xe0}, b.Bytes())
}

// Bits read back MSB first match the bits written.
func TestBitsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(t, "n")
		var want []bool
		b := NewBits(0)
		for i := 0; i < n; i++ {
			nbit := rapid.IntRange(1, 32).Draw(t, "nbit")
			v := rapid.Uint32().Draw(t, "v") & (1<<nbit - 1)
			b.Write(v, nbit)
			for k := nbit - 1; k >= 0; k-- {
				want = append(want, v>>k&1 != 0)
			}
		}
		if b.Bits() != len(want) {
			t.Fatalf("Bits() = %d, want %d", b.Bits(), len(want))
		}
		for i, w := range want {
			if got := b.b[i>>3]>>(7&^i)&1 != 0; got != w {
				t.Fatalf("bit %d = %v, want %v", i, got, w)
			}
		}
	})
}

func TestBitsPad(t *testing.T) {
	tests := []struct {
		nbit, n int
		want    []byte
	}{
		{0, 32, []byte{0x00, 0xec, 0x11, 0xec}},
		{4, 24, []byte{0xf0, 0xec, 0x11}},
		{12, 24, []byte{0xff, 0xf0, 0xec}},
		{14, 16, []byte{0xff, 0xfc}},  // no room for terminator
		{20, 24, []byte{0xff, 0xff, 0xf0}}, // terminator fills the byte
		{24, 24, []byte{0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		b := NewBits(0)
		for i := 0; i < tt.nbit; i++ {
			b.WriteBit(true)
		}
		b.pad(tt.n)
		assert.Equal(t, tt.n, b.Bits(), "%d bits", tt.nbit)
		assert.Equal(t, tt.want, b.Bytes(), "%d bits", tt.nbit)
	}
}

func TestCapacityError(t *testing.T) {
	var err error = CapacityError{Bits: 100, Capacity: 72, Version: 1, Level: H}
	assert.True(t, errors.Is(err, ErrCapacity))
	assert.False(t, errors.Is(err, ErrVersion))
	assert.EqualError(t, err, "qr: data too long: 100 bits, version 1-H holds 72")
	var ce CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 72, ce.Capacity)
	err = CapacityError{Bits: 30000, Capacity: 23648, Level: L}
	assert.EqualError(t, err, "qr: data too long: 30000 bits, level L holds 23648")
}

func TestSegment(t *testing.T) {
	data := []byte("hello")
	seg := NewSegment(data)
	data[0] = 'j'
	assert.Equal(t, []byte("hello"), seg.Data)
	assert.Equal(t, 5, seg.Len())
	assert.Equal(t, 4+8+40, seg.EncodedLength(9))
	assert.Equal(t, 4+16+40, seg.EncodedLength(10))
	assert.Equal(t, 4+16+40, seg.EncodedLength(40))
	assert.Equal(t, 8, CountLength(1))
	assert.Equal(t, 16, CountLength(27))

	b := NewBits(0)
	seg.Encode(b, 1)
	b.Write(0, 4)
	assert.Equal(t, []byte{0x40, 0x56, 0x86, 0x56, 0xc6, 0xc6, 0xf0}, b.Bytes())

	b.Reset()
	b.Write(1, 1)
	NewSegment([]byte{0xff, 0x00}).Write(b)
	b.Write(0, 7)
	assert.Equal(t, []byte{0xff, 0x80, 0x00}, b.Bytes())
}

func TestSegmentFits(t *testing.T) {
	assert.True(t, NewSegment(make([]byte, 255)).fits(9))
	assert.False(t, NewSegment(make([]byte, 256)).fits(9))
	assert.True(t, NewSegment(make([]byte, 256)).fits(10))
}
