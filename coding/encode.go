// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

// EncodedBits returns the encoded length in bits of segs in version
// v, before termination and padding.  If the length of a segment
// overflows its count field in v, EncodedBits returns math.MaxInt.
func EncodedBits(v Version, segs ...Segment) int {
	n := 0
	for _, seg := range segs {
		if !seg.fits(v) {
			return math.MaxInt
		}
		n += seg.EncodedLength(v)
	}
	return n
}

// Codewords returns the final codeword sequence for segs in a version
// v, level l symbol with block structure from t: encoded data,
// terminator and padding split into blocks, error correction added to
// each block, then data and error correction codewords interleaved.
// If t is nil, StandardBlocks is used.
func Codewords(v Version, l Level, t BlockTable, segs ...Segment) ([]byte, error) {
	if t == nil {
		t = StandardBlocks
	}
	blocks, err := t.Blocks(v, l)
	if err != nil {
		return nil, err
	}
	if err := checkBlocks(blocks, v); err != nil {
		return nil, err
	}
	nd := DataBytes(blocks)
	if n := EncodedBits(v, segs...); n > nd*8 {
		return nil, CapacityError{n, nd * 8, v, l}
	}

	total := TotalBytes(blocks)
	b := NewBits(total)
	for _, seg := range segs {
		seg.Encode(b, v)
	}
	b.pad(nd * 8)
	dat := b.Bytes()
	if len(dat) != nd {
		panic("qr: internal error")
	}

	// Error correction per block.
	check := make([][]byte, len(blocks))
	data := make([][]byte, len(blocks))
	for i, bl := range blocks {
		data[i], dat = dat[:bl.Data], dat[bl.Data:]
		check[i] = make([]byte, bl.Check())
		rs.ECC(data[i], check[i])
	}

	words := make([]byte, 0, total)
	words = interleave(words, data)
	words = interleave(words, check)
	return words, nil
}

// interleave appends the i'th byte of each block in turn to dst for
// increasing i, skipping blocks shorter than i.
func interleave(dst []byte, blocks [][]byte) []byte {
	n := 0
	for _, b := range blocks {
		n = max(n, len(b))
	}
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}
