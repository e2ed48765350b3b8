// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// ByteMode is the 4 bit mode indicator of a byte mode segment.
const ByteMode = 4

// countLength lists lengths of the byte mode character count field
// in the three QR version size classes.
var countLength = [3]int{8, 16, 16}

// CountLength returns the length in bits of the byte mode character
// count field in version v.
func CountLength(v Version) int { return countLength[v.SizeClass()] }

// A Segment is a byte mode QR code segment.  Its data must not be
// modified once the segment is in use; NewSegment makes a copy.
type Segment struct {
	Data []byte
}

// NewSegment returns a Segment holding a copy of data.
func NewSegment(data []byte) Segment {
	return Segment{append([]byte{}, data...)}
}

// Len returns the character count of seg, its length in bytes.
func (seg Segment) Len() int { return len(seg.Data) }

// fits reports whether the character count of seg fits into the
// count field of version v.
func (seg Segment) fits(v Version) bool {
	return len(seg.Data) < 1<<CountLength(v)
}

// EncodedLength returns the encoded length in bits of seg in version
// v, including the header.
func (seg Segment) EncodedLength(v Version) int {
	return 4 + CountLength(v) + 8*len(seg.Data)
}

// Write writes the data of seg to b, 8 bits per byte.
func (seg Segment) Write(b *Bits) {
	if b.nbit&7 != 0 {
		for _, c := range seg.Data {
			b.Write(uint32(c), 8)
		}
		return
	}
	b.b = append(b.b, seg.Data...)
	b.nbit += len(seg.Data) * 8
}

// Encode writes seg encoded for version v to b: mode indicator,
// character count and data.  The count is truncated to the width of
// the count field; callers check capacity with EncodedBits first.
func (seg Segment) Encode(b *Bits, v Version) {
	b.Write(ByteMode, 4)
	b.Write(uint32(len(seg.Data)), CountLength(v))
	seg.Write(b)
}
