// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.pixels() > maxPixels {
		return ErrLargeImage
	}
	b := bufio.NewWriter(w)
	length := c.pixels()
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		pbmRow(row, c, y)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes QR row y of c, quiet zone included, in PBM format:
// 1 is black, bits past the image width are 0.
func pbmRow(row []byte, c *Code, y int) {
	for i := range row {
		row[i] = 0
	}
	n := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		on := c.Black(x, y) != c.Reverse
		for i := 0; i < c.Scale; i++ {
			if on {
				row[n>>3] |= 0x80 >> (n & 7)
			}
			n++
		}
	}
}
