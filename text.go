// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// String returns the code drawn with UTF-8 half block characters, two
// rows of modules per line, for display on a terminal with light text
// on dark background.  If c.Reverse is set, dark modules are drawn
// as blocks.
func (c *Code) String() string {
	bord := max(c.Border, 0)
	blocks := [4]string{"█", "▀", "▄", " "}
	if c.Reverse {
		blocks = [4]string{" ", "▄", "▀", "█"}
	}
	var b strings.Builder
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if y+1 == c.Size+bord {
				// past the last row: terminal background
				if !c.Reverse {
					n++
				}
			} else if c.Black(x, y+1) {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code to w as text, two '#' characters per
// dark module and two spaces per light one, or the reverse if
// c.Reverse is set.
func (c *Code) EncodeASCII(w io.Writer) error {
	siz := c.Size
	bord := max(c.Border, 0)
	pix := siz + 2*bord
	dark, light := byte('#'), byte(' ')
	if c.Reverse {
		dark, light = light, dark
	}
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p := light
			if c.Black(x, y) {
				p = dark
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
