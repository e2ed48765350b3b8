// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxPixels is the largest image side in pixels.
const maxPixels = 1 << 18

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// palette returns the background and foreground colours of c.
func (c *Code) palette() color.Palette {
	pal := color.Palette{whiteColor, blackColor}
	if c.Palette != nil {
		pal = color.Palette{c.Palette[0], c.Palette[1]}
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return pal
}

// pixels returns the image side in pixels.
func (c *Code) pixels() int { return (c.Size + 2*c.Border) * c.Scale }

// Image returns an Image displaying the code with a quiet zone of
// c.Border modules, c.Scale pixels per module.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

// ColorIndexAt returns the palette index of the pixel at (x,y).
func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	x = x/c.Scale - c.Border
	y = y/c.Scale - c.Border
	if c.Black(x, y) {
		return 1
	}
	return 0
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}

// paletted returns the image of c as an image.Paletted, which the
// PNG encoder writes at 1 bit per pixel.
func (c *Code) paletted() *image.Paletted {
	ci := &codeImage{c, c.palette()}
	p := image.NewPaletted(ci.Bounds(), ci.pal)
	d := c.pixels()
	for y := 0; y < d; y++ {
		row := p.Pix[y*p.Stride:]
		for x := 0; x < d; x++ {
			row[x] = ci.ColorIndexAt(x, y)
		}
	}
	return p
}

// PNG returns a PNG image displaying the code, or nil if the code is
// invalid or the image too large.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if c.EncodePNG(&b) != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.pixels() > maxPixels {
		return ErrLargeImage
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.paletted())
}
