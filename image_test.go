// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/unixdj/qrbyte"
)

const (
	helloRow0 = "#######.#...#.#######"
	helloRow1 = "#.....#.#...#.#.....#"
)

func hello(t *testing.T) *qr.Code {
	t.Helper()
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.M)
	require.NoError(t, err)
	return c
}

// gray returns the gray level of c, 0 to 0xffff.
func gray(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r + g + b) / 3
}

func TestImage(t *testing.T) {
	c := hello(t)
	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 232, 232), img.Bounds())
	assert.Equal(t, uint32(0xffff), gray(img.At(0, 0)))
	assert.Equal(t, uint32(0), gray(img.At(32, 32)))
	assert.Equal(t, uint32(0), gray(img.At(32+6*8+7, 32)))
	assert.Equal(t, uint32(0xffff), gray(img.At(32+7*8, 32)))
	_, ok := img.ColorModel().(color.Palette)
	assert.True(t, ok)

	c.Reverse = true
	img = c.Image()
	assert.Equal(t, uint32(0), gray(img.At(0, 0)))
	assert.Equal(t, uint32(0xffff), gray(img.At(32, 32)))
}

func TestPNG(t *testing.T) {
	c := hello(t)
	c.Palette = &[2]color.Color{
		color.RGBA{0xff, 0xff, 0xe0, 0xff},
		color.RGBA{0x00, 0x00, 0x80, 0xff},
	}
	b := c.PNG()
	require.NotNil(t, b)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 232, 232), img.Bounds())
	for y := 0; y < 232; y += 4 {
		for x := 0; x < 232; x += 4 {
			want := c.Palette[0]
			if c.Black(x/8-4, y/8-4) {
				want = c.Palette[1]
			}
			assert.Equal(t, color.RGBAModel.Convert(want),
				color.RGBAModel.Convert(img.At(x, y)), "(%d, %d)", x, y)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	assert.Equal(t, b, buf.Bytes())
}

func TestImageArgs(t *testing.T) {
	c := hello(t)
	c.Scale = 0
	assert.Nil(t, c.PNG())
	assert.ErrorIs(t, c.EncodePNG(new(bytes.Buffer)), qr.ErrArgs)
	assert.ErrorIs(t, c.EncodePBM(new(bytes.Buffer)), qr.ErrArgs)

	c.Scale = 10000
	assert.ErrorIs(t, c.EncodePNG(new(bytes.Buffer)), qr.ErrLargeImage)
	assert.ErrorIs(t, c.EncodePBM(new(bytes.Buffer)), qr.ErrLargeImage)

	c.Scale = 1
	c.Bitmap = c.Bitmap[1:]
	assert.ErrorIs(t, c.EncodePNG(new(bytes.Buffer)), qr.ErrArgs)
}

func TestPBM(t *testing.T) {
	c := hello(t)
	c.Scale, c.Border = 1, 0
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	hdr := "P4\n21 21\n"
	require.True(t, strings.HasPrefix(b.String(), hdr))
	body := b.Bytes()[len(hdr):]
	require.Len(t, body, 21*3)
	assert.Equal(t, []byte{0xfe, 0x8b, 0xf8}, body[:3])

	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	assert.Equal(t, []byte{0x01, 0x74, 0x00}, b.Bytes()[len(hdr):len(hdr)+3])

	c.Reverse = false
	c.Scale, c.Border = 2, 1
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	hdr = "P4\n46 46\n"
	require.True(t, strings.HasPrefix(b.String(), hdr))
	body = b.Bytes()[len(hdr):]
	require.Len(t, body, 46*6)
	// quiet zone rows, then two copies of row 0
	assert.Equal(t, make([]byte, 12), body[:12])
	assert.Equal(t, body[12:18], body[18:24])
	assert.Equal(t, []byte{0x3f, 0xff, 0x30, 0x33, 0xff, 0xf0}, body[12:18])
}

func TestString(t *testing.T) {
	c := hello(t)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 15)
	for _, l := range lines {
		assert.Equal(t, 29, utf8.RuneCountInString(l))
	}
	assert.Equal(t, strings.Repeat("█", 29), lines[0])
	assert.Equal(t, strings.Repeat("▀", 29), lines[14])

	c.Reverse = true
	lines = strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	assert.Equal(t, strings.Repeat(" ", 29), lines[0])
	assert.Equal(t, strings.Repeat(" ", 29), lines[14])

	c.Reverse = false
	c.Border = 0
	lines = strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], " ▄▄▄▄▄ █"), lines[0])
}

func TestEncodeASCII(t *testing.T) {
	c := hello(t)
	c.Border = 0
	var b strings.Builder
	require.NoError(t, c.EncodeASCII(&b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	double := strings.NewReplacer("#", "##", ".", "  ")
	assert.Equal(t, double.Replace(helloRow0), lines[0])
	assert.Equal(t, double.Replace(helloRow1), lines[1])

	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodeASCII(&b))
	lines = strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	assert.Equal(t, strings.NewReplacer("#", "  ", ".", "##").Replace(helloRow0), lines[0])

	c.Border = 4
	b.Reset()
	require.NoError(t, c.EncodeASCII(&b))
	assert.Equal(t, (29*2+1)*29, b.Len())
}
