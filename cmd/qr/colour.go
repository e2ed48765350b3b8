// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
)

type rgba struct {
	R, G, B, A uint8
}

var (
	black = rgba{0x00, 0x00, 0x00, 0xff}
	white = rgba{0xff, 0xff, 0xff, 0xff}
)

// A few X11 colour names.
var rgb = map[string]rgba{
	"black":     black,
	"white":     white,
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"gray":      {0xbe, 0xbe, 0xbe, 0xff},
	"grey":      {0xbe, 0xbe, 0xbe, 0xff},
	"navy":      {0x00, 0x00, 0x80, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"darkgreen": {0x00, 0x64, 0x00, 0xff},
	"ivory":     {0xff, 0xff, 0xf0, 0xff},
	"none":      {0x00, 0x00, 0x00, 0x00},
}

func (c *rgba) String() string {
	switch {
	case *c == black:
		return "black"
	case *c == white:
		return "white"
	case c.A == 0xff:
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Set parses a colour name or 3, 4, 6 or 8 hex digits.
func (c *rgba) Set(s string, _ getopt.Option) error {
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

func (c rgba) color() color.Color { return color.RGBA(c) }
