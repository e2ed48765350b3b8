// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr writes data as a byte mode QR code.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"

	qr "github.com/unixdj/qrbyte"
	"github.com/unixdj/qrbyte/coding"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"})

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	conf    string          // configuration file
	lev     qr.Level        // QR correction level
	ver     coding.Version  // QR version, 0 for smallest
	format  int             // output file format
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	latin1  bool            // Latin-1 byte mode
	upper   bool            // uppercase
	debug   bool            // debug logging
}{
	inc: [2]int{1, 1},
	bg:  white,
	fg:  black,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode as is, or converted
from UTF-8 to Latin-1 with -1.  Defaults are read from -c file, or
from `+defaultConfigPath()+` if it exists.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

// formatIndex returns the index of the output type s in formats,
// or -1.
func formatIndex(s string) int {
	for i, v := range formats {
		if s == v {
			return i
		}
	}
	return -1
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	(*qr.Code).EncodeASCII,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.debug, 'd', "log version, mask and size to stderr")
	getopt.Flag(&g.border, 'm', `quiet zone pixels [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	cfg := getopt.Flag(&g.conf, 'c', "read defaults from file", "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 16}),
		`image pixels (type eps[i]: points) per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.debug {
		logger.SetLevel(log.DebugLevel)
	}

	// Defaults from the configuration file for options not given.
	name := g.conf
	if !cfg.Seen() {
		name = defaultConfigPath()
	}
	c, err := loadConfig(name, cfg.Seen())
	if err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	if c.Level != "" && !getopt.IsSet('l') {
		*lev = c.Level
	}
	if c.Version != 0 && !getopt.IsSet('v') {
		*ver = uint64(c.Version)
	}
	if c.Type != "" && !getopt.IsSet('t') {
		*ff = c.Type
	}
	if c.Scale != 0 && !getopt.IsSet('s') {
		*scale = uint64(c.Scale)
	}
	if c.Margin != nil && !getopt.IsSet('m') {
		g.border = *c.Margin
	}
	if c.Background != "" && !getopt.IsSet('B') {
		g.bg.Set(c.Background, nil)
	}
	if c.Foreground != "" && !getopt.IsSet('F') {
		g.fg.Set(c.Foreground, nil)
	}
	g.latin1 = g.latin1 || c.Latin1
	g.upper = g.upper || c.Upper
	g.colSet = getopt.IsSet('B') || getopt.IsSet('F') ||
		c.Background != "" || c.Foreground != ""

	g.scale = int(*scale)
	g.ver = coding.Version(*ver)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if !getopt.IsSet('m') && c.Margin == nil {
		g.border = -1
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	i := formatIndex(*ff)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{g.bg.color(), g.fg.color()}
	}
	logger.Debug("options", "level", g.lev, "version", g.ver,
		"type", *ff, "scale", g.scale, "config", name)
}

// input returns the data to encode: the arguments joined with spaces,
// or standard input with the final newline stripped.
func input() []byte {
	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			logger.Fatal("reading input", "err", err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	if g.latin1 {
		t, err := charmap.ISO8859_1.NewEncoder().String(s)
		if err != nil {
			logger.Fatal("input not representable in Latin-1", "err", err)
		}
		s = t
	}
	return []byte(s)
}

func main() {
	parseFlags()
	data := input()
	c, err := qr.EncodeVersion(data, g.lev, g.ver)
	if err != nil {
		logger.Fatal("cannot encode", "bytes", len(data), "err", err)
	}
	logger.Debug("encoded", "bytes", len(data), "version", c.Version,
		"level", c.Level, "mask", c.Mask, "size", c.Size)
	write(c)
}

func write(c *qr.Code) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			logger.Fatal("cannot create output", "err", err)
		}
	}
	c = randr(c)
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	if g.border >= 0 {
		c.Border = g.border
	}
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		logger.Fatal("cannot write output", "err", err)
	}
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	siz := c.Size
	b := make([]byte, len(c.Bitmap))
	var coord [2]int
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		row := b[y*c.Stride:]
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			if c.Black(coord[0], coord[1]) {
				row[x>>3] |= 0x80 >> (x & 7)
			}
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	return c
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	if _, err := fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qr https://github.com/unixdj/qrbyte
%%%%Title: QR Code version %s-%s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale); err != nil {
		return err
	}
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
		}
		fmt.Fprintf(w, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(w, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			b := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := io.WriteString(w, "stroke grestore\nend\n%%Trailer\n")
	return err
}
