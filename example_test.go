// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	"golang.org/x/text/encoding/charmap"

	qr "github.com/unixdj/qrbyte"
)

func ExampleEncode() {
	c, err := qr.Encode([]byte("HELLO WORLD"), qr.M)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("version %s-%s, mask %d, %d×%d modules\n",
		c.Version, c.Level, c.Mask, c.Size, c.Size)
	// Output:
	// version 1-M, mask 3, 21×21 modules
}

func ExampleSymbol() {
	s := qr.NewSymbol(qr.M)
	s.AddData([]byte("hello "))
	s.AddData([]byte("world"))
	fmt.Println(s.State())
	c, err := s.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s.State())
	fmt.Printf("version %s-%s, mask %d\n", c.Version, c.Level, c.Mask)
	// Output:
	// staged
	// built
	// version 1-M, mask 6
}

// Byte mode data is conventionally ISO 8859-1.
func ExampleCode_Modules() {
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("Grüße"))
	if err != nil {
		log.Fatal(err)
	}
	c, err := qr.Encode(data, qr.L)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(data), "bytes, version", c.Version)
	for _, dark := range c.Modules()[8] {
		if dark {
			fmt.Print("#")
		} else {
			fmt.Print(".")
		}
	}
	fmt.Println()
	// Output:
	// 5 bytes, version 1
	// #####.###..#.#.#.#.#.
}
