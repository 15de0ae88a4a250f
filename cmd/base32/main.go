// Command base32 encodes and decodes base32 data, like the Unix
// utility of the same name.
//
//    base32 [-d [-i]] [-w COLS] [FILE]
package main

import (
	"github.com/ericlagergren/baseutil/base32"
	"github.com/ericlagergren/baseutil/internal/cli"
)

func main() {
	cli.Main(cli.Codec{
		Name:     "base32",
		Encoding: "Base32",
		Encode:   base32.Encode,
		Decode:   base32.Decode,
	})
}
