// Command base64 encodes and decodes base64 data, like the Unix
// utility of the same name.
//
//    base64 [-d [-i]] [-w COLS] [FILE]
package main

import (
	"github.com/ericlagergren/baseutil/base64"
	"github.com/ericlagergren/baseutil/internal/cli"
)

func main() {
	cli.Main(cli.Codec{
		Name:     "base64",
		Encoding: "Base64",
		Encode:   base64.Encode,
		Decode:   base64.Decode,
	})
}
