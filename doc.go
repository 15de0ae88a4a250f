// Package baseutil holds what the base64 and base32 stream codecs
// share.
//
// The codecs reproduce the output of the Unix base64 and base32
// utilities byte for byte: encoded output is optionally wrapped
// into fixed-width lines terminated by a single trailing newline,
// and decoding skips whitespace and, optionally, any byte outside
// the alphabet.
package baseutil
