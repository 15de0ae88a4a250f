package base32

import (
	"bytes"
	"io"
	"strings"

	"github.com/ericlagergren/baseutil"
	"github.com/ericlagergren/baseutil/internal/alphabet"
	"github.com/ericlagergren/baseutil/internal/codec"
)

// NoWrap disables line wrapping in Encode.
const NoWrap = baseutil.NoWrap

var (
	// ErrInvalidInput is returned when the Base32-encoded input
	// is incorrect.
	ErrInvalidInput = baseutil.ErrInvalidInput
	// ErrInvalidWrap is returned when the wrap width is neither
	// positive nor NoWrap.
	ErrInvalidWrap = baseutil.ErrInvalidWrap
)

// The standard Base32 alphabet.
const stdTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var std = codec.New(alphabet.New(stdTable), 5, 8, encodeGroup, decodeWord)

// Encode reads src until EOF and writes its Base32 encoding to
// dst, breaking lines after wrap symbols.
//
// If wrap is NoWrap the output is a single line with no trailing
// newline. Otherwise wrap must be positive and every line ends
// with '\n'.
//
// Encode returns ErrInvalidWrap, without reading src, if wrap is
// invalid.
func Encode(dst io.Writer, src io.Reader, wrap int) error {
	return std.Encode(dst, src, wrap)
}

// Decode reads Base32 from src until EOF and writes the decoded
// bytes to dst.
func Decode(dst io.Writer, src io.Reader, ignoreGarbage bool) error {
	return std.Decode(dst, src, ignoreGarbage)
}

// EncodedLen returns the length in bytes of the unwrapped Base32
// encoding of n source bytes.
func EncodedLen(n int) int {
	return std.EncodedLen(n)
}

// DecodedLen returns the maximum length in bytes of the data
// held by n Base32 symbols.
func DecodedLen(n int) int {
	return std.DecodedLen(n)
}

// EncodeToString returns the unwrapped Base32 encoding of src.
func EncodeToString(src []byte) string {
	var b strings.Builder
	b.Grow(EncodedLen(len(src)))
	_ = Encode(&b, bytes.NewReader(src), NoWrap)
	return b.String()
}

// DecodeString returns the bytes represented by the Base32
// string s.
func DecodeString(s string) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(DecodedLen(len(s)))
	if err := Decode(&b, strings.NewReader(s), false); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// encodeGroup converts 5 bytes into 8 5-bit values,
// most-significant first.
func encodeGroup(dst, src []byte) {
	v := uint64(src[0])<<32 |
		uint64(src[1])<<24 |
		uint64(src[2])<<16 |
		uint64(src[3])<<8 |
		uint64(src[4])
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (35 - 5*i) & 0x1f)
	}
}

// decodeWord converts 8 5-bit values into 5 bytes.
func decodeWord(dst, src []byte) {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<5 | uint64(src[i])
	}
	dst[0] = byte(v >> 32)
	dst[1] = byte(v >> 24)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 8)
	dst[4] = byte(v)
}
