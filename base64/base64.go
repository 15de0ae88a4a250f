package base64

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
	// ErrInvalidInput is returned when the Base64-encoded input
	// is incorrect.
	ErrInvalidInput = baseutil.ErrInvalidInput
	// ErrInvalidWrap is returned when the wrap width is neither
	// positive nor NoWrap.
	ErrInvalidWrap = baseutil.ErrInvalidWrap
)

// The standard Base64 alphabet.
const stdTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

var std = codec.New(alphabet.New(stdTable), 3, 4, encodeGroup, decodeWord)

// Encode reads src until EOF and writes its Base64 encoding to
// dst, breaking lines after wrap symbols.
//
// If wrap is NoWrap the output is a single line with no trailing
// newline. Otherwise wrap must be positive; every line but the
// last holds exactly wrap symbols and every line, including the
// last, ends with '\n'. Empty input produces no output.
//
// Encode returns ErrInvalidWrap, without reading src, if wrap is
// invalid. Errors from src and dst are returned as-is.
func Encode(dst io.Writer, src io.Reader, wrap int) error {
	return std.Encode(dst, src, wrap)
}

// Decode reads Base64 from src until EOF and writes the decoded
// bytes to dst.
//
// Decode returns ErrInvalidInput if src contains a byte that is
// neither whitespace nor part of the alphabet (unless
// ignoreGarbage is set), misplaced padding, or more than one
// padded group.
//
// See the package docs for a comparison with encoding/base64.
func Decode(dst io.Writer, src io.Reader, ignoreGarbage bool) error {
	return std.Decode(dst, src, ignoreGarbage)
}

// EncodedLen returns the length in bytes of the unwrapped Base64
// encoding of n source bytes.
func EncodedLen(n int) int {
	return std.EncodedLen(n)
}

// DecodedLen returns the maximum length in bytes of the data
// held by n Base64 symbols.
func DecodedLen(n int) int {
	return std.DecodedLen(n)
}

// EncodeToString returns the unwrapped Base64 encoding of src.
func EncodeToString(src []byte) string {
	var b strings.Builder
	b.Grow(EncodedLen(len(src)))
	// Writes to a strings.Builder cannot fail.
	_ = Encode(&b, bytes.NewReader(src), NoWrap)
	return b.String()
}

// DecodeString returns the bytes represented by the Base64
// string s.
//
// Whitespace in s is skipped. If s is otherwise invalid,
// DecodeString returns ErrInvalidInput.
func DecodeString(s string) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(DecodedLen(len(s)))
	if err := Decode(&b, strings.NewReader(s), false); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// encodeGroup converts 3 bytes into 4 6-bit values,
// most-significant first.
func encodeGroup(dst, src []byte) {
	v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
	dst[0] = byte(v >> 18 & 0x3f)
	dst[1] = byte(v >> 12 & 0x3f)
	dst[2] = byte(v >> 6 & 0x3f)
	dst[3] = byte(v & 0x3f)
}

// decodeWord converts 4 6-bit values into 3 bytes.
func decodeWord(dst, src []byte) {
	v := uint(src[0])<<18 | uint(src[1])<<12 | uint(src[2])<<6 | uint(src[3])
	dst[0] = byte(v >> 16)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v)
}
