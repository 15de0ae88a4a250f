// Package codec implements the single-pass stream encoder and
// decoder shared by the base64 and base32 packages.
//
// A Scheme maps groups of GroupLen input bytes to words of
// WordLen symbols. The bit layout of a group is left to the
// caller; Scheme handles buffering, padding, line wrapping, and
// the classification of encoded input.
package codec

import (
	"io"
	"math/bits"

	"github.com/ericlagergren/baseutil"
	"github.com/ericlagergren/baseutil/internal/alphabet"
	"github.com/ericlagergren/baseutil/internal/wrap"
)

// bufferSize is the size of the input buffers.
//
// Encoding consumes whole groups, so it's a multiple of both 3
// and 5.
const bufferSize = 64*1024 - 1

// maxWordLen is the largest supported WordLen.
const maxWordLen = 8

// Scheme is a fixed-size group encoding.
type Scheme struct {
	alpha    *alphabet.Alphabet
	groupLen int
	wordLen  int
	// encode converts groupLen bytes from src into wordLen symbol
	// values in dst.
	encode func(dst, src []byte)
	// decode converts wordLen symbol values from src into
	// groupLen bytes in dst.
	decode func(dst, src []byte)
	// residual maps the index of the first padding symbol in the
	// final word to the number of bytes it holds. Zero entries
	// are illegal padding.
	residual [maxWordLen]int
	// symbols maps a partial group of n bytes to the number of
	// symbols needed to hold it.
	symbols [maxWordLen]int
}

// New creates a Scheme.
//
// wordLen symbols of the alphabet must hold exactly groupLen
// bytes.
func New(a *alphabet.Alphabet, groupLen, wordLen int, encode, decode func(dst, src []byte)) *Scheme {
	width := bits.TrailingZeros(uint(a.Len()))
	if wordLen > maxWordLen || groupLen >= wordLen || groupLen*8 != wordLen*width {
		panic("codec: invalid group geometry")
	}
	s := &Scheme{
		alpha:    a,
		groupLen: groupLen,
		wordLen:  wordLen,
		encode:   encode,
		decode:   decode,
	}
	for n := 1; n < groupLen; n++ {
		k := (n*8 + width - 1) / width
		s.symbols[n] = k
		s.residual[k] = n
	}
	return s
}

// EncodedLen returns the padded length of the encoding of n
// bytes, excluding line breaks.
func (s *Scheme) EncodedLen(n int) int {
	return (n + s.groupLen - 1) / s.groupLen * s.wordLen
}

// DecodedLen returns the maximum number of bytes held by n
// symbols.
func (s *Scheme) DecodedLen(n int) int {
	return n / s.wordLen * s.groupLen
}

// Encode reads src until EOF and writes its encoding to dst,
// breaking lines after cols symbols.
//
// If cols is baseutil.NoWrap the output is a single line with no
// trailing newline. Otherwise cols must be positive and the
// output, if any, ends with a newline.
func (s *Scheme) Encode(dst io.Writer, src io.Reader, cols int) error {
	if cols <= 0 && cols != baseutil.NoWrap {
		return baseutil.ErrInvalidWrap
	}

	in := make([]byte, bufferSize)
	out := make([]byte, s.EncodedLen(bufferSize))
	w := wrap.NewWriter(dst, cols)

	nbuf := 0
	for {
		n, err := src.Read(in[nbuf:])
		nbuf += n

		// Full groups; the remainder is carried into the next
		// read.
		if full := nbuf / s.groupLen * s.groupLen; full > 0 {
			nw := s.encodeGroups(out, in[:full])
			if _, err := w.Write(out[:nw]); err != nil {
				return err
			}
			nbuf = copy(in, in[full:nbuf])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if nbuf > 0 {
		var group [maxWordLen]byte
		copy(group[:], in[:nbuf])
		s.encode(out, group[:s.groupLen])
		k := s.symbols[nbuf]
		for i := 0; i < k; i++ {
			out[i] = s.alpha.Symbol(out[i])
		}
		for i := k; i < s.wordLen; i++ {
			out[i] = alphabet.PadChar
		}
		if _, err := w.Write(out[:s.wordLen]); err != nil {
			return err
		}
	}
	return w.Close()
}

// encodeGroups encodes src, which must be a multiple of groupLen
// bytes, into dst and returns the number of symbols written.
func (s *Scheme) encodeGroups(dst, src []byte) int {
	n := 0
	for len(src) > 0 {
		word := dst[n : n+s.wordLen]
		s.encode(word, src[:s.groupLen])
		for i, v := range word {
			word[i] = s.alpha.Symbol(v)
		}
		n += s.wordLen
		src = src[s.groupLen:]
	}
	return n
}

// Decode reads encoded data from src until EOF and writes the
// decoded bytes to dst.
//
// Whitespace is skipped. Any other byte outside of the alphabet
// causes Decode to return baseutil.ErrInvalidInput unless
// ignoreGarbage is set, in which case the byte is skipped and
// decoding stops after the first padded word.
//
// Output decoded from earlier reads may have been written to dst
// when Decode returns an error.
func (s *Scheme) Decode(dst io.Writer, src io.Reader, ignoreGarbage bool) error {
	in := make([]byte, bufferSize)
	out := make([]byte, 0, bufferSize+s.groupLen)

	var buf [maxWordLen]byte
	word := buf[:s.wordLen]
	nword := 0

	// Set once the final, padded word has been decoded.
	reachedEnd := false

	for {
		n, rerr := src.Read(in)
		for _, c := range in[:n] {
			word[nword] = s.alpha.Class(c)
			nword++
			if nword < s.wordLen {
				continue
			}

			if !reachedEnd && s.alpha.IsData(word) {
				out = s.appendWord(out, word, s.groupLen)
				nword = 0
				continue
			}

			var ok bool
			nword, ok = alphabet.Compact(word, ignoreGarbage)
			if !ok {
				return baseutil.ErrInvalidInput
			}
			if nword < s.wordLen {
				continue
			}

			// A full word that is not all data must be the final
			// word.
			if reachedEnd {
				return baseutil.ErrInvalidInput
			}
			reachedEnd = true
			nword = 0

			r := s.finalLen(word)
			if r == 0 {
				return baseutil.ErrInvalidInput
			}
			out = s.appendWord(out, word, r)

			if ignoreGarbage {
				return writeFull(dst, out)
			}
		}

		if err := writeFull(dst, out); err != nil {
			return err
		}
		out = out[:0]

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	// An incomplete final word is dropped, unless it contains
	// garbage.
	if !ignoreGarbage && alphabet.HasInvalid(word[:nword]) {
		return baseutil.ErrInvalidInput
	}
	return nil
}

// finalLen returns the number of bytes held by the padded word,
// or zero if the padding is malformed.
//
// word must contain only data and padding classes.
func (s *Scheme) finalLen(word []byte) int {
	pad := s.alpha.Padding()
	k := 0
	for k < len(word) && word[k] != pad {
		k++
	}
	for i := k; i < len(word); i++ {
		if word[i] != pad {
			return 0
		}
	}
	if k == len(word) {
		return 0
	}
	return s.residual[k]
}

// appendWord decodes word, replacing any padding with zero bits,
// and appends the first n bytes to dst.
func (s *Scheme) appendWord(dst, word []byte, n int) []byte {
	var values [maxWordLen]byte
	pad := s.alpha.Padding()
	for i, v := range word {
		if v != pad {
			values[i] = v
		}
	}
	var group [maxWordLen]byte
	s.decode(group[:], values[:s.wordLen])
	return append(dst, group[:n]...)
}

func writeFull(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}
