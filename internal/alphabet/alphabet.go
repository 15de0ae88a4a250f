// Package alphabet implements the symbol tables used by the
// codecs.
//
// Every input byte decodes to a class: a data value in [0, N)
// for an alphabet of N symbols, Padding(N) for '=', Whitespace,
// or Invalid. Padding sorts directly after the data values so
// that a group of classes is all data iff the bitwise OR of the
// group is less than N (N is a power of two).
package alphabet

const (
	// Whitespace is the class of ' ', '\t', '\n', '\v', '\f', and
	// '\r'.
	Whitespace = 0xfe
	// Invalid is the class of every byte that is neither a
	// symbol, padding, nor whitespace.
	Invalid = 0xff
)

// PadChar is the padding symbol.
const PadChar = '='

// Alphabet is an immutable forward and reverse symbol table.
type Alphabet struct {
	enc string
	dec [256]byte
}

// New creates an Alphabet from its symbols.
//
// The number of symbols must be a power of two less than 128,
// and the symbols must be unique, printable, and contain neither
// padding nor whitespace.
func New(symbols string) *Alphabet {
	n := len(symbols)
	if n == 0 || n >= 128 || n&(n-1) != 0 {
		panic("alphabet: invalid size")
	}
	a := &Alphabet{enc: symbols}
	for i := range a.dec {
		a.dec[i] = Invalid
	}
	for _, c := range []byte(" \t\n\v\f\r") {
		a.dec[c] = Whitespace
	}
	a.dec[PadChar] = byte(n)
	for i := 0; i < n; i++ {
		c := symbols[i]
		if a.dec[c] != Invalid {
			panic("alphabet: duplicate or reserved symbol")
		}
		a.dec[c] = byte(i)
	}
	return a
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.enc)
}

// Symbol returns the symbol for the value v.
//
// v must be in [0, Len()).
func (a *Alphabet) Symbol(v byte) byte {
	return a.enc[v]
}

// Class returns the class of the input byte c.
func (a *Alphabet) Class(c byte) byte {
	return a.dec[c]
}

// Padding returns the class of PadChar.
func (a *Alphabet) Padding() byte {
	return byte(len(a.enc))
}

// IsData reports whether every class in word is a data value.
func (a *Alphabet) IsData(word []byte) bool {
	var v byte
	for _, c := range word {
		v |= c
	}
	return int(v) < len(a.enc)
}

// Compact removes whitespace from word, and Invalid classes if
// ignoreGarbage is set, preserving the order of the remaining
// classes. It returns the new length of word.
//
// If word contains an Invalid class and ignoreGarbage is not
// set, Compact returns false.
func Compact(word []byte, ignoreGarbage bool) (int, bool) {
	n := 0
	for _, c := range word {
		switch c {
		case Whitespace:
			continue
		case Invalid:
			if !ignoreGarbage {
				return n, false
			}
			continue
		}
		word[n] = c
		n++
	}
	return n, true
}

// HasInvalid reports whether word contains an Invalid class.
func HasInvalid(word []byte) bool {
	for _, c := range word {
		if c == Invalid {
			return true
		}
	}
	return false
}
