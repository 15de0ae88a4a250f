package base32

import (
	"bytes"
	"encoding/base32"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func encode(t *testing.T, src []byte, wrap int) []byte {
	t.Helper()

	var dst bytes.Buffer
	if err := Encode(&dst, bytes.NewReader(src), wrap); err != nil {
		t.Fatalf("Encode(%q, %d): %v", src, wrap, err)
	}
	return dst.Bytes()
}

func decode(src []byte, ignoreGarbage bool) ([]byte, error) {
	var dst bytes.Buffer
	err := Decode(&dst, bytes.NewReader(src), ignoreGarbage)
	return dst.Bytes(), err
}

func newRand(t *testing.T) *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	return rand.New(rand.NewSource(seed))
}

// RFC 4648 section 10 test vectors, plus wrapping.
var encodeTests = []struct {
	data string
	wrap int
	want string
}{
	{"", NoWrap, ""},
	{"", 76, ""},
	{"f", NoWrap, "MY======"},
	{"fo", NoWrap, "MZXQ===="},
	{"foo", NoWrap, "MZXW6==="},
	{"foob", NoWrap, "MZXW6YQ="},
	{"fooba", NoWrap, "MZXW6YTB"},
	{"foobar", NoWrap, "MZXW6YTBOI======"},
	{"hello, world!", NoWrap, "NBSWY3DPFQQHO33SNRSCC==="},
	{"hello, world!", 76, "NBSWY3DPFQQHO33SNRSCC===\n"},
	{"hello, world!", 8, "NBSWY3DP\nFQQHO33S\nNRSCC===\n"},
	{"hello, world!", 10, "NBSWY3DPFQ\nQHO33SNRSC\nC===\n"},
	{"\xff\xff\xff\xff\xff", NoWrap, "77777777"},
}

func TestEncode(t *testing.T) {
	for i, tc := range encodeTests {
		got := encode(t, []byte(tc.data), tc.wrap)
		if diff := cmp.Diff(tc.want, string(got)); diff != "" {
			t.Fatalf("#%d: (-want, +got)\n%s", i, diff)
		}
	}
}

func TestDecode(t *testing.T) {
	for i, tc := range encodeTests {
		got, err := decode([]byte(tc.want), false)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if diff := cmp.Diff(tc.data, string(got)); diff != "" {
			t.Fatalf("#%d: (-want, +got)\n%s", i, diff)
		}
	}
}

func TestDecodeLenient(t *testing.T) {
	for i, tc := range []struct {
		in            string
		ignoreGarbage bool
		want          string
	}{
		{"MZXW6YTB\n", false, "fooba"},
		{"MZXW 6YTB\r\n", false, "fooba"},
		{"MY======\n", false, "f"},
		{"MZXW6YTBMZX", false, "fooba"},
		{"M!ZXW6Y*TB", true, "fooba"},
		{"MZXW6YQ=!", true, "foob"},
		{"MZXW6YQ=MZXW6YTB", true, "foob"},
		{"MY======MY======", true, "f"},
	} {
		got, err := decode([]byte(tc.in), tc.ignoreGarbage)
		if err != nil {
			t.Fatalf("#%d: %q: %v", i, tc.in, err)
		}
		if diff := cmp.Diff(tc.want, string(got)); diff != "" {
			t.Fatalf("#%d: %q: (-want, +got)\n%s", i, tc.in, diff)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for i, tc := range []struct {
		in            string
		ignoreGarbage bool
	}{
		{"MZXW6YTB!", false},
		{"MZXW6Y1B", false},
		{"mzxw6ytb", false},
		{"========", false},
		{"M=======", false},
		{"MZX=====", false},
		{"MZXW6Y==", false},
		{"MY=====A", false},
		{"MZ=Q====", false},
		{"MZX=====", true},
		{"MY======MY======", false},
		{"MY======MZXW6YTB", false},
	} {
		got, err := decode([]byte(tc.in), tc.ignoreGarbage)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("#%d: %q: expected %v, got (%q, %v)",
				i, tc.in, ErrInvalidInput, got, err)
		}
	}
}

// TestEncodeStdlib tests Encode against the stdlib.
func TestEncodeStdlib(t *testing.T) {
	src := make([]byte, 2048)
	if _, err := newRand(t).Read(src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		want := base32.StdEncoding.EncodeToString(src[:i])
		got := encode(t, src[:i], NoWrap)
		if want != string(got) {
			t.Fatalf("#%d: mismatch: %s", i, cmp.Diff(want, string(got)))
		}
		if n := EncodedLen(i); n != len(got) {
			t.Fatalf("#%d: expected EncodedLen %d, got %d", i, len(got), n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := newRand(t)
	for _, wrap := range []int{NoWrap, 1, 4, 20, 76} {
		for i := 0; i < 200; i++ {
			data := make([]byte, rng.Intn(512))
			rng.Read(data)

			got, err := decode(encode(t, data, wrap), false)
			if err != nil {
				t.Fatalf("(%d, %d): %v", wrap, len(data), err)
			}
			if !bytes.Equal(data, got) {
				t.Fatalf("(%d, %d): mismatch: %s",
					wrap, len(data), cmp.Diff(data, got))
			}
		}
	}
}

func TestRoundTripLarge(t *testing.T) {
	rng := newRand(t)
	data := make([]byte, 2*64*1024+3)
	rng.Read(data)

	for _, wrap := range []int{NoWrap, 76} {
		got, err := decode(encode(t, data, wrap), false)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, got) {
			t.Fatalf("%d: mismatch", wrap)
		}
	}
}

func TestWrapInvariant(t *testing.T) {
	rng := newRand(t)
	for i := 0; i < 500; i++ {
		data := make([]byte, 1+rng.Intn(300))
		rng.Read(data)
		wrap := 1 + rng.Intn(100)

		enc := string(encode(t, data, wrap))
		if !strings.HasSuffix(enc, "\n") || strings.HasSuffix(enc, "\n\n") {
			t.Fatalf("(%d, %d): expected exactly one trailing newline: %q",
				wrap, len(data), enc)
		}
		lines := strings.Split(strings.TrimSuffix(enc, "\n"), "\n")
		for j, line := range lines {
			last := j == len(lines)-1
			if (!last && len(line) != wrap) || len(line) > wrap || len(line) == 0 {
				t.Fatalf("(%d, %d): line %d has length %d",
					wrap, len(data), j, len(line))
			}
		}
	}
}

func TestPadding(t *testing.T) {
	for n, pad := range []int{0, 6, 4, 3, 1} {
		for _, size := range []int{n, n + 5, n + 50} {
			enc := encode(t, make([]byte, size), NoWrap)
			got := len(enc) - len(bytes.TrimRight(enc, "="))
			if got != pad {
				t.Fatalf("%d: expected %d padding symbols, got %d", size, pad, got)
			}
		}
	}
}

func TestGarbage(t *testing.T) {
	var g []byte
	for i := 0; i < 256; i++ {
		if strings.IndexByte(stdTable+"= \t\n\v\f\r", byte(i)) < 0 {
			g = append(g, byte(i))
		}
	}

	rng := newRand(t)
	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(200))
		rng.Read(data)
		enc := encode(t, data, 76)

		dirty := append([]byte(nil), enc...)
		for j := 0; j < 1+rng.Intn(10); j++ {
			k := rng.Intn(len(dirty) + 1)
			c := g[rng.Intn(len(g))]
			dirty = append(dirty[:k], append([]byte{c}, dirty[k:]...)...)
		}

		got, err := decode(dirty, true)
		if err != nil {
			t.Fatalf("%q: %v", dirty, err)
		}
		if !bytes.Equal(data, got) {
			t.Fatalf("%q: mismatch: %s", dirty, cmp.Diff(data, got))
		}
		if _, err := decode(dirty, false); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected %v, got %v", dirty, ErrInvalidInput, err)
		}
	}
}

func TestOneByteReader(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog.")

	var enc bytes.Buffer
	err := Encode(&enc, iotest.OneByteReader(bytes.NewReader(data)), 20)
	if err != nil {
		t.Fatal(err)
	}
	if want := encode(t, data, 20); !bytes.Equal(want, enc.Bytes()) {
		t.Fatalf("mismatch: %s", cmp.Diff(string(want), enc.String()))
	}

	var dec bytes.Buffer
	err = Decode(&dec, iotest.OneByteReader(bytes.NewReader(enc.Bytes())), false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, dec.Bytes()) {
		t.Fatalf("mismatch: %s", cmp.Diff(data, dec.Bytes()))
	}
}

func TestInvalidWrap(t *testing.T) {
	var dst bytes.Buffer
	err := Encode(&dst, strings.NewReader("hello"), 0)
	if !errors.Is(err, ErrInvalidWrap) {
		t.Fatalf("expected %v, got %v", ErrInvalidWrap, err)
	}
	if dst.Len() != 0 {
		t.Fatalf("unexpected output %q", dst.String())
	}
}

func TestIOErrors(t *testing.T) {
	errBoom := errors.New("boom")

	if err := Encode(io.Discard, iotest.ErrReader(errBoom), NoWrap); !errors.Is(err, errBoom) {
		t.Fatalf("expected %v, got %v", errBoom, err)
	}
	if err := Decode(io.Discard, iotest.ErrReader(errBoom), true); !errors.Is(err, errBoom) {
		t.Fatalf("expected %v, got %v", errBoom, err)
	}
}

func TestStrings(t *testing.T) {
	const enc = "NBSWY3DPFQQHO33SNRSCC==="
	if got := EncodeToString([]byte("hello, world!")); got != enc {
		t.Fatalf("expected %q, got %q", enc, got)
	}
	got, err := DecodeString(enc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello, world!" {
		t.Fatalf("expected %q, got %q", "hello, world!", got)
	}
	if n := DecodedLen(len(enc)); n != 15 {
		t.Fatalf("expected 15, got %d", n)
	}
}
