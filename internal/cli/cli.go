// Package cli implements the base64 and base32 command line
// tools.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ericlagergren/baseutil"
)

// Exit codes.
const (
	// Success is returned when the input was fully encoded or
	// decoded.
	Success = iota
	// Failure is returned for usage errors, I/O errors, and
	// invalid input.
	Failure
)

// Codec is an encoding exposed by a command line tool.
type Codec struct {
	// Name is the name of the program, used in messages.
	Name string
	// Encoding is the human readable name of the encoding.
	Encoding string

	Encode func(dst io.Writer, src io.Reader, wrap int) error
	Decode func(dst io.Writer, src io.Reader, ignoreGarbage bool) error
}

type command struct {
	Decode        bool   `short:"d" help:"Decode data."`
	IgnoreGarbage bool   `short:"i" help:"When decoding, ignore non-alphabet characters."`
	Wrap          int    `short:"w" default:"76" help:"Wrap encoded lines after COLS characters. Use 0 to disable line wrapping."`
	Debug         bool   `hidden:"" help:"Log progress to standard error."`
	File          string `arg:"" optional:"" default:"-" help:"The input file. With no FILE, or when FILE is -, read standard input."`
}

func (cmd *command) validate() error {
	if cmd.IgnoreGarbage && !cmd.Decode {
		return errors.New("--ignore-garbage requires --decode")
	}
	if cmd.Wrap < 0 {
		return errors.Errorf("invalid wrap size: %d", cmd.Wrap)
	}
	return nil
}

// wrap returns the wrap width to pass to Encode.
func (cmd *command) wrap() int {
	if cmd.Wrap == 0 {
		return baseutil.NoWrap
	}
	return cmd.Wrap
}

// Main runs the tool with the process arguments and exits.
func Main(c Codec) {
	os.Exit(Run(c, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// exit unwinds Run when kong asks to exit, e.g. after --help.
type exit int

// Run runs the tool and returns its exit code.
//
// Errors are written to stderr as "<name>: <message>".
func Run(c Codec, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(exit)
			if !ok {
				panic(r)
			}
			code = int(e)
		}
	}()

	var cmd command
	parser, err := kong.New(&cmd,
		kong.Name(c.Name),
		kong.Description(fmt.Sprintf(
			"%s encode or decode FILE, or standard input, to standard output.",
			c.Encoding)),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exit(code)) }),
	)
	if err != nil {
		panic(err)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", c.Name, err)
		return Failure
	}
	if err := cmd.validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", c.Name, err)
		return Failure
	}

	log := newLogger(stderr, cmd.Debug)
	if err := cmd.run(c, stdin, stdout, log); err != nil {
		log.WithError(err).Debug("failed")
		fmt.Fprintf(stderr, "%s: %v\n", c.Name, err)
		return Failure
	}
	return Success
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.WarnLevel
	if debug {
		log.Level = logrus.DebugLevel
	}
	return log
}

func (cmd *command) run(c Codec, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	src, err := openInput(cmd.File, stdin)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	mode := "encode"
	if cmd.Decode {
		mode = "decode"
	}
	l := log.WithFields(logrus.Fields{
		"mode": mode,
		"file": cmd.File,
	})
	l.Debug("starting")

	bw := bufio.NewWriterSize(stdout, 64*1024)
	r := &countingReader{r: src}
	w := &countingWriter{w: bw}

	if cmd.Decode {
		err = c.Decode(w, r, cmd.IgnoreGarbage)
	} else {
		err = c.Encode(w, r, cmd.wrap())
	}
	// Output decoded before an error is still written.
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}

	l.WithFields(logrus.Fields{
		"read":    r.n,
		"written": w.n,
	}).Debug("finished")
	return err
}

// openInput opens the named file, or stdin if the name is "-".
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return nil, errors.Wrap(pe.Err, name)
		}
		return nil, err
	}
	return f, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += int64(n)
	return n, err
}
