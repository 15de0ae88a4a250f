// Package wrap breaks encoded output into fixed-width lines.
package wrap

import "io"

var newline = []byte{'\n'}

// Write writes p to w, starting at column col of the current
// line, and returns the column following the last byte of p.
//
// If width <= 0 p is written verbatim. Otherwise a newline is
// written each time a line holds width bytes and more of p
// remains, so a line that ends exactly with p is left open at
// col == width for the next call (or for Close) to terminate.
func Write(w io.Writer, p []byte, col, width int) (int, error) {
	if width <= 0 {
		return col, writeFull(w, p)
	}
	for len(p) > 0 {
		if col >= width {
			if err := writeFull(w, newline); err != nil {
				return col, err
			}
			col = 0
		}
		n := width - col
		if n > len(p) {
			n = len(p)
		}
		if err := writeFull(w, p[:n]); err != nil {
			return col, err
		}
		col += n
		p = p[n:]
	}
	return col, nil
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

// Writer is an io.Writer that wraps lines at a fixed width.
type Writer struct {
	w     io.Writer
	width int
	col   int
	err   error
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter returns a Writer that writes to w, breaking lines
// after width bytes.
//
// If width <= 0 the Writer does not wrap.
//
// The caller must Close the Writer to terminate the last line.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: w, width: width}
}

// Write implements io.Writer.
//
// Once a write fails every later call returns the same error.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.col, w.err = Write(w.w, p, w.col, w.width)
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

// Column returns the current output column.
func (w *Writer) Column() int {
	return w.col
}

// Close terminates the current line, if any.
//
// It does not close the underlying io.Writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.width > 0 && w.col > 0 {
		w.err = writeFull(w.w, newline)
		w.col = 0
	}
	return w.err
}
