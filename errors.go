package baseutil

import "errors"

var (
	// ErrInvalidInput is returned when encoded input contains a
	// byte outside the alphabet, misplaced padding, or a second
	// padded group after the final one.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWrap is returned when the wrap width is neither
	// positive nor NoWrap.
	ErrInvalidWrap = errors.New("invalid wrap size")
)

// NoWrap disables line wrapping.
const NoWrap = -1
