package rttm

import "fmt"

// AlignmentError reports a line that split into more than the ten fields
// an RTTM record holds. Index is the 1-based position of the first
// surplus field (always 11, since the first ten are consumed).
type AlignmentError struct {
	Index int
}

// Error returns the error message.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("index overflow: expected %d values, got %d", fieldCount, e.Index)
}

// IOError wraps an underlying open/read/write/close failure.
type IOError struct {
	Err error
}

// Error returns the error message.
func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %v", e.Err)
}

// Unwrap returns the underlying platform error, so errors.Is and
// errors.As see through to *fs.PathError and friends.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseIntError wraps a failure to parse an integer field (channel ID).
type ParseIntError struct {
	Err error
}

// Error returns the error message.
func (e *ParseIntError) Error() string {
	return fmt.Sprintf("integer parse error: %v", e.Err)
}

// Unwrap returns the underlying *strconv.NumError.
func (e *ParseIntError) Unwrap() error {
	return e.Err
}

// ParseFloatError wraps a failure to parse a floating-point field
// (turn onset or turn duration).
type ParseFloatError struct {
	Err error
}

// Error returns the error message.
func (e *ParseFloatError) Error() string {
	return fmt.Sprintf("float parse error: %v", e.Err)
}

// Unwrap returns the underlying *strconv.NumError.
func (e *ParseFloatError) Unwrap() error {
	return e.Err
}
