// Copyright (c) 2019-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPTooBig signifies that the filter can't handle `1/2**P` collision
	// probability because P exceeds the maximum supported remainder size.
	ErrPTooBig = ErrorKind("ErrPTooBig")

	// ErrZeroM signifies that a false positive rate parameter M of zero was
	// specified which would make every hashed value collapse to zero.
	ErrZeroM = ErrorKind("ErrZeroM")

	// ErrNTooBig signifies that the filter can't handle N items.
	ErrNTooBig = ErrorKind("ErrNTooBig")

	// ErrRangeOverflow signifies that the range of hashed values N*M of a
	// filter does not fit in 64 bits.
	ErrRangeOverflow = ErrorKind("ErrRangeOverflow")

	// ErrMalformedVarInt signifies a serialized filter is missing the number
	// of items or encodes it in a truncated or non-canonical form.
	ErrMalformedVarInt = ErrorKind("ErrMalformedVarInt")

	// ErrTruncated signifies the Golomb-Rice coded data of a filter ended
	// before all of its items were decoded.
	ErrTruncated = ErrorKind("ErrTruncated")

	// ErrValueOutOfRange signifies the Golomb-Rice coded data of a filter
	// decodes to a value that is not less than N*M or that overflows.
	ErrValueOutOfRange = ErrorKind("ErrValueOutOfRange")

	// ErrTrailingData signifies a filter contains data after the final coded
	// item other than zero padding of the last byte.
	ErrTrailingData = ErrorKind("ErrTrailingData")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a filter-related error.  It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the
// error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
