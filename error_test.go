// Copyright (c) 2019-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrPTooBig, "ErrPTooBig"},
		{ErrZeroM, "ErrZeroM"},
		{ErrNTooBig, "ErrNTooBig"},
		{ErrRangeOverflow, "ErrRangeOverflow"},
		{ErrMalformedVarInt, "ErrMalformedVarInt"},
		{ErrTruncated, "ErrTruncated"},
		{ErrValueOutOfRange, "ErrValueOutOfRange"},
		{ErrTrailingData, "ErrTrailingData"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "filter data ends at item 3 of 17"},
		"filter data ends at item 3 of 17",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrTruncated == ErrTruncated",
		err:       ErrTruncated,
		target:    ErrTruncated,
		wantMatch: true,
		wantAs:    ErrTruncated,
	}, {
		name:      "Error.ErrTruncated == ErrTruncated",
		err:       makeError(ErrTruncated, ""),
		target:    ErrTruncated,
		wantMatch: true,
		wantAs:    ErrTruncated,
	}, {
		name:      "Error.ErrTruncated == Error.ErrTruncated",
		err:       makeError(ErrTruncated, ""),
		target:    makeError(ErrTruncated, ""),
		wantMatch: true,
		wantAs:    ErrTruncated,
	}, {
		name:      "ErrPTooBig != ErrZeroM",
		err:       ErrPTooBig,
		target:    ErrZeroM,
		wantMatch: false,
		wantAs:    ErrPTooBig,
	}, {
		name:      "Error.ErrPTooBig != ErrZeroM",
		err:       makeError(ErrPTooBig, ""),
		target:    ErrZeroM,
		wantMatch: false,
		wantAs:    ErrPTooBig,
	}, {
		name:      "Error.ErrMalformedVarInt != Error.ErrTrailingData",
		err:       makeError(ErrMalformedVarInt, ""),
		target:    makeError(ErrTrailingData, ""),
		wantMatch: false,
		wantAs:    ErrMalformedVarInt,
	}, {
		name:      "Error.ErrTruncated != io.EOF",
		err:       makeError(ErrTruncated, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrTruncated,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
