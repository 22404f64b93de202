// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"fmt"
	"math"
)

// MaxP is the maximum allowed value for the P parameter.
const MaxP = 32

// Params houses the tunable parameters that must be agreed upon by the
// builder of a filter and everyone who matches against it.  They are not part
// of the serialized filter.
type Params struct {
	// P is the tunable bits parameter for constructing the filter that is
	// used as the bin size in the underlying Golomb coding with a value of
	// 2^P.  The optimal value of P to minimize the size of the filter for a
	// given false positive rate 1/M is floor(log_2(M) - 0.055256).  The
	// maximum allowed value for P is 32.
	P uint8

	// M is the inverse of the target false positive rate for the filter.  The
	// optimal value of M to minimize the size of the filter for a given P is
	// ceil(1.497137 * 2^P).
	M uint64
}

// BasicParams are the parameters of BIP-0158 basic block filters.  M is the
// optimal value to minimize the size of the filter for P = 19.
var BasicParams = Params{P: 19, M: 784931}

// OptimalM returns the value of M that minimizes the size of a filter that
// uses a Golomb coding bin size of 2^p.
func OptimalM(p uint8) uint64 {
	return uint64(math.Ceil(1.497137 * float64(uint64(1)<<p)))
}

// ParamsForP returns parameters for the given P with the optimal M.
func ParamsForP(p uint8) Params {
	return Params{P: p, M: OptimalM(p)}
}

// validate ensures the parameters are usable for building and matching.
func (p Params) validate() error {
	if p.P > MaxP {
		str := fmt.Sprintf("P value of %d is greater than max allowed %d",
			p.P, MaxP)
		return makeError(ErrPTooBig, str)
	}
	if p.M == 0 {
		return makeError(ErrZeroM, "M value must be greater than zero")
	}
	return nil
}

// String returns the parameters in a human-readable form.
func (p Params) String() string {
	return fmt.Sprintf("P=%d, M=%d", p.P, p.M)
}
