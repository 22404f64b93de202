// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"errors"
)

// golombRiceEncode writes v to the bitstream using Golomb-Rice coding with a
// bin size of 2^p.
//
// The quotient floor(v / 2^p) is written in unary as that many one bits
// followed by a zero bit and the remainder v % 2^p is written as a big-endian
// integer with p bits.  Golomb coding typically uses truncated binary encoding
// for the remainder in order to support arbitrary bin sizes, however, since
// the bin size is necessarily a power of 2 here, it is equivalent to a regular
// binary code.
func golombRiceEncode(w *bitWriter, v uint64, p uint8) {
	// The average quotient is around 1 for reasonably optimal parameters
	// (which is encoded as 2 bits - 0b10).
	for quotient := v >> p; quotient > 0; quotient-- {
		w.writeOne()
	}
	w.writeZero()

	w.writeNBits(v&(1<<p-1), uint(p))
}

// golombRiceDecode reads the next Golomb-Rice coded value with a bin size of
// 2^p from the bitstream.
//
// io.EOF is returned when the unary quotient is never terminated or the
// remainder is cut short.  errQuotientOverflow is returned when the quotient
// can't be shifted into a 64-bit value.
func golombRiceDecode(r *bitReader, p uint8) (uint64, error) {
	quotient, err := r.readUnary()
	if err != nil {
		return 0, err
	}
	if quotient > maxQuotient(p) {
		return 0, errQuotientOverflow
	}

	remainder, err := r.readNBits(uint(p))
	if err != nil {
		return 0, err
	}

	return quotient<<p | remainder, nil
}

// maxQuotient returns the largest quotient that can be shifted left by p bits
// without losing any of its bits.
func maxQuotient(p uint8) uint64 {
	return ^uint64(0) >> p
}

// errQuotientOverflow is converted to ErrValueOutOfRange at the filter level.
var errQuotientOverflow = errors.New("unary quotient overflows 64 bits")
