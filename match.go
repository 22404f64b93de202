// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"sort"

	"github.com/jrick/bitset"
)

// valueReader decodes the ascending sequence of hashed values of a filter
// by summing the Golomb-Rice coded deltas.
type valueReader struct {
	r         bitReader
	p         uint8
	n         uint32
	remaining uint32
	value     uint64
	modulusNM uint64
}

// newValueReader returns a reader positioned at the first value of the filter.
func (f *Filter) newValueReader() valueReader {
	return valueReader{
		r:         newBitReader(f.filterData),
		p:         f.params.P,
		n:         f.n,
		remaining: f.n,
		modulusNM: f.modulusNM,
	}
}

// next decodes and returns the next value of the filter.  It must not be
// called once all N values have been read.
func (vr *valueReader) next() (uint64, error) {
	item := vr.n - vr.remaining
	delta, err := golombRiceDecode(&vr.r, vr.p)
	switch {
	case errors.Is(err, io.EOF):
		str := fmt.Sprintf("filter data ends at item %d of %d", item, vr.n)
		return 0, makeError(ErrTruncated, str)

	case err != nil:
		str := fmt.Sprintf("unable to decode item %d of %d: %v", item, vr.n,
			err)
		return 0, makeError(ErrValueOutOfRange, str)
	}

	value, carry := bits.Add64(vr.value, delta, 0)
	if carry != 0 || value >= vr.modulusNM {
		str := fmt.Sprintf("item %d of %d is not in the filter range [0, %d)",
			item, vr.n, vr.modulusNM)
		return 0, makeError(ErrValueOutOfRange, str)
	}
	vr.value = value
	vr.remaining--
	return value, nil
}

// Match checks whether a []byte value is likely (within collision probability)
// to be a member of the set represented by the filter.
//
// The key and the parameters of the filter must be the ones the filter was
// built with.  An error is returned when the filter is found to be corrupt
// while searching it.
func (f *Filter) Match(key [KeySize]byte, data []byte) (bool, error) {
	// An empty filter can't possibly match anything.
	if f.n == 0 {
		return false, nil
	}

	// Hash the search term with the same parameters as the filter.
	k0, k1 := sipKeys(&key)
	term := hashToRange(k0, k1, data, f.modulusNM)

	// Go through the search filter and look for the desired value.  The values
	// are sorted, so the search ends as soon as the term is passed.
	vr := f.newValueReader()
	for vr.remaining > 0 {
		value, err := vr.next()
		if err != nil {
			log.Debugf("Match on corrupt filter: %v", err)
			return false, err
		}
		if value == term {
			return true, nil
		}
		if value > term {
			return false, nil
		}
	}

	return false, nil
}

// MatchAny checks whether any []byte value is likely (within collision
// probability) to be a member of the set represented by the filter faster than
// calling Match() for each value individually.
//
// An error is returned when the filter is found to be corrupt while searching
// it.
func (f *Filter) MatchAny(key [KeySize]byte, data [][]byte) (bool, error) {
	// An empty filter or empty data can't possibly match anything.
	if f.n == 0 || len(data) == 0 {
		return false, nil
	}

	// Create an uncompressed filter of the search values.
	k0, k1 := sipKeys(&key)
	values := make([]uint64, 0, len(data))
	for _, d := range data {
		values = append(values, hashToRange(k0, k1, d, f.modulusNM))
	}
	sort.Sort((*uint64s)(&values))

	// Zip down the filters, comparing values until we either run out of
	// values to compare in one of the filters or we reach a matching
	// value.
	vr := f.newValueReader()
	var searchIdx int
	for vr.remaining > 0 {
		filterVal, err := vr.next()
		if err != nil {
			log.Debugf("MatchAny on corrupt filter: %v", err)
			return false, err
		}

		// Skip all search values that are less than the current filter
		// value since no later filter value can match them.
		for searchIdx < len(values) && values[searchIdx] < filterVal {
			searchIdx++
		}

		// Exit early when there are no more values to search for.
		if searchIdx == len(values) {
			return false, nil
		}
		if values[searchIdx] == filterVal {
			return true, nil
		}
	}

	return false, nil
}

// searchTerm is a hashed search value along with the index of the data it was
// created from.
type searchTerm struct {
	value uint64
	index int
}

// MatchEach checks which []byte values are likely (within collision
// probability) to be members of the set represented by the filter.  The bit at
// each index of the returned set is set when the data at the same index
// matched.
//
// Like MatchAny, the filter is only decoded once regardless of the number of
// values, however, the search continues until all values are resolved rather
// than stopping at the first match.
func (f *Filter) MatchEach(key [KeySize]byte, data [][]byte) (bitset.Bytes, error) {
	matches := bitset.NewBytes(len(data))
	if f.n == 0 || len(data) == 0 {
		return matches, nil
	}

	k0, k1 := sipKeys(&key)
	terms := make([]searchTerm, 0, len(data))
	for i, d := range data {
		value := hashToRange(k0, k1, d, f.modulusNM)
		terms = append(terms, searchTerm{value: value, index: i})
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].value < terms[j].value
	})

	vr := f.newValueReader()
	var searchIdx int
	for vr.remaining > 0 && searchIdx < len(terms) {
		filterVal, err := vr.next()
		if err != nil {
			log.Debugf("MatchEach on corrupt filter: %v", err)
			return nil, err
		}

		for searchIdx < len(terms) && terms[searchIdx].value < filterVal {
			searchIdx++
		}
		for searchIdx < len(terms) && terms[searchIdx].value == filterVal {
			matches.Set(terms[searchIdx].index)
			searchIdx++
		}
	}

	return matches, nil
}
