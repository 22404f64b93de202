// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/wire"
)

// uint64s implements sort.Interface for *[]uint64
type uint64s []uint64

func (s *uint64s) Len() int           { return len(*s) }
func (s *uint64s) Less(i, j int) bool { return (*s)[i] < (*s)[j] }
func (s *uint64s) Swap(i, j int)      { (*s)[i], (*s)[j] = (*s)[j], (*s)[i] }

// Filter describes an immutable filter that can be built from a set of data
// elements, serialized, deserialized, and queried in a thread-safe manner.  The
// serialized form is compressed as a Golomb Coded Set (GCS) along with the
// number of members of the set.  The hash function used is SipHash, a keyed
// function.  The key used in building the filter is required in order to match
// filter values and is not included in the serialized form.  Neither are the
// parameters P and M, which must be provided when deserializing.
type Filter struct {
	n           uint32
	params      Params
	modulusNM   uint64
	filterNData []byte
	filterData  []byte // Slice into filterNData with raw filter bytes.
}

// NewFilter builds a new GCS filter with the provided tunable parameters that
// contains every item of the passed data as a member of the set.
//
// See Params for details regarding the choice of P and M.  BasicParams
// provides the parameters of BIP-0158 basic block filters.
//
// key is a key used in the SipHash function used to hash each data element
// prior to inclusion in the filter.  This helps thwart would be attackers
// attempting to choose elements that intentionally cause false positives.
//
// Duplicate data elements are only included once and the number of distinct
// elements is the N of the filter.  Distinct elements that happen to map to
// the same value in [0, N*M) are all retained as zero deltas so that N
// always describes the range the values were mapped into.
func NewFilter(params Params, key [KeySize]byte, data [][]byte) (*Filter, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	// Remove any duplicates in the raw data.  Note that the number of
	// remaining entries must be determined before hashing since it defines
	// the range every entry is mapped into.
	seen := make(map[string]struct{}, len(data))
	entries := make([][]byte, 0, len(data))
	for _, d := range data {
		if _, ok := seen[string(d)]; ok {
			continue
		}
		seen[string(d)] = struct{}{}
		entries = append(entries, d)
	}
	numEntries := uint64(len(entries))
	if numEntries > math.MaxUint32 {
		str := fmt.Sprintf("unable to create filter with %d entries greater "+
			"than max allowed %d", numEntries, uint32(math.MaxUint32))
		return nil, makeError(ErrNTooBig, str)
	}
	modulusNM, err := modulus(numEntries, params.M)
	if err != nil {
		return nil, err
	}

	// Create the filter object and insert metadata.
	f := Filter{
		n:         uint32(numEntries),
		params:    params,
		modulusNM: modulusNM,
	}

	// An empty filter is only the serialized number of items.
	if numEntries == 0 {
		f.filterNData = []byte{0x00}
		f.filterData = f.filterNData[1:]
		return &f, nil
	}

	// Reduce the hash of each data element to the range [0,N*M) and sort it.
	k0, k1 := sipKeys(&key)
	values := make([]uint64, 0, numEntries)
	for _, d := range entries {
		values = append(values, hashToRange(k0, k1, d, modulusNM))
	}
	sort.Sort((*uint64s)(&values))

	// Every entry will have P bits for the remainder portion and a quotient
	// that is expected to be 1 on average with an exponentially decreasing
	// probability for each subsequent value with reasonably optimal parameters.
	// A quotient of 1 takes 2 bits in unary to encode and a quotient of 2 takes
	// 3 bits.  Since the first two terms dominate, a reasonable expected size
	// in bytes is:
	//   (NP + 2N/2 + 3N/2) / 8
	var w bitWriter
	sizeHint := (numEntries*uint64(params.P) + numEntries + 3*numEntries>>1) >> 3
	w.bytes = make([]byte, 0, sizeHint)

	// Write the deltas between the sorted values into the filter bitstream
	// using Golomb-Rice coding.
	var prevValue uint64
	var numCollisions int
	for i, v := range values {
		delta := v - prevValue
		prevValue = v
		if i > 0 && delta == 0 {
			numCollisions++
		}
		golombRiceEncode(&w, delta, params.P)
	}

	// Save the filter data internally as n + filter bytes along with the raw
	// filter data as a slice into it.
	var buf bytes.Buffer
	nSize := wire.VarIntSerializeSize(numEntries)
	buf.Grow(nSize + len(w.bytes))

	// The errors are ignored here since they can't realistically fail due
	// to writing into an allocated buffer.
	_ = wire.WriteVarInt(&buf, 0, numEntries)
	_, _ = buf.Write(w.bytes)
	f.filterNData = buf.Bytes()
	f.filterData = f.filterNData[nSize:]

	log.Tracef("Built filter with %d items (%d duplicates removed, %d "+
		"colliding values) and %d bytes using %v", numEntries,
		len(data)-len(entries), numCollisions, len(f.filterNData), params)

	return &f, nil
}

// FromBytes deserializes a GCS filter from known parameters and a serialized
// filter as returned by Bytes().
//
// Only the number of items is parsed.  The Golomb-Rice coded data is decoded
// lazily by the match methods which report corruption as they encounter it.
// Validate may be used to check the entire filter up front.
//
// The filter references the passed bytes, so they must not be modified after
// calling this function.
func FromBytes(params Params, d []byte) (*Filter, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if len(d) == 0 {
		str := "number of items serialization missing"
		return nil, makeError(ErrMalformedVarInt, str)
	}
	n, err := wire.ReadVarInt(bytes.NewReader(d), 0)
	if err != nil {
		str := fmt.Sprintf("failed to read number of filter items: %v", err)
		return nil, makeError(ErrMalformedVarInt, str)
	}
	if n > math.MaxUint32 {
		str := fmt.Sprintf("serialized filter with %d entries greater than "+
			"max allowed %d", n, uint32(math.MaxUint32))
		return nil, makeError(ErrNTooBig, str)
	}
	modulusNM, err := modulus(n, params.M)
	if err != nil {
		return nil, err
	}

	f := Filter{
		n:           uint32(n),
		params:      params,
		modulusNM:   modulusNM,
		filterNData: d,
		filterData:  d[wire.VarIntSerializeSize(n):],
	}
	return &f, nil
}

// Bytes returns the serialized format of the GCS filter which includes N, but
// does not include other parameters such as the false positive rate or the key.
func (f *Filter) Bytes() []byte {
	return f.filterNData
}

// N returns the size of the data set used to build the filter.
func (f *Filter) N() uint32 {
	return f.n
}

// P returns the tunable bits parameter that was used to construct the filter.
// It represents the bin size in the underlying Golomb coding with a value of
// 2^P.
func (f *Filter) P() uint8 {
	return f.params.P
}

// M returns the inverse of the false positive rate of the filter.
func (f *Filter) M() uint64 {
	return f.params.M
}

// Params returns the parameters of the filter.
func (f *Filter) Params() Params {
	return f.params
}

// Validate decodes the entire filter and returns an error if the coded data
// is truncated, decodes to values outside of [0, N*M), or is followed by
// anything other than zero padding of the final byte.
func (f *Filter) Validate() error {
	vr := f.newValueReader()
	for vr.remaining > 0 {
		if _, err := vr.next(); err != nil {
			return err
		}
	}

	// Only the zero padding of the final byte may remain.
	remaining := vr.r.remaining()
	if remaining >= 8 {
		str := fmt.Sprintf("filter has %d bits of data after the final item",
			remaining)
		return makeError(ErrTrailingData, str)
	}
	padding, err := vr.r.readNBits(uint(remaining))
	if err != nil {
		// Not possible since the number of remaining bits was just checked.
		return makeError(ErrTruncated, err.Error())
	}
	if padding != 0 {
		str := fmt.Sprintf("filter has non-zero padding bits %b", padding)
		return makeError(ErrTrailingData, str)
	}
	return nil
}

// Hash returns the BLAKE256 hash of the filter.
func (f *Filter) Hash() chainhash.Hash {
	// Empty filters have a hash of all zeroes.
	if f.n == 0 {
		return chainhash.Hash{}
	}

	return chainhash.Hash(blake256.Sum256(f.filterNData))
}

// MakeHeaderForFilter makes a filter chain header for a filter, given the
// filter and the previous filter chain header.
func MakeHeaderForFilter(filter *Filter, prevHeader *chainhash.Hash) chainhash.Hash {
	// Compute hash || prevHash as an intermediate value.
	var filterTip [2 * chainhash.HashSize]byte
	filterHash := filter.Hash()
	copy(filterTip[:], filterHash[:])
	copy(filterTip[chainhash.HashSize:], prevHeader[:])

	// The final filter hash is the blake256 of the hash computed above.
	return chainhash.Hash(blake256.Sum256(filterTip[:]))
}
