// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Builder accumulates the data elements of a filter along with the key and
// parameters used to build it.  The methods return the builder so calls may
// be chained.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	params Params
	key    [KeySize]byte
	data   [][]byte
}

// NewBuilder returns a builder for a filter with the given parameters and an
// all zero key.
func NewBuilder(params Params) *Builder {
	return &Builder{params: params}
}

// SetKey sets the SipHash key used to build the filter.
func (b *Builder) SetKey(key [KeySize]byte) *Builder {
	b.key = key
	return b
}

// SetParams sets the parameters used to build the filter.  They are validated
// by Build.
func (b *Builder) SetParams(params Params) *Builder {
	b.params = params
	return b
}

// Reserve ensures there is room for at least n more entries without
// reallocating.
func (b *Builder) Reserve(n int) *Builder {
	if n <= 0 {
		return b
	}
	if cap(b.data)-len(b.data) < n {
		data := make([][]byte, len(b.data), len(b.data)+n)
		copy(data, b.data)
		b.data = data
	}
	return b
}

// AddEntry adds a copy of the data to the entries that will be included in
// the filter.
func (b *Builder) AddEntry(data []byte) *Builder {
	entry := make([]byte, len(data))
	copy(entry, data)
	b.data = append(b.data, entry)
	return b
}

// AddEntries adds a copy of each of the passed data elements to the entries
// that will be included in the filter.
func (b *Builder) AddEntries(data [][]byte) *Builder {
	b.Reserve(len(data))
	for _, d := range data {
		b.AddEntry(d)
	}
	return b
}

// AddHash adds the bytes of the hash to the entries that will be included in
// the filter.
func (b *Builder) AddHash(hash *chainhash.Hash) *Builder {
	return b.AddEntry(hash[:])
}

// Key returns the key the filter will be built with.
func (b *Builder) Key() [KeySize]byte {
	return b.key
}

// Params returns the parameters the filter will be built with.
func (b *Builder) Params() Params {
	return b.params
}

// Build builds a filter from the accumulated entries.  The builder may
// continue to be used afterwards.
func (b *Builder) Build() (*Filter, error) {
	return NewFilter(b.params, b.key, b.data)
}
