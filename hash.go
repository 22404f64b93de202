// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// KeySize is the size of the byte array required for key material for the
// SipHash keyed hash function.
const KeySize = 16

// sipKeys splits the key material into the two little-endian 64-bit SipHash
// sub-keys.
func sipKeys(key *[KeySize]byte) (k0, k1 uint64) {
	k0 = binary.LittleEndian.Uint64(key[0:8])
	k1 = binary.LittleEndian.Uint64(key[8:16])
	return k0, k1
}

// hashToRange hashes data with SipHash-2-4 keyed by k0 and k1 and maps the
// result uniformly into [0, modulusNM).
func hashToRange(k0, k1 uint64, data []byte, modulusNM uint64) uint64 {
	return fastReduce(siphash.Hash(k0, k1, data), modulusNM)
}
