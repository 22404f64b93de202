// Copyright (c) 2019-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"io"
)

// bitWriter appends bits to a byte slice most significant bit first.  The
// final byte is zero padded when the number of written bits is not a multiple
// of 8.
type bitWriter struct {
	bytes []byte
	next  byte // bit mask for the next bit to write in the final byte
}

// writeOne appends a one bit to the bitstream.
func (w *bitWriter) writeOne() {
	if w.next == 0 {
		w.bytes = append(w.bytes, 1<<7)
		w.next = 1 << 6
		return
	}

	w.bytes[len(w.bytes)-1] |= w.next
	w.next >>= 1
}

// writeZero appends a zero bit to the bitstream.
func (w *bitWriter) writeZero() {
	if w.next == 0 {
		w.bytes = append(w.bytes, 0)
		w.next = 1 << 6
		return
	}

	w.next >>= 1
}

// writeNBits appends the nbits least significant bits of data to the
// bitstream in big-endian order.  The maximum number of bits is 64.
func (w *bitWriter) writeNBits(data uint64, nbits uint) {
	// Move the bits to write into the high end of the value so they can be
	// peeled off a byte at a time.
	data <<= 64 - nbits

	// Fill the remaining bits of the partially written final byte first.
	for nbits > 0 && w.next != 0 {
		if data&(1<<63) != 0 {
			w.bytes[len(w.bytes)-1] |= w.next
		}
		w.next >>= 1
		data <<= 1
		nbits--
	}

	// Write whole bytes while possible.
	for nbits >= 8 {
		w.bytes = append(w.bytes, byte(data>>56))
		data <<= 8
		nbits -= 8
	}

	// Write any leftover bits into a new partial byte.
	if nbits > 0 {
		w.bytes = append(w.bytes, byte(data>>56))
		w.next = 1 << (7 - nbits)
	}
}

// bitReader reads bits from a byte slice most significant bit first.
type bitReader struct {
	bytes []byte
	next  byte // bit mask for the next bit to read in bytes[0]
}

// newBitReader returns a bit reader positioned at the first bit of the
// provided bytes.
func newBitReader(bitstream []byte) bitReader {
	return bitReader{bytes: bitstream, next: 1 << 7}
}

// remaining returns the number of unread bits in the bitstream.
func (r *bitReader) remaining() uint64 {
	if len(r.bytes) == 0 {
		return 0
	}
	var inFirst uint64
	for mask := r.next; mask != 0; mask >>= 1 {
		inFirst++
	}
	return inFirst + uint64(len(r.bytes)-1)*8
}

// readBit reads a single bit.  io.EOF is returned when no bits remain.
func (r *bitReader) readBit() (bool, error) {
	if len(r.bytes) == 0 {
		return false, io.EOF
	}

	bit := r.bytes[0]&r.next != 0
	r.next >>= 1
	if r.next == 0 {
		r.bytes = r.bytes[1:]
		r.next = 1 << 7
	}
	return bit, nil
}

// readUnary returns the number of consecutive one bits before the next zero
// bit and consumes the terminating zero.  io.EOF is returned when the stream
// ends before a zero bit is found.
func (r *bitReader) readUnary() (uint64, error) {
	var value uint64
	for {
		if len(r.bytes) == 0 {
			return value, io.EOF
		}

		// Count whole bytes of ones at once when aligned.
		if r.next == 1<<7 && r.bytes[0] == 0xff {
			value += 8
			r.bytes = r.bytes[1:]
			continue
		}

		bit, err := r.readBit()
		if err != nil {
			return value, err
		}
		if !bit {
			return value, nil
		}
		value++
	}
}

// readNBits reads the specified number of bits as a big-endian value.  The
// maximum number of bits is 64.  io.EOF is returned when fewer than nbits bits
// remain, in which case no bits are consumed.
func (r *bitReader) readNBits(nbits uint) (uint64, error) {
	if nbits == 0 {
		return 0, nil
	}
	if r.remaining() < uint64(nbits) {
		return 0, io.EOF
	}

	var value uint64

	// Read the rest of the partially consumed first byte.
	for nbits > 0 && r.next != 1<<7 {
		value <<= 1
		if r.bytes[0]&r.next != 0 {
			value |= 1
		}
		r.next >>= 1
		if r.next == 0 {
			r.bytes = r.bytes[1:]
			r.next = 1 << 7
		}
		nbits--
	}

	// Read whole bytes while possible.
	for nbits >= 8 {
		value = value<<8 | uint64(r.bytes[0])
		r.bytes = r.bytes[1:]
		nbits -= 8
	}

	// Read any leftover high bits of the next byte.
	if nbits > 0 {
		value = value<<nbits | uint64(r.bytes[0]>>(8-nbits))
		r.next = 1 << (7 - nbits)
	}

	return value, nil
}
