// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// bytes one to eight carry seven value bits each with the high bit set
// while more bytes follow; a ninth byte, when present, carries the
// remaining eight value bits so the full uint64 range fits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		return append(result, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		b := byte(value) | 0x80
		if value < 0x80 {
			b = byte(value)
		}
		result = append(result, b)
		value >>= 7
	}
	return result
}

// FromVarint64 - convert a Varint64 at the start of a buffer to uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if the varint64 is truncated
func FromVarint64(buffer []byte) (uint64, int) {

	result := uint64(0)
	shift := uint(0)

	for i, b := range buffer {
		if Varint64MaximumBytes-1 == i {
			return result | uint64(b)<<shift, i + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, i + 1
		}
		shift += 7
	}
	return 0, 0
}
