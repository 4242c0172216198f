// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - encode an unsigned value seven bits at a time, low
// bits first, with the top bit of each byte flagging a continuation
//
// the ninth byte carries a full eight bits so no value exceeds
// Varint64MaximumBytes
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)

	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// the second value is the number of bytes consumed, zero when the
// buffer ends before the final byte
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
