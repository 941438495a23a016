// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// VarintMaximumBytes - maximum possible number of bytes in a Varint
const VarintMaximumBytes = 9

// prefix bytes for the multi-byte classes
const (
	varint16Prefix = 0xfd
	varint32Prefix = 0xfe
	varint64Prefix = 0xff
)

// ToVarint - convert a 64 bit unsigned integer to Varint
//
// Structure of the result
//   value < 0xfd:         1 byte:  value
//   value <= 0xffff:      3 bytes: 0xfd | uint16 little endian
//   value <= 0xffffffff:  5 bytes: 0xfe | uint32 little endian
//   otherwise:            9 bytes: 0xff | uint64 little endian
func ToVarint(value uint64) []byte {
	switch {
	case value < varint16Prefix:
		return []byte{byte(value)}

	case value <= 0xffff:
		result := make([]byte, 3)
		result[0] = varint16Prefix
		binary.LittleEndian.PutUint16(result[1:], uint16(value))
		return result

	case value <= 0xffffffff:
		result := make([]byte, 5)
		result[0] = varint32Prefix
		binary.LittleEndian.PutUint32(result[1:], uint32(value))
		return result

	default:
		result := make([]byte, VarintMaximumBytes)
		result[0] = varint64Prefix
		binary.LittleEndian.PutUint64(result[1:], value)
		return result
	}
}

// VarintSize - number of bytes ToVarint would produce
func VarintSize(value uint64) int {
	switch {
	case value < varint16Prefix:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	default:
		return VarintMaximumBytes
	}
}

// VarintPayloadSize - number of bytes following a Varint prefix byte
func VarintPayloadSize(prefix byte) int {
	switch prefix {
	case varint16Prefix:
		return 2
	case varint32Prefix:
		return 4
	case varint64Prefix:
		return 8
	default:
		return 0
	}
}

// canonicalVarint - check that a decoded value used the shortest class
// for the given prefix byte
func canonicalVarint(prefix byte, value uint64) bool {
	switch prefix {
	case varint16Prefix:
		return value >= varint16Prefix
	case varint32Prefix:
		return value > 0xffff
	case varint64Prefix:
		return value > 0xffffffff
	default:
		return true
	}
}

// FromVarint - convert a buffer starting with a Varint to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated or the value is not in its
// shortest form
func FromVarint(buffer []byte) (uint64, int) {
	if 0 == len(buffer) {
		return 0, 0
	}
	prefix := buffer[0]
	size := VarintPayloadSize(prefix)
	if len(buffer) < 1+size {
		return 0, 0
	}

	value := uint64(0)
	switch size {
	case 0:
		return uint64(prefix), 1
	case 2:
		value = uint64(binary.LittleEndian.Uint16(buffer[1:]))
	case 4:
		value = uint64(binary.LittleEndian.Uint32(buffer[1:]))
	case 8:
		value = binary.LittleEndian.Uint64(buffer[1:])
	}
	if !canonicalVarint(prefix, value) {
		return 0, 0
	}
	return value, 1 + size
}
