// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"math/big"
)

// IntToVMBytes - minimal little endian two's complement encoding
//
// zero is the empty byte string; a sign byte is added only when the top
// bit of the magnitude would otherwise flip the sign
func IntToVMBytes(value *big.Int) []byte {
	switch value.Sign() {
	case 0:
		return []byte{}

	case 1:
		b := value.Bytes() // big endian magnitude
		if 0 != b[0]&0x80 {
			b = append([]byte{0x00}, b...)
		}
		reverse(b)
		return b

	default:
		// -x = ^(x-1) in two's complement
		magnitude := new(big.Int).Neg(value)
		magnitude.Sub(magnitude, big.NewInt(1))
		b := magnitude.Bytes()
		for i := range b {
			b[i] = ^b[i]
		}
		if 0 == len(b) || 0 == b[0]&0x80 {
			b = append([]byte{0xff}, b...)
		}
		reverse(b)
		return b
	}
}

// VMBytesToInt - decode little endian two's complement
func VMBytesToInt(b []byte) *big.Int {
	if 0 == len(b) {
		return new(big.Int)
	}
	be := make([]byte, len(b))
	copy(be, b)
	reverse(be)

	value := new(big.Int).SetBytes(be)
	if 0 != be[0]&0x80 {
		// subtract 2^(8n)
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*len(be)))
		value.Sub(value, modulus)
	}
	return value
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
