// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
	"github.com/bitmark-inc/ontkit/util"
)

// miscellaneous constants
const (
	Length  = 20
	Version = 0x17
)

// Address - hash160 of a verification program
type Address [Length]byte

// native contracts
var (
	ONT = Address{19: 0x01}
	ONG = Address{19: 0x02}
)

// FromVMCode - address controlled by a verification program
func FromVMCode(code []byte) Address {
	var a Address
	copy(a[:], util.Hash160(code))
	return a
}

// FromPublicKey - address of the single key program for publicKey
func FromPublicKey(publicKey []byte) (Address, error) {
	code, err := program.FromPublicKey(publicKey)
	if nil != err {
		return Address{}, err
	}
	return FromVMCode(code), nil
}

// FromMultiPublicKeys - address of an m of n program
func FromMultiPublicKeys(m int, publicKeys [][]byte) (Address, error) {
	code, err := program.FromMultiPublicKeys(m, publicKeys)
	if nil != err {
		return Address{}, err
	}
	return FromVMCode(code), nil
}

// FromBytes - raw 20 byte form
func FromBytes(b []byte) (Address, error) {
	var a Address
	if Length != len(b) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the text form
func FromBase58(s string) (Address, error) {
	b, err := util.FromBase58Check(s)
	if nil != err {
		return Address{}, err
	}
	if Length+1 != len(b) {
		return Address{}, fault.ErrInvalidAddressLength
	}
	if Version != b[0] {
		return Address{}, fault.ErrInvalidAddressVersion
	}
	return FromBytes(b[1:])
}

// FromHexReverse - decode the byte reversed hex used to display contract hashes
func FromHexReverse(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddressLength
	}
	a, err := FromBytes(b)
	if nil != err {
		return a, err
	}
	reverse(a[:])
	return a, nil
}

// Bytes - copy of the raw address
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// Base58 - text form
func (a Address) Base58() string {
	b := make([]byte, 0, Length+1)
	b = append(b, Version)
	b = append(b, a[:]...)
	return util.ToBase58Check(b)
}

// String - same as Base58
func (a Address) String() string {
	return a.Base58()
}

// HexReverse - contract hash display form
func (a Address) HexReverse() string {
	b := a.Bytes()
	reverse(b)
	return hex.EncodeToString(b)
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return Address{} == a
}

// MarshalText - Base58 text for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Base58()), nil
}

// UnmarshalText - accept Base58 text from JSON
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
