// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
	"github.com/bitmark-inc/ontkit/util"
)

// extended key version bytes
const (
	PrivateVersion = 0x0488ade4 // xprv
	PublicVersion  = 0x0488b21e // xpub
)

// ExtendedKeyLength - bytes in a serialized key, before the checksum
const ExtendedKeyLength = 78

// field offsets in a serialized key
const (
	versionOffset     = 0
	depthOffset       = 4
	fingerprintOffset = 5
	indexOffset       = 9
	chainCodeOffset   = 13
	keyOffset         = chainCodeOffset + ChainCodeSize
)

// Serialize - the 78 byte extended key
func (k *PrivateKey) Serialize() []byte {
	keyData := make([]byte, 0, keypair.CompressedPublicKeySize)
	keyData = append(keyData, 0x00)
	keyData = append(keyData, k.scalar...)
	return k.serialize(PrivateVersion, keyData)
}

// Serialize - the 78 byte extended key
func (k *PublicKey) Serialize() []byte {
	return k.serialize(PublicVersion, k.publicKey)
}

// String - xprv... form
func (k *PrivateKey) String() string {
	return util.ToBase58Check(k.Serialize())
}

// String - xpub... form
func (k *PublicKey) String() string {
	return util.ToBase58Check(k.Serialize())
}

// MarshalText - xpub text for JSON, private keys are never marshalled
func (k *PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (h *header) serialize(version uint32, keyData []byte) []byte {
	b := make([]byte, ExtendedKeyLength)
	binary.BigEndian.PutUint32(b[versionOffset:], version)
	b[depthOffset] = h.depth
	copy(b[fingerprintOffset:indexOffset], h.parentFingerprint)
	binary.BigEndian.PutUint32(b[indexOffset:], h.index)
	copy(b[chainCodeOffset:keyOffset], h.chainCode)
	copy(b[keyOffset:], keyData)
	return b
}

// ParseExtendedKey - decode an xprv or xpub string
func ParseExtendedKey(s string) (Key, error) {
	b, err := util.FromBase58Check(s)
	if nil != err {
		return nil, err
	}
	return DeserializeKey(b)
}

// DeserializeKey - decode the 78 byte form
func DeserializeKey(b []byte) (Key, error) {
	if ExtendedKeyLength != len(b) {
		return nil, fault.ErrInvalidExtendedKeyLength
	}

	h := header{
		chainCode:         clone(b[chainCodeOffset:keyOffset]),
		depth:             b[depthOffset],
		index:             binary.BigEndian.Uint32(b[indexOffset:]),
		parentFingerprint: clone(b[fingerprintOffset:indexOffset]),
	}

	// a master key has no parent
	if 0 == h.depth {
		if !bytes.Equal(h.parentFingerprint, make([]byte, FingerprintSize)) || 0 != h.index {
			return nil, fault.ErrInvalidExtendedKey
		}
	}

	keyData := b[keyOffset:]
	switch binary.BigEndian.Uint32(b[versionOffset:]) {
	case PrivateVersion:
		if 0x00 != keyData[0] {
			return nil, fault.ErrInvalidPrivateKey
		}
		scalar := new(big.Int).SetBytes(keyData[1:])
		if 0 == scalar.Sign() || scalar.Cmp(curveOrder()) >= 0 {
			return nil, fault.ErrInvalidPrivateKey
		}
		return newPrivateKey(h, scalar), nil

	case PublicVersion:
		if 0x02 != keyData[0] && 0x03 != keyData[0] {
			return nil, fault.ErrInvalidPublicKey
		}
		if _, err := keypair.ParsePublicKey(keyData); nil != err {
			return nil, err
		}
		return &PublicKey{
			header:    h,
			publicKey: clone(keyData),
		}, nil

	default:
		return nil, fault.ErrInvalidKeyVersion
	}
}
