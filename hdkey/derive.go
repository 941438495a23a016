// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
)

// seed length limits in bytes
const (
	MinimumSeedLength = 16
	MaximumSeedLength = 64
)

// HMAC key for the master key
var masterKeySalt = []byte("Nist256p1 seed")

// NewMasterKey - root private key for a seed
func NewMasterKey(seed []byte) (*PrivateKey, error) {
	if len(seed) < MinimumSeedLength || len(seed) > MaximumSeedLength {
		return nil, fault.ErrInvalidSeedLength
	}

	mac := hmac.New(sha512.New, masterKeySalt)
	mac.Write(seed)
	i := mac.Sum(nil)

	il := new(big.Int).SetBytes(i[:32])
	if 0 == il.Sign() || il.Cmp(curveOrder()) >= 0 {
		return nil, fault.ErrInvalidSeed
	}

	return newPrivateKey(
		header{
			chainCode:         i[32:],
			depth:             0,
			index:             0,
			parentFingerprint: make([]byte, FingerprintSize),
		},
		il,
	), nil
}

// Child - private child derivation, hardened or normal
func (k *PrivateKey) Child(index uint32) (*PrivateKey, error) {
	if MaximumDepth == k.depth {
		return nil, fault.ErrMaximumDepth
	}

	var data []byte
	if index >= HardenedKeyStart {
		data = make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, k.scalar...)
	} else {
		data = make([]byte, 0, keypair.CompressedPublicKeySize+4)
		data = append(data, k.publicKey...)
	}
	data = appendIndex(data, index)

	il, chainCode, err := k.hmac(data)
	if nil != err {
		return nil, err
	}

	// ki = IL + kpar mod n
	n := curveOrder()
	scalar := il.Add(il, new(big.Int).SetBytes(k.scalar))
	scalar.Mod(scalar, n)
	if 0 == scalar.Sign() {
		return nil, fault.ErrDegenerateDerivation
	}

	return newPrivateKey(k.childHeader(chainCode, index, k.Fingerprint()), scalar), nil
}

// Child - public child derivation, normal indices only
func (k *PublicKey) Child(index uint32) (*PublicKey, error) {
	if index >= HardenedKeyStart {
		return nil, fault.ErrHardenedFromPublic
	}
	if MaximumDepth == k.depth {
		return nil, fault.ErrMaximumDepth
	}

	data := make([]byte, 0, keypair.CompressedPublicKeySize+4)
	data = append(data, k.publicKey...)
	data = appendIndex(data, index)

	il, chainCode, err := k.hmac(data)
	if nil != err {
		return nil, err
	}

	parent, err := keypair.ParsePublicKey(k.publicKey)
	if nil != err {
		return nil, err
	}

	// Ki = IL·G + Kpar
	curve := keypair.Curve()
	x, y := curve.ScalarBaseMult(il.FillBytes(make([]byte, 32)))
	x, y = curve.Add(x, y, parent.X, parent.Y)
	if 0 == x.Sign() && 0 == y.Sign() {
		return nil, fault.ErrDegenerateDerivation
	}

	return &PublicKey{
		header:    k.childHeader(chainCode, index, k.Fingerprint()),
		publicKey: elliptic.MarshalCompressed(curve, x, y),
	}, nil
}

// HMAC-SHA512 keyed with the chain code, IL must be below the curve order
func (h *header) hmac(data []byte) (*big.Int, []byte, error) {
	mac := hmac.New(sha512.New, h.chainCode)
	mac.Write(data)
	i := mac.Sum(nil)

	il := new(big.Int).SetBytes(i[:32])
	if il.Cmp(curveOrder()) >= 0 {
		return nil, nil, fault.ErrDegenerateDerivation
	}
	return il, i[32:], nil
}

func (h *header) childHeader(chainCode []byte, index uint32, parentFingerprint []byte) header {
	return header{
		chainCode:         chainCode,
		depth:             h.depth + 1,
		index:             index,
		parentFingerprint: parentFingerprint,
	}
}

func newPrivateKey(h header, scalar *big.Int) *PrivateKey {
	b := scalar.FillBytes(make([]byte, keypair.PrivateKeySize))
	curve := keypair.Curve()
	x, y := curve.ScalarBaseMult(b)
	return &PrivateKey{
		header:    h,
		scalar:    b,
		publicKey: elliptic.MarshalCompressed(curve, x, y),
	}
}

func appendIndex(data []byte, index uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], index)
	return append(data, b[:]...)
}

func curveOrder() *big.Int {
	return keypair.Curve().Params().N
}
