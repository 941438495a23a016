// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - NIST P-256 keys and SHA256withECDSA signatures
//
// Public keys travel in 33 byte compressed form; signatures are the
// 65 byte scheme|r|s layout checked by the ledger node.
package keypair

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"sort"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/util"
)

// sizes of the various encodings
const (
	PrivateKeySize             = 32
	CompressedPublicKeySize    = 33
	UncompressedPublicKeySize  = 65
	SignatureSize              = 1 + 2*PrivateKeySize
	SHA256withECDSA            = 0x01 // signature scheme byte
	MaximumMultiSignatureCount = 16
)

// WIF framing
const (
	wifPrefix     = 0x80
	wifCompressed = 0x01
	wifLength     = 1 + PrivateKeySize + 1
)

// Signer - the opaque signing capability used by transactions
type Signer interface {
	PublicKey() []byte
	Sign(message []byte) ([]byte, error)
}

// PrivateKey - a P-256 private key
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// Curve - the curve used by all keys
func Curve() elliptic.Curve {
	return elliptic.P256()
}

// NewPrivateKey - create a random private key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := ecdsa.GenerateKey(Curve(), rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - a private key from a 32 byte big endian scalar
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if PrivateKeySize != len(b) {
		return nil, fault.ErrInvalidPrivateKey
	}
	d := new(big.Int).SetBytes(b)
	if 0 == d.Sign() || d.Cmp(Curve().Params().N) >= 0 {
		return nil, fault.ErrInvalidPrivateKey
	}

	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: Curve(),
		},
		D: d,
	}
	key.PublicKey.X, key.PublicKey.Y = Curve().ScalarBaseMult(b)
	return &PrivateKey{key: key}, nil
}

// Bytes - 32 byte big endian scalar
func (k *PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeySize)
	return k.key.D.FillBytes(b)
}

// PublicKey - compressed public key
func (k *PrivateKey) PublicKey() []byte {
	return elliptic.MarshalCompressed(Curve(), k.key.PublicKey.X, k.key.PublicKey.Y)
}

// Sign - SHA256withECDSA signature of message
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	r, s, err := ecdsa.Sign(rand.Reader, k.key, digest[:])
	if nil != err {
		return nil, err
	}

	signature := make([]byte, SignatureSize)
	signature[0] = SHA256withECDSA
	r.FillBytes(signature[1 : 1+PrivateKeySize])
	s.FillBytes(signature[1+PrivateKeySize:])
	return signature, nil
}

// WIF - wallet import format: Base58Check(0x80 | key | 0x01)
func (k *PrivateKey) WIF() string {
	buffer := make([]byte, 0, wifLength)
	buffer = append(buffer, wifPrefix)
	buffer = append(buffer, k.Bytes()...)
	buffer = append(buffer, wifCompressed)
	return util.ToBase58Check(buffer)
}

// PrivateKeyFromWIF - decode a wallet import format string
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	buffer, err := util.FromBase58Check(wif)
	if nil != err {
		return nil, err
	}
	if wifLength != len(buffer) || wifPrefix != buffer[0] || wifCompressed != buffer[wifLength-1] {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKeyFromBytes(buffer[1 : 1+PrivateKeySize])
}

// ParsePublicKey - accept compressed or uncompressed points
func ParsePublicKey(b []byte) (*ecdsa.PublicKey, error) {
	var x, y *big.Int
	switch len(b) {
	case CompressedPublicKeySize:
		x, y = elliptic.UnmarshalCompressed(Curve(), b)
	case UncompressedPublicKeySize:
		x, y = elliptic.Unmarshal(Curve(), b)
	}
	if nil == x {
		return nil, fault.ErrInvalidPublicKey
	}
	return &ecdsa.PublicKey{
		Curve: Curve(),
		X:     x,
		Y:     y,
	}, nil
}

// CompressPublicKey - normalise any accepted public key to 33 bytes
func CompressPublicKey(b []byte) ([]byte, error) {
	pub, err := ParsePublicKey(b)
	if nil != err {
		return nil, err
	}
	return elliptic.MarshalCompressed(Curve(), pub.X, pub.Y), nil
}

// Verify - check a SHA256withECDSA signature
func Verify(publicKey []byte, message []byte, signature []byte) error {
	if SignatureSize != len(signature) || SHA256withECDSA != signature[0] {
		return fault.ErrInvalidSignature
	}
	pub, err := ParsePublicKey(publicKey)
	if nil != err {
		return err
	}

	r := new(big.Int).SetBytes(signature[1 : 1+PrivateKeySize])
	s := new(big.Int).SetBytes(signature[1+PrivateKeySize:])
	digest := sha256.Sum256(message)
	if !ecdsa.Verify(pub, digest[:], r, s) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// SortPublicKeys - order keys by X then Y coordinate
//
// multisignature programs must list keys in this order for the node to
// derive the same address
func SortPublicKeys(keys [][]byte) ([][]byte, error) {
	type point struct {
		x, y    *big.Int
		encoded []byte
	}
	points := make([]point, len(keys))
	for i, k := range keys {
		pub, err := ParsePublicKey(k)
		if nil != err {
			return nil, err
		}
		points[i] = point{
			x:       pub.X,
			y:       pub.Y,
			encoded: elliptic.MarshalCompressed(Curve(), pub.X, pub.Y),
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		if c := points[i].x.Cmp(points[j].x); 0 != c {
			return c < 0
		}
		return points[i].y.Cmp(points[j].y) < 0
	})

	sorted := make([][]byte, len(points))
	for i, p := range points {
		sorted[i] = p.encoded
	}
	return sorted, nil
}

// ContainsPublicKey - whether key is present in keys, comparing compressed forms
func ContainsPublicKey(keys [][]byte, key []byte) bool {
	for _, k := range keys {
		if bytes.Equal(k, key) {
			return true
		}
	}
	return false
}
