// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/keypair"
	"github.com/bitmark-inc/ontkit/util"
)

// miscellaneous constants
const (
	HardenedKeyStart = 0x80000000 // first hardened child index
	ChainCodeSize    = 32
	FingerprintSize  = 4
	MaximumDepth     = 255

	// purpose 44, coin type 1024, account 0
	OntologyPath = "m/44'/1024'/0'"
)

// Key - operations common to private and public extended keys
type Key interface {
	ChainCode() []byte
	Depth() uint8
	Index() uint32
	ParentFingerprint() []byte
	Identifier() []byte
	Fingerprint() []byte
	PublicKeyBytes() []byte
	IsPrivate() bool
	Derive(index uint32) (Key, error)
	Address() (address.Address, error)
	Serialize() []byte
	String() string
}

// fields shared by both key kinds
type header struct {
	chainCode         []byte
	depth             uint8
	index             uint32
	parentFingerprint []byte
}

// PrivateKey - extended P-256 private key
type PrivateKey struct {
	header
	scalar    []byte // 32 bytes big endian
	publicKey []byte // 33 bytes compressed
}

// PublicKey - extended P-256 public key
type PublicKey struct {
	header
	publicKey []byte // 33 bytes compressed
}

// ChainCode - copy of the 32 byte chain code
func (h *header) ChainCode() []byte {
	return clone(h.chainCode)
}

// Depth - number of derivations from the master key
func (h *header) Depth() uint8 {
	return h.depth
}

// Index - child number of this key, hardened indices include HardenedKeyStart
func (h *header) Index() uint32 {
	return h.index
}

// ParentFingerprint - first 4 bytes of the parent identifier, zero for a master key
func (h *header) ParentFingerprint() []byte {
	return clone(h.parentFingerprint)
}

// IsPrivate - true
func (k *PrivateKey) IsPrivate() bool {
	return true
}

// IsPrivate - false
func (k *PublicKey) IsPrivate() bool {
	return false
}

// PublicKeyBytes - compressed public key
func (k *PrivateKey) PublicKeyBytes() []byte {
	return clone(k.publicKey)
}

// PublicKeyBytes - compressed public key
func (k *PublicKey) PublicKeyBytes() []byte {
	return clone(k.publicKey)
}

// Identifier - hash160 of the compressed public key
func (k *PrivateKey) Identifier() []byte {
	return util.Hash160(k.publicKey)
}

// Identifier - hash160 of the compressed public key
func (k *PublicKey) Identifier() []byte {
	return util.Hash160(k.publicKey)
}

// Fingerprint - first 4 bytes of the identifier
func (k *PrivateKey) Fingerprint() []byte {
	return k.Identifier()[:FingerprintSize]
}

// Fingerprint - first 4 bytes of the identifier
func (k *PublicKey) Fingerprint() []byte {
	return k.Identifier()[:FingerprintSize]
}

// Address - single key account of this key
func (k *PrivateKey) Address() (address.Address, error) {
	return address.FromPublicKey(k.publicKey)
}

// Address - single key account of this key
func (k *PublicKey) Address() (address.Address, error) {
	return address.FromPublicKey(k.publicKey)
}

// Derive - Child as a Key
func (k *PrivateKey) Derive(index uint32) (Key, error) {
	child, err := k.Child(index)
	if nil != err {
		return nil, err
	}
	return child, nil
}

// Derive - Child as a Key
func (k *PublicKey) Derive(index uint32) (Key, error) {
	child, err := k.Child(index)
	if nil != err {
		return nil, err
	}
	return child, nil
}

// Bytes - copy of the 32 byte scalar
func (k *PrivateKey) Bytes() []byte {
	return clone(k.scalar)
}

// KeyPair - signing key for transactions
func (k *PrivateKey) KeyPair() (*keypair.PrivateKey, error) {
	return keypair.PrivateKeyFromBytes(k.scalar)
}

// Public - the matching extended public key
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{
		header:    k.header.clone(),
		publicKey: clone(k.publicKey),
	}
}

func (h header) clone() header {
	return header{
		chainCode:         clone(h.chainCode),
		depth:             h.depth,
		index:             h.index,
		parentFingerprint: clone(h.parentFingerprint),
	}
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
