// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
)

// m/44'/1024'/0'/0/0 of the test mnemonic
const (
	testPrivateKey = "5d27617550727b07625a05c0acf1e0a22ab4ce6055eeb9e906f4fbf946311a2c"
	testPublicKey  = "03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c"
	testWIF        = "KzLnkzTRfF6tN1nCzxzkvrKyodhEtZUey8BVcttYhqGzi3NsYPZh"
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestPrivateKeyFromBytes(t *testing.T) {
	key, err := keypair.PrivateKeyFromBytes(decodeHex(testPrivateKey))
	require.Nil(t, err, "valid key rejected")

	assert.Equal(t, testPrivateKey, hex.EncodeToString(key.Bytes()), "wrong private bytes")
	assert.Equal(t, testPublicKey, hex.EncodeToString(key.PublicKey()), "wrong public key")
}

func TestPrivateKeyOutOfRange(t *testing.T) {
	items := []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", // curve order
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"0102",
	}
	for i, item := range items {
		_, err := keypair.PrivateKeyFromBytes(decodeHex(item))
		assert.Equal(t, fault.ErrInvalidPrivateKey, err, "%d: out of range key accepted", i)
	}
}

func TestSignVerify(t *testing.T) {
	key, err := keypair.PrivateKeyFromBytes(decodeHex(testPrivateKey))
	require.Nil(t, err, "valid key rejected")

	message := []byte("transaction hash goes here")
	signature, err := key.Sign(message)
	require.Nil(t, err, "sign failed")

	assert.Equal(t, keypair.SignatureSize, len(signature), "wrong signature size")
	assert.Equal(t, byte(keypair.SHA256withECDSA), signature[0], "wrong scheme byte")
	assert.Nil(t, keypair.Verify(key.PublicKey(), message, signature), "valid signature rejected")

	assert.Equal(t, fault.ErrInvalidSignature, keypair.Verify(key.PublicKey(), []byte("other"), signature), "wrong message accepted")

	signature[10] ^= 0x01
	assert.Equal(t, fault.ErrInvalidSignature, keypair.Verify(key.PublicKey(), message, signature), "corrupt signature accepted")

	assert.Equal(t, fault.ErrInvalidSignature, keypair.Verify(key.PublicKey(), message, signature[:10]), "short signature accepted")
}

func TestWIF(t *testing.T) {
	key, err := keypair.PrivateKeyFromBytes(decodeHex(testPrivateKey))
	require.Nil(t, err, "valid key rejected")
	assert.Equal(t, testWIF, key.WIF(), "wrong WIF")

	decoded, err := keypair.PrivateKeyFromWIF(testWIF)
	require.Nil(t, err, "WIF decode failed")
	assert.Equal(t, key.Bytes(), decoded.Bytes(), "WIF round trip")

	_, err = keypair.PrivateKeyFromWIF(testWIF[:len(testWIF)-1] + "1")
	assert.NotNil(t, err, "corrupt WIF accepted")
}

func TestNewPrivateKey(t *testing.T) {
	key, err := keypair.NewPrivateKey()
	require.Nil(t, err, "generate failed")

	again, err := keypair.PrivateKeyFromBytes(key.Bytes())
	require.Nil(t, err, "round trip failed")
	assert.Equal(t, key.PublicKey(), again.PublicKey(), "public keys differ")
}

func TestParsePublicKey(t *testing.T) {
	compressed := decodeHex(testPublicKey)

	pub, err := keypair.ParsePublicKey(compressed)
	require.Nil(t, err, "compressed key rejected")

	uncompressed := make([]byte, keypair.UncompressedPublicKeySize)
	uncompressed[0] = 0x04
	pub.X.FillBytes(uncompressed[1:33])
	pub.Y.FillBytes(uncompressed[33:])

	again, err := keypair.CompressPublicKey(uncompressed)
	require.Nil(t, err, "uncompressed key rejected")
	assert.Equal(t, compressed, again, "compression mismatch")

	bad := append([]byte{}, compressed...)
	bad[0] = 0x05
	_, err = keypair.ParsePublicKey(bad)
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "bad prefix accepted")

	_, err = keypair.ParsePublicKey(compressed[:20])
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short key accepted")
}

func TestSortPublicKeys(t *testing.T) {
	keys := [][]byte{
		decodeHex("03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c"),
		decodeHex("0281bfed65dac125cacd98be68cf35602f63174c956e24408459b39b3ed8b4a095"),
		decodeHex("02ebb7468da06b1cf2ef7e7560e2dfaeae41bf50248b9037fa945afdd6798ec09e"),
	}
	expected := [][]byte{keys[1], keys[0], keys[2]}

	sorted, err := keypair.SortPublicKeys(keys)
	require.Nil(t, err, "sort failed")
	assert.Equal(t, expected, sorted, "wrong order")

	assert.True(t, keypair.ContainsPublicKey(keys, keys[2]), "key not found")
	assert.False(t, keypair.ContainsPublicKey(keys[:2], keys[2]), "missing key found")
}
