// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/fault"
)

type keyAddress struct {
	publicKey string
	base58    string
}

// m/44'/1024'/0'/0/i of the test mnemonic
var derived = []keyAddress{
	{"03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c", "ARXRQog4iZazp5YfXRyDZvU6ahrt3c2bb7"},
	{"0281bfed65dac125cacd98be68cf35602f63174c956e24408459b39b3ed8b4a095", "APXh8MqcARUgafqvUNnpECzwKDtipkf3Zr"},
	{"02ebb7468da06b1cf2ef7e7560e2dfaeae41bf50248b9037fa945afdd6798ec09e", "ASpmd1MpFSpQ5rhicjRDqBpE1inP3Z7tus"},
	{"0344b62b833fdbba5a8ebd21ef6b7abab0bece5f9f6bfd77d1f7b8bf39a5e38c2c", "APA3M4BRqjBsHXRkeTFiFVb4X1u8FiEgAr"},
	{"027ea1d6eee9148d3bbd2eb9456f03a07ddfee6dd9f7d1979c46f1e691ade2058b", "AKq5SBTCzHBaqWWDUTGvekbsNJKKtf4ff5"},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestFromPublicKey(t *testing.T) {
	for i, item := range derived {
		a, err := address.FromPublicKey(decodeHex(item.publicKey))
		require.Nil(t, err, "%d: public key rejected", i)
		assert.Equal(t, item.base58, a.Base58(), "%d: wrong address", i)

		back, err := address.FromBase58(item.base58)
		require.Nil(t, err, "%d: decode", i)
		assert.Equal(t, a, back, "%d: round trip", i)
	}
}

func TestFromVMCode(t *testing.T) {
	code := decodeHex("2103a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0cac")
	a := address.FromVMCode(code)
	assert.Equal(t, "6af588999ae59fe3e436a165c6ce475306be4b6f", hex.EncodeToString(a.Bytes()), "hash160 of program")
	assert.Equal(t, derived[0].base58, a.String(), "string form")
}

func TestFromMultiPublicKeys(t *testing.T) {
	keys := [][]byte{
		decodeHex(derived[0].publicKey),
		decodeHex(derived[1].publicKey),
		decodeHex(derived[2].publicKey),
	}
	a, err := address.FromMultiPublicKeys(2, keys)
	require.Nil(t, err, "multisig address")
	assert.Equal(t, "AN59e4ZGTRm3RYdpKKXEmvFNcnVj8fECrG", a.Base58(), "multisig address")

	_, err = address.FromMultiPublicKeys(0, keys)
	assert.Equal(t, fault.ErrInvalidMultiSignature, err, "zero threshold")
}

func TestNativeContracts(t *testing.T) {
	assert.Equal(t, "AFmseVrdL9f9oyCzZefL9tG6UbvhUMqNMV", address.ONT.Base58(), "ONT")
	assert.Equal(t, "AFmseVrdL9f9oyCzZefL9tG6UbvhfRZMHJ", address.ONG.Base58(), "ONG")
	assert.Equal(t, "0100000000000000000000000000000000000000", address.ONT.HexReverse(), "ONT hex")

	a, err := address.FromHexReverse("0200000000000000000000000000000000000000")
	require.Nil(t, err, "hex reverse")
	assert.Equal(t, address.ONG, a, "ONG from hex")

	assert.False(t, address.ONT.IsZero(), "ONT is not zero")
	assert.True(t, address.Address{}.IsZero(), "zero")
}

func TestInvalid(t *testing.T) {
	_, err := address.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "short bytes")

	_, err = address.FromBase58("ARXRQog4iZazp5YfXRyDZvU6ahrt3c2bb8")
	assert.Equal(t, fault.ErrChecksumMismatch, err, "bad checksum")

	_, err = address.FromBase58("0OIl")
	assert.Equal(t, fault.ErrBase58Decode, err, "not base58")

	// valid WIF is base58check but not an address
	_, err = address.FromBase58("KzLnkzTRfF6tN1nCzxzkvrKyodhEtZUey8BVcttYhqGzi3NsYPZh")
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "wrong length")

	_, err = address.FromHexReverse("zz")
	assert.NotNil(t, err, "bad hex")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Payer address.Address `json:"payer"`
	}

	a, err := address.FromBase58(derived[1].base58)
	require.Nil(t, err, "decode")

	buffer, err := json.Marshal(holder{Payer: a})
	require.Nil(t, err, "marshal")
	assert.Equal(t, `{"payer":"`+derived[1].base58+`"}`, string(buffer), "json text")

	var h holder
	err = json.Unmarshal(buffer, &h)
	require.Nil(t, err, "unmarshal")
	assert.Equal(t, a, h.Payer, "json round trip")
}
