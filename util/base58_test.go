// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/util"
)

func TestBase58CheckRoundTrip(t *testing.T) {
	items := [][]byte{
		{0x00},
		{0x00, 0x00, 0x01},
		[]byte("hello"),
		{0x17, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14},
	}

	for i, item := range items {
		s := util.ToBase58Check(item)
		data, err := util.FromBase58Check(s)
		assert.Nil(t, err, "%d: decode error", i)
		assert.Equal(t, item, data, "%d: round trip", i)
	}
}

func TestBase58CheckErrors(t *testing.T) {
	s := util.ToBase58Check([]byte("hello"))

	// corrupt the last character
	last := s[len(s)-1]
	replacement := byte('2')
	if '2' == last {
		replacement = '3'
	}
	corrupted := s[:len(s)-1] + string(replacement)

	_, err := util.FromBase58Check(corrupted)
	assert.Equal(t, fault.ErrChecksumMismatch, err, "wrong checksum error")

	_, err = util.FromBase58Check("0OIl")
	assert.Equal(t, fault.ErrBase58Decode, err, "wrong decode error")

	_, err = util.FromBase58Check("")
	assert.Equal(t, fault.ErrBase58Decode, err, "wrong empty error")
}

func TestHash160(t *testing.T) {
	// identifier of a compressed P-256 public key
	pub, _ := hex.DecodeString("03a396e3676ee2d86345083915d05c024cad02cdad885df3d08a02c66301626a0c")
	assert.Equal(t, util.Hash160Size, len(util.Hash160(pub)), "wrong hash160 size")

	// RIPEMD160(SHA256("")) is a well known value
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(util.Hash160([]byte{})), "wrong empty hash160")
}

func TestHash256(t *testing.T) {
	digest := util.Hash256([]byte("hello"))
	assert.Equal(t, "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50", hex.EncodeToString(digest[:]), "wrong hash256")
}
