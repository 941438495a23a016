// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160Size - bytes in a Hash160 digest
const Hash160Size = ripemd160.Size

// Hash160 - RIPEMD-160 of SHA-256 of data
//
// used for addresses and for key identifiers
func Hash160(data []byte) []byte {
	digest := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(digest[:]) // hash.Hash never returns an error
	return h.Sum(nil)
}

// Hash256 - double SHA-256 of data
func Hash256(data []byte) [sha256.Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
