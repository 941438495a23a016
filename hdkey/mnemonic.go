// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"crypto/sha512"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/bitmark-inc/ontkit/fault"
)

// BIP39 seed stretching
const (
	seedIterations = 2048
	seedLength     = 64
	seedSaltPrefix = "mnemonic"
)

// SeedFromMnemonic - 64 byte seed for a mnemonic and optional passphrase
//
// both strings are NFKD normalised; the words are not checked against
// a word list, use ValidateMnemonic for that
func SeedFromMnemonic(mnemonic string, passphrase string) []byte {
	password := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, seedLength, sha512.New)
}

// NewMnemonic - random English mnemonic with bits of entropy
//
// bits must be a multiple of 32 from 128 to 256
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if nil != err {
		return "", fault.ErrInvalidSeedLength
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateMnemonic - check the words and checksum of an English mnemonic
func ValidateMnemonic(mnemonic string) error {
	if _, err := bip39.EntropyFromMnemonic(strings.Join(strings.Fields(mnemonic), " ")); nil != err {
		return fault.ErrInvalidMnemonic
	}
	return nil
}
