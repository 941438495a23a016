// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/ontkit/fault"
)

// ChecksumLength - bytes of double SHA-256 appended by ToBase58Check
const ChecksumLength = 4

// ToBase58Check - append a 4 byte checksum then Base58 encode
func ToBase58Check(data []byte) string {
	checksum := Hash256(data)
	buffer := make([]byte, 0, len(data)+ChecksumLength)
	buffer = append(buffer, data...)
	buffer = append(buffer, checksum[:ChecksumLength]...)
	return base58.Encode(buffer)
}

// FromBase58Check - decode and verify the trailing checksum
//
// returns the data without its checksum
func FromBase58Check(s string) ([]byte, error) {
	buffer, err := base58.Decode(s)
	if nil != err || len(buffer) <= ChecksumLength {
		return nil, fault.ErrBase58Decode
	}

	checksumStart := len(buffer) - ChecksumLength
	checksum := Hash256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:ChecksumLength], buffer[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return buffer[:checksumStart], nil
}
