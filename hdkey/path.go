// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/ontkit/fault"
)

// ParsePath - "m/44'/1024'/0'/0/0" to child indices
//
// hardened segments may be marked with ', h or H
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if "m" != segments[0] && "M" != segments[0] {
		return nil, fault.ErrInvalidPath
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, s := range segments[1:] {
		hardened := false
		if n := len(s); n > 1 && ('\'' == s[n-1] || 'h' == s[n-1] || 'H' == s[n-1]) {
			hardened = true
			s = s[:n-1]
		}

		// digits only: rejects signs and blanks
		for _, c := range s {
			if c < '0' || c > '9' {
				return nil, fault.ErrInvalidPath
			}
		}
		value, err := strconv.ParseUint(s, 10, 32)
		if nil != err || value >= HardenedKeyStart {
			return nil, fault.ErrInvalidPath
		}

		index := uint32(value)
		if hardened {
			index += HardenedKeyStart
		}
		indices = append(indices, index)
	}
	if len(indices) > MaximumDepth {
		return nil, fault.ErrInvalidPath
	}
	return indices, nil
}

// FormatPath - canonical text for child indices, hardened as '
func FormatPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range indices {
		b.WriteByte('/')
		if index >= HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedKeyStart), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}

// FromPath - every key along path from root, terminal key last
//
// root itself is not included; an empty path gives an empty list
func FromPath(root Key, path string) ([]Key, error) {
	indices, err := ParsePath(path)
	if nil != err {
		return nil, err
	}
	return DeriveIndices(root, indices)
}

// DeriveIndices - as FromPath for already parsed indices
func DeriveIndices(root Key, indices []uint32) ([]Key, error) {
	if nil == root {
		return nil, fault.ErrNilParameter
	}
	keys := make([]Key, 0, len(indices))
	k := root
	for _, index := range indices {
		child, err := k.Derive(index)
		if nil != err {
			return nil, err
		}
		keys = append(keys, child)
		k = child
	}
	return keys, nil
}
