// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - 20 byte ledger addresses
//
// an address is the hash160 of the verification program that controls
// it; the text form is Base58Check over a 0x17 version byte followed by
// the 20 address bytes
package address
