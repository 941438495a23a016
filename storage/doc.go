// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. path    = canonical derivation path text, e.g. m/44'/1024'/0'/0/3
// 4. address = 20 byte program hash
//
// Pools:
//
//   A ++ path  -> VarBytes(address) ++ VarBytes(public key) ++ VarString(xpub) ++ VarString(label)
//   L ++ label -> path
package storage
