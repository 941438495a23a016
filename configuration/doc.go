// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.network = "testnet"
//   M.default_path = "m/44'/1024'/0'/0/0"
//   M.gas_price = 500
//   M.gas_limit = 20000
//   M.database = { directory = "data", name = "accounts.leveldb" }
//   M.logging = { directory = "log", file = "ontkit.log", size = 1048576, count = 10, levels = { DEFAULT = "info" } }
//   return M
package configuration
