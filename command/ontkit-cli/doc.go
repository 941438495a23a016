// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ontkit-cli - offline Ontology key and transaction tool
//
// derives keys from a mnemonic, computes addresses, builds and signs
// native transfers and decodes serialised transactions. Nothing is
// sent to a node: signed transactions are printed as hex.
//
// configuration is read from a Lua file (see the configuration
// package) given by --config or $XDG_CONFIG_HOME/ontkit-cli/ontkit.conf
package main
