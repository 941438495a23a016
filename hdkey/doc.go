// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkey - hierarchical deterministic keys on NIST P-256
//
// derivation follows BIP32 with the curve order of P-256 and a master
// key HMAC keyed with "Nist256p1 seed"; extended keys use the standard
// xprv/xpub layout so they interoperate with other P-256 HD wallets
//
// a derivation whose intermediate scalar is zero or not below the
// curve order returns fault.ErrDegenerateDerivation; callers skip to
// the next index
package hdkey
