// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - NeoVM bytecode emission and parsing
//
// A Builder compiles structured parameters into the push sequence the
// virtual machine uses to rebuild them on its stack.  The same package
// builds and parses account verification programs (single key and
// multisignature) and invocation programs that carry signatures.
//
// A Builder has a single owner and must not be shared between
// goroutines.
package program
