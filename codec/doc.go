// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - typed binary reader and writer
//
// Fixed width integers take an explicit byte order on every call since
// transaction fields are little endian while extended key fields are
// big endian.  Variable length fields use the Varint encoding from the
// util package.
//
// A Writer or Reader has a single owner; concurrent use without
// external locking is undefined.
package codec
