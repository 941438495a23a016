// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ontkit/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidCount       = fault.InvalidError("count is invalid")
	ErrInvalidToken       = fault.InvalidError("token must be ont or ong")
	ErrMissingMnemonic    = fault.InvalidError("mnemonic is required")
	ErrMissingPublicKey   = fault.InvalidError("public key is required")
	ErrNoDatabase         = fault.NotFoundError("no database configured")
	ErrNotPrivateKey      = fault.InvalidError("key is not private")
	ErrUnknownParamFormat = fault.InvalidError("parameter must be an object with type and value")
	ErrZeroAmount         = fault.InvalidError("amount must be greater than zero")
)
