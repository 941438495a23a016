// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/storage"
)

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := openStore(m); nil != err {
		return err
	}

	accounts, err := storage.ListAccounts()
	if nil != err {
		return err
	}
	return printJson(m.w, accounts)
}
