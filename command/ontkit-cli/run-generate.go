// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/hdkey"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mnemonic, err := hdkey.NewMnemonic(c.Int("bits"))
	if nil != err {
		return err
	}

	chain, err := chainFromMnemonic(mnemonic, "")
	if nil != err {
		return err
	}
	k, err := chain.Derive(m.config.DefaultPath)
	if nil != err {
		return err
	}
	a, err := k.Address()
	if nil != err {
		return err
	}

	m.log.Info("generated mnemonic")

	result := struct {
		Mnemonic string `json:"mnemonic"`
		Path     string `json:"path"`
		Address  string `json:"address"`
	}{
		Mnemonic: mnemonic,
		Path:     m.config.DefaultPath,
		Address:  a.String(),
	}
	return printJson(m.w, result)
}
