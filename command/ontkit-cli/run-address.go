// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/program"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hexKeys := c.StringSlice("publickey")
	if 0 == len(hexKeys) {
		return ErrMissingPublicKey
	}

	publicKeys := make([][]byte, 0, len(hexKeys))
	for _, h := range hexKeys {
		k, err := hex.DecodeString(h)
		if nil != err {
			return err
		}
		publicKeys = append(publicKeys, k)
	}

	a, code, err := addressOf(c.Int("threshold"), publicKeys)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d  threshold: %d\n", len(publicKeys), c.Int("threshold"))
	}

	result := struct {
		Address    string `json:"address"`
		HexReverse string `json:"hexReverse"`
		Program    string `json:"program"`
		Network    string `json:"network"`
	}{
		Address:    a.String(),
		HexReverse: a.HexReverse(),
		Program:    hex.EncodeToString(code),
		Network:    m.config.Network,
	}
	return printJson(m.w, result)
}

// a single key with threshold 1 is a plain CHECKSIG account
func addressOf(threshold int, publicKeys [][]byte) (address.Address, []byte, error) {
	var code []byte
	var err error
	if 1 == len(publicKeys) && 1 == threshold {
		code, err = program.FromPublicKey(publicKeys[0])
	} else {
		code, err = program.FromMultiPublicKeys(threshold, publicKeys)
	}
	if nil != err {
		return address.Address{}, nil, err
	}
	return address.FromVMCode(code), code, nil
}
