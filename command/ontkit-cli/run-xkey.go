// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
	"github.com/bitmark-inc/ontkit/keychain"
)

type extendedKeyInfo struct {
	Key               string `json:"key"`
	Private           bool   `json:"private"`
	Depth             uint8  `json:"depth"`
	Index             uint32 `json:"index"`
	Hardened          bool   `json:"hardened"`
	ParentFingerprint string `json:"parentFingerprint"`
	Fingerprint       string `json:"fingerprint"`
	ChainCode         string `json:"chainCode"`
	PublicKey         string `json:"publicKey"`
	Address           string `json:"address"`
}

func runXKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("key")
	if "" == s {
		return fault.ErrMissingParameters
	}
	root, err := hdkey.ParseExtendedKey(s)
	if nil != err {
		return err
	}

	chain, err := keychain.New(root, keychain.DefaultExpiration)
	if nil != err {
		return err
	}
	k, err := chain.Derive(c.String("path"))
	if nil != err {
		return err
	}

	info, err := inspectKey(k)
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func inspectKey(k hdkey.Key) (*extendedKeyInfo, error) {
	a, err := k.Address()
	if nil != err {
		return nil, err
	}
	return &extendedKeyInfo{
		Key:               k.String(),
		Private:           k.IsPrivate(),
		Depth:             k.Depth(),
		Index:             k.Index(),
		Hardened:          k.Index() >= hdkey.HardenedKeyStart,
		ParentFingerprint: hex.EncodeToString(k.ParentFingerprint()),
		Fingerprint:       hex.EncodeToString(k.Fingerprint()),
		ChainCode:         hex.EncodeToString(k.ChainCode()),
		PublicKey:         hex.EncodeToString(k.PublicKeyBytes()),
		Address:           a.String(),
	}, nil
}
