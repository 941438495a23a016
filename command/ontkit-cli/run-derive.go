// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
	"github.com/bitmark-inc/ontkit/keychain"
	"github.com/bitmark-inc/ontkit/storage"
)

type derivedAccount struct {
	Path       string `json:"path"`
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	XPub       string `json:"xpub"`
	PrivateKey string `json:"privateKey,omitempty"`
	WIF        string `json:"wif,omitempty"`
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 1 || count > 1000 {
		return ErrInvalidCount
	}

	chain, err := chainFromMnemonic(c.String("mnemonic"), c.String("passphrase"))
	if nil != err {
		return err
	}

	path := pathOrDefault(m, c.String("path"))
	accounts, err := deriveAccounts(chain, path, count, c.Bool("private"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "path: %s  count: %d  cached keys: %d\n", path, count, chain.Cached())
	}

	if c.Bool("save") || "" != c.String("label") {
		if err := saveAccounts(m, chain, accounts, c.String("label")); nil != err {
			return err
		}
	}

	return printJson(m.w, accounts)
}

// path is the first account, the rest follow in the same parent,
// skipping any normal index that cannot be derived
func deriveAccounts(chain *keychain.Chain, path string, count int, private bool) ([]derivedAccount, error) {
	indices, err := hdkey.ParsePath(path)
	if nil != err {
		return nil, err
	}
	n := len(indices)
	if 0 == n {
		return nil, fault.ErrInvalidPath
	}

	parent := indices[:n-1:n-1]
	start := indices[n-1]

	hardened := start >= hdkey.HardenedKeyStart

	accounts := make([]derivedAccount, 0, count)
	for i := 0; i < count; i += 1 {
		var k hdkey.Key
		index := start
		if hardened {
			// wrapped past the last hardened index
			if i > 0 && 0 == start {
				return nil, fault.ErrInvalidChildIndex
			}
			k, err = chain.DeriveIndices(append(parent, index))
		} else {
			k, index, err = chain.NextAccount(hdkey.FormatPath(parent), start)
		}
		start = index + 1
		if nil != err {
			return nil, err
		}

		account, err := describeKey(k, private)
		if nil != err {
			return nil, err
		}
		account.Path = hdkey.FormatPath(append(parent, index))
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func describeKey(k hdkey.Key, private bool) (derivedAccount, error) {
	a, err := k.Address()
	if nil != err {
		return derivedAccount{}, err
	}

	account := derivedAccount{
		Address:   a.String(),
		PublicKey: hex.EncodeToString(k.PublicKeyBytes()),
		XPub:      k.String(),
	}

	if privateKey, ok := k.(*hdkey.PrivateKey); ok {
		account.XPub = privateKey.Public().String()
		if private {
			kp, err := privateKey.KeyPair()
			if nil != err {
				return derivedAccount{}, err
			}
			account.PrivateKey = hex.EncodeToString(kp.Bytes())
			account.WIF = kp.WIF()
		}
	}
	return account, nil
}

// the first account takes the label
func saveAccounts(m *metadata, chain *keychain.Chain, accounts []derivedAccount, label string) error {
	if err := openStore(m); nil != err {
		return err
	}

	for i, a := range accounts {
		k, err := chain.Derive(a.Path)
		if nil != err {
			return err
		}
		l := ""
		if 0 == i {
			l = label
		}
		account, err := storage.NewAccount(a.Path, l, k)
		if nil != err {
			return err
		}
		if err := storage.PutAccount(account); nil != err {
			return err
		}
		m.log.Infof("saved account: %s  address: %s", account.Path, account.Address)
	}
	return nil
}
