// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/configuration"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
	"github.com/bitmark-inc/ontkit/keychain"
	"github.com/bitmark-inc/ontkit/storage"
	"github.com/bitmark-inc/ontkit/util"
)

const (
	configurationFile = "ontkit.conf"
	temporaryLogFile  = "ontkit-cli.log"
)

// an explicit file must exist, otherwise the default location is
// tried and built in settings are used if nothing is there
func readConfiguration(file string) (string, *configuration.Configuration, error) {
	if "" != file {
		config, err := configuration.GetConfiguration(file)
		return file, config, err
	}

	if p := os.Getenv("XDG_CONFIG_HOME"); "" != p {
		file = filepath.Join(p, "ontkit-cli", configurationFile)
		if util.EnsureFileExists(file) {
			config, err := configuration.GetConfiguration(file)
			return file, config, err
		}
	}

	return "", builtinConfiguration(), nil
}

// no database and only critical messages to a temporary log
func builtinConfiguration() *configuration.Configuration {
	return &configuration.Configuration{
		DataDirectory: os.TempDir(),
		Network:       configuration.Mainnet,
		DefaultPath:   configuration.DefaultPath,
		GasPrice:      configuration.DefaultGasPrice,
		GasLimit:      configuration.DefaultGasLimit,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      temporaryLogFile,
			Size:      1024 * 1024,
			Count:     1,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// open the account store on first use
func openStore(m *metadata) error {
	if m.store {
		return nil
	}
	if "" == m.config.Database.Name {
		return ErrNoDatabase
	}
	if err := storage.Initialise(m.config.Database.Name, storage.ReadWrite); nil != err {
		return err
	}
	m.store = true
	return nil
}

// root key chain from the mnemonic flags
func chainFromMnemonic(mnemonic string, passphrase string) (*keychain.Chain, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if "" == mnemonic {
		return nil, ErrMissingMnemonic
	}
	if err := hdkey.ValidateMnemonic(mnemonic); nil != err {
		return nil, err
	}
	master, err := hdkey.NewMasterKey(hdkey.SeedFromMnemonic(mnemonic, passphrase))
	if nil != err {
		return nil, err
	}
	return keychain.New(master, keychain.DefaultExpiration)
}

// base58, reversed hex or the names of the native contracts
func parseAddress(s string) (address.Address, error) {
	switch strings.ToLower(s) {
	case "":
		return address.Address{}, fault.ErrMissingParameters
	case "ont":
		return address.ONT, nil
	case "ong":
		return address.ONG, nil
	}
	if 2*address.Length == len(s) {
		return address.FromHexReverse(s)
	}
	return address.FromBase58(s)
}

// default path from configuration if not given
func pathOrDefault(m *metadata, path string) string {
	if "" == path {
		return m.config.DefaultPath
	}
	return path
}
