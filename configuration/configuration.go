// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
	"github.com/bitmark-inc/ontkit/util"
)

// networks
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Local   = "local"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultMainnetDatabase  = Mainnet + ".leveldb"
	defaultTestnetDatabase  = Testnet + ".leveldb"
	defaultLocalDatabase    = Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ontkit.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	DefaultGasPrice = 500
	DefaultGasLimit = 20000
)

// DefaultPath - first external account
var DefaultPath = hdkey.OntologyPath + "/0/0"

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// decoding merges into an existing map so each configuration needs its own
func (m LoglevelMap) copy() LoglevelMap {
	levels := make(LoglevelMap, len(m))
	for tag, level := range m {
		levels[tag] = level
	}
	return levels
}

// DatabaseType - location of the account store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the ontkit-cli settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Network       string               `gluamapper:"network" json:"network"`
	DefaultPath   string               `gluamapper:"default_path" json:"default_path"`
	GasPrice      uint64               `gluamapper:"gas_price" json:"gas_price"`
	GasLimit      uint64               `gluamapper:"gas_limit" json:"gas_limit"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// ValidNetwork - true for a recognised network name
func ValidNetwork(network string) bool {
	switch network {
	case Mainnet, Testnet, Local:
		return true
	default:
		return false
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Network:       Mainnet,
		DefaultPath:   DefaultPath,
		GasPrice:      DefaultGasPrice,
		GasLimit:      DefaultGasLimit,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultMainnetDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if the database file was not specified switch to the network
	// default.  Abort if the network name is not recognised.
	options.Network = strings.ToLower(options.Network)
	if !ValidNetwork(options.Network) {
		return nil, fault.ErrInvalidNetwork
	}

	// if database was not changed from default
	if options.Database.Name == defaultMainnetDatabase {
		switch options.Network {
		case Testnet:
			options.Database.Name = defaultTestnetDatabase
		case Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	if _, err := hdkey.ParsePath(options.DefaultPath); nil != err {
		return nil, err
	}
	if 0 == options.GasPrice || 0 == options.GasLimit {
		return nil, fault.ErrMissingParameters
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); nil != err {
			return nil, err
		}
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// done
	return options, nil
}
