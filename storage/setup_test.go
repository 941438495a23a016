// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/storage"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = "testing/accounts.leveldb"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	_ = os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.Nil(t, err, "storage initialise")
}

// post test cleanup
func teardown() {
	storage.Finalise()
	_ = os.RemoveAll(databaseFileName)
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReadOnlyReopen(t *testing.T) {
	setup(t)
	storage.Finalise()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	require.Nil(t, err, "read only reopen")
	defer teardown()

	err = storage.Pool.Labels.Put([]byte("x"), []byte("m/0"))
	assert.NotNil(t, err, "write to read only database")
}

func TestReadOnlyMissing(t *testing.T) {
	err := storage.Initialise(filepath.Join(testingDirName, "missing.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "missing read only database")
	storage.Finalise()
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.ListAccounts()
	assert.Equal(t, fault.ErrNotInitialised, err, "list")

	_, err = storage.GetAccount("m/0")
	assert.Equal(t, fault.ErrNotInitialised, err, "get")
}
