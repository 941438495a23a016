// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ontkit/fault"
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == poolData.database {
		return fault.ErrNotInitialised
	}
	return poolData.database.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == poolData.database {
		return fault.ErrNotInitialised
	}
	return poolData.database.Delete(p.prefixKey(key), nil)
}

// Get - read a value for a given key
//
// returns nil if the key is not present
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}
	value, err := poolData.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == poolData.database {
		return false, fault.ErrNotInitialised
	}
	return poolData.database.Has(p.prefixKey(key), nil)
}
