// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keychain - cached derivation of keys below a root key
package keychain

import (
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
)

// cache timings
const (
	DefaultExpiration = 10 * time.Minute
	cleanupInterval   = 1 * time.Minute
)

// Chain - a root key and the keys already derived from it
//
// safe for concurrent use: the cache is synchronised and keys are
// never modified after derivation
type Chain struct {
	log   *logger.L
	root  hdkey.Key
	cache *cache.Cache
}

// New - key chain over root, cached keys expire after expiration
func New(root hdkey.Key, expiration time.Duration) (*Chain, error) {
	if nil == root {
		return nil, fault.ErrNilParameter
	}
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	log := logger.New("keychain")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	log.Infof("root: %x  private: %t", root.Fingerprint(), root.IsPrivate())

	return &Chain{
		log:   log,
		root:  root,
		cache: cache.New(expiration, cleanupInterval),
	}, nil
}

// Root - the key all paths start from
func (c *Chain) Root() hdkey.Key {
	return c.root
}

// Derive - key at path, e.g. "m/44'/1024'/0'/0/3"
func (c *Chain) Derive(path string) (hdkey.Key, error) {
	indices, err := hdkey.ParsePath(path)
	if nil != err {
		return nil, err
	}
	return c.DeriveIndices(indices)
}

// DeriveIndices - key at already parsed path
//
// the longest cached prefix is the starting point and every key derived
// on the way is cached under its canonical path
func (c *Chain) DeriveIndices(indices []uint32) (hdkey.Key, error) {
	k := c.root
	start := 0
	for i := len(indices); i > 0; i -= 1 {
		if cached, found := c.cache.Get(hdkey.FormatPath(indices[:i])); found {
			k = cached.(hdkey.Key)
			start = i
			break
		}
	}

	for i := start; i < len(indices); i += 1 {
		child, err := k.Derive(indices[i])
		if nil != err {
			c.log.Debugf("derive: %s  error: %s", hdkey.FormatPath(indices[:i+1]), err)
			return nil, err
		}
		c.cache.SetDefault(hdkey.FormatPath(indices[:i+1]), child)
		k = child
	}
	return k, nil
}

// NextAccount - first usable key at or after index start below parent
//
// indices whose derivation is degenerate are skipped; the index of the
// returned key is also returned
func (c *Chain) NextAccount(parent string, start uint32) (hdkey.Key, uint32, error) {
	indices, err := hdkey.ParsePath(parent)
	if nil != err {
		return nil, 0, err
	}
	base, err := c.DeriveIndices(indices)
	if nil != err {
		return nil, 0, err
	}

	for index := start; index < hdkey.HardenedKeyStart; index += 1 {
		path := hdkey.FormatPath(append(indices, index))
		if cached, found := c.cache.Get(path); found {
			return cached.(hdkey.Key), index, nil
		}

		k, err := base.Derive(index)
		if fault.ErrDegenerateDerivation == err {
			c.log.Warnf("skip degenerate index: %s", path)
			continue
		}
		if nil != err {
			return nil, 0, err
		}
		c.cache.SetDefault(path, k)
		return k, index, nil
	}
	return nil, 0, fault.ErrInvalidChildIndex
}

// Cached - number of keys held
func (c *Chain) Cached() int {
	return c.cache.ItemCount()
}

// Flush - drop every cached key
func (c *Chain) Flush() {
	c.log.Debug("flush")
	c.cache.Flush()
}
