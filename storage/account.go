// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/codec"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
)

// record field limits
const (
	maxPublicKeyLength   = 65
	maxExtendedKeyLength = 128
	maxLabelLength       = 64
)

// Account - a derived key as stored
type Account struct {
	Path              string          `json:"path"`
	Label             string          `json:"label,omitempty"`
	Address           address.Address `json:"address"`
	PublicKey         []byte          `json:"publicKey"`
	ExtendedPublicKey string          `json:"xpub"`
}

// NewAccount - account record for a key derived at path
func NewAccount(path string, label string, k hdkey.Key) (*Account, error) {
	if nil == k {
		return nil, fault.ErrNilParameter
	}
	canonical, err := canonicalPath(path)
	if nil != err {
		return nil, err
	}

	addr, err := k.Address()
	if nil != err {
		return nil, err
	}

	xpub := k.String()
	if private, ok := k.(*hdkey.PrivateKey); ok {
		xpub = private.Public().String()
	}

	return &Account{
		Path:              canonical,
		Label:             label,
		Address:           addr,
		PublicKey:         k.PublicKeyBytes(),
		ExtendedPublicKey: xpub,
	}, nil
}

// PutAccount - store an account, replacing any account at the same path
//
// a label may only name one path
func PutAccount(account *Account) error {
	if nil == account {
		return fault.ErrNilParameter
	}
	path, err := canonicalPath(account.Path)
	if nil != err {
		return err
	}
	if len(account.Label) > maxLabelLength {
		return fault.ErrPayloadTooLong
	}

	if "" != account.Label {
		existing, err := Pool.Labels.Get([]byte(account.Label))
		if nil != err {
			return err
		}
		if nil != existing && path != string(existing) {
			return fault.ErrLabelExists
		}
	}

	// drop the label of any account being replaced
	previous, err := GetAccount(path)
	if nil == err && "" != previous.Label && previous.Label != account.Label {
		err = Pool.Labels.Delete([]byte(previous.Label))
		if nil != err {
			return err
		}
	} else if nil != err && fault.ErrNotFoundAccount != err {
		return err
	}

	record := account.pack()
	err = Pool.Accounts.Put([]byte(path), record)
	if nil != err {
		return err
	}
	if "" != account.Label {
		err = Pool.Labels.Put([]byte(account.Label), []byte(path))
		if nil != err {
			return err
		}
	}

	poolData.log.Debugf("put account: %s  address: %s", path, account.Address)
	return nil
}

// GetAccount - fetch the account stored at path
func GetAccount(path string) (*Account, error) {
	canonical, err := canonicalPath(path)
	if nil != err {
		return nil, err
	}
	record, err := Pool.Accounts.Get([]byte(canonical))
	if nil != err {
		return nil, err
	}
	if nil == record {
		return nil, fault.ErrNotFoundAccount
	}
	return unpackAccount(canonical, record)
}

// GetAccountByLabel - fetch the account a label refers to
func GetAccountByLabel(label string) (*Account, error) {
	path, err := Pool.Labels.Get([]byte(label))
	if nil != err {
		return nil, err
	}
	if nil == path {
		return nil, fault.ErrNotFoundAccount
	}
	return GetAccount(string(path))
}

// DeleteAccount - remove an account and its label
func DeleteAccount(path string) error {
	account, err := GetAccount(path)
	if nil != err {
		return err
	}
	if "" != account.Label {
		err = Pool.Labels.Delete([]byte(account.Label))
		if nil != err {
			return err
		}
	}
	return Pool.Accounts.Delete([]byte(account.Path))
}

// ListAccounts - every stored account in path text order
func ListAccounts() ([]*Account, error) {
	if nil == Pool.Accounts {
		return nil, fault.ErrNotInitialised
	}

	accounts := make([]*Account, 0, 16)
	err := Pool.Accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		account, err := unpackAccount(string(key), value)
		if nil != err {
			return err
		}
		accounts = append(accounts, account)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return accounts, nil
}

func canonicalPath(path string) (string, error) {
	indices, err := hdkey.ParsePath(path)
	if nil != err {
		return "", err
	}
	return hdkey.FormatPath(indices), nil
}

func (account *Account) pack() []byte {
	w := codec.NewWriter()
	defer w.Release()

	w.WriteVarBytes(account.Address.Bytes())
	w.WriteVarBytes(account.PublicKey)
	w.WriteVarString(account.ExtendedPublicKey)
	w.WriteVarString(account.Label)
	return w.Bytes()
}

func unpackAccount(path string, record []byte) (*Account, error) {
	r := codec.NewReaderBytes(record)

	addressBytes, err := r.ReadVarBytes(address.Length)
	if nil != err {
		return nil, err
	}
	addr, err := address.FromBytes(addressBytes)
	if nil != err {
		return nil, err
	}
	publicKey, err := r.ReadVarBytes(maxPublicKeyLength)
	if nil != err {
		return nil, err
	}
	xpub, err := r.ReadVarString(maxExtendedKeyLength)
	if nil != err {
		return nil, err
	}
	label, err := r.ReadVarString(maxLabelLength)
	if nil != err {
		return nil, err
	}
	if 0 != r.Remaining() {
		return nil, fault.ErrTrailingBytes
	}

	return &Account{
		Path:              path,
		Label:             label,
		Address:           addr,
		PublicKey:         publicKey,
		ExtendedPublicKey: xpub,
	}, nil
}
