// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/ontkit/address"
)

// TxType - type code for transactions
type TxType uint8

// the possible transaction types
const (
	Deploy = TxType(0xd0) // publish a contract
	Invoke = TxType(0xd1) // run code
)

// CurrentVersion - version byte of transactions built here
const CurrentVersion = 0

// byte sizes for various fields
const (
	maxCodeLength        = 1024 * 1024
	maxDeployFieldLength = 1024 * 1024
	maxProgramLength     = 4096
	maxPublicKeyLength   = 65
	maxSignatureLength   = 1024
	maxSignatures        = 16
	maxPublicKeys        = 16
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - the unpacked transaction structure
//
// attributes are always empty and so are not represented
type Transaction struct {
	Version  uint8           `json:"version"`
	TxType   TxType          `json:"txType"`
	Nonce    uint32          `json:"nonce"`
	GasPrice uint64          `json:"gasPrice"`
	GasLimit uint64          `json:"gasLimit"`
	Payer    address.Address `json:"payer"` // base58
	Payload  Payload         `json:"payload"`
	Sigs     []Sig           `json:"sigs"`
}

// Sig - signatures from a set of keys
//
// a single key has one public key and M = 1
type Sig struct {
	PublicKeys [][]byte `json:"publicKeys"`
	M          uint8    `json:"m"`
	SigData    [][]byte `json:"sigData"`
}

// Layout - how signature records are written after the unsigned part
type Layout int

// the supported signature layouts
const (
	// ProgramLayout - invocation and verification programs, as accepted by nodes
	ProgramLayout = Layout(iota)

	// CompactLayout - key list, threshold and signature list
	CompactLayout = Layout(iota)
)

// String - name of a transaction type
func (t TxType) String() string {
	switch t {
	case Deploy:
		return "Deploy"
	case Invoke:
		return "Invoke"
	default:
		return "*unknown*"
	}
}

// Type - transaction type of a packed record, zero if too short
func (record Packed) Type() TxType {
	if len(record) < 2 {
		return 0
	}
	return TxType(record[1])
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
