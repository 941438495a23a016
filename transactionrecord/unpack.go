// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/codec"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
)

// Unpack - turn a node wire format record into a transaction
//
// the whole record must be consumed; any error means nothing was decoded
func (record Packed) Unpack() (*Transaction, error) {
	return record.UnpackWithLayout(ProgramLayout)
}

// UnpackWithLayout - as Unpack with signatures in the given layout
func (record Packed) UnpackWithLayout(layout Layout) (*Transaction, error) {
	if ProgramLayout != layout && CompactLayout != layout {
		return nil, fault.ErrInvalidLayout
	}

	r := codec.NewReaderBytes(record)
	tx, err := unpackUnsigned(r)
	if nil != err {
		return nil, err
	}

	count, err := r.ReadVarInt(maxSignatures)
	if nil != err {
		return nil, err
	}

	if count > 0 {
		tx.Sigs = make([]Sig, count)
	}
	for i := range tx.Sigs {
		var sig *Sig
		if ProgramLayout == layout {
			sig, err = unpackProgramSig(r)
		} else {
			sig, err = unpackCompactSig(r)
		}
		if nil != err {
			return nil, err
		}
		tx.Sigs[i] = *sig
	}

	if 0 != r.Remaining() {
		return nil, fault.ErrTrailingBytes
	}
	return tx, nil
}

func unpackUnsigned(r *codec.Reader) (*Transaction, error) {
	tx := &Transaction{}
	var err error

	if tx.Version, err = r.ReadUint8(); nil != err {
		return nil, err
	}

	t, err := r.ReadUint8()
	if nil != err {
		return nil, err
	}
	tx.TxType = TxType(t)
	if Invoke != tx.TxType && Deploy != tx.TxType {
		return nil, fault.ErrUnknownTxType
	}

	if tx.Nonce, err = r.ReadUint32(binary.LittleEndian); nil != err {
		return nil, err
	}
	if tx.GasPrice, err = r.ReadUint64(binary.LittleEndian); nil != err {
		return nil, err
	}
	if tx.GasLimit, err = r.ReadUint64(binary.LittleEndian); nil != err {
		return nil, err
	}

	payer, err := r.ReadBytes(address.Length)
	if nil != err {
		return nil, err
	}
	copy(tx.Payer[:], payer)

	if tx.Payload, err = unpackPayload(tx.TxType, r); nil != err {
		return nil, err
	}

	attributes, err := r.ReadVarInt(maxSignatures)
	if nil != err {
		return nil, err
	}
	if 0 != attributes {
		return nil, fault.ErrAttributesNotEmpty
	}
	return tx, nil
}

func unpackProgramSig(r *codec.Reader) (*Sig, error) {
	invocation, err := r.ReadVarBytes(maxProgramLength)
	if nil != err {
		return nil, err
	}
	verification, err := r.ReadVarBytes(maxProgramLength)
	if nil != err {
		return nil, err
	}

	sigData, err := program.ParseParams(invocation)
	if nil != err {
		return nil, fault.ErrInvalidProgram
	}
	m, keys, err := program.ParsePublicKeys(verification)
	if nil != err {
		return nil, err
	}

	sig := &Sig{
		PublicKeys: keys,
		M:          uint8(m),
		SigData:    sigData,
	}
	if err := sig.validate(); nil != err {
		return nil, fault.ErrInvalidProgram
	}
	return sig, nil
}

func unpackCompactSig(r *codec.Reader) (*Sig, error) {
	keyCount, err := r.ReadVarInt(maxPublicKeys)
	if nil != err {
		return nil, err
	}
	keys := make([][]byte, keyCount)
	for i := range keys {
		if keys[i], err = r.ReadVarBytes(maxPublicKeyLength); nil != err {
			return nil, err
		}
	}

	m, err := r.ReadUint8()
	if nil != err {
		return nil, err
	}

	sigCount, err := r.ReadVarInt(maxPublicKeys)
	if nil != err {
		return nil, err
	}
	sigData := make([][]byte, sigCount)
	for i := range sigData {
		if sigData[i], err = r.ReadVarBytes(maxSignatureLength); nil != err {
			return nil, err
		}
	}

	sig := &Sig{
		PublicKeys: keys,
		M:          m,
		SigData:    sigData,
	}
	if err := sig.validate(); nil != err {
		return nil, fault.ErrInvalidProgram
	}
	return sig, nil
}
