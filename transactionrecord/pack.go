// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/ontkit/codec"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
)

// PackUnsigned - the part of a transaction that is hashed and signed
//
// version, type, nonce, gas price, gas limit, payer, payload and an
// empty attribute list
func (tx *Transaction) PackUnsigned() (Packed, error) {
	w := codec.NewWriter()
	defer w.Release()

	err := tx.packUnsigned(w)
	if nil != err {
		return nil, err
	}
	return w.Bytes(), nil
}

// Pack - the complete transaction in the node wire format
func (tx *Transaction) Pack() (Packed, error) {
	return tx.PackWithLayout(ProgramLayout)
}

// PackWithLayout - the complete transaction with signatures in the given layout
func (tx *Transaction) PackWithLayout(layout Layout) (Packed, error) {
	if len(tx.Sigs) > maxSignatures {
		return nil, fault.ErrTooManySignatures
	}

	w := codec.NewWriter()
	defer w.Release()

	err := tx.packUnsigned(w)
	if nil != err {
		return nil, err
	}

	w.WriteVarInt(uint64(len(tx.Sigs)))
	for i := range tx.Sigs {
		err := tx.Sigs[i].pack(w, layout)
		if nil != err {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func (tx *Transaction) packUnsigned(w *codec.Writer) error {
	if nil == tx.Payload {
		return fault.ErrNilParameter
	}
	if tx.Payload.txType() != tx.TxType {
		return fault.ErrPayloadMismatch
	}

	w.WriteUint8(tx.Version)
	w.WriteUint8(uint8(tx.TxType))
	w.WriteUint32(tx.Nonce, binary.LittleEndian)
	w.WriteUint64(tx.GasPrice, binary.LittleEndian)
	w.WriteUint64(tx.GasLimit, binary.LittleEndian)
	w.WriteBytes(tx.Payer[:])

	err := tx.Payload.pack(w)
	if nil != err {
		return err
	}

	// attributes
	w.WriteVarInt(0)
	return nil
}

// check the signature invariants
func (sig *Sig) validate() error {
	n := len(sig.PublicKeys)
	switch {
	case 0 == n:
		return fault.ErrEmptyPublicKeys
	case n > maxPublicKeys:
		return fault.ErrTooManyPublicKeys
	case 0 == sig.M || int(sig.M) > n:
		return fault.ErrInvalidMultiSignature
	case len(sig.SigData) > maxPublicKeys:
		return fault.ErrTooManySignatures
	}
	for _, s := range sig.SigData {
		if len(s) > maxSignatureLength {
			return fault.ErrSignatureTooLong
		}
	}
	return nil
}

// verification program for the signing keys
func (sig *Sig) program() ([]byte, error) {
	if 1 == len(sig.PublicKeys) {
		return program.FromPublicKey(sig.PublicKeys[0])
	}
	return program.FromMultiPublicKeys(int(sig.M), sig.PublicKeys)
}

func (sig *Sig) pack(w *codec.Writer, layout Layout) error {
	err := sig.validate()
	if nil != err {
		return err
	}

	switch layout {
	case ProgramLayout:
		verification, err := sig.program()
		if nil != err {
			return err
		}
		w.WriteVarBytes(program.FromParams(sig.SigData))
		w.WriteVarBytes(verification)

	case CompactLayout:
		w.WriteVarInt(uint64(len(sig.PublicKeys)))
		for _, k := range sig.PublicKeys {
			w.WriteVarBytes(k)
		}
		w.WriteUint8(sig.M)
		w.WriteVarInt(uint64(len(sig.SigData)))
		for _, s := range sig.SigData {
			w.WriteVarBytes(s)
		}

	default:
		return fault.ErrInvalidLayout
	}
	return nil
}
