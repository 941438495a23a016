// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ontkit/codec"
	"github.com/bitmark-inc/ontkit/fault"
)

// Payload - type specific part of a transaction
//
// only *InvokeCode and *DeployCode implement it, which is also what Unpack
// returns
type Payload interface {
	txType() TxType
	pack(w *codec.Writer) error
}

// InvokeCode - program to run
type InvokeCode struct {
	Code []byte `json:"code"`
}

// DeployCode - contract to publish
type DeployCode struct {
	Code        []byte `json:"code"`
	NeedStorage bool   `json:"needStorage"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

func (*InvokeCode) txType() TxType { return Invoke }
func (*DeployCode) txType() TxType { return Deploy }

func (p *InvokeCode) pack(w *codec.Writer) error {
	if nil == p {
		return fault.ErrNilParameter
	}
	if len(p.Code) > maxCodeLength {
		return fault.ErrPayloadTooLong
	}
	w.WriteVarBytes(p.Code)
	return nil
}

func (p *DeployCode) pack(w *codec.Writer) error {
	if nil == p {
		return fault.ErrNilParameter
	}
	if len(p.Code) > maxCodeLength {
		return fault.ErrPayloadTooLong
	}
	for _, s := range []string{p.Name, p.Version, p.Author, p.Email, p.Description} {
		if len(s) > maxDeployFieldLength {
			return fault.ErrPayloadTooLong
		}
	}
	w.WriteVarBytes(p.Code)
	w.WriteBool(p.NeedStorage)
	w.WriteVarString(p.Name)
	w.WriteVarString(p.Version)
	w.WriteVarString(p.Author)
	w.WriteVarString(p.Email)
	w.WriteVarString(p.Description)
	return nil
}

func unpackPayload(t TxType, r *codec.Reader) (Payload, error) {
	switch t {
	case Invoke:
		code, err := r.ReadVarBytes(maxCodeLength)
		if nil != err {
			return nil, err
		}
		return &InvokeCode{Code: code}, nil

	case Deploy:
		p := &DeployCode{}
		var err error
		if p.Code, err = r.ReadVarBytes(maxCodeLength); nil != err {
			return nil, err
		}
		if p.NeedStorage, err = r.ReadBool(); nil != err {
			return nil, err
		}
		for _, s := range []*string{&p.Name, &p.Version, &p.Author, &p.Email, &p.Description} {
			if *s, err = r.ReadVarString(maxDeployFieldLength); nil != err {
				return nil, err
			}
		}
		return p, nil

	default:
		return nil, fault.ErrUnknownTxType
	}
}
