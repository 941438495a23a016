// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/transactionrecord"
)

type decodedSig struct {
	Address    string   `json:"address"`
	M          uint8    `json:"m"`
	PublicKeys []string `json:"publicKeys"`
	Signatures []string `json:"signatures"`
}

type decodedTransaction struct {
	TxId     string       `json:"txId"`
	Version  uint8        `json:"version"`
	Type     string       `json:"type"`
	Nonce    uint32       `json:"nonce"`
	GasPrice uint64       `json:"gasPrice"`
	GasLimit uint64       `json:"gasLimit"`
	Payer    string       `json:"payer"`
	Code     string       `json:"code"`
	Deploy   interface{}  `json:"deploy,omitempty"`
	Sigs     []decodedSig `json:"sigs"`
	Verified bool         `json:"verified"`
	Error    string       `json:"error,omitempty"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := strings.TrimSpace(c.String("transaction"))
	if "" == s {
		return fault.ErrMissingParameters
	}

	layout := transactionrecord.ProgramLayout
	if c.Bool("compact") {
		layout = transactionrecord.CompactLayout
	}

	result, err := decodeTransaction(s, layout)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

func decodeTransaction(s string, layout transactionrecord.Layout) (*decodedTransaction, error) {
	var packed transactionrecord.Packed
	if err := packed.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}
	tx, err := packed.UnpackWithLayout(layout)
	if nil != err {
		return nil, err
	}
	txId, err := tx.TxId()
	if nil != err {
		return nil, err
	}

	result := &decodedTransaction{
		TxId:     txId,
		Version:  tx.Version,
		Type:     tx.TxType.String(),
		Nonce:    tx.Nonce,
		GasPrice: tx.GasPrice,
		GasLimit: tx.GasLimit,
		Payer:    tx.Payer.String(),
		Sigs:     make([]decodedSig, 0, len(tx.Sigs)),
	}

	switch payload := tx.Payload.(type) {
	case *transactionrecord.InvokeCode:
		result.Code = hex.EncodeToString(payload.Code)
	case *transactionrecord.DeployCode:
		result.Code = hex.EncodeToString(payload.Code)
		result.Deploy = struct {
			NeedStorage bool   `json:"needStorage"`
			Name        string `json:"name"`
			Version     string `json:"version"`
			Author      string `json:"author"`
			Email       string `json:"email"`
			Description string `json:"description"`
		}{
			NeedStorage: payload.NeedStorage,
			Name:        payload.Name,
			Version:     payload.Version,
			Author:      payload.Author,
			Email:       payload.Email,
			Description: payload.Description,
		}
	}

	for i := range tx.Sigs {
		sig := &tx.Sigs[i]
		a, err := sig.Address()
		if nil != err {
			return nil, err
		}
		result.Sigs = append(result.Sigs, decodedSig{
			Address:    a.String(),
			M:          sig.M,
			PublicKeys: hexList(sig.PublicKeys),
			Signatures: hexList(sig.SigData),
		})
	}

	if err := tx.VerifySignatures(); nil != err {
		result.Error = err.Error()
	} else {
		result.Verified = true
	}
	return result, nil
}

func hexList(items [][]byte) []string {
	result := make([]string, len(items))
	for i, b := range items {
		result[i] = hex.EncodeToString(b)
	}
	return result
}
