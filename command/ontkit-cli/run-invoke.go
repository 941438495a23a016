// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
	"github.com/bitmark-inc/ontkit/transactionrecord"
)

func runInvoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	method := c.String("method")
	if "" == method {
		return fault.ErrMissingParameters
	}
	contract, err := parseAddress(c.String("contract"))
	if nil != err {
		return err
	}
	args, err := parseParams(c.String("params"))
	if nil != err {
		return err
	}

	code, err := program.NeoVMInvokeFunction(contract.Bytes(), method, args...)
	if nil != err {
		return err
	}

	result := struct {
		Contract    string                   `json:"contract"`
		Code        string                   `json:"code"`
		TxId        string                   `json:"txId,omitempty"`
		Transaction transactionrecord.Packed `json:"transaction,omitempty"`
	}{
		Contract: contract.HexReverse(),
		Code:     hex.EncodeToString(code),
	}

	if payer := c.String("payer"); "" != payer {
		a, err := parseAddress(payer)
		if nil != err {
			return err
		}
		tx, err := transactionrecord.NewInvokeTransaction(m.config.GasPrice, m.config.GasLimit, a, code)
		if nil != err {
			return err
		}
		packed, err := tx.Pack()
		if nil != err {
			return err
		}
		txId, err := tx.TxId()
		if nil != err {
			return err
		}
		result.TxId = txId
		result.Transaction = packed
	}

	m.log.Debugf("invoke: %s  method: %s  params: %d", result.Contract, method, len(args))
	return printJson(m.w, result)
}
