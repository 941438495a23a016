// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/hdkey"
	"github.com/bitmark-inc/ontkit/transactionrecord"
)

type signedTransaction struct {
	TxId        string                   `json:"txId"`
	From        string                   `json:"from"`
	To          string                   `json:"to"`
	Token       string                   `json:"token"`
	Amount      uint64                   `json:"amount"`
	Transaction transactionrecord.Packed `json:"transaction"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var token address.Address
	switch strings.ToLower(c.String("token")) {
	case "ont":
		token = address.ONT
	case "ong":
		token = address.ONG
	default:
		return ErrInvalidToken
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrZeroAmount
	}

	to, err := parseAddress(c.String("receiver"))
	if nil != err {
		return err
	}

	chain, err := chainFromMnemonic(c.String("mnemonic"), c.String("passphrase"))
	if nil != err {
		return err
	}
	k, err := chain.Derive(pathOrDefault(m, c.String("path")))
	if nil != err {
		return err
	}
	privateKey, ok := k.(*hdkey.PrivateKey)
	if !ok {
		return ErrNotPrivateKey
	}

	gasPrice := c.Uint64("gas-price")
	if 0 == gasPrice {
		gasPrice = m.config.GasPrice
	}
	gasLimit := c.Uint64("gas-limit")
	if 0 == gasLimit {
		gasLimit = m.config.GasLimit
	}

	layout := transactionrecord.ProgramLayout
	if c.Bool("compact") {
		layout = transactionrecord.CompactLayout
	}

	result, err := signTransfer(privateKey, token, to, amount, gasPrice, gasLimit, layout)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "gas price: %d  gas limit: %d\n", gasPrice, gasLimit)
	}
	m.log.Infof("transfer: %s  from: %s  to: %s  amount: %d", result.TxId, result.From, result.To, amount)

	return printJson(m.w, result)
}

// sender pays the fee and signs
func signTransfer(k *hdkey.PrivateKey, token address.Address, to address.Address, amount uint64, gasPrice uint64, gasLimit uint64, layout transactionrecord.Layout) (*signedTransaction, error) {
	from, err := k.Address()
	if nil != err {
		return nil, err
	}

	tx, err := transactionrecord.NewTransferTransaction(gasPrice, gasLimit, token, from, to, amount)
	if nil != err {
		return nil, err
	}

	signer, err := k.KeyPair()
	if nil != err {
		return nil, err
	}
	if err := tx.Sign(signer); nil != err {
		return nil, err
	}
	if err := tx.VerifySignatures(); nil != err {
		fault.Criticalf("signed transfer does not verify: %s", err)
		return nil, err
	}

	packed, err := tx.PackWithLayout(layout)
	if nil != err {
		return nil, err
	}
	txId, err := tx.TxId()
	if nil != err {
		return nil, err
	}

	tokenName := "ont"
	if address.ONG == token {
		tokenName = "ong"
	}

	return &signedTransaction{
		TxId:        txId,
		From:        from.String(),
		To:          to.String(),
		Token:       tokenName,
		Amount:      amount,
		Transaction: packed,
	}, nil
}
