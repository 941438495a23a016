// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/ontkit/address"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
)

// version of the native token contracts
const nativeContractVersion = 0

// native token methods
const (
	methodTransfer     = "transfer"
	methodApprove      = "approve"
	methodTransferFrom = "transferFrom"
)

// NewInvokeTransaction - unsigned transaction running code, with a random nonce
func NewInvokeTransaction(gasPrice uint64, gasLimit uint64, payer address.Address, code []byte) (*Transaction, error) {
	nonce, err := randomNonce()
	if nil != err {
		return nil, err
	}
	return &Transaction{
		Version:  CurrentVersion,
		TxType:   Invoke,
		Nonce:    nonce,
		GasPrice: gasPrice,
		GasLimit: gasLimit,
		Payer:    payer,
		Payload:  &InvokeCode{Code: code},
	}, nil
}

// NewTransferTransaction - move amount of a native token; from pays the fee
func NewTransferTransaction(gasPrice uint64, gasLimit uint64, token address.Address, from address.Address, to address.Address, amount uint64) (*Transaction, error) {
	state := program.Map{
		{Name: "from", Value: program.Bytes(from.Bytes())},
		{Name: "to", Value: program.Bytes(to.Bytes())},
		{Name: "amount", Value: bigAmount(amount)},
	}
	params := program.List{state}
	return nativeTransaction(gasPrice, gasLimit, token, methodTransfer, params, from)
}

// NewApproveTransaction - allow spender to transfer up to amount from owner
func NewApproveTransaction(gasPrice uint64, gasLimit uint64, token address.Address, owner address.Address, spender address.Address, amount uint64) (*Transaction, error) {
	state := program.Map{
		{Name: "from", Value: program.Bytes(owner.Bytes())},
		{Name: "to", Value: program.Bytes(spender.Bytes())},
		{Name: "amount", Value: bigAmount(amount)},
	}
	return nativeTransaction(gasPrice, gasLimit, token, methodApprove, state, owner)
}

// NewTransferFromTransaction - spender moves an approved amount from one account to another
func NewTransferFromTransaction(gasPrice uint64, gasLimit uint64, token address.Address, spender address.Address, from address.Address, to address.Address, amount uint64) (*Transaction, error) {
	state := program.Map{
		{Name: "sender", Value: program.Bytes(spender.Bytes())},
		{Name: "from", Value: program.Bytes(from.Bytes())},
		{Name: "to", Value: program.Bytes(to.Bytes())},
		{Name: "amount", Value: bigAmount(amount)},
	}
	return nativeTransaction(gasPrice, gasLimit, token, methodTransferFrom, state, spender)
}

// NewWithdrawONGTransaction - claim ONG accrued by ONT held in account
func NewWithdrawONGTransaction(gasPrice uint64, gasLimit uint64, account address.Address, receiver address.Address, amount uint64) (*Transaction, error) {
	return NewTransferFromTransaction(gasPrice, gasLimit, address.ONG, account, address.ONT, receiver, amount)
}

func nativeTransaction(gasPrice uint64, gasLimit uint64, contract address.Address, method string, params program.Param, payer address.Address) (*Transaction, error) {
	if contract.IsZero() || payer.IsZero() {
		return nil, fault.ErrMissingParameters
	}
	code, err := program.NativeInvokeCode(contract.Bytes(), nativeContractVersion, method, params)
	if nil != err {
		return nil, err
	}
	return NewInvokeTransaction(gasPrice, gasLimit, payer, code)
}

func bigAmount(amount uint64) program.Param {
	return program.BigInt{Value: new(big.Int).SetUint64(amount)}
}

func randomNonce() (uint32, error) {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
