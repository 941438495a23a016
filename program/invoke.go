// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/ontkit/fault"
)

// NativeInvokeService - system call that dispatches to a native contract
const NativeInvokeService = "Ontology.Native.Invoke"

// NativeInvokeCode - program calling method of a native contract
//
// params, method, contract address, version, SYSCALL service
func NativeInvokeCode(contract []byte, version byte, method string, params Param) ([]byte, error) {
	if ContractAddressLength != len(contract) {
		return nil, fault.ErrInvalidAddressLength
	}

	b := NewBuilder()
	if err := b.EmitPushParam(params); nil != err {
		return nil, err
	}
	b.EmitPushString(method)
	b.EmitPushByteArray(contract)
	b.EmitPushInteger(int64(version))
	b.EmitSysCall(NativeInvokeService)
	return b.Bytes(), nil
}

// NeoVMInvokeCode - program calling a deployed NeoVM contract
//
// each top level param is pushed last first without an enclosing PACK, so
// the contract entry point finds params[0] on top of the stack, then
// APPCALL contract
func NeoVMInvokeCode(contract []byte, params List) ([]byte, error) {
	b := NewBuilder()
	for i := len(params) - 1; i >= 0; i -= 1 {
		if err := b.EmitPushParam(params[i]); nil != err {
			return nil, err
		}
	}
	if err := b.EmitAppCall(contract); nil != err {
		return nil, err
	}
	return b.Bytes(), nil
}

// NeoVMInvokeFunction - NeoVMInvokeCode with the usual method then args list parameters
func NeoVMInvokeFunction(contract []byte, method string, args ...Param) ([]byte, error) {
	return NeoVMInvokeCode(contract, List{String(method), List(args)})
}
