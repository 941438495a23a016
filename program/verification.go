// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/keypair"
	"github.com/bitmark-inc/ontkit/opcode"
)

// FromPublicKey - single key verification program: PUSHBYTES33 key CHECKSIG
func FromPublicKey(publicKey []byte) ([]byte, error) {
	compressed, err := keypair.CompressPublicKey(publicKey)
	if nil != err {
		return nil, err
	}
	b := NewBuilder()
	b.EmitPushByteArray(compressed)
	b.Emit(opcode.CHECKSIG)
	return b.Bytes(), nil
}

// FromMultiPublicKeys - m of n verification program
//
// push m, sorted keys, push n, CHECKMULTISIG
func FromMultiPublicKeys(m int, publicKeys [][]byte) ([]byte, error) {
	n := len(publicKeys)
	if 0 == n {
		return nil, fault.ErrEmptyPublicKeys
	}
	if n > keypair.MaximumMultiSignatureCount {
		return nil, fault.ErrTooManyPublicKeys
	}
	if m < 1 || m > n {
		return nil, fault.ErrInvalidMultiSignature
	}

	sorted, err := keypair.SortPublicKeys(publicKeys)
	if nil != err {
		return nil, err
	}

	b := NewBuilder()
	b.EmitPushInteger(int64(m))
	for _, k := range sorted {
		b.EmitPushByteArray(k)
	}
	b.EmitPushInteger(int64(n))
	b.Emit(opcode.CHECKMULTISIG)
	return b.Bytes(), nil
}

// FromParams - invocation program pushing each signature in order
func FromParams(signatures [][]byte) []byte {
	b := NewBuilder()
	for _, s := range signatures {
		b.EmitPushByteArray(s)
	}
	return b.Bytes()
}

// ParseParams - recover the signatures pushed by FromParams
func ParseParams(program []byte) ([][]byte, error) {
	r := NewReader(program)
	signatures := make([][]byte, 0, 1)
	for r.Remaining() > 0 {
		s, err := r.ReadPushBytes()
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, s)
	}
	return signatures, nil
}

// ParsePublicKeys - recover threshold and keys from a verification program
func ParsePublicKeys(program []byte) (int, [][]byte, error) {
	r := NewReader(program)

	// single key
	if keypair.CompressedPublicKeySize+2 == len(program) && opcode.CHECKSIG == opcode.OpCode(program[len(program)-1]) {
		key, err := r.ReadPushBytes()
		if nil != err {
			return 0, nil, err
		}
		if _, err := keypair.ParsePublicKey(key); nil != err {
			return 0, nil, fault.ErrInvalidProgram
		}
		return 1, [][]byte{key}, nil
	}

	// multisignature: m key... n CHECKMULTISIG
	m, err := r.ReadInteger()
	if nil != err {
		return 0, nil, fault.ErrInvalidProgram
	}

	items := make([][]byte, 0, keypair.MaximumMultiSignatureCount+1)
	for {
		op, err := r.PeekOpCode()
		if nil != err {
			return 0, nil, fault.ErrInvalidProgram
		}
		if opcode.CHECKMULTISIG == op {
			r.ReadOpCode()
			break
		}
		if op.IsPushInteger() && opcode.PUSH0 != op {
			n, _ := r.ReadInteger()
			items = append(items, IntToVMBytes(n))
			continue
		}
		item, err := r.ReadPushBytes()
		if nil != err {
			return 0, nil, fault.ErrInvalidProgram
		}
		items = append(items, item)
	}
	if 0 != r.Remaining() || len(items) < 2 {
		return 0, nil, fault.ErrInvalidProgram
	}

	// last item is the key count
	n := VMBytesToInt(items[len(items)-1])
	keys := items[:len(items)-1]
	if !n.IsInt64() || n.Int64() != int64(len(keys)) || len(keys) > keypair.MaximumMultiSignatureCount {
		return 0, nil, fault.ErrInvalidProgram
	}
	if !m.IsInt64() || m.Int64() < 1 || m.Int64() > n.Int64() {
		return 0, nil, fault.ErrInvalidProgram
	}
	for _, k := range keys {
		if _, err := keypair.ParsePublicKey(k); nil != err {
			return 0, nil, fault.ErrInvalidProgram
		}
	}
	return int(m.Int64()), keys, nil
}
