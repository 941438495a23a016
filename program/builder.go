// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/ontkit/codec"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/opcode"
)

// ContractAddressLength - bytes in an APPCALL target
const ContractAddressLength = 20

// Builder - accumulates an opcode stream
//
// a builder belongs to a single goroutine; it is not safe for concurrent use
type Builder struct {
	w *codec.Writer
}

// NewBuilder - an empty program
func NewBuilder() *Builder {
	return &Builder{
		w: codec.NewWriter(),
	}
}

// Bytes - copy of the program so far
func (b *Builder) Bytes() []byte {
	return b.w.Bytes()
}

// Len - bytes emitted so far
func (b *Builder) Len() int {
	return b.w.Len()
}

// Clear - discard everything for reuse
func (b *Builder) Clear() {
	b.w.Reset()
}

// Emit - a single opcode
func (b *Builder) Emit(op opcode.OpCode) *Builder {
	b.w.WriteUint8(byte(op))
	return b
}

// EmitPushBool - PUSHT or PUSHF
func (b *Builder) EmitPushBool(value bool) *Builder {
	if value {
		return b.Emit(opcode.PUSHT)
	}
	return b.Emit(opcode.PUSHF)
}

// EmitPushInteger - small values have their own opcodes, others are
// pushed as VM integer bytes
func (b *Builder) EmitPushInteger(value int64) *Builder {
	switch {
	case -1 == value:
		return b.Emit(opcode.PUSHM1)
	case 0 == value:
		return b.Emit(opcode.PUSH0)
	case value > 0 && value < 16:
		return b.Emit(opcode.PUSH1 + opcode.OpCode(value-1))
	}
	return b.EmitPushByteArray(IntToVMBytes(big.NewInt(value)))
}

// EmitPushBigInteger - as EmitPushInteger for arbitrary precision values
func (b *Builder) EmitPushBigInteger(value *big.Int) *Builder {
	if value.IsInt64() {
		return b.EmitPushInteger(value.Int64())
	}
	return b.EmitPushByteArray(IntToVMBytes(value))
}

// EmitPushByteArray - length selects the push opcode
//
//   length < 0x4c:     PUSHBYTES(length) | data
//   length < 0x100:    PUSHDATA1 | uint8 | data
//   length < 0x10000:  PUSHDATA2 | uint16 LE | data
//   otherwise:         PUSHDATA4 | uint32 LE | data
func (b *Builder) EmitPushByteArray(data []byte) *Builder {
	l := len(data)
	switch {
	case l < int(opcode.PUSHDATA1):
		b.w.WriteUint8(byte(l))
	case l < 0x100:
		b.Emit(opcode.PUSHDATA1)
		b.w.WriteUint8(byte(l))
	case l < 0x10000:
		b.Emit(opcode.PUSHDATA2)
		b.w.WriteUint16(uint16(l), binary.LittleEndian)
	default:
		b.Emit(opcode.PUSHDATA4)
		b.w.WriteUint32(uint32(l), binary.LittleEndian)
	}
	b.w.WriteBytes(data)
	return b
}

// EmitPushString - UTF-8 bytes of s
func (b *Builder) EmitPushString(s string) *Builder {
	return b.EmitPushByteArray([]byte(s))
}

// EmitSysCall - SYSCALL followed by the service name
func (b *Builder) EmitSysCall(name string) *Builder {
	b.Emit(opcode.SYSCALL)
	return b.EmitPushString(name)
}

// EmitAppCall - APPCALL followed by the 20 byte contract address
func (b *Builder) EmitAppCall(contract []byte) error {
	if ContractAddressLength != len(contract) {
		return fault.ErrInvalidAddressLength
	}
	b.Emit(opcode.APPCALL)
	b.w.WriteBytes(contract)
	return nil
}

// EmitPushParam - recursively push a structured parameter
func (b *Builder) EmitPushParam(param Param) error {
	switch p := param.(type) {
	case Int:
		b.EmitPushInteger(int64(p))

	case BigInt:
		if nil == p.Value {
			return fault.ErrNilParameter
		}
		b.EmitPushBigInteger(p.Value)

	case Bool:
		b.EmitPushBool(bool(p))

	case Bytes:
		b.EmitPushByteArray(p)

	case String:
		b.EmitPushString(string(p))

	case List:
		// PACK pops the top item into index 0, so push the last element first
		for i := len(p) - 1; i >= 0; i -= 1 {
			if err := b.EmitPushParam(p[i]); nil != err {
				return err
			}
		}
		b.EmitPushInteger(int64(len(p)))
		b.Emit(opcode.PACK)

	case Map:
		b.EmitPushInteger(0)
		b.Emit(opcode.NEWSTRUCT)
		b.Emit(opcode.TOALTSTACK)
		for _, field := range p {
			if err := b.EmitPushParam(field.Value); nil != err {
				return err
			}
			b.Emit(opcode.DUPFROMALTSTACK)
			b.Emit(opcode.SWAP)
			b.Emit(opcode.APPEND)
		}
		b.Emit(opcode.FROMALTSTACK)

	case nil:
		return fault.ErrNilParameter

	default:
		return fault.ErrUnknownParameterType
	}
	return nil
}
