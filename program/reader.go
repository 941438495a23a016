// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"encoding/binary"
	"math/big"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/opcode"
)

// Reader - walk an opcode stream
type Reader struct {
	program []byte
	offset  int
}

// NewReader - read from the start of a program
func NewReader(program []byte) *Reader {
	return &Reader{
		program: program,
	}
}

// Remaining - bytes not yet read
func (r *Reader) Remaining() int {
	return len(r.program) - r.offset
}

// PeekOpCode - next opcode without consuming it
func (r *Reader) PeekOpCode() (opcode.OpCode, error) {
	if r.offset >= len(r.program) {
		return 0, fault.ErrShortRead
	}
	return opcode.OpCode(r.program[r.offset]), nil
}

// ReadOpCode - next opcode
func (r *Reader) ReadOpCode() (opcode.OpCode, error) {
	op, err := r.PeekOpCode()
	if nil != err {
		return 0, err
	}
	r.offset += 1
	return op, nil
}

// ReadBytes - n raw bytes
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fault.ErrShortRead
	}
	b := make([]byte, n)
	copy(b, r.program[r.offset:r.offset+n])
	r.offset += n
	return b, nil
}

// ReadPushBytes - the data of a byte array push
func (r *Reader) ReadPushBytes() ([]byte, error) {
	op, err := r.ReadOpCode()
	if nil != err {
		return nil, err
	}

	n := 0
	switch {
	case opcode.PUSH0 == op:
		return []byte{}, nil

	case op.IsPushBytes():
		n = int(op)

	case opcode.PUSHDATA1 == op:
		b, err := r.ReadBytes(1)
		if nil != err {
			return nil, err
		}
		n = int(b[0])

	case opcode.PUSHDATA2 == op:
		b, err := r.ReadBytes(2)
		if nil != err {
			return nil, err
		}
		n = int(binary.LittleEndian.Uint16(b))

	case opcode.PUSHDATA4 == op:
		b, err := r.ReadBytes(4)
		if nil != err {
			return nil, err
		}
		l := binary.LittleEndian.Uint32(b)
		if uint64(l) > uint64(r.Remaining()) {
			return nil, fault.ErrShortRead
		}
		n = int(l)

	default:
		return nil, fault.ErrInvalidProgram
	}
	return r.ReadBytes(n)
}

// ReadInteger - a pushed integer in any of its forms
func (r *Reader) ReadInteger() (*big.Int, error) {
	op, err := r.PeekOpCode()
	if nil != err {
		return nil, err
	}

	switch {
	case opcode.PUSHM1 == op:
		r.offset += 1
		return big.NewInt(-1), nil

	case op >= opcode.PUSH1 && op <= opcode.PUSH16:
		r.offset += 1
		return big.NewInt(int64(op-opcode.PUSH1) + 1), nil

	case opcode.PUSH0 == op || op.IsPushData():
		b, err := r.ReadPushBytes()
		if nil != err {
			return nil, err
		}
		return VMBytesToInt(b), nil
	}
	return nil, fault.ErrInvalidProgram
}

// OpCodeToInt - decode a program holding exactly one integer push
func OpCodeToInt(program []byte) (*big.Int, error) {
	r := NewReader(program)
	value, err := r.ReadInteger()
	if nil != err {
		return nil, err
	}
	if 0 != r.Remaining() {
		return nil, fault.ErrInvalidProgram
	}
	return value, nil
}
