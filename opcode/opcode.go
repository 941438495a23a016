// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package opcode - instruction set of the NeoVM stack machine
//
// values are a fixed external contract with the ledger node and must
// never be renumbered
package opcode

import (
	"fmt"
)

// OpCode - a single NeoVM instruction byte
type OpCode byte

// constants
const (
	PUSH0       = OpCode(0x00) // an empty array of bytes is pushed onto the stack
	PUSHF       = PUSH0
	PUSHBYTES1  = OpCode(0x01) // 0x01-0x4B the next opcode bytes is data to be pushed onto the stack
	PUSHBYTES20 = OpCode(0x14)
	PUSHBYTES33 = OpCode(0x21)
	PUSHBYTES64 = OpCode(0x40)
	PUSHBYTES75 = OpCode(0x4B)
	PUSHDATA1   = OpCode(0x4C) // the next byte contains the number of bytes to be pushed
	PUSHDATA2   = OpCode(0x4D) // the next two bytes contain the number of bytes to be pushed
	PUSHDATA4   = OpCode(0x4E) // the next four bytes contain the number of bytes to be pushed
	PUSHM1      = OpCode(0x4F) // the number -1 is pushed onto the stack
	PUSH1       = OpCode(0x51) // the number 1 is pushed onto the stack
	PUSHT       = PUSH1
	PUSH2       = OpCode(0x52)
	PUSH3       = OpCode(0x53)
	PUSH4       = OpCode(0x54)
	PUSH5       = OpCode(0x55)
	PUSH6       = OpCode(0x56)
	PUSH7       = OpCode(0x57)
	PUSH8       = OpCode(0x58)
	PUSH9       = OpCode(0x59)
	PUSH10      = OpCode(0x5A)
	PUSH11      = OpCode(0x5B)
	PUSH12      = OpCode(0x5C)
	PUSH13      = OpCode(0x5D)
	PUSH14      = OpCode(0x5E)
	PUSH15      = OpCode(0x5F)
	PUSH16      = OpCode(0x60)

	// flow control
	NOP      = OpCode(0x61)
	JMP      = OpCode(0x62)
	JMPIF    = OpCode(0x63)
	JMPIFNOT = OpCode(0x64)
	CALL     = OpCode(0x65)
	RET      = OpCode(0x66)
	APPCALL  = OpCode(0x67)
	SYSCALL  = OpCode(0x68)
	TAILCALL = OpCode(0x69)

	// stack
	DUPFROMALTSTACK = OpCode(0x6A)
	TOALTSTACK      = OpCode(0x6B) // puts the input onto the top of the alt stack, removes it from the main stack
	FROMALTSTACK    = OpCode(0x6C) // puts the input onto the top of the main stack, removes it from the alt stack
	XDROP           = OpCode(0x6D)
	XSWAP           = OpCode(0x72)
	XTUCK           = OpCode(0x73)
	DEPTH           = OpCode(0x74)
	DROP            = OpCode(0x75)
	DUP             = OpCode(0x76)
	NIP             = OpCode(0x77)
	OVER            = OpCode(0x78)
	PICK            = OpCode(0x79)
	ROLL            = OpCode(0x7A)
	ROT             = OpCode(0x7B)
	SWAP            = OpCode(0x7C)
	TUCK            = OpCode(0x7D)

	// splice
	CAT    = OpCode(0x7E)
	SUBSTR = OpCode(0x7F)
	LEFT   = OpCode(0x80)
	RIGHT  = OpCode(0x81)
	SIZE   = OpCode(0x82)

	// bitwise logic
	INVERT = OpCode(0x83)
	AND    = OpCode(0x84)
	OR     = OpCode(0x85)
	XOR    = OpCode(0x86)
	EQUAL  = OpCode(0x87)

	// arithmetic
	INC         = OpCode(0x8B)
	DEC         = OpCode(0x8C)
	SIGN        = OpCode(0x8D)
	NEGATE      = OpCode(0x8F)
	ABS         = OpCode(0x90)
	NOT         = OpCode(0x91)
	NZ          = OpCode(0x92)
	ADD         = OpCode(0x93)
	SUB         = OpCode(0x94)
	MUL         = OpCode(0x95)
	DIV         = OpCode(0x96)
	MOD         = OpCode(0x97)
	SHL         = OpCode(0x98)
	SHR         = OpCode(0x99)
	BOOLAND     = OpCode(0x9A)
	BOOLOR      = OpCode(0x9B)
	NUMEQUAL    = OpCode(0x9C)
	NUMNOTEQUAL = OpCode(0x9E)
	LT          = OpCode(0x9F)
	GT          = OpCode(0xA0)
	LTE         = OpCode(0xA1)
	GTE         = OpCode(0xA2)
	MIN         = OpCode(0xA3)
	MAX         = OpCode(0xA4)
	WITHIN      = OpCode(0xA5)

	// crypto
	SHA1          = OpCode(0xA7)
	SHA256        = OpCode(0xA8)
	HASH160       = OpCode(0xA9)
	HASH256       = OpCode(0xAA)
	CHECKSIG      = OpCode(0xAC)
	VERIFY        = OpCode(0xAD)
	CHECKMULTISIG = OpCode(0xAE)

	// array
	ARRAYSIZE = OpCode(0xC0)
	PACK      = OpCode(0xC1)
	UNPACK    = OpCode(0xC2)
	PICKITEM  = OpCode(0xC3)
	SETITEM   = OpCode(0xC4)
	NEWARRAY  = OpCode(0xC5)
	NEWSTRUCT = OpCode(0xC6)
	NEWMAP    = OpCode(0xC7)
	APPEND    = OpCode(0xC8)
	REVERSE   = OpCode(0xC9)
	REMOVE    = OpCode(0xCA)
	HASKEY    = OpCode(0xCB)
	KEYS      = OpCode(0xCC)
	VALUES    = OpCode(0xCD)

	// exceptions
	THROW      = OpCode(0xF0)
	THROWIFNOT = OpCode(0xF1)
)

var names = map[OpCode]string{
	PUSH0:           "PUSH0",
	PUSHDATA1:       "PUSHDATA1",
	PUSHDATA2:       "PUSHDATA2",
	PUSHDATA4:       "PUSHDATA4",
	PUSHM1:          "PUSHM1",
	NOP:             "NOP",
	JMP:             "JMP",
	JMPIF:           "JMPIF",
	JMPIFNOT:        "JMPIFNOT",
	CALL:            "CALL",
	RET:             "RET",
	APPCALL:         "APPCALL",
	SYSCALL:         "SYSCALL",
	TAILCALL:        "TAILCALL",
	DUPFROMALTSTACK: "DUPFROMALTSTACK",
	TOALTSTACK:      "TOALTSTACK",
	FROMALTSTACK:    "FROMALTSTACK",
	XDROP:           "XDROP",
	XSWAP:           "XSWAP",
	XTUCK:           "XTUCK",
	DEPTH:           "DEPTH",
	DROP:            "DROP",
	DUP:             "DUP",
	NIP:             "NIP",
	OVER:            "OVER",
	PICK:            "PICK",
	ROLL:            "ROLL",
	ROT:             "ROT",
	SWAP:            "SWAP",
	TUCK:            "TUCK",
	CAT:             "CAT",
	SUBSTR:          "SUBSTR",
	LEFT:            "LEFT",
	RIGHT:           "RIGHT",
	SIZE:            "SIZE",
	INVERT:          "INVERT",
	AND:             "AND",
	OR:              "OR",
	XOR:             "XOR",
	EQUAL:           "EQUAL",
	INC:             "INC",
	DEC:             "DEC",
	SIGN:            "SIGN",
	NEGATE:          "NEGATE",
	ABS:             "ABS",
	NOT:             "NOT",
	NZ:              "NZ",
	ADD:             "ADD",
	SUB:             "SUB",
	MUL:             "MUL",
	DIV:             "DIV",
	MOD:             "MOD",
	SHL:             "SHL",
	SHR:             "SHR",
	BOOLAND:         "BOOLAND",
	BOOLOR:          "BOOLOR",
	NUMEQUAL:        "NUMEQUAL",
	NUMNOTEQUAL:     "NUMNOTEQUAL",
	LT:              "LT",
	GT:              "GT",
	LTE:             "LTE",
	GTE:             "GTE",
	MIN:             "MIN",
	MAX:             "MAX",
	WITHIN:          "WITHIN",
	SHA1:            "SHA1",
	SHA256:          "SHA256",
	HASH160:         "HASH160",
	HASH256:         "HASH256",
	CHECKSIG:        "CHECKSIG",
	VERIFY:          "VERIFY",
	CHECKMULTISIG:   "CHECKMULTISIG",
	ARRAYSIZE:       "ARRAYSIZE",
	PACK:            "PACK",
	UNPACK:          "UNPACK",
	PICKITEM:        "PICKITEM",
	SETITEM:         "SETITEM",
	NEWARRAY:        "NEWARRAY",
	NEWSTRUCT:       "NEWSTRUCT",
	NEWMAP:          "NEWMAP",
	APPEND:          "APPEND",
	REVERSE:         "REVERSE",
	REMOVE:          "REMOVE",
	HASKEY:          "HASKEY",
	KEYS:            "KEYS",
	VALUES:          "VALUES",
	THROW:           "THROW",
	THROWIFNOT:      "THROWIFNOT",
}

// IsPushBytes - true for the single byte length opcodes PUSHBYTES1..PUSHBYTES75
func (op OpCode) IsPushBytes() bool {
	return op >= PUSHBYTES1 && op <= PUSHBYTES75
}

// IsPushData - true for any opcode that pushes a byte array
func (op OpCode) IsPushData() bool {
	return op.IsPushBytes() || PUSHDATA1 == op || PUSHDATA2 == op || PUSHDATA4 == op
}

// IsPushInteger - true for PUSHM1, PUSH0 and PUSH1..PUSH16
func (op OpCode) IsPushInteger() bool {
	return PUSHM1 == op || PUSH0 == op || (op >= PUSH1 && op <= PUSH16)
}

// String - instruction name for disassembly
func (op OpCode) String() string {
	if op.IsPushBytes() {
		return fmt.Sprintf("PUSHBYTES%d", byte(op))
	}
	if op >= PUSH1 && op <= PUSH16 {
		return fmt.Sprintf("PUSH%d", byte(op-PUSH1)+1)
	}
	if name, ok := names[op]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE(0x%02x)", byte(op))
}
