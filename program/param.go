// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"math/big"
)

// Param - a value that can be pushed by EmitPushParam
//
// the set of implementations is closed: Int, BigInt, Bool, Bytes,
// String, List and Map
type Param interface {
	isParam()
}

// Int - a signed integer
type Int int64

// BigInt - an arbitrary precision integer
type BigInt struct {
	Value *big.Int
}

// Bool - PUSHT or PUSHF
type Bool bool

// Bytes - pushed verbatim
type Bytes []byte

// String - pushed as its UTF-8 bytes
type String string

// List - becomes an array via PACK
type List []Param

// Field - one named member of a Map
//
// the name is documentation only, the machine reads members by position
type Field struct {
	Name  string
	Value Param
}

// Map - becomes a struct, members appended in declaration order
type Map []Field

func (Int) isParam()    {}
func (BigInt) isParam() {}
func (Bool) isParam()   {}
func (Bytes) isParam()  {}
func (String) isParam() {}
func (List) isParam()   {}
func (Map) isParam()    {}

// Get - value of the first field with the given name
func (m Map) Get(name string) (Param, bool) {
	for _, f := range m {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
