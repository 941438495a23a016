// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/program"
)

// typedParam - one parameter as written on the command line, e.g.
//
//   {"type": "string", "value": "transfer"}
//   {"type": "int", "value": "1000000000000"}
//   {"type": "address", "value": "ARXRQog4iZazp5YfXRyDZvU6ahrt3c2bb7"}
//   {"type": "list", "value": [{"type": "bool", "value": true}]}
//   {"type": "map", "value": [{"name": "from", "type": "bytes", "value": "00ff"}]}
type typedParam struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// parseParams - decode a JSON array of typed parameters
func parseParams(s string) (program.List, error) {
	var items []typedParam
	if err := json.Unmarshal([]byte(s), &items); nil != err {
		return nil, ErrUnknownParamFormat
	}
	return parseList(items)
}

func parseList(items []typedParam) (program.List, error) {
	list := make(program.List, 0, len(items))
	for _, item := range items {
		p, err := parseParam(item)
		if nil != err {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func parseParam(item typedParam) (program.Param, error) {
	switch strings.ToLower(item.Type) {

	case "int", "integer":
		s, err := scalarText(item.Value)
		if nil != err {
			return nil, err
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, ErrUnknownParamFormat
		}
		if n.IsInt64() {
			return program.Int(n.Int64()), nil
		}
		return program.BigInt{Value: n}, nil

	case "bool", "boolean":
		var b bool
		if err := json.Unmarshal(item.Value, &b); nil != err {
			return nil, ErrUnknownParamFormat
		}
		return program.Bool(b), nil

	case "string":
		var s string
		if err := json.Unmarshal(item.Value, &s); nil != err {
			return nil, ErrUnknownParamFormat
		}
		return program.String(s), nil

	case "bytes", "bytearray":
		var s string
		if err := json.Unmarshal(item.Value, &s); nil != err {
			return nil, ErrUnknownParamFormat
		}
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, err
		}
		return program.Bytes(b), nil

	case "address":
		var s string
		if err := json.Unmarshal(item.Value, &s); nil != err {
			return nil, ErrUnknownParamFormat
		}
		a, err := parseAddress(s)
		if nil != err {
			return nil, err
		}
		return program.Bytes(a.Bytes()), nil

	case "list", "array":
		var items []typedParam
		if err := json.Unmarshal(item.Value, &items); nil != err {
			return nil, ErrUnknownParamFormat
		}
		return parseList(items)

	case "map", "struct":
		var items []typedParam
		if err := json.Unmarshal(item.Value, &items); nil != err {
			return nil, ErrUnknownParamFormat
		}
		m := make(program.Map, 0, len(items))
		for _, field := range items {
			p, err := parseParam(field)
			if nil != err {
				return nil, err
			}
			m = append(m, program.Field{Name: field.Name, Value: p})
		}
		return m, nil

	default:
		return nil, fault.ErrUnknownParameterType
	}
}

// integers may be given as JSON numbers or strings
func scalarText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); nil == err {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); nil != err {
		return "", ErrUnknownParamFormat
	}
	return n.String(), nil
}
