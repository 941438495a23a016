// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/ontkit/util"
)

var varintTests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{0xfc, []byte{0xfc}},
	{0xfd, []byte{0xfd, 0xfd, 0x00}},
	{0xfe, []byte{0xfd, 0xfe, 0x00}},
	{0x1234, []byte{0xfd, 0x34, 0x12}},
	{0xffff, []byte{0xfd, 0xff, 0xff}},
	{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
	{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
	{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varintInvalidTests = [][]byte{
	{},
	{0xfd},
	{0xfd, 0x01},
	{0xfe, 0x01, 0x02, 0x03},
	{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	// not in shortest form
	{0xfd, 0xfc, 0x00},
	{0xfe, 0xff, 0xff, 0x00, 0x00},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00},
	{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}

func TestToVarint(t *testing.T) {

	for i, item := range varintTests {
		if result := util.ToVarint(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
		if size := util.VarintSize(item.value); size != len(item.encoded) {
			t.Errorf("%d: VarintSize(%x) -> %d  expected: %d", i, item.value, size, len(item.encoded))
		}
	}
}

func TestFromVarint(t *testing.T) {

	for i, item := range varintTests {
		result1, count1 := util.FromVarint(item.encoded)
		if result1 != item.value || count1 != len(item.encoded) {
			t.Errorf("%d: FromVarint(%x) -> %d, %d  expected: %d", i, item.encoded, result1, count1, item.value)
		}

		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result2, count2 := util.FromVarint(b)
		if result2 != item.value || count1 != count2 {
			t.Errorf("%d: FromVarint(%x) -> %d  expected: %d", i, b, result2, item.value)
		}
		if !bytes.Equal(suffix, b[count2:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count2:], suffix)
		}
	}

	for i, item := range varintInvalidTests {
		result, count := util.FromVarint(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}
