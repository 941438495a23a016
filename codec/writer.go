// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/util"
)

// initial capacity of pooled scratch buffers
const scratchSize = 512

// recycled scratch buffers, returned by Writer.Release
var scratch = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, scratchSize)
		return &b
	},
}

// Writer - accumulate a binary record
//
// a writer has a single owner and is not safe for concurrent use
type Writer struct {
	buffer *[]byte
}

// NewWriter - create a writer with a pooled buffer
func NewWriter() *Writer {
	b := scratch.Get().(*[]byte)
	*b = (*b)[:0]
	return &Writer{
		buffer: b,
	}
}

// Release - return the buffer to the pool, the writer must not be used afterwards
func (w *Writer) Release() {
	if nil == w.buffer {
		return
	}
	scratch.Put(w.buffer)
	w.buffer = nil
}

// Bytes - a private copy of the accumulated data
func (w *Writer) Bytes() []byte {
	result := make([]byte, len(*w.buffer))
	copy(result, *w.buffer)
	return result
}

// Len - number of bytes written so far
func (w *Writer) Len() int {
	return len(*w.buffer)
}

// Reset - discard all written data
func (w *Writer) Reset() {
	*w.buffer = (*w.buffer)[:0]
}

// WriteBytes - raw bytes with no length prefix
func (w *Writer) WriteBytes(data []byte) {
	*w.buffer = append(*w.buffer, data...)
}

// WriteUint8 - a single byte
func (w *Writer) WriteUint8(value uint8) {
	*w.buffer = append(*w.buffer, value)
}

// WriteBool - 0x01 for true, 0x00 for false
func (w *Writer) WriteBool(value bool) {
	if value {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteUint16 - two bytes in the given order
func (w *Writer) WriteUint16(value uint16, order binary.ByteOrder) {
	var b [2]byte
	order.PutUint16(b[:], value)
	w.WriteBytes(b[:])
}

// WriteUint32 - four bytes in the given order
func (w *Writer) WriteUint32(value uint32, order binary.ByteOrder) {
	var b [4]byte
	order.PutUint32(b[:], value)
	w.WriteBytes(b[:])
}

// WriteUint64 - eight bytes in the given order
func (w *Writer) WriteUint64(value uint64, order binary.ByteOrder) {
	var b [8]byte
	order.PutUint64(b[:], value)
	w.WriteBytes(b[:])
}

// WriteInt16 - two's complement in the given order
func (w *Writer) WriteInt16(value int16, order binary.ByteOrder) {
	w.WriteUint16(uint16(value), order)
}

// WriteInt32 - two's complement in the given order
func (w *Writer) WriteInt32(value int32, order binary.ByteOrder) {
	w.WriteUint32(uint32(value), order)
}

// WriteInt64 - two's complement in the given order
func (w *Writer) WriteInt64(value int64, order binary.ByteOrder) {
	w.WriteUint64(uint64(value), order)
}

// WriteVarInt - Varint encoded value
func (w *Writer) WriteVarInt(value uint64) {
	w.WriteBytes(util.ToVarint(value))
}

// WriteVarIntSigned - Varint encoded value from a signed count
func (w *Writer) WriteVarIntSigned(value int64) error {
	if value < 0 {
		return fault.ErrNegativeVarInt
	}
	w.WriteVarInt(uint64(value))
	return nil
}

// WriteVarBytes - Varint(length) followed by the bytes
func (w *Writer) WriteVarBytes(data []byte) {
	w.grow(util.VarintSize(uint64(len(data))) + len(data))
	w.WriteVarInt(uint64(len(data)))
	w.WriteBytes(data)
}

// WriteVarString - Varint(length) followed by the UTF-8 bytes
func (w *Writer) WriteVarString(s string) {
	w.grow(util.VarintSize(uint64(len(s))) + len(s))
	w.WriteVarInt(uint64(len(s)))
	*w.buffer = append(*w.buffer, s...)
}

// grow - ensure space for n more bytes with at most one reallocation
func (w *Writer) grow(n int) {
	b := *w.buffer
	if cap(b)-len(b) >= n {
		return
	}
	grown := make([]byte, len(b), 2*cap(b)+n)
	copy(grown, b)
	*w.buffer = grown
}
