// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/util"
)

// Reader - decode a binary record from a stream
//
// every read is all or nothing: a short read returns fault.ErrShortRead
// and no value
type Reader struct {
	r     io.Reader
	count int
}

// NewReader - read from any stream
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: r,
	}
}

// NewReaderBytes - read from a byte slice
func NewReaderBytes(data []byte) *Reader {
	return NewReader(bytes.NewReader(data))
}

// Count - total bytes consumed so far
func (r *Reader) Count() int {
	return r.count
}

// Remaining - bytes left when reading from a byte slice, -1 for other streams
func (r *Reader) Remaining() int {
	if br, ok := r.r.(*bytes.Reader); ok {
		return br.Len()
	}
	return -1
}

// ReadBytes - exactly n raw bytes
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fault.ErrShortRead
	}
	if remaining := r.Remaining(); remaining >= 0 && remaining < n {
		return nil, fault.ErrShortRead
	}
	buffer := make([]byte, n)
	if err := r.fill(buffer); nil != err {
		return nil, err
	}
	return buffer, nil
}

// fill the whole buffer or fail
func (r *Reader) fill(buffer []byte) error {
	n, err := io.ReadFull(r.r, buffer)
	r.count += n
	if nil != err {
		return fault.ErrShortRead
	}
	return nil
}

// ReadUint8 - a single byte
func (r *Reader) ReadUint8() (uint8, error) {
	var b [1]byte
	if err := r.fill(b[:]); nil != err {
		return 0, err
	}
	return b[0], nil
}

// ReadBool - only 0x00 and 0x01 are accepted
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidBoolean
	}
}

// ReadUint16 - two bytes in the given order
func (r *Reader) ReadUint16(order binary.ByteOrder) (uint16, error) {
	var b [2]byte
	if err := r.fill(b[:]); nil != err {
		return 0, err
	}
	return order.Uint16(b[:]), nil
}

// ReadUint32 - four bytes in the given order
func (r *Reader) ReadUint32(order binary.ByteOrder) (uint32, error) {
	var b [4]byte
	if err := r.fill(b[:]); nil != err {
		return 0, err
	}
	return order.Uint32(b[:]), nil
}

// ReadUint64 - eight bytes in the given order
func (r *Reader) ReadUint64(order binary.ByteOrder) (uint64, error) {
	var b [8]byte
	if err := r.fill(b[:]); nil != err {
		return 0, err
	}
	return order.Uint64(b[:]), nil
}

// ReadInt16 - two's complement in the given order
func (r *Reader) ReadInt16(order binary.ByteOrder) (int16, error) {
	v, err := r.ReadUint16(order)
	return int16(v), err
}

// ReadInt32 - two's complement in the given order
func (r *Reader) ReadInt32(order binary.ByteOrder) (int32, error) {
	v, err := r.ReadUint32(order)
	return int32(v), err
}

// ReadInt64 - two's complement in the given order
func (r *Reader) ReadInt64(order binary.ByteOrder) (int64, error) {
	v, err := r.ReadUint64(order)
	return int64(v), err
}

// ReadVarInt - a Varint that must not exceed maximum
func (r *Reader) ReadVarInt(maximum uint64) (uint64, error) {
	var b [util.VarintMaximumBytes]byte
	if err := r.fill(b[:1]); nil != err {
		return 0, err
	}
	size := 1 + util.VarintPayloadSize(b[0])
	if err := r.fill(b[1:size]); nil != err {
		return 0, err
	}

	// the whole encoding is present so a zero count means non-canonical
	value, count := util.FromVarint(b[:size])
	if 0 == count {
		return 0, fault.ErrNonCanonicalVarInt
	}
	if value > maximum {
		return 0, fault.ErrVarIntExceedsMaximum
	}
	return value, nil
}

// ReadVarBytes - Varint(length) followed by at most maximum bytes
func (r *Reader) ReadVarBytes(maximum uint64) ([]byte, error) {
	length, err := r.ReadVarInt(maximum)
	if nil == err {
		return r.ReadBytes(int(length))
	}
	if fault.ErrVarIntExceedsMaximum == err {
		return nil, fault.ErrVarBytesTooLong
	}
	return nil, err
}

// ReadVarString - Varint(length) followed by at most maximum UTF-8 bytes
func (r *Reader) ReadVarString(maximum uint64) (string, error) {
	b, err := r.ReadVarBytes(maximum)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
