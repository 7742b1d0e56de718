// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/datacore-go/datacore/array"
)

// Encode serializes a flat numeric buffer and its dimensions into an
// array frame. The buffer must hold at least as many elements as the
// dimensions require; only that many are written.
func Encode[T Elem](data []T, dims array.Dims) ([]byte, error) {
	n, err := checkEncode(len(data), dims)
	if err != nil {
		return nil, err
	}

	// Writes into a bytes.Buffer cannot fail; all frame writes are
	// deliberately unchecked.
	buf := &bytes.Buffer{}
	writeHeader(buf, elemTagOf[T](), dims)
	binary.Write(buf, binary.LittleEndian, data[:n])
	return seal(buf), nil
}

// EncodeByteSlices serializes an array of byte strings into an array
// frame, each element as a 4-byte length followed by its bytes.
func EncodeByteSlices(data [][]byte, dims array.Dims) ([]byte, error) {
	n, err := checkEncode(len(data), dims)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	writeHeader(buf, Bytes, dims)
	for _, s := range data[:n] {
		if uint64(len(s)) > math.MaxUint32 {
			return nil, fmt.Errorf("wire: element of %d bytes exceeds frame limit", len(s))
		}
		binary.Write(buf, binary.LittleEndian, uint32(len(s)))
		buf.Write(s)
	}
	return seal(buf), nil
}

// checkEncode validates the dimensions against the available element
// count and returns the flat count.
func checkEncode(have int, dims array.Dims) (int, error) {
	n, err := dims.FlatCount()
	if err != nil {
		return 0, err
	}
	if have < n {
		return 0, fmt.Errorf("%w: have %d elements, dims %v need %d", array.ErrShortBuffer, have, dims, n)
	}
	for _, ext := range dims {
		if uint64(ext) > math.MaxUint32 {
			return 0, fmt.Errorf("wire: extent %d exceeds frame limit", ext)
		}
	}
	if len(dims) > math.MaxUint16 {
		return 0, fmt.Errorf("wire: rank %d exceeds frame limit", len(dims))
	}
	return n, nil
}

// writeHeader writes magic, version, tag, rank and dims.
func writeHeader(buf *bytes.Buffer, tag ElemType, dims array.Dims) {
	buf.WriteByte(magic0)
	buf.WriteByte(magic1)
	buf.WriteByte(version)
	buf.WriteByte(byte(tag))
	binary.Write(buf, binary.LittleEndian, uint16(len(dims)))
	for _, ext := range dims {
		binary.Write(buf, binary.LittleEndian, uint32(ext))
	}
}

// seal appends the CRC-32 trailer, computed over everything after the
// magic, and returns the finished frame.
func seal(buf *bytes.Buffer) []byte {
	out := buf.Bytes()
	crc := crc32.ChecksumIEEE(out[2:])
	out = append(out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(out)-4:], crc)
	return out
}
