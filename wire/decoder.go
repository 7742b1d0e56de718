// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/datacore-go/datacore/array"
)

// Decode parses a numeric array frame and returns a container that has
// adopted the decoded buffer under the Deserialized policy. The
// payload is materialized into one fresh contiguous allocation.
func Decode[T Elem](frame []byte) (*array.Array[T, array.Deserialized[T]], error) {
	tag := elemTagOf[T]()
	dims, payload, err := parseFrame(frame, tag)
	if err != nil {
		return nil, err
	}

	n, err := dims.FlatCount()
	if err != nil {
		return nil, err
	}

	size := tag.Size()
	if len(payload)%size != 0 || len(payload)/size != n {
		return nil, fmt.Errorf("%w: payload is %d bytes, %d %s elements need %d",
			ErrTruncated, len(payload), n, tag, n*size)
	}

	buf := make([]T, n)
	if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, buf); err != nil {
		return nil, fmt.Errorf("wire: decode payload: %w", err)
	}
	return array.NewDeserialized(buf, dims)
}

// DecodeByteSlices parses a byte-string array frame. Every inner slice
// is cut from a single backing allocation, so the container's bulk
// release covers the whole frame.
func DecodeByteSlices(frame []byte) (*array.Array[[]byte, array.Deserialized[[]byte]], error) {
	dims, payload, err := parseFrame(frame, Bytes)
	if err != nil {
		return nil, err
	}

	n, err := dims.FlatCount()
	if err != nil {
		return nil, err
	}
	if n > len(payload)/4 {
		return nil, fmt.Errorf("%w: payload is %d bytes, %d length prefixes need %d",
			ErrTruncated, len(payload), n, n*4)
	}

	backing := make([]byte, len(payload)-4*n)
	outer := make([][]byte, n)
	off, pos := 0, 0
	for i := range outer {
		if off+4 > len(payload) {
			return nil, fmt.Errorf("%w: missing length prefix for element %d", ErrTruncated, i)
		}
		ln := int(binary.LittleEndian.Uint32(payload[off:]))
		off += 4
		if off+ln > len(payload) || pos+ln > len(backing) {
			return nil, fmt.Errorf("%w: element %d claims %d bytes", ErrTruncated, i, ln)
		}
		copy(backing[pos:pos+ln], payload[off:off+ln])
		outer[i] = backing[pos : pos+ln : pos+ln]
		off += ln
		pos += ln
	}
	if off != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrTruncated, len(payload)-off)
	}

	return array.NewDeserialized(outer, dims)
}

// parseFrame validates magic, version and checksum, checks the element
// tag against want, and returns the dimensions and the payload region.
func parseFrame(frame []byte, want ElemType) (array.Dims, []byte, error) {
	if len(frame) < headerSize+trailerSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(frame))
	}
	if frame[0] != magic0 || frame[1] != magic1 {
		return nil, nil, fmt.Errorf("%w: 0x%02X 0x%02X", ErrBadMagic, frame[0], frame[1])
	}
	if frame[2] != version {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadVersion, frame[2])
	}

	// Checksum before trusting anything past the version byte.
	wantCRC := binary.LittleEndian.Uint32(frame[len(frame)-trailerSize:])
	if crc32.ChecksumIEEE(frame[2:len(frame)-trailerSize]) != wantCRC {
		return nil, nil, ErrChecksum
	}

	tag := ElemType(frame[3])
	if tag != want {
		return nil, nil, fmt.Errorf("%w: frame carries %s, want %s", ErrTypeMismatch, tag, want)
	}

	rank := int(binary.LittleEndian.Uint16(frame[4:6]))
	dimsEnd := headerSize + 4*rank
	if len(frame) < dimsEnd+trailerSize {
		return nil, nil, fmt.Errorf("%w: rank %d does not fit in %d bytes", ErrTruncated, rank, len(frame))
	}

	dims := make(array.Dims, rank)
	for i := range dims {
		dims[i] = int(binary.LittleEndian.Uint32(frame[headerSize+4*i:]))
	}
	return dims, frame[dimsEnd : len(frame)-trailerSize], nil
}
