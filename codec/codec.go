// SPDX-License-Identifier: EPL-2.0

// Package codec holds the bounded little-endian helpers used by the chunk
// parsers. Every accessor checks its window against the buffer and fails with
// ErrBufferUnderrun instead of reading or writing past the end.
package codec

import (
	"encoding/binary"
	"fmt"
)

func window(buf []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrBufferUnderrun, length, offset, len(buf))
	}

	return nil
}

// Uint decodes a little-endian unsigned integer of length 2 or 4 at offset.
func Uint(buf []byte, offset, length int) (uint32, error) {
	switch length {
	case 2:
		v, err := Uint16(buf, offset)
		return uint32(v), err
	case 4:
		return Uint32(buf, offset)
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
}

func Uint16(buf []byte, offset int) (uint16, error) {
	if err := window(buf, offset, 2); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[offset : offset+2]), nil
}

func Uint32(buf []byte, offset int) (uint32, error) {
	if err := window(buf, offset, 4); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[offset : offset+4]), nil
}

// ASCII returns n bytes at offset as a string, one byte per character.
func ASCII(buf []byte, offset, n int) (string, error) {
	if err := window(buf, offset, n); err != nil {
		return "", err
	}

	return string(buf[offset : offset+n]), nil
}

func PutUint16(buf []byte, offset int, v uint16) error {
	if err := window(buf, offset, 2); err != nil {
		return err
	}

	binary.LittleEndian.PutUint16(buf[offset:offset+2], v)

	return nil
}

func PutUint32(buf []byte, offset int, v uint32) error {
	if err := window(buf, offset, 4); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[offset:offset+4], v)

	return nil
}

// PutASCII copies s into buf at offset. Only the bytes of s are written.
func PutASCII(buf []byte, offset int, s string) error {
	if err := window(buf, offset, len(s)); err != nil {
		return err
	}

	copy(buf[offset:], s)

	return nil
}

// Int16s decodes consecutive little-endian signed 16-bit samples. A trailing
// odd byte is ignored.
func Int16s(buf []byte) []int16 {
	n := len(buf) / 2
	out := make([]int16, n)
	for i := range n {
		out[i] = int16(binary.LittleEndian.Uint16(buf[2*i : 2*i+2]))
	}

	return out
}

// PutInt16s encodes samples into dst, which must hold len(samples)*2 bytes.
func PutInt16s(dst []byte, samples []int16) error {
	if err := window(dst, 0, len(samples)*2); err != nil {
		return err
	}

	for i, s := range samples {
		binary.LittleEndian.PutUint16(dst[2*i:2*i+2], uint16(s))
	}

	return nil
}
