/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bitstring

import (
	"errors"
	"fmt"
)

const (
	bitsPerByte = 8
	one         = 0x1
)

// ErrOutOfRange is returned when a bit index is not addressable in the bitstring.
var ErrOutOfRange = errors.New("index out of range")

// BitString is a fixed-capacity bit array. Bit i lives in byte i/8 at position i%8,
// counting from the least significant bit.
type BitString struct {
	bits []byte
}

// NewBitString returns a cleared bitstring of the given size in bytes.
func NewBitString(sizeBytes int) *BitString {
	return &BitString{bits: make([]byte, sizeBytes)}
}

// FromBytes wraps bits without copying. The caller hands over ownership of the slice.
func FromBytes(bits []byte) *BitString {
	return &BitString{bits: bits}
}

// Capacity returns the number of addressable bits.
func (b *BitString) Capacity() uint64 {
	return uint64(len(b.bits)) * bitsPerByte
}

// Bytes returns the underlying buffer.
func (b *BitString) Bytes() []byte {
	return b.bits
}

// CheckBounds returns ErrOutOfRange if position is not addressable.
func (b *BitString) CheckBounds(position uint64) error {
	if position >= b.Capacity() {
		return fmt.Errorf("max indexable element is %d, provided index %d: %w",
			b.Capacity(), position, ErrOutOfRange)
	}

	return nil
}

// Get bit.
func (b *BitString) Get(position uint64) (bool, error) {
	if err := b.CheckBounds(position); err != nil {
		return false, err
	}

	return b.bits[position/bitsPerByte]&mask(position) != 0, nil
}

// Set bit.
func (b *BitString) Set(position uint64) error {
	if err := b.CheckBounds(position); err != nil {
		return err
	}

	b.bits[position/bitsPerByte] |= mask(position)

	return nil
}

// Clear bit.
func (b *BitString) Clear(position uint64) error {
	if err := b.CheckBounds(position); err != nil {
		return err
	}

	b.bits[position/bitsPerByte] &^= mask(position)

	return nil
}

func mask(position uint64) byte {
	return byte(one << (position % bitsPerByte))
}
