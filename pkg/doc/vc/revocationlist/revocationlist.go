/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package revocationlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trustbloc/rl2020/pkg/doc/vc/bitstring"
)

const (
	// Type is the type tag of a revocation list record.
	Type = "RevocationList2020"

	// MinSizeKB is the minimum bitstring size in kilobytes.
	MinSizeKB = 16
	// MaxSizeKB is the maximum bitstring size in kilobytes.
	MaxSizeKB = 128

	bytesPerKB = 1024
	maxBytes   = MaxSizeKB * bytesPerKB
)

var (
	// ErrInvalidSize is returned when the requested list size is outside [MinSizeKB, MaxSizeKB].
	ErrInvalidSize = errors.New("invalid revocation list size")
	// ErrInvalidIdentifier is returned for an empty list identifier.
	ErrInvalidIdentifier = errors.New("revocation list id cannot be empty")
)

// RevocationList is a RevocationList2020 bitstring together with its encoded form.
// The encoded list is recomputed after every mutation and never goes stale.
//
// A RevocationList is not safe for concurrent use.
type RevocationList struct {
	id          string
	typ         string
	encodedList string
	bits        *bitstring.BitString
}

// New creates a cleared revocation list of sizeKB kilobytes.
func New(id string, sizeKB int) (*RevocationList, error) {
	if sizeKB < MinSizeKB {
		return nil, fmt.Errorf("minimum size is %d KB, got %d: %w", MinSizeKB, sizeKB, ErrInvalidSize)
	}

	if sizeKB > MaxSizeKB {
		return nil, fmt.Errorf("maximum size is %d KB, got %d: %w", MaxSizeKB, sizeKB, ErrInvalidSize)
	}

	if err := validateID(id); err != nil {
		return nil, err
	}

	bits := bitstring.NewBitString(sizeKB * bytesPerKB)

	encodedList, err := bitstring.Pack(bits.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encode revocation list: %w", err)
	}

	return &RevocationList{
		id:          id,
		typ:         Type,
		encodedList: encodedList,
		bits:        bits,
	}, nil
}

// FromEncoded rebuilds a list from a published encoded list. The encoded list is kept
// verbatim so the instance round-trips to the exact string it was built from. The
// decoded bitstring must be a whole number of kilobytes within [MinSizeKB, MaxSizeKB].
func FromEncoded(id, encodedList string) (*RevocationList, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	bits, err := bitstring.UnpackLimit(encodedList, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("decode revocation list %q: %w", id, err)
	}

	if err = validateLength(len(bits)); err != nil {
		return nil, fmt.Errorf("decode revocation list %q: %w", id, err)
	}

	return &RevocationList{
		id:          id,
		typ:         Type,
		encodedList: encodedList,
		bits:        bitstring.FromBytes(bits),
	}, nil
}

// ID returns the list identifier.
func (l *RevocationList) ID() string {
	return l.id
}

// Type returns the record type tag.
func (l *RevocationList) Type() string {
	return l.typ
}

// EncodedList returns the current encoded list.
func (l *RevocationList) EncodedList() string {
	return l.encodedList
}

// Capacity returns the number of status entries in the list.
func (l *RevocationList) Capacity() uint64 {
	return l.bits.Capacity()
}

// SizeKB returns the size of the bitstring in kilobytes.
func (l *RevocationList) SizeKB() int {
	return len(l.bits.Bytes()) / bytesPerKB
}

// IsRevoked reports whether the credential at index is revoked.
func (l *RevocationList) IsRevoked(index uint64) (bool, error) {
	revoked, err := l.bits.Get(index)
	if err != nil {
		return false, fmt.Errorf("revocation list %q: %w", l.id, err)
	}

	return revoked, nil
}

// Revoke sets the bit at index.
func (l *RevocationList) Revoke(index uint64) error {
	return l.update(index, true)
}

// Reset clears the bit at index.
func (l *RevocationList) Reset(index uint64) error {
	return l.update(index, false)
}

func (l *RevocationList) update(index uint64, revoked bool) error {
	if err := l.bits.CheckBounds(index); err != nil {
		return fmt.Errorf("revocation list %q: %w", l.id, err)
	}

	// Work on a copy so a failed re-encode leaves the list untouched.
	updated := bitstring.FromBytes(append([]byte(nil), l.bits.Bytes()...))

	var err error
	if revoked {
		err = updated.Set(index)
	} else {
		err = updated.Clear(index)
	}

	if err != nil {
		return fmt.Errorf("revocation list %q: %w", l.id, err)
	}

	encodedList, err := bitstring.Pack(updated.Bytes())
	if err != nil {
		return fmt.Errorf("encode revocation list %q: %w", l.id, err)
	}

	l.bits = updated
	l.encodedList = encodedList

	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidIdentifier
	}

	return nil
}

func validateLength(n int) error {
	if n%bytesPerKB != 0 || n < MinSizeKB*bytesPerKB || n > maxBytes {
		return fmt.Errorf("%w: bitstring of %d bytes", ErrInvalidSize, n)
	}

	return nil
}
