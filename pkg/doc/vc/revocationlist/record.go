/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package revocationlist

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/trustbloc/rl2020/pkg/doc/vc/bitstring"
)

// ErrMalformedRecord is returned when a serialized record cannot be decoded.
var ErrMalformedRecord = errors.New("malformed revocation list record")

// maxRecordBytes bounds an inflated record: the bits, an encoded list of at most the
// same size once base64 expands it, and the id.
const maxRecordBytes = 4 * maxBytes

// record is the wire form of a RevocationList. Fields are encoded as a CBOR array
// in declaration order.
type record struct {
	_           struct{} `cbor:",toarray"`
	ID          string
	Type        string
	EncodedList string
	Bits        []byte
}

// Serialize encodes the whole list (id, type, encoded list, bits) as deterministic CBOR.
func Serialize(l *RevocationList) ([]byte, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("create cbor encoder: %w", err)
	}

	data, err := encMode.Marshal(&record{
		ID:          l.id,
		Type:        l.typ,
		EncodedList: l.encodedList,
		Bits:        l.bits.Bytes(),
	})
	if err != nil {
		return nil, fmt.Errorf("serialize revocation list %q: %w", l.id, err)
	}

	return data, nil
}

// Deserialize decodes a record produced by Serialize.
func Deserialize(data []byte) (*RevocationList, error) {
	var r record

	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if validateID(r.ID) != nil {
		return nil, fmt.Errorf("%w: empty id", ErrMalformedRecord)
	}

	if r.Type != Type {
		return nil, fmt.Errorf("%w: unexpected type %q", ErrMalformedRecord, r.Type)
	}

	if err := validateLength(len(r.Bits)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	bits, err := bitstring.UnpackLimit(r.EncodedList, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: encoded list: %w", ErrMalformedRecord, err)
	}

	if !bytes.Equal(bits, r.Bits) {
		return nil, fmt.Errorf("%w: encoded list does not match bits", ErrMalformedRecord)
	}

	return &RevocationList{
		id:          r.ID,
		typ:         r.Type,
		encodedList: r.EncodedList,
		bits:        bitstring.FromBytes(r.Bits),
	}, nil
}

// CompressEncode serializes the list, compresses it with zlib and encodes it with the
// URL-safe base64 alphabet. This is the whole-record interchange format and is not
// interchangeable with EncodedList.
func CompressEncode(l *RevocationList) (string, error) {
	data, err := Serialize(l)
	if err != nil {
		return "", err
	}

	compressed, err := bitstring.Compress(data)
	if err != nil {
		return "", fmt.Errorf("compress revocation list %q: %w", l.id, err)
	}

	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// DecodeDecompress reverses CompressEncode.
func DecodeDecompress(encoded string) (*RevocationList, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bitstring.ErrDecoding, err)
	}

	data, err := bitstring.DecompressLimit(compressed, maxRecordBytes)
	if err != nil {
		return nil, err
	}

	return Deserialize(data)
}
