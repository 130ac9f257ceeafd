/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bitstring

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

var (
	// ErrCompression is returned when the zlib compressor fails.
	ErrCompression = errors.New("compression failed")
	// ErrDecoding is returned for malformed base64 input.
	ErrDecoding = errors.New("decoding failed")
	// ErrDecompression is returned for a corrupt or truncated zlib stream.
	ErrDecompression = errors.New("decompression failed")
)

// Pack compresses bits with zlib at the default level and encodes the result
// with the standard base64 alphabet (padded).
func Pack(bits []byte) (string, error) {
	compressed, err := Compress(bits)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(compressed), nil
}

// Unpack reverses Pack.
func Unpack(encoded string) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return Decompress(compressed)
}

// Compress returns the zlib stream of data at the default compression level.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}

	if _, err = w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}

	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}

	return buf.Bytes(), nil
}

// UnpackLimit is Unpack for input that must not inflate beyond maxBytes.
func UnpackLimit(encoded string, maxBytes int64) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return DecompressLimit(compressed, maxBytes)
}

// Decompress inflates a zlib stream to its end.
func Decompress(data []byte) ([]byte, error) {
	return DecompressLimit(data, -1)
}

// DecompressLimit inflates a zlib stream and fails with ErrDecompression once the output
// exceeds maxBytes. A negative maxBytes disables the limit.
func DecompressLimit(data []byte, maxBytes int64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}

	defer r.Close() //nolint:errcheck

	var src io.Reader = r
	if maxBytes >= 0 {
		src = io.LimitReader(r, maxBytes+1)
	}

	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}

	if maxBytes >= 0 && int64(buf.Len()) > maxBytes {
		return nil, fmt.Errorf("%w: output exceeds %d bytes", ErrDecompression, maxBytes)
	}

	return buf.Bytes(), nil
}
