/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vc

import (
	"context"
	"errors"

	"github.com/trustbloc/did-go/doc/did"
)

// ErrInvalidSignature is returned by a CredentialVerifier when a record does not verify
// against the signer's DID document.
var ErrInvalidSignature = errors.New("invalid signature")

// CredentialSigner signs serialized credentials with the key referenced by keyRef.
type CredentialSigner interface {
	Sign(ctx context.Context, keyRef string, credential []byte) ([]byte, error)
}

// CredentialVerifier verifies a signed record against the signer's DID document and
// returns the signed credential.
type CredentialVerifier interface {
	Verify(record []byte, signer *did.Doc) ([]byte, error)
}

// DIDResolver resolves a DID to its document.
type DIDResolver interface {
	Resolve(didID string) (*did.Doc, error)
}
