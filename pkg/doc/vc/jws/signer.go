/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/did-go/doc/did"

	vcapi "github.com/trustbloc/rl2020/pkg/doc/vc"
)

const headerKeyID = jose.HeaderKey("kid")

// Signer signs credentials as compact EdDSA JWS using keys of a Keyring.
type Signer struct {
	keys *Keyring
}

// NewSigner returns a signer backed by keys.
func NewSigner(keys *Keyring) *Signer {
	return &Signer{keys: keys}
}

// Sign signs credential with the key stored under keyRef. The key reference is set
// as the "kid" header.
func (s *Signer) Sign(_ context.Context, keyRef string, credential []byte) ([]byte, error) {
	key, err := s.keys.key(keyRef)
	if err != nil {
		return nil, err
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.EdDSA, Key: key},
		(&jose.SignerOptions{}).WithType("JWT").WithHeader(headerKeyID, keyRef),
	)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	obj, err := signer.Sign(credential)
	if err != nil {
		return nil, fmt.Errorf("sign credential: %w", err)
	}

	compact, err := obj.CompactSerialize()
	if err != nil {
		return nil, fmt.Errorf("serialize jws: %w", err)
	}

	return []byte(compact), nil
}

// Verifier checks compact JWS records against the verification methods of a DID document.
type Verifier struct{}

// NewVerifier returns a verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify validates record against the key named by its "kid" header and returns the payload.
func (v *Verifier) Verify(record []byte, signer *did.Doc) ([]byte, error) {
	obj, err := jose.ParseSigned(string(record))
	if err != nil {
		return nil, fmt.Errorf("%w: parse jws: %w", vcapi.ErrInvalidSignature, err)
	}

	if len(obj.Signatures) != 1 {
		return nil, fmt.Errorf("%w: expected one signature, got %d", vcapi.ErrInvalidSignature, len(obj.Signatures))
	}

	kid := obj.Signatures[0].Header.KeyID

	pub, err := publicKey(signer, kid)
	if err != nil {
		return nil, err
	}

	payload, err := obj.Verify(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vcapi.ErrInvalidSignature, err)
	}

	return payload, nil
}

// Payload returns the payload of record without checking the signature.
func Payload(record []byte) ([]byte, error) {
	obj, err := jose.ParseSigned(string(record))
	if err != nil {
		return nil, fmt.Errorf("parse jws: %w", err)
	}

	return obj.UnsafePayloadWithoutVerification(), nil
}

func publicKey(doc *did.Doc, kid string) (ed25519.PublicKey, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no signer document", vcapi.ErrInvalidSignature)
	}

	for i := range doc.VerificationMethod {
		vm := doc.VerificationMethod[i]

		if vm.ID != kid && !strings.HasSuffix(vm.ID, "#"+kid) {
			continue
		}

		if len(vm.Value) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: verification method %s is not an ed25519 key",
				vcapi.ErrInvalidSignature, vm.ID)
		}

		return ed25519.PublicKey(vm.Value), nil
	}

	return nil, fmt.Errorf("%w: verification method %q not found in %s", vcapi.ErrInvalidSignature, kid, doc.ID)
}
