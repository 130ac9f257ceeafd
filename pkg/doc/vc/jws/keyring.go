/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/trustbloc/did-go/doc/did"
)

const (
	ed25519VerificationKey2018 = "Ed25519VerificationKey2018"
	didContextV1               = "https://www.w3.org/ns/did/v1"
)

// ErrKeyNotFound is returned when a key reference is not known to the keyring.
var ErrKeyNotFound = errors.New("key not found")

// Keyring holds Ed25519 signing keys by key reference.
type Keyring struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PrivateKey
}

// NewKeyring returns an empty keyring.
func NewKeyring() *Keyring {
	return &Keyring{keys: map[string]ed25519.PrivateKey{}}
}

// GenerateKey creates a new key stored under keyRef and returns its public half.
func (k *Keyring) GenerateKey(keyRef string) (ed25519.PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}

	k.AddKey(keyRef, priv)

	return pub, nil
}

// AddKey stores key under keyRef, replacing any previous key.
func (k *Keyring) AddKey(keyRef string, key ed25519.PrivateKey) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.keys[keyRef] = key
}

func (k *Keyring) key(keyRef string) (ed25519.PrivateKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, ok := k.keys[keyRef]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyRef)
	}

	return key, nil
}

// DIDDocument builds a DID document for didID publishing every key of the keyring
// as an Ed25519VerificationKey2018 method with id "<didID>#<keyRef>".
func (k *Keyring) DIDDocument(didID string) (*did.Doc, error) {
	if _, err := did.Parse(didID); err != nil {
		return nil, fmt.Errorf("parse did %q: %w", didID, err)
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	refs := make([]string, 0, len(k.keys))
	for ref := range k.keys {
		refs = append(refs, ref)
	}

	sort.Strings(refs)

	doc := &did.Doc{
		Context: []string{didContextV1},
		ID:      didID,
	}

	for _, ref := range refs {
		pub, _ := k.keys[ref].Public().(ed25519.PublicKey) //nolint:errcheck

		doc.VerificationMethod = append(doc.VerificationMethod,
			*did.NewVerificationMethodFromBytes(didID+"#"+ref, ed25519VerificationKey2018, didID, pub))
	}

	return doc, nil
}

// StaticResolver resolves DIDs from a fixed set of documents.
type StaticResolver struct {
	mu   sync.RWMutex
	docs map[string]*did.Doc
}

// NewStaticResolver returns a resolver serving docs by their id.
func NewStaticResolver(docs ...*did.Doc) *StaticResolver {
	r := &StaticResolver{docs: map[string]*did.Doc{}}

	for _, doc := range docs {
		r.Add(doc)
	}

	return r
}

// Add registers or replaces a document.
func (r *StaticResolver) Add(doc *did.Doc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[doc.ID] = doc
}

// Resolve returns the document registered for didID.
func (r *StaticResolver) Resolve(didID string) (*did.Doc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[didID]
	if !ok {
		return nil, fmt.Errorf("did %s not found", didID)
	}

	return doc, nil
}
