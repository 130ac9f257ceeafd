/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rlmanager

//go:generate mockgen -destination rlmanager_mocks_test.go -package rlmanager_test . RecordStore
//go:generate mockgen -destination ledger_mocks_test.go -package rlmanager_test -mock_names Store=MockLedgerStore github.com/trustbloc/rl2020/pkg/ledger Store
//go:generate mockgen -destination signer_mocks_test.go -package rlmanager_test github.com/trustbloc/rl2020/pkg/doc/vc CredentialSigner

import (
	"context"
	"errors"
	"time"

	"github.com/trustbloc/vc-go/verifiable"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
)

var (
	// ErrDataNotFound is returned by record stores when no record exists for a list.
	ErrDataNotFound = errors.New("data not found")
	// ErrListFull is returned when every index of the list has been assigned.
	ErrListFull = errors.New("revocation list is full")
	// ErrUnknownList is returned when a status points to a list not managed here.
	ErrUnknownList = errors.New("status refers to another revocation list")
)

// ListRecord is the persisted state of a managed revocation list.
type ListRecord struct {
	List *revocationlist.RevocationList

	// NextIndex is the next status index to hand out.
	NextIndex uint64
}

// RecordStore persists list records.
type RecordStore interface {
	// Get returns ErrDataNotFound when listID is unknown.
	Get(ctx context.Context, listID string) (*ListRecord, error)
	Put(ctx context.Context, record *ListRecord) error
}

// ServiceInterface is the issuer side of a revocation list.
type ServiceInterface interface {
	CreateStatusEntry(ctx context.Context) (*statustype.RevocationList2020Status, error)
	UpdateStatus(ctx context.Context, status *verifiable.TypedID, revoked bool) error
	PublishList(ctx context.Context, issued time.Time) (string, error)
	RevocationList(ctx context.Context) (*revocationlist.RevocationList, error)
}
