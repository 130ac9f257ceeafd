/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rlmanager

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/trustbloc/vc-go/verifiable"

	"github.com/trustbloc/rl2020/internal/logfields"
	vcapi "github.com/trustbloc/rl2020/pkg/doc/vc"
	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/observability/metrics"
	"github.com/trustbloc/rl2020/pkg/observability/metrics/noop"
)

var logger = log.New("rl-manager")

// Config holds the settings of a Manager.
type Config struct {
	// ListVCURL is the id of the list credential and of the list itself.
	ListVCURL string
	IssuerDID string
	KeyRef    string

	// StatusLocator is the id given to issued statuses. Defaults to IssuerDID.
	StatusLocator string
	SizeKB        int
	LedgerIndex   string
	Store         RecordStore
	Ledger        ledger.Store
	Signer        vcapi.CredentialSigner
	Metrics       metrics.Metrics
}

// Manager owns one revocation list: it assigns status indexes, flips bits and
// publishes signed list credentials to the ledger.
type Manager struct {
	listVCURL     string
	issuerDID     string
	keyRef        string
	statusLocator string
	sizeKB        int
	ledgerIndex   string
	store         RecordStore
	ledger        ledger.Store
	signer        vcapi.CredentialSigner
	metrics       metrics.Metrics
	mutex         sync.Mutex
}

// New returns new revocation list manager.
func New(config *Config) (*Manager, error) {
	switch {
	case config.ListVCURL == "":
		return nil, errors.New("list VC URL is required")
	case config.IssuerDID == "":
		return nil, errors.New("issuer DID is required")
	case config.LedgerIndex == "":
		return nil, errors.New("ledger index is required")
	case config.Store == nil || config.Ledger == nil || config.Signer == nil:
		return nil, errors.New("record store, ledger and signer are required")
	case config.SizeKB < revocationlist.MinSizeKB || config.SizeKB > revocationlist.MaxSizeKB:
		return nil, fmt.Errorf("%w: %d KB", revocationlist.ErrInvalidSize, config.SizeKB)
	}

	m := &Manager{
		listVCURL:     config.ListVCURL,
		issuerDID:     config.IssuerDID,
		keyRef:        config.KeyRef,
		statusLocator: config.StatusLocator,
		sizeKB:        config.SizeKB,
		ledgerIndex:   config.LedgerIndex,
		store:         config.Store,
		ledger:        config.Ledger,
		signer:        config.Signer,
		metrics:       config.Metrics,
	}

	if m.statusLocator == "" {
		m.statusLocator = m.issuerDID
	}

	if m.metrics == nil {
		m.metrics = noop.GetMetrics()
	}

	return m, nil
}

// CreateStatusEntry assigns the next free index of the list to a new credential.
func (m *Manager) CreateStatusEntry(ctx context.Context) (*statustype.RevocationList2020Status, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	record, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	if record.NextIndex >= record.List.Capacity() || record.NextIndex > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s", ErrListFull, m.listVCURL)
	}

	index := record.NextIndex
	record.NextIndex++

	if err = m.store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store revocation list: %w", err)
	}

	logger.Debugc(ctx, "RL Manager - status entry created",
		logfields.WithListID(m.listVCURL), logfields.WithStatusIndex(index))

	return statustype.NewRevocationList2020Status(m.statusLocator, uint32(index), m.listVCURL), nil
}

// UpdateStatus revokes (revoked=true) or resets the credential identified by status.
func (m *Manager) UpdateStatus(ctx context.Context, status *verifiable.TypedID, revoked bool) error {
	rlStatus, err := statustype.FromTypedID(status)
	if err != nil {
		return err
	}

	listCredential, err := rlStatus.ListCredential()
	if err != nil {
		return err
	}

	if listCredential != m.listVCURL {
		return fmt.Errorf("%w: %s", ErrUnknownList, listCredential)
	}

	index, err := rlStatus.Index()
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	record, err := m.load(ctx)
	if err != nil {
		return err
	}

	start := time.Now()

	if revoked {
		err = record.List.Revoke(uint64(index))
	} else {
		err = record.List.Reset(uint64(index))
	}

	if err != nil {
		return fmt.Errorf("update index %d: %w", index, err)
	}

	m.metrics.ListUpdateTime(time.Since(start))

	if revoked {
		m.metrics.CredentialRevoked()
	} else {
		m.metrics.CredentialReset()
	}

	if err = m.store.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to store revocation list: %w", err)
	}

	logger.Infoc(ctx, "RL Manager - status updated",
		logfields.WithListID(m.listVCURL), logfields.WithStatusIndex(uint64(index)), logfields.WithRevoked(revoked))

	return nil
}

// PublishList signs the current list credential and publishes it on the ledger index.
// It returns the ledger message id.
func (m *Manager) PublishList(ctx context.Context, issued time.Time) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	record, err := m.load(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()

	vc, err := statustype.CreateListVC(m.listVCURL, m.issuerDID, issued, record.List)
	if err != nil {
		return "", fmt.Errorf("failed to create list VC: %w", err)
	}

	vcBytes, err := vc.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal VC: %w", err)
	}

	m.metrics.ListEncodeTime(time.Since(start))

	signed, err := m.signer.Sign(ctx, m.keyRef, vcBytes)
	if err != nil {
		return "", fmt.Errorf("failed to sign VC: %w", err)
	}

	messageID, err := m.ledger.Publish(ctx, m.ledgerIndex, signed)
	if err != nil {
		return "", fmt.Errorf("failed to publish VC: %w", err)
	}

	m.metrics.ListPublishTime(time.Since(start))

	logger.Infoc(ctx, "RL Manager - list published",
		logfields.WithListID(m.listVCURL), logfields.WithLedgerIndex(m.ledgerIndex), logfields.WithMessageID(messageID))

	return messageID, nil
}

// RevocationList returns the current state of the list.
func (m *Manager) RevocationList(ctx context.Context) (*revocationlist.RevocationList, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	record, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	return record.List, nil
}

func (m *Manager) load(ctx context.Context) (*ListRecord, error) {
	record, err := m.store.Get(ctx, m.listVCURL)
	if err == nil {
		return record, nil
	}

	if !errors.Is(err, ErrDataNotFound) {
		return nil, fmt.Errorf("failed to get revocation list from store: %w", err)
	}

	list, err := revocationlist.New(m.listVCURL, m.sizeKB)
	if err != nil {
		return nil, err
	}

	record = &ListRecord{List: list}

	if err = m.store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store revocation list: %w", err)
	}

	logger.Debugc(ctx, "RL Manager - new revocation list created",
		logfields.WithListID(m.listVCURL), logfields.WithSizeKB(m.sizeKB))

	return record, nil
}
