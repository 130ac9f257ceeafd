/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuscheck

//go:generate mockgen -destination ledger_mocks_test.go -package statuscheck_test -mock_names Store=MockLedgerStore github.com/trustbloc/rl2020/pkg/ledger Store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/trustbloc/vc-go/verifiable"

	"github.com/trustbloc/rl2020/internal/logfields"
	vcapi "github.com/trustbloc/rl2020/pkg/doc/vc"
	"github.com/trustbloc/rl2020/pkg/doc/vc/jws"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/observability/metrics"
	"github.com/trustbloc/rl2020/pkg/observability/metrics/noop"
)

var logger = log.New("status-check")

const (
	// DefaultRetries is a retry count suited to a list that is published right before it is checked.
	DefaultRetries = 3

	defaultRetryInterval = time.Second
)

var (
	// ErrListMismatch is returned when the newest list on the ledger is not the list the status refers to.
	ErrListMismatch = errors.New("revocation list credential mismatch")
	// ErrIssuerMismatch is returned when no list on the index was issued by the expected DID.
	ErrIssuerMismatch = errors.New("revocation list issuer mismatch")
)

// Config holds the collaborators of Service.
type Config struct {
	Ledger      ledger.Store
	Resolver    vcapi.DIDResolver
	Verifier    vcapi.CredentialVerifier
	LedgerIndex string

	// Retries is the number of extra attempts made when the ledger has no usable entry yet.
	// Zero disables retries.
	Retries       uint64
	RetryInterval time.Duration
	Metrics       metrics.Metrics
}

// ListVC is a verified revocation list credential read from the ledger.
type ListVC struct {
	Info      *statustype.ListVCInfo
	Record    []byte
	MessageID string
}

// Result is the outcome of a status check.
type Result struct {
	Revoked   bool
	Index     uint32
	ListVCID  string
	Issued    time.Time
	MessageID string
}

// Service checks credential statuses against the newest list published on a ledger.
type Service struct {
	ledger        ledger.Store
	resolver      vcapi.DIDResolver
	verifier      vcapi.CredentialVerifier
	ledgerIndex   string
	retries       uint64
	retryInterval time.Duration
	metrics       metrics.Metrics
}

// New returns new status check service.
func New(config *Config) *Service {
	s := &Service{
		ledger:        config.Ledger,
		resolver:      config.Resolver,
		verifier:      config.Verifier,
		ledgerIndex:   config.LedgerIndex,
		retries:       config.Retries,
		retryInterval: config.RetryInterval,
		metrics:       config.Metrics,
	}

	if s.retryInterval <= 0 {
		s.retryInterval = defaultRetryInterval
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	return s
}

// Check reports whether the credential identified by status has been revoked. When
// issuerDID is not empty only lists issued by it are considered.
func (s *Service) Check(ctx context.Context, status *verifiable.TypedID, issuerDID string) (*Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.StatusCheckTime(time.Since(start))
	}()

	rlStatus, err := statustype.FromTypedID(status)
	if err != nil {
		return nil, err
	}

	index, err := rlStatus.Index()
	if err != nil {
		return nil, err
	}

	listCredential, err := rlStatus.ListCredential()
	if err != nil {
		return nil, err
	}

	latest, err := s.latest(ctx, s.ledgerIndex, issuerDID)
	if err != nil {
		return nil, err
	}

	if latest.Info.ID != listCredential {
		return nil, fmt.Errorf("%w: status refers to %s, newest list is %s",
			ErrListMismatch, listCredential, latest.Info.ID)
	}

	rl, err := latest.Info.RevocationList()
	if err != nil {
		return nil, fmt.Errorf("decode revocation list: %w", err)
	}

	revoked, err := rl.IsRevoked(uint64(index))
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "status checked",
		logfields.WithListID(listCredential), logfields.WithStatusIndex(uint64(index)), logfields.WithRevoked(revoked))

	return &Result{
		Revoked:   revoked,
		Index:     index,
		ListVCID:  latest.Info.ID,
		Issued:    latest.Info.Issued,
		MessageID: latest.MessageID,
	}, nil
}

// LatestListVC returns the verified list credential with the newest issuance date
// published on index. Messages that cannot be verified are skipped.
func (s *Service) LatestListVC(ctx context.Context, index string) (*ListVC, error) {
	return s.latest(ctx, index, "")
}

func (s *Service) latest(ctx context.Context, index, issuerDID string) (*ListVC, error) {
	var latest *ListVC

	err := backoff.RetryNotify(
		func() error {
			messages, err := s.ledger.Messages(ctx, index)
			if err != nil {
				return fmt.Errorf("read ledger index %s: %w", index, err)
			}

			latest, err = s.newest(ctx, messages, issuerDID)

			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), s.retries), ctx),
		func(retryErr error, t time.Duration) {
			logger.Warnc(ctx, "No usable revocation list on the ledger, will sleep before trying again.",
				logfields.WithLedgerIndex(index), logfields.WithDuration(t), log.WithError(retryErr))
		},
	)
	if err != nil {
		return nil, err
	}

	return latest, nil
}

func (s *Service) newest(ctx context.Context, messages []ledger.Message, issuerDID string) (*ListVC, error) {
	entries := make([]ledger.Entry, 0, len(messages))
	infos := make(map[string]*statustype.ListVCInfo, len(messages))
	otherIssuers := 0

	for _, msg := range messages {
		info, err := s.verify(msg.Payload)
		if err != nil {
			logger.Warnc(ctx, "skipping ledger message", logfields.WithMessageID(msg.ID), log.WithError(err))

			continue
		}

		if issuerDID != "" && info.Issuer != issuerDID {
			otherIssuers++

			continue
		}

		infos[msg.ID] = info
		entries = append(entries, ledger.Entry{Timestamp: info.Issued, Payload: msg.Payload, MessageID: msg.ID})
	}

	if len(entries) == 0 && otherIssuers > 0 {
		return nil, backoff.Permanent(fmt.Errorf("%w: no list issued by %s", ErrIssuerMismatch, issuerDID))
	}

	entry, err := ledger.Newest(entries)
	if err != nil {
		return nil, err
	}

	return &ListVC{Info: infos[entry.MessageID], Record: entry.Payload, MessageID: entry.MessageID}, nil
}

func (s *Service) verify(record []byte) (*statustype.ListVCInfo, error) {
	unverified, err := jws.Payload(record)
	if err != nil {
		return nil, err
	}

	claimed, err := statustype.ParseListVC(unverified)
	if err != nil {
		return nil, err
	}

	doc, err := s.resolver.Resolve(claimed.Issuer)
	if err != nil {
		return nil, fmt.Errorf("resolve issuer %s: %w", claimed.Issuer, err)
	}

	payload, err := s.verifier.Verify(record, doc)
	if err != nil {
		return nil, err
	}

	return statustype.ParseListVC(payload)
}
