/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuscheck_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/rl2020/pkg/doc/vc/jws"
	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/ledger/memlog"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
	"github.com/trustbloc/rl2020/pkg/service/statuscheck"
	"github.com/trustbloc/rl2020/pkg/storage/memstore"
)

const (
	issuerDID   = "did:example:issuer"
	keyRef      = "key-1"
	listVCURL   = "https://example.com/credentials/status/3"
	ledgerIndex = "rl-index"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	keys     *jws.Keyring
	ledger   *memlog.Log
	manager  *rlmanager.Manager
	resolver *jws.StaticResolver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	keys := jws.NewKeyring()

	_, err := keys.GenerateKey(keyRef)
	require.NoError(t, err)

	doc, err := keys.DIDDocument(issuerDID)
	require.NoError(t, err)

	env := &testEnv{
		keys:     keys,
		ledger:   memlog.New(),
		resolver: jws.NewStaticResolver(doc),
	}

	env.manager, err = rlmanager.New(&rlmanager.Config{
		ListVCURL:   listVCURL,
		IssuerDID:   issuerDID,
		KeyRef:      keyRef,
		SizeKB:      revocationlist.MinSizeKB,
		LedgerIndex: ledgerIndex,
		Store:       memstore.NewRecordStore(),
		Ledger:      env.ledger,
		Signer:      jws.NewSigner(keys),
	})
	require.NoError(t, err)

	return env
}

func (e *testEnv) service(l ledger.Store) *statuscheck.Service {
	return statuscheck.New(&statuscheck.Config{
		Ledger:        l,
		Resolver:      e.resolver,
		Verifier:      jws.NewVerifier(),
		LedgerIndex:   ledgerIndex,
		Retries:       1,
		RetryInterval: time.Millisecond,
	})
}

func TestService_Check(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	status := statustype.NewRevocationList2020Status(issuerDID, 2500, listVCURL)

	_, err := env.manager.PublishList(ctx, base)
	require.NoError(t, err)

	require.NoError(t, env.manager.UpdateStatus(ctx, status.TypedID(), true))

	newestID, err := env.manager.PublishList(ctx, base.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, env.manager.UpdateStatus(ctx, status.TypedID(), false))

	// published later on the ledger but with an older issuance date
	_, err = env.manager.PublishList(ctx, base.Add(time.Minute))
	require.NoError(t, err)

	svc := env.service(env.ledger)

	t.Run("newest issuance date wins", func(t *testing.T) {
		result, err := svc.Check(ctx, status.TypedID(), issuerDID)
		require.NoError(t, err)
		require.True(t, result.Revoked)
		require.Equal(t, uint32(2500), result.Index)
		require.Equal(t, listVCURL, result.ListVCID)
		require.Equal(t, newestID, result.MessageID)
		require.True(t, base.Add(time.Hour).Equal(result.Issued))
	})

	t.Run("other index not revoked", func(t *testing.T) {
		other := statustype.NewRevocationList2020Status(issuerDID, 7, listVCURL)

		result, err := svc.Check(ctx, other.TypedID(), "")
		require.NoError(t, err)
		require.False(t, result.Revoked)
	})

	t.Run("list mismatch", func(t *testing.T) {
		other := statustype.NewRevocationList2020Status(issuerDID, 7, "https://example.com/other")

		_, err := svc.Check(ctx, other.TypedID(), issuerDID)
		require.ErrorIs(t, err, statuscheck.ErrListMismatch)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		_, err := svc.Check(ctx, status.TypedID(), "did:example:other")
		require.ErrorIs(t, err, statuscheck.ErrIssuerMismatch)
	})

	t.Run("invalid status", func(t *testing.T) {
		typedID := statustype.NewRevocationList2020Status(issuerDID, 7, listVCURL).TypedID()
		delete(typedID.CustomFields, statustype.RevocationListIndex)

		_, err := svc.Check(ctx, typedID, issuerDID)
		require.ErrorIs(t, err, statustype.ErrInvalidStatus)
	})

	t.Run("newer list from another issuer is skipped", func(t *testing.T) {
		const otherDID = "did:example:other-issuer"

		otherKeys := jws.NewKeyring()

		_, err := otherKeys.GenerateKey(keyRef)
		require.NoError(t, err)

		otherDoc, err := otherKeys.DIDDocument(otherDID)
		require.NoError(t, err)

		env.resolver.Add(otherDoc)

		other, err := rlmanager.New(&rlmanager.Config{
			ListVCURL:   listVCURL,
			IssuerDID:   otherDID,
			KeyRef:      keyRef,
			SizeKB:      revocationlist.MinSizeKB,
			LedgerIndex: ledgerIndex,
			Store:       memstore.NewRecordStore(),
			Ledger:      env.ledger,
			Signer:      jws.NewSigner(otherKeys),
		})
		require.NoError(t, err)

		_, err = other.PublishList(ctx, base.Add(2*time.Hour))
		require.NoError(t, err)

		result, err := svc.Check(ctx, status.TypedID(), issuerDID)
		require.NoError(t, err)
		require.True(t, result.Revoked)
		require.Equal(t, newestID, result.MessageID)

		latest, err := svc.LatestListVC(ctx, ledgerIndex)
		require.NoError(t, err)
		require.Equal(t, otherDID, latest.Info.Issuer)
	})

	t.Run("index beyond capacity", func(t *testing.T) {
		outOfRange := statustype.NewRevocationList2020Status(issuerDID, 1<<20, listVCURL)

		_, err := svc.Check(ctx, outOfRange.TypedID(), issuerDID)
		require.Error(t, err)
	})
}

func TestService_LatestListVC(t *testing.T) {
	ctx := context.Background()

	t.Run("skips records signed with an unknown key", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.manager.PublishList(ctx, base)
		require.NoError(t, err)

		forger := jws.NewKeyring()

		_, err = forger.GenerateKey(keyRef)
		require.NoError(t, err)

		forged, err := jws.NewSigner(forger).Sign(ctx, keyRef, []byte(`{
			"id": "`+listVCURL+`",
			"type": ["VerifiableCredential", "RevocationList2020Credential"],
			"issuer": "`+issuerDID+`",
			"issuanceDate": "2030-01-01T00:00:00Z",
			"credentialSubject": {"encodedList": "eJwDAAAAAAE"}
		}`))
		require.NoError(t, err)

		_, err = env.ledger.Publish(ctx, ledgerIndex, forged)
		require.NoError(t, err)

		_, err = env.ledger.Publish(ctx, ledgerIndex, []byte("garbage"))
		require.NoError(t, err)

		latest, err := env.service(env.ledger).LatestListVC(ctx, ledgerIndex)
		require.NoError(t, err)
		require.True(t, base.Equal(latest.Info.Issued))
		require.NotEmpty(t, latest.Record)
	})

	t.Run("no entries", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service(env.ledger).LatestListVC(ctx, "empty")
		require.ErrorIs(t, err, ledger.ErrNoEntries)
	})

	t.Run("ledger error", func(t *testing.T) {
		env := newTestEnv(t)
		ledgerErr := errors.New("ledger down")

		l := NewMockLedgerStore(gomock.NewController(t))
		l.EXPECT().Messages(gomock.Any(), ledgerIndex).Times(2).Return(nil, ledgerErr)

		_, err := env.service(l).LatestListVC(ctx, ledgerIndex)
		require.ErrorIs(t, err, ledgerErr)
	})

	t.Run("retries until the ledger answers", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.manager.PublishList(ctx, base)
		require.NoError(t, err)

		messages, err := env.ledger.Messages(ctx, ledgerIndex)
		require.NoError(t, err)

		l := NewMockLedgerStore(gomock.NewController(t))
		gomock.InOrder(
			l.EXPECT().Messages(gomock.Any(), ledgerIndex).Times(1).Return(nil, errors.New("not yet")),
			l.EXPECT().Messages(gomock.Any(), ledgerIndex).Times(1).Return(messages, nil),
		)

		latest, err := env.service(l).LatestListVC(ctx, ledgerIndex)
		require.NoError(t, err)
		require.Equal(t, listVCURL, latest.Info.ID)
	})

	t.Run("zero retries", func(t *testing.T) {
		env := newTestEnv(t)

		l := NewMockLedgerStore(gomock.NewController(t))
		l.EXPECT().Messages(gomock.Any(), "empty").Times(1).Return(nil, nil)

		svc := statuscheck.New(&statuscheck.Config{
			Ledger:      l,
			Resolver:    env.resolver,
			Verifier:    jws.NewVerifier(),
			LedgerIndex: ledgerIndex,
		})

		_, err := svc.LatestListVC(ctx, "empty")
		require.ErrorIs(t, err, ledger.ErrNoEntries)
	})
}
