/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
)

func TestCreateListVC(t *testing.T) {
	rl, err := revocationlist.New(listVCURL, revocationlist.MinSizeKB)
	require.NoError(t, err)
	require.NoError(t, rl.Revoke(2500))

	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	vc, err := CreateListVC(listVCURL, issuerDID, issued, rl)
	require.NoError(t, err)

	contents := vc.Contents()
	require.Equal(t, listVCURL, contents.ID)
	require.Equal(t, []string{vcType, RevocationList2020VCType}, contents.Types)
	require.Equal(t, []string{DefVCContext, RevocationList2020Context}, contents.Context)
	require.Equal(t, issuerDID, contents.Issuer.ID)
	require.Len(t, contents.Subject, 1)
	require.Equal(t, listVCURL+"#list", contents.Subject[0].ID)
	require.Equal(t, rl.EncodedList(), contents.Subject[0].CustomFields["encodedList"])

	data, err := vc.MarshalJSON()
	require.NoError(t, err)

	info, err := ParseListVC(data)
	require.NoError(t, err)
	require.Equal(t, listVCURL, info.ID)
	require.Equal(t, issuerDID, info.Issuer)
	require.True(t, issued.Equal(info.Issued))
	require.Equal(t, rl.EncodedList(), info.EncodedList)

	decoded, err := info.RevocationList()
	require.NoError(t, err)

	revoked, err := decoded.IsRevoked(2500)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestParseListVC(t *testing.T) {
	t.Run("subject object and issuer object", func(t *testing.T) {
		info, err := ParseListVC([]byte(`{
			"id": "urn:list:1",
			"type": ["VerifiableCredential", "RevocationList2020Credential"],
			"issuer": {"id": "did:example:1"},
			"issuanceDate": "2024-01-02T03:04:05.123Z",
			"credentialSubject": {"id": "urn:list:1#list", "encodedList": "H4sI"}
		}`))
		require.NoError(t, err)
		require.Equal(t, "did:example:1", info.Issuer)
		require.Equal(t, "H4sI", info.EncodedList)
		require.Equal(t, 123*time.Millisecond, time.Duration(info.Issued.Nanosecond()))
	})

	t.Run("validFrom", func(t *testing.T) {
		info, err := ParseListVC([]byte(`{
			"type": "RevocationList2020Credential",
			"validFrom": "2024-01-02T03:04:05Z",
			"credentialSubject": [{"encodedList": "abc"}]
		}`))
		require.NoError(t, err)
		require.Equal(t, 2024, info.Issued.Year())
		require.Equal(t, "abc", info.EncodedList)
	})

	t.Run("errors", func(t *testing.T) {
		for name, payload := range map[string]string{
			"not json":     `{"id":`,
			"wrong type":   `{"type":["VerifiableCredential"],"credentialSubject":{"encodedList":"abc"}}`,
			"no list":      `{"type":"RevocationList2020Credential","credentialSubject":{}}`,
			"bad issuance": `{"type":"RevocationList2020Credential","issuanceDate":"yesterday","credentialSubject":{"encodedList":"abc"}}`, //nolint:lll
		} {
			_, err := ParseListVC([]byte(payload))
			require.ErrorIs(t, err, ErrInvalidListVC, name)
		}
	})
}
