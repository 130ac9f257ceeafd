/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package listcmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
)

const listID = "https://example.com/credentials/status/3"

func execute(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	root := &cobra.Command{Use: "rl-cli", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(GetCommands()...)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs(args)

	return out, root.Execute()
}

func decode[T any](t *testing.T, out *bytes.Buffer) *T {
	t.Helper()

	v := new(T)
	require.NoError(t, json.Unmarshal(out.Bytes(), v))

	return v
}

func TestListCommands(t *testing.T) {
	out, err := execute(t, "create", "--id", listID)
	require.NoError(t, err)

	created := decode[listOutput](t, out)
	require.Equal(t, listID, created.ID)
	require.Equal(t, revocationlist.Type, created.Type)
	require.Equal(t, revocationlist.MinSizeKB, created.SizeKB)

	out, err = execute(t, "revoke", "--id", listID, "--encoded-list", created.EncodedList, "--index", "2500")
	require.NoError(t, err)

	revoked := decode[listOutput](t, out)
	require.NotEqual(t, created.EncodedList, revoked.EncodedList)

	out, err = execute(t, "check", "--id", listID, "--encoded-list", revoked.EncodedList, "--index", "2500")
	require.NoError(t, err)
	require.True(t, decode[checkOutput](t, out).Revoked)

	out, err = execute(t, "reset", "--id", listID, "--encoded-list", revoked.EncodedList, "--index", "2500")
	require.NoError(t, err)

	reset := decode[listOutput](t, out)

	out, err = execute(t, "check", "--id", listID, "--encoded-list", reset.EncodedList, "--index", "2500")
	require.NoError(t, err)
	require.False(t, decode[checkOutput](t, out).Revoked)

	t.Run("env", func(t *testing.T) {
		t.Setenv(listIDEnvKey, listID)
		t.Setenv(sizeKBEnvKey, "32")

		out, err := execute(t, "create")
		require.NoError(t, err)
		require.Equal(t, 32, decode[listOutput](t, out).SizeKB)
	})
}

func TestListCommandErrors(t *testing.T) {
	out, err := execute(t, "create", "--id", listID)
	require.NoError(t, err)

	encodedList := decode[listOutput](t, out).EncodedList

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "create without id", args: []string{"create"}, errMsg: listIDFlagName},
		{name: "create bad size", args: []string{"create", "--id", listID, "--size-kb", "big"}, errMsg: "invalid size-kb"},
		{name: "create size out of range", args: []string{"create", "--id", listID, "--size-kb", "8"},
			errMsg: "invalid revocation list size"},
		{name: "revoke without list", args: []string{"revoke", "--id", listID, "--index", "1"},
			errMsg: encodedListFlagName},
		{name: "revoke bad index", args: []string{"revoke", "--id", listID, "--encoded-list", encodedList,
			"--index", "-1"}, errMsg: "invalid index"},
		{name: "revoke out of range", args: []string{"revoke", "--id", listID, "--encoded-list", encodedList,
			"--index", "131072"}, errMsg: "out of range"},
		{name: "check bad list", args: []string{"check", "--id", listID, "--encoded-list", "%%%", "--index", "1"},
			errMsg: "decod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestRecordCommands(t *testing.T) {
	out, err := execute(t, "create", "--id", listID)
	require.NoError(t, err)

	created := decode[listOutput](t, out)

	out, err = execute(t, "record", "encode", "--id", listID, "--encoded-list", created.EncodedList)
	require.NoError(t, err)

	record := decode[recordOutput](t, out).Record
	require.NotContains(t, record, "=")

	out, err = execute(t, "record", "decode", "--record", record)
	require.NoError(t, err)
	require.Equal(t, created, decode[listOutput](t, out))

	t.Run("malformed record", func(t *testing.T) {
		_, err := execute(t, "record", "decode", "--record", "!!")
		require.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		_, err := execute(t, "record")
		require.NoError(t, err)
	})
}
