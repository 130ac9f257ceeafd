/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package listcmd

import (
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
)

type recordOutput struct {
	Record string `json:"record"`
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Convert between encoded lists and full list records",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	cmd.AddCommand(recordEncodeCmd(), recordDecodeCmd())

	return cmd
}

func recordEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a list as a full record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := cmdutils.GetUserSetVarFromString(cmd, listIDFlagName, listIDEnvKey, false)
			if err != nil {
				return err
			}

			encodedList, err := cmdutils.GetUserSetVarFromString(cmd, encodedListFlagName, encodedListEnvKey, false)
			if err != nil {
				return err
			}

			rl, err := revocationlist.FromEncoded(id, encodedList)
			if err != nil {
				return err
			}

			record, err := revocationlist.CompressEncode(rl)
			if err != nil {
				return err
			}

			return writeJSON(cmd, &recordOutput{Record: record})
		},
	}

	cmd.Flags().StringP(listIDFlagName, "", "", listIDFlagUsage)
	cmd.Flags().StringP(encodedListFlagName, "", "", encodedListFlagUsage)

	return cmd
}

func recordDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a full record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := cmdutils.GetUserSetVarFromString(cmd, recordFlagName, recordEnvKey, false)
			if err != nil {
				return err
			}

			rl, err := revocationlist.DecodeDecompress(record)
			if err != nil {
				return err
			}

			return writeJSON(cmd, toListOutput(rl))
		},
	}

	cmd.Flags().StringP(recordFlagName, "", "", recordFlagUsage)

	return cmd
}
