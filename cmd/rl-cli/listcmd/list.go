/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package listcmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
)

type listOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	SizeKB      int    `json:"sizeKB"`
	EncodedList string `json:"encodedList"`
}

type checkOutput struct {
	ID      string `json:"id"`
	Index   uint64 `json:"index"`
	Revoked bool   `json:"revoked"`
}

// GetCommands returns the offline list commands.
func GetCommands() []*cobra.Command {
	return []*cobra.Command{
		createCmd(),
		updateCmd("revoke", "Revoke the credential at an index", true),
		updateCmd("reset", "Reset the credential at an index", false),
		checkCmd(),
		recordCmd(),
	}
}

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty revocation list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := cmdutils.GetUserSetVarFromString(cmd, listIDFlagName, listIDEnvKey, false)
			if err != nil {
				return err
			}

			sizeKB := revocationlist.MinSizeKB

			if v := cmdutils.GetUserSetOptionalVarFromString(cmd, sizeKBFlagName, sizeKBEnvKey); v != "" {
				sizeKB, err = strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("invalid %s: %w", sizeKBFlagName, err)
				}
			}

			rl, err := revocationlist.New(id, sizeKB)
			if err != nil {
				return err
			}

			return writeJSON(cmd, toListOutput(rl))
		},
	}

	cmd.Flags().StringP(listIDFlagName, "", "", listIDFlagUsage)
	cmd.Flags().StringP(sizeKBFlagName, "", "", sizeKBFlagUsage)

	return cmd
}

func updateCmd(use, short string, revoked bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, index, err := listAndIndex(cmd)
			if err != nil {
				return err
			}

			if revoked {
				err = rl.Revoke(index)
			} else {
				err = rl.Reset(index)
			}

			if err != nil {
				return err
			}

			return writeJSON(cmd, toListOutput(rl))
		},
	}

	addListFlags(cmd)

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the credential at an index is revoked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, index, err := listAndIndex(cmd)
			if err != nil {
				return err
			}

			revoked, err := rl.IsRevoked(index)
			if err != nil {
				return err
			}

			return writeJSON(cmd, &checkOutput{ID: rl.ID(), Index: index, Revoked: revoked})
		},
	}

	addListFlags(cmd)

	return cmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(listIDFlagName, "", "", listIDFlagUsage)
	cmd.Flags().StringP(encodedListFlagName, "", "", encodedListFlagUsage)
	cmd.Flags().StringP(indexFlagName, "", "", indexFlagUsage)
}

func listAndIndex(cmd *cobra.Command) (*revocationlist.RevocationList, uint64, error) {
	id, err := cmdutils.GetUserSetVarFromString(cmd, listIDFlagName, listIDEnvKey, false)
	if err != nil {
		return nil, 0, err
	}

	encodedList, err := cmdutils.GetUserSetVarFromString(cmd, encodedListFlagName, encodedListEnvKey, false)
	if err != nil {
		return nil, 0, err
	}

	indexStr, err := cmdutils.GetUserSetVarFromString(cmd, indexFlagName, indexEnvKey, false)
	if err != nil {
		return nil, 0, err
	}

	index, err := strconv.ParseUint(indexStr, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid %s: %w", indexFlagName, err)
	}

	rl, err := revocationlist.FromEncoded(id, encodedList)
	if err != nil {
		return nil, 0, err
	}

	return rl, index, nil
}

func toListOutput(rl *revocationlist.RevocationList) *listOutput {
	return &listOutput{
		ID:          rl.ID(),
		Type:        rl.Type(),
		SizeKB:      rl.SizeKB(),
		EncodedList: rl.EncodedList(),
	}
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
