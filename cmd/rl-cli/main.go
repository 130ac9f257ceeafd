/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the RevocationList2020 command line: offline list manipulation,
// an end-to-end demo against a ledger and a read-only status REST server.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/rl2020/cmd/rl-cli/listcmd"
	"github.com/trustbloc/rl2020/cmd/rl-cli/startcmd"
)

var logger = log.New("rl-cli")

func main() {
	rootCmd := &cobra.Command{
		Use: "rl-cli",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(listcmd.GetCommands()...)
	rootCmd.AddCommand(
		startcmd.GetDemoCmd(),
		startcmd.GetServeCmd(&startcmd.HTTPServer{}),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run rl-cli", log.WithError(err))
	}
}
