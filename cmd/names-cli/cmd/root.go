// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "names-cli" implements the namesvm client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	workDir        string
	payment        uint64

	rootCmd = &cobra.Command{
		Use:        "names-cli",
		Short:      "NamesVM CLI",
		SuggestFor: []string{"names-cli", "namescli", "namesctl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,
		registerCmd,
		sponsorCmd,
		batchCmd,
		createCmd,
		bootstrapCmd,
		claimFeesCmd,
		resolveCmd,
		infoCmd,
		balanceCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".names-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9090",
		"RPC endpoint for the registry daemon",
	)
	rootCmd.PersistentFlags().Uint64Var(
		&payment,
		"payment",
		0,
		"native units attached to the operation (0 = exact required amount is looked up)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
