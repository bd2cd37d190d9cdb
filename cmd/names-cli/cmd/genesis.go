// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/registry"
)

var (
	genesisFile string

	magic     uint64
	rootSpace string
	operator  string
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().Uint64Var(
		&magic,
		"magic",
		0,
		"deployment magic (0 keeps the default)",
	)
	genesisCmd.PersistentFlags().StringVar(
		&rootSpace,
		"root-space",
		"",
		"root space name (empty keeps the default)",
	)
	genesisCmd.PersistentFlags().StringVar(
		&operator,
		"operator",
		"",
		"operator address",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [options] [allocations-file]",
	Short: "Creates a new genesis file",
	Long: `
Writes a genesis JSON suitable for namesd --genesis-file. The optional
allocations file is a JSON array of {"address", "balance"} records.

$ names-cli genesis allocations.json --magic 7 --operator 0xf8f8...
<<COMMENT
created genesis
COMMENT

`,
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	g := registry.DefaultGenesis()
	if magic > 0 {
		g.Magic = magic
	}
	if rootSpace != "" {
		g.RootSpace = rootSpace
	}
	if operator != "" {
		if !common.IsHexAddress(operator) {
			return fmt.Errorf("%q is not a valid address", operator)
		}
		g.Operator = common.HexToAddress(operator)
	}
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &g.Allocations); err != nil {
			return err
		}
	}
	if err := g.Verify(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis at %s", genesisFile)
	return nil
}
