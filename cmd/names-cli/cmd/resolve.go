// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [options] <name|address>",
	Short: "Resolves a name to its owner, or an address to its name",
	Long: `
# Forward lookup.
$ names-cli resolve bob.avax
<<COMMENT
0xf8f8...
COMMENT

# Bare labels live in the root space.
$ names-cli resolve bob
<<COMMENT
0xf8f8...
COMMENT

# Reverse lookup.
$ names-cli resolve 0xf8f8...
<<COMMENT
bob
COMMENT

`,
	RunE: resolveFunc,
}

func resolveFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()

	if common.IsHexAddress(args[0]) {
		exists, name, err := cli.ResolveName(ctx, common.HexToAddress(args[0]))
		if err != nil {
			return err
		}
		if !exists {
			color.Yellow("%s owns no name", args[0])
			return nil
		}
		color.Green("%s", name)
		return nil
	}

	exists, owner, err := cli.Resolve(ctx, args[0])
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("%s is not registered", args[0])
		return nil
	}
	color.Green("%s", owner.Hex())
	return nil
}
