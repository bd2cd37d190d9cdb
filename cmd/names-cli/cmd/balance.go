// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [address]",
	Short: "Prints an address's balance, pending fees, and burn attribution",
	Long: `
Without an argument, prints the figures for your own key.

$ names-cli balance
<<COMMENT
balance 9000000 pending 50000 burned 900000 (total 900000)
COMMENT

`,
	RunE: balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	var addr common.Address
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("%q is not a valid address", args[0])
		}
		addr = common.HexToAddress(args[0])
	} else {
		priv, err := loadKey()
		if err != nil {
			return err
		}
		addr = crypto.PubkeyToAddress(priv.PublicKey)
	}

	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	bal, err := cli.Balance(ctx, addr)
	if err != nil {
		return err
	}
	pending, err := cli.PendingFees(ctx, addr)
	if err != nil {
		return err
	}
	mine, total, err := cli.Burned(ctx, addr)
	if err != nil {
		return err
	}
	color.Green("balance %d pending %d burned %d (total %d)", bal, pending, mine, total)
	return nil
}
