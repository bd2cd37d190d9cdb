// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var claimFeesCmd = &cobra.Command{
	Use:   "claim-fees [options] [recipient]",
	Short: "Sweeps your accrued fee share to a recipient",
	Long: `
Pays out every native unit accrued to you as a space creator or
operator. Without an argument the payout goes to your own balance.

$ names-cli claim-fees
<<COMMENT
claimed 50000
COMMENT

$ names-cli claim-fees 0xf8f8...
<<COMMENT
claimed 50000
COMMENT

`,
	RunE: claimFeesFunc,
}

func claimFeesFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	var recipient common.Address
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("%q is not a valid address", args[0])
		}
		recipient = common.HexToAddress(args[0])
	}

	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	op := &registry.ClaimOp{
		BaseOp:    &registry.BaseOp{},
		Recipient: recipient,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("claimed %d (op %s)", reply.Claimed, reply.OpID)
	return nil
}
