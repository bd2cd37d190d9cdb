// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var bootstrapPrivate bool

func init() {
	bootstrapCmd.PersistentFlags().BoolVar(
		&bootstrapPrivate,
		"private",
		false,
		"bootstrap a private space",
	)
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [options] <space> <price> <beneficiary>",
	Short: "Creates a space on behalf of a beneficiary",
	Long: `
Creates a space whose creator is the beneficiary address rather than
you. Inside the onboarding window only the operator key may do this and
the creation fee is waived; afterwards anyone may, paying the fee.

$ names-cli bootstrap xns 1000 0xf8f8... --private-key-file=.operator-pk
<<COMMENT
success
COMMENT

`,
	RunE: bootstrapFunc,
}

func bootstrapFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	price, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}
	if !common.IsHexAddress(args[2]) {
		return fmt.Errorf("%q is not a valid address", args[2])
	}
	beneficiary := common.HexToAddress(args[2])

	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	pay := payment
	if pay == 0 {
		g, err := cli.Genesis(ctx)
		if err != nil {
			return err
		}
		pay = g.PublicSpaceFee
		if bootstrapPrivate {
			pay = g.PrivateSpaceFee
		}
	}

	op := &registry.BootstrapOp{
		BaseOp:      &registry.BaseOp{Payment: pay},
		Space:       args[0],
		Price:       price,
		Private:     bootstrapPrivate,
		Beneficiary: beneficiary,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("bootstrapped space %s for %s (op %s)", args[0], beneficiary.Hex(), reply.OpID)
	return nil
}
