// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var private bool

func init() {
	createCmd.PersistentFlags().BoolVar(
		&private,
		"private",
		false,
		"create a private space (creator-sponsored registrations only)",
	)
}

var createCmd = &cobra.Command{
	Use:   "create [options] <space> <price>",
	Short: "Creates a new space with you as creator",
	Long: `
Creates a space, paying the one-time creation fee. The price is the
per-name registration price; public spaces require a unique price on
the step grid.

# Creates the public space "xns" at 1000 units per name.
$ names-cli create xns 1000
<<COMMENT
success
COMMENT

# Creates a private space.
$ names-cli create corp 100000 --private
<<COMMENT
success
COMMENT

`,
	RunE: createFunc,
}

func createFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	price, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}

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
		if private {
			pay = g.PrivateSpaceFee
		}
	}

	op := &registry.CreateOp{
		BaseOp:  &registry.BaseOp{Payment: pay},
		Space:   args[0],
		Price:   price,
		Private: private,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("created space %s (op %s)", args[0], reply.OpID)
	return nil
}
