// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var registerCmd = &cobra.Command{
	Use:   "register [options] <label[.space]>",
	Short: "Registers the given name to yourself",
	Long: `
Issues a direct registration for the given name, paying the space's
per-name price from your balance.

# Registers "bob" in the root space.
$ names-cli register bob
<<COMMENT
success
COMMENT

# Registers "bob" in the public space "xns".
$ names-cli register bob.xns
<<COMMENT
success
COMMENT

`,
	RunE: registerFunc,
}

func registerFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	label, space, err := splitName(args[0])
	if err != nil {
		return err
	}

	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	pay, err := opPayment(ctx, cli, space)
	if err != nil {
		return err
	}

	op := &registry.RegisterOp{
		BaseOp: &registry.BaseOp{Payment: pay},
		Label:  label,
		Space:  space,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("registered %s (op %s)", args[0], reply.OpID)
	return nil
}
