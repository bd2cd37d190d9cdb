// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [options] <space>",
	Short: "Prints a space's record",
	Long: `
$ names-cli info xns
<<COMMENT
price 1000 creator 0xf8f8... private false exclusive true
COMMENT

`,
	RunE: infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	exists, info, err := cli.SpaceInfo(ctx, args[0])
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("space %s not found", args[0])
		return nil
	}
	exclusive, err := cli.InExclusivityWindow(ctx, args[0])
	if err != nil {
		return err
	}
	color.Green(
		"price %d creator %s created %d private %v exclusive %v",
		info.Price, info.Creator.Hex(), info.Created, info.Private, exclusive,
	)
	return nil
}
