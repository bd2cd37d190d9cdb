// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/registry"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "Prints the server's recent activity",
	Long: `
$ names-cli activity
<<COMMENT
[1660000000] register bob.avax -> 0xf8f8...
COMMENT

`,
	RunE: activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	acts, err := cli.RecentActivity(ctx)
	if err != nil {
		return err
	}
	for _, a := range acts {
		switch a.Typ {
		case registry.RegisteredActivity:
			name := a.Label
			if a.Space != "" {
				name = fmt.Sprintf("%s.%s", a.Label, a.Space)
			}
			color.Green("[%d] register %s -> %s", a.Tmstmp, name, a.Owner)
		case registry.SpaceActivity:
			color.Cyan("[%d] space %s price %d creator %s private %v", a.Tmstmp, a.Space, a.Price, a.Owner, a.Private)
		case registry.ClaimActivity:
			color.Yellow("[%d] claim %d %s -> %s", a.Tmstmp, a.Amount, a.Owner, a.To)
		default:
			color.White("[%d] %s", a.Tmstmp, a.Typ)
		}
	}
	return nil
}
