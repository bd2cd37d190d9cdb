// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var batchCmd = &cobra.Command{
	Use:   "batch [options] <items-file>",
	Short: "Registers many names in one operation",
	Long: `
Issues a batch registration from a JSON items file. All items must
target the same space. Items whose label is taken or whose recipient
already owns a name are skipped; you pay only for the ones that land.

The items file is a JSON array:
[
  {"recipient": "0xf8f8...", "label": "alice", "space": "corp", "proof": "0x..."},
  {"recipient": "0x1212...", "label": "bob",   "space": "corp", "proof": "0x..."}
]

$ names-cli batch items.json --payment 200000
<<COMMENT
registered 2/2
COMMENT

`,
	RunE: batchFunc,
}

type batchItemFile struct {
	Recipient common.Address `json:"recipient"`
	Label     string         `json:"label"`
	Space     string         `json:"space"`
	Proof     hexutil.Bytes  `json:"proof"`
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var raw []batchItemFile
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("no items in %s", args[0])
	}

	items := make([]*registry.BatchItem, len(raw))
	for i, it := range raw {
		items[i] = &registry.BatchItem{
			Recipient: it.Recipient,
			Label:     it.Label,
			Space:     it.Space,
			Proof:     it.Proof,
		}
	}

	cli := newClient()
	ctx, cancel := newContext()
	defer cancel()
	pay := payment
	if pay == 0 {
		unit, err := opPayment(ctx, cli, items[0].Space)
		if err != nil {
			return err
		}
		pay = unit * uint64(len(items))
	}

	op := &registry.BatchOp{
		BaseOp: &registry.BaseOp{Payment: pay},
		Items:  items,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("registered %d/%d (op %s)", reply.Registered, len(items), reply.OpID)
	return nil
}
