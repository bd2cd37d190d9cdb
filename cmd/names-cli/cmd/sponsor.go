// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
)

var (
	proofFile        string
	recipientKeyFile string
)

func init() {
	sponsorCmd.PersistentFlags().StringVar(
		&proofFile,
		"proof-file",
		"",
		"file holding the recipient's authorization proof (hex)",
	)
	sponsorCmd.PersistentFlags().StringVar(
		&recipientKeyFile,
		"recipient-key-file",
		"",
		"recipient private key file; signs the authorization locally instead of --proof-file",
	)
}

var sponsorCmd = &cobra.Command{
	Use:   "sponsor [options] <recipient> <label[.space]>",
	Short: "Registers the given name to a recipient, paying on their behalf",
	Long: `
Issues a sponsored registration. You pay; the recipient owns the name.
The recipient must have authorized the exact binding, either with a
signature over the authorization digest (--proof-file, or
--recipient-key-file to produce it locally) or through a registered
delegate validator that accepts the proof payload.

# Sponsors "alice" in "corp" for the recipient address.
$ names-cli sponsor 0xf8f8... alice.corp --proof-file=proof.hex
<<COMMENT
success
COMMENT

`,
	RunE: sponsorFunc,
}

func sponsorFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	priv, err := loadKey()
	if err != nil {
		return err
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%q is not a valid address", args[0])
	}
	recipient := common.HexToAddress(args[0])
	label, space, err := splitName(args[1])
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

	var proof []byte
	switch {
	case recipientKeyFile != "":
		rpriv, err := crypto.LoadECDSA(recipientKeyFile)
		if err != nil {
			return err
		}
		proof, err = client.SignProof(ctx, cli, label, space, rpriv)
		if err != nil {
			return err
		}
	case proofFile != "":
		b, err := os.ReadFile(proofFile)
		if err != nil {
			return err
		}
		proof, err = hexutil.Decode(string(b))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --proof-file or --recipient-key-file is required")
	}

	op := &registry.SponsorOp{
		BaseOp:    &registry.BaseOp{Payment: pay},
		Recipient: recipient,
		Label:     label,
		Space:     space,
		Proof:     proof,
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv, client.WithVerbose())
	if err != nil {
		return err
	}
	color.Green("sponsored %s for %s (op %s)", args[1], recipient.Hex(), reply.OpID)
	return nil
}
