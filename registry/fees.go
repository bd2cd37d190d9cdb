// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/database"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
)

const feeDenominator = 10000

// BurnLedger is the external collaborator that permanently removes value
// from circulation, crediting attribution 1:1 to the paying party.
type BurnLedger interface {
	Burn(db database.Database, amount uint64, attributedTo common.Address) error
}

// RecordedBurn persists per-address burn attribution and the total burned
// supply in the registry's own store.
type RecordedBurn struct{}

var _ BurnLedger = RecordedBurn{}

func (RecordedBurn) Burn(db database.Database, amount uint64, attributedTo common.Address) error {
	return addBurned(db, attributedTo, amount)
}

// Settle splits [total] into a burned portion, the space creator's share,
// and the operator's share. For private spaces the creator share folds into
// the operator's. Truncation dust lands on the operator so the three
// portions always sum exactly to [total].
func Settle(c *OpContext, total uint64, creator common.Address, private bool) error {
	g := c.Genesis

	bp, err := smath.Mul64(total, g.BurnBps)
	if err != nil {
		return ErrTransferFailure
	}
	burn := bp / feeDenominator

	creatorShare := uint64(0)
	if !private {
		cp, err := smath.Mul64(total, g.CreatorBps)
		if err != nil {
			return ErrTransferFailure
		}
		creatorShare = cp / feeDenominator
	}
	operatorShare := total - burn - creatorShare

	if burn > 0 {
		if err := c.Burner.Burn(c.Database, burn, c.Sender); err != nil {
			return err
		}
	}
	if creatorShare > 0 {
		if err := addPendingFees(c.Database, creator, creatorShare); err != nil {
			return err
		}
	}
	if operatorShare > 0 {
		if err := addPendingFees(c.Database, g.Operator, operatorShare); err != nil {
			return err
		}
	}
	return nil
}
