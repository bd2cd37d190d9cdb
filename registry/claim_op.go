// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &ClaimOp{}

// ClaimOp sweeps the sender's accrued fee share to a recipient. A zero
// recipient pays out to the sender itself.
type ClaimOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	Recipient common.Address `serialize:"true" json:"recipient"`

	amount uint64
}

// Amount reports how much the last Execute paid out.
func (cl *ClaimOp) Amount() uint64 { return cl.amount }

func (cl *ClaimOp) Execute(c *OpContext) error {
	recipient := cl.Recipient
	if recipient == zeroAddress {
		recipient = c.Sender
	}
	pending, err := GetPendingFees(c.Database, c.Sender)
	if err != nil {
		return err
	}
	if pending == 0 {
		return ErrNothingToClaim
	}
	if err := zeroPendingFees(c.Database, c.Sender); err != nil {
		return err
	}
	if _, err := ModifyBalance(c.Database, recipient, true, pending); err != nil {
		return err
	}
	cl.amount = pending
	c.record(&Activity{
		Typ:    ClaimActivity,
		Owner:  c.Sender.Hex(),
		To:     recipient.Hex(),
		Amount: pending,
	})
	return nil
}

func (cl *ClaimOp) Copy() Op {
	return &ClaimOp{
		BaseOp:    cl.BaseOp.Copy(),
		Recipient: cl.Recipient,
	}
}

func (cl *ClaimOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cl.Magic, Claim,
		[]tdata.Type{
			{Name: tdRecipient, Type: tdAddress},
			{Name: tdPayment, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdRecipient: cl.Recipient.Hex(),
			tdPayment:   strconv.FormatUint(cl.Payment, 10),
		},
	)
}
