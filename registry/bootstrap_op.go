// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &BootstrapOp{}

// BootstrapOp opens a space on behalf of a beneficiary, who becomes its
// creator. Inside the onboarding window only the operator may issue it and
// the space fee is waived; afterwards anyone may and pays the usual fee.
type BootstrapOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	Space       string         `serialize:"true" json:"space"`
	Price       uint64         `serialize:"true" json:"price"`
	Private     bool           `serialize:"true" json:"private"`
	Beneficiary common.Address `serialize:"true" json:"beneficiary"`
}

func (b *BootstrapOp) Execute(c *OpContext) error {
	if b.Beneficiary == zeroAddress {
		return ErrInvalidRecipient
	}
	fee, err := checkNewSpace(c, b.Space, b.Price, b.Private)
	if err != nil {
		return err
	}
	g := c.Genesis
	if c.BlockTime <= g.GenesisTime+g.OnboardingWindow {
		if c.Sender != g.Operator {
			return ErrNotOperator
		}
		return createSpace(c, b.Space, b.Price, b.Private, b.Beneficiary)
	}
	if err := c.charge(b.Payment, fee); err != nil {
		return err
	}
	if err := createSpace(c, b.Space, b.Price, b.Private, b.Beneficiary); err != nil {
		return err
	}
	return Settle(c, fee, b.Beneficiary, b.Private)
}

func (b *BootstrapOp) Copy() Op {
	return &BootstrapOp{
		BaseOp:      b.BaseOp.Copy(),
		Space:       b.Space,
		Price:       b.Price,
		Private:     b.Private,
		Beneficiary: b.Beneficiary,
	}
}

func (b *BootstrapOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		b.Magic, Bootstrap,
		[]tdata.Type{
			{Name: tdSpace, Type: tdString},
			{Name: tdPrice, Type: tdUint64},
			{Name: tdPrivate, Type: tdBool},
			{Name: tdBeneficiary, Type: tdAddress},
			{Name: tdPayment, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdSpace:       b.Space,
			tdPrice:       strconv.FormatUint(b.Price, 10),
			tdPrivate:     b.Private,
			tdBeneficiary: b.Beneficiary.Hex(),
			tdPayment:     strconv.FormatUint(b.Payment, 10),
		},
	)
}
