// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &CreateOp{}

// CreateOp opens a new space with the sender as creator.
type CreateOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	Space   string `serialize:"true" json:"space"`
	Price   uint64 `serialize:"true" json:"price"`
	Private bool   `serialize:"true" json:"private"`
}

func (cr *CreateOp) Execute(c *OpContext) error {
	fee, err := checkNewSpace(c, cr.Space, cr.Price, cr.Private)
	if err != nil {
		return err
	}
	if err := c.charge(cr.Payment, fee); err != nil {
		return err
	}
	if err := createSpace(c, cr.Space, cr.Price, cr.Private, c.Sender); err != nil {
		return err
	}
	return Settle(c, fee, c.Sender, cr.Private)
}

func (cr *CreateOp) Copy() Op {
	return &CreateOp{
		BaseOp:  cr.BaseOp.Copy(),
		Space:   cr.Space,
		Price:   cr.Price,
		Private: cr.Private,
	}
}

func (cr *CreateOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cr.Magic, Create,
		[]tdata.Type{
			{Name: tdSpace, Type: tdString},
			{Name: tdPrice, Type: tdUint64},
			{Name: tdPrivate, Type: tdBool},
			{Name: tdPayment, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdSpace:   cr.Space,
			tdPrice:   strconv.FormatUint(cr.Price, 10),
			tdPrivate: cr.Private,
			tdPayment: strconv.FormatUint(cr.Payment, 10),
		},
	)
}
