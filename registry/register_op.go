// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	"github.com/ava-labs/namesvm/parser"
	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &RegisterOp{}

// RegisterOp binds a name directly to the sender. Only public spaces allow
// direct registration; inside the exclusivity window only the space's
// creator may use it.
type RegisterOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	// Label must be ^[a-z0-9-]{1,20}$ without edge or repeated hyphens.
	Label string `serialize:"true" json:"label"`

	// Space of the registration; empty means the root space.
	Space string `serialize:"true" json:"space"`
}

func (r *RegisterOp) Execute(c *OpContext) error {
	if err := parser.CheckContents(r.Label); err != nil {
		return err
	}
	space := spaceOrRoot(r.Space, c.Genesis)
	info, exists, err := GetSpaceInfo(c.Database, space)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSpaceMissing
	}
	if info.Private {
		return ErrPrivateSpace
	}
	if inExclusivityWindow(c.Genesis, info, c.BlockTime) && c.Sender != info.Creator {
		return ErrNotSpaceCreator
	}
	if err := c.charge(r.Payment, info.Price); err != nil {
		return err
	}
	if err := bindName(c, space, r.Label, c.Sender); err != nil {
		return err
	}
	return Settle(c, info.Price, info.Creator, info.Private)
}

func (r *RegisterOp) Copy() Op {
	return &RegisterOp{
		BaseOp: r.BaseOp.Copy(),
		Label:  r.Label,
		Space:  r.Space,
	}
}

func (r *RegisterOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		r.Magic, Register,
		[]tdata.Type{
			{Name: tdLabel, Type: tdString},
			{Name: tdSpace, Type: tdString},
			{Name: tdPayment, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdLabel:   r.Label,
			tdSpace:   r.Space,
			tdPayment: strconv.FormatUint(r.Payment, 10),
		},
	)
}
