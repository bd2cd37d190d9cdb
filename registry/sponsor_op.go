// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ava-labs/namesvm/auth"
	"github.com/ava-labs/namesvm/parser"
	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &SponsorOp{}

// SponsorOp registers a name on behalf of a recipient who authorized it
// out-of-band. The sender pays; the recipient owns.
type SponsorOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	Recipient common.Address `serialize:"true" json:"recipient"`
	Label     string         `serialize:"true" json:"label"`
	Space     string         `serialize:"true" json:"space"`

	// Proof is either a recipient signature over the authorization digest
	// or an opaque payload for the recipient's delegate validator.
	Proof []byte `serialize:"true" json:"proof"`
}

func (s *SponsorOp) Execute(c *OpContext) error {
	if err := parser.CheckContents(s.Label); err != nil {
		return err
	}
	space := spaceOrRoot(s.Space, c.Genesis)
	info, exists, err := GetSpaceInfo(c.Database, space)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSpaceMissing
	}
	if err := checkSponsor(c, info); err != nil {
		return err
	}
	if err := c.charge(s.Payment, info.Price); err != nil {
		return err
	}
	if err := c.verifyAuthorization(&auth.AuthorizationRequest{
		Recipient: s.Recipient,
		Label:     s.Label,
		Space:     space,
	}, s.Proof); err != nil {
		return err
	}
	if err := bindName(c, space, s.Label, s.Recipient); err != nil {
		return err
	}
	return Settle(c, info.Price, info.Creator, info.Private)
}

func (s *SponsorOp) Copy() Op {
	proof := make([]byte, len(s.Proof))
	copy(proof, s.Proof)
	return &SponsorOp{
		BaseOp:    s.BaseOp.Copy(),
		Recipient: s.Recipient,
		Label:     s.Label,
		Space:     s.Space,
		Proof:     proof,
	}
}

func (s *SponsorOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		s.Magic, Sponsor,
		[]tdata.Type{
			{Name: tdRecipient, Type: tdAddress},
			{Name: tdLabel, Type: tdString},
			{Name: tdSpace, Type: tdString},
			{Name: tdProof, Type: tdBytes},
			{Name: tdPayment, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdRecipient: s.Recipient.Hex(),
			tdLabel:     s.Label,
			tdSpace:     s.Space,
			tdProof:     hexutil.Encode(s.Proof),
			tdPayment:   strconv.FormatUint(s.Payment, 10),
		},
	)
}
