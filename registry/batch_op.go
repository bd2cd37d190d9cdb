// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"strconv"

	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ava-labs/namesvm/auth"
	"github.com/ava-labs/namesvm/parser"
	"github.com/ava-labs/namesvm/tdata"
)

var _ Op = &BatchOp{}

// BatchItem is one registration within a BatchOp. All items in a batch must
// target the same space.
type BatchItem struct {
	Recipient common.Address `serialize:"true" json:"recipient"`
	Label     string         `serialize:"true" json:"label"`
	Space     string         `serialize:"true" json:"space"`
	Proof     []byte         `serialize:"true" json:"proof"`
}

// BatchOp registers many names in one operation. Malformed items and bad
// proofs fail the whole batch; items that merely collide with existing state
// (label taken, recipient already bound) are skipped. The sender is charged
// only for the items that land.
type BatchOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`

	Items []*BatchItem `serialize:"true" json:"items"`

	successes int
}

// Successes reports how many items were registered by the last Execute.
func (b *BatchOp) Successes() int { return b.successes }

func (b *BatchOp) Execute(c *OpContext) error {
	if len(b.Items) == 0 {
		return ErrEmptyBatch
	}

	space := spaceOrRoot(b.Items[0].Space, c.Genesis)

	// Structural pass first so a malformed item cannot consume funds.
	for _, item := range b.Items {
		if spaceOrRoot(item.Space, c.Genesis) != space {
			return ErrMixedSpaces
		}
		if err := parser.CheckContents(item.Label); err != nil {
			return err
		}
		if item.Recipient == zeroAddress {
			return ErrInvalidRecipient
		}
		if err := c.verifyAuthorization(&auth.AuthorizationRequest{
			Recipient: item.Recipient,
			Label:     item.Label,
			Space:     space,
		}, item.Proof); err != nil {
			return err
		}
	}

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

	b.successes = 0
	for _, item := range b.Items {
		_, bound, err := GetOwned(c.Database, item.Recipient)
		if err != nil {
			return err
		}
		if bound {
			continue
		}
		taken, err := HasName(c.Database, space, item.Label)
		if err != nil {
			return err
		}
		if taken {
			continue
		}
		if err := bindName(c, space, item.Label, item.Recipient); err != nil {
			return err
		}
		if err := Settle(c, info.Price, info.Creator, info.Private); err != nil {
			return err
		}
		b.successes++
	}
	if b.successes == 0 {
		return ErrNoSuccessfulRegistrations
	}

	required, err := smath.Mul64(info.Price, uint64(b.successes))
	if err != nil {
		return err
	}
	return c.charge(b.Payment, required)
}

func (b *BatchOp) Copy() Op {
	items := make([]*BatchItem, len(b.Items))
	for i, item := range b.Items {
		proof := make([]byte, len(item.Proof))
		copy(proof, item.Proof)
		items[i] = &BatchItem{
			Recipient: item.Recipient,
			Label:     item.Label,
			Space:     item.Space,
			Proof:     proof,
		}
	}
	return &BatchOp{
		BaseOp: b.BaseOp.Copy(),
		Items:  items,
	}
}

func (b *BatchOp) TypedData() *tdata.TypedData {
	items := make([]interface{}, len(b.Items))
	for i, item := range b.Items {
		items[i] = tdata.TypedDataMessage{
			tdRecipient: item.Recipient.Hex(),
			tdLabel:     item.Label,
			tdSpace:     item.Space,
			tdProof:     hexutil.Encode(item.Proof),
		}
	}
	return tdata.CreateTypedDataWithTypes(
		b.Magic, Batch,
		tdata.Types{
			Batch: []tdata.Type{
				{Name: tdItems, Type: "BatchItem[]"},
				{Name: tdPayment, Type: tdUint64},
			},
			"BatchItem": []tdata.Type{
				{Name: tdRecipient, Type: tdAddress},
				{Name: tdLabel, Type: tdString},
				{Name: tdSpace, Type: tdString},
				{Name: tdProof, Type: tdBytes},
			},
		},
		tdata.TypedDataMessage{
			tdItems:   items,
			tdPayment: strconv.FormatUint(b.Payment, 10),
		},
	)
}
