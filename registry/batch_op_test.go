// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestBatchOp(t *testing.T) {
	t.Parallel()

	creatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(creatorPriv.PublicKey)

	recipients := make([]common.Address, 3)
	for i := range recipients {
		priv, err := crypto.GenerateKey()
		if err != nil {
			t.Fatal(err)
		}
		recipients[i] = crypto.PubkeyToAddress(priv.PublicKey)
	}

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, creator, g.PublicSpaceFee+g.MinPublicPrice*100)

	c := testOpContext(t, g, db, creator, 1)
	for _, r := range recipients {
		c.Authorizer.SetDelegate(r, acceptDelegate{})
	}

	cr := &CreateOp{
		BaseOp: &BaseOp{Payment: g.PublicSpaceFee},
		Space:  "xns",
		Price:  g.MinPublicPrice,
	}
	if err := cr.Execute(c); err != nil {
		t.Fatal(err)
	}
	price := g.MinPublicPrice

	item := func(i int, label string) *BatchItem {
		return &BatchItem{
			Recipient: recipients[i],
			Label:     label,
			Space:     "xns",
			Proof:     []byte(fmt.Sprintf("proof-%s", label)),
		}
	}

	tt := []struct {
		op  *BatchOp
		err error
	}{
		{ // no items
			op:  &BatchOp{BaseOp: &BaseOp{Payment: price}, Items: []*BatchItem{}},
			err: ErrEmptyBatch,
		},
		{ // items must share a space
			op: &BatchOp{BaseOp: &BaseOp{Payment: price * 2}, Items: []*BatchItem{
				item(0, "a0"),
				{Recipient: recipients[1], Label: "a1", Space: "other", Proof: []byte("x")},
			}},
			err: ErrMixedSpaces,
		},
		{ // a zero recipient fails the whole batch
			op: &BatchOp{BaseOp: &BaseOp{Payment: price * 2}, Items: []*BatchItem{
				item(0, "a0"),
				{Label: "a1", Space: "xns", Proof: []byte("x")},
			}},
			err: ErrInvalidRecipient,
		},
	}
	for i, tv := range tt {
		if err := tv.op.Execute(c); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: op.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	// Occupy a0 so the batch below has to skip it.
	pre := &BatchOp{BaseOp: &BaseOp{Payment: price}, Items: []*BatchItem{item(0, "a0")}}
	if err := pre.Execute(c); err != nil {
		t.Fatal(err)
	}
	if pre.Successes() != 1 {
		t.Fatalf("expected 1 success, got %d", pre.Successes())
	}

	balBefore, err := GetBalance(db, creator)
	if err != nil {
		t.Fatal(err)
	}

	// recipients[0] is bound and "a0" is taken; only the two fresh items
	// should land and only they should be paid for.
	op := &BatchOp{BaseOp: &BaseOp{Payment: price * 3}, Items: []*BatchItem{
		item(0, "b0"),
		item(1, "b1"),
		item(2, "b2"),
	}}
	if err := op.Execute(c); err != nil {
		t.Fatal(err)
	}
	if op.Successes() != 2 {
		t.Fatalf("expected 2 successes, got %d", op.Successes())
	}
	balAfter, err := GetBalance(db, creator)
	if err != nil {
		t.Fatal(err)
	}
	if want := balBefore - price*2; balAfter != want {
		t.Fatalf("balance expected %d, got %d", want, balAfter)
	}
	for i, want := range []string{"", "b1.xns", "b2.xns"} {
		owned, bound, err := GetOwned(db, recipients[i])
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			if !bound || owned != "a0.xns" {
				t.Fatalf("recipient 0 expected a0.xns, got %q", owned)
			}
			continue
		}
		if !bound || owned != want {
			t.Fatalf("recipient %d expected %q, got %q", i, want, owned)
		}
	}

	// Every remaining item collides.
	again := op.Copy().(*BatchOp)
	if err := again.Execute(c); !errors.Is(err, ErrNoSuccessfulRegistrations) {
		t.Fatalf("expected %v, got %v", ErrNoSuccessfulRegistrations, err)
	}
}
