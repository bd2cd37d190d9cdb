// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestClaimOp(t *testing.T) {
	t.Parallel()

	creatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(creatorPriv.PublicKey)

	operatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	operator := crypto.PubkeyToAddress(operatorPriv.PublicKey)

	registrantPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	registrant := crypto.PubkeyToAddress(registrantPriv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.Operator = operator
	g.ExclusivityWindow = 0
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, creator, g.PublicSpaceFee*2)
	mustSetBalance(t, db, registrant, g.MinPublicPrice*10)

	// Nothing accrued yet.
	c := testOpContext(t, g, db, creator, 1)
	cl := &ClaimOp{BaseOp: &BaseOp{}}
	if err := cl.Execute(c); !errors.Is(err, ErrNothingToClaim) {
		t.Fatalf("expected %v, got %v", ErrNothingToClaim, err)
	}

	cr := &CreateOp{
		BaseOp: &BaseOp{Payment: g.PublicSpaceFee},
		Space:  "xns",
		Price:  g.MinPublicPrice,
	}
	if err := cr.Execute(c); err != nil {
		t.Fatal(err)
	}

	c2 := testOpContext(t, g, db, registrant, 2)
	reg := &RegisterOp{BaseOp: &BaseOp{Payment: g.MinPublicPrice}, Label: "bob", Space: "xns"}
	if err := reg.Execute(c2); err != nil {
		t.Fatal(err)
	}

	// The creation fee split credits the creator itself, plus the
	// registration's creator share.
	wantPending := g.PublicSpaceFee*g.CreatorBps/feeDenominator +
		g.MinPublicPrice*g.CreatorBps/feeDenominator
	pending, err := GetPendingFees(db, creator)
	if err != nil {
		t.Fatal(err)
	}
	if pending != wantPending {
		t.Fatalf("pending expected %d, got %d", wantPending, pending)
	}

	// Conservation: burned + creator pending + operator pending equals
	// everything charged so far.
	totalCharged := g.PublicSpaceFee + g.MinPublicPrice
	burned, err := GetTotalBurned(db)
	if err != nil {
		t.Fatal(err)
	}
	opPending, err := GetPendingFees(db, operator)
	if err != nil {
		t.Fatal(err)
	}
	if burned+pending+opPending != totalCharged {
		t.Fatalf("fee split does not conserve: %d+%d+%d != %d",
			burned, pending, opPending, totalCharged)
	}

	// Claim to self.
	balBefore, err := GetBalance(db, creator)
	if err != nil {
		t.Fatal(err)
	}
	cl = &ClaimOp{BaseOp: &BaseOp{}}
	if err := cl.Execute(c); err != nil {
		t.Fatal(err)
	}
	if cl.Amount() != wantPending {
		t.Fatalf("claim amount expected %d, got %d", wantPending, cl.Amount())
	}
	balAfter, err := GetBalance(db, creator)
	if err != nil {
		t.Fatal(err)
	}
	if balAfter != balBefore+wantPending {
		t.Fatalf("balance expected %d, got %d", balBefore+wantPending, balAfter)
	}

	// Second claim finds nothing.
	if err := cl.Copy().Execute(c); !errors.Is(err, ErrNothingToClaim) {
		t.Fatalf("expected %v, got %v", ErrNothingToClaim, err)
	}

	// Claim to a third party.
	c3 := testOpContext(t, g, db, operator, 3)
	cl3 := &ClaimOp{BaseOp: &BaseOp{}, Recipient: registrant}
	if err := cl3.Execute(c3); err != nil {
		t.Fatal(err)
	}
	regBal, err := GetBalance(db, registrant)
	if err != nil {
		t.Fatal(err)
	}
	if want := g.MinPublicPrice*10 - g.MinPublicPrice + opPending; regBal != want {
		t.Fatalf("registrant balance expected %d, got %d", want, regBal)
	}
}
