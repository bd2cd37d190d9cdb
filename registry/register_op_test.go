// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namesvm/parser"
)

func TestRegisterOp(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	operatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	operator := crypto.PubkeyToAddress(operatorPriv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.Operator = operator
	g.ExclusivityWindow = 100
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, sender, g.RootSpacePrice*10)
	mustSetBalance(t, db, operator, g.RootSpacePrice*10)

	tt := []struct {
		op        *RegisterOp
		blockTime uint64
		sender    common.Address
		err       error
	}{
		{ // bad label syntax
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "Bob"},
			blockTime: 1,
			sender:    sender,
			err:       parser.ErrInvalidContents,
		},
		{ // label too long
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: strings.Repeat("a", parser.MaxIdentifierSize+1)},
			blockTime: 1,
			sender:    sender,
			err:       parser.ErrInvalidContents,
		},
		{ // unknown space
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "bob", Space: "nope"},
			blockTime: 1,
			sender:    sender,
			err:       ErrSpaceMissing,
		},
		{ // root creator exclusivity still in force
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "bob"},
			blockTime: g.ExclusivityWindow,
			sender:    sender,
			err:       ErrNotSpaceCreator,
		},
		{ // creator may register inside the window
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "ops"},
			blockTime: 1,
			sender:    operator,
			err:       nil,
		},
		{ // window elapsed, anyone may register
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "bob"},
			blockTime: g.ExclusivityWindow + 1,
			sender:    sender,
			err:       nil,
		},
		{ // declared payment below the space price
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice - 1}, Label: "carol"},
			blockTime: g.ExclusivityWindow + 1,
			sender:    sender,
			err:       ErrInsufficientPayment,
		},
		{ // sender already owns a name
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "carol"},
			blockTime: g.ExclusivityWindow + 1,
			sender:    sender,
			err:       ErrOwnerBound,
		},
		{ // one name per address, even for the creator
			op:        &RegisterOp{BaseOp: &BaseOp{Payment: g.RootSpacePrice}, Label: "bob"},
			blockTime: g.ExclusivityWindow + 1,
			sender:    operator,
			err:       ErrOwnerBound,
		},
	}
	for i, tv := range tt {
		c := testOpContext(t, g, db, tv.sender, tv.blockTime)
		err := tv.op.Execute(c)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: op.Execute err expected %v, got %v", i, tv.err, err)
		}
		if tv.err != nil {
			continue
		}
		info, exists, err := GetNameInfo(db, g.RootSpace, tv.op.Label)
		if err != nil {
			t.Fatalf("#%d: failed to get name info %v", i, err)
		}
		if !exists {
			t.Fatalf("#%d: failed to find name info", i)
		}
		if info.Owner != tv.sender {
			t.Fatalf("#%d: unexpected owner %s", i, info.Owner.Hex())
		}
		owned, bound, err := GetOwned(db, tv.sender)
		if err != nil {
			t.Fatal(err)
		}
		if !bound || owned != tv.op.Label {
			t.Fatalf("#%d: reverse record expected %q, got %q", i, tv.op.Label, owned)
		}
	}

	// A registration in the root space settles 90/5/5; the root creator is
	// the operator, so both non-burned shares accrue to it.
	burned, err := GetBurned(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	if want := g.RootSpacePrice * g.BurnBps / feeDenominator; burned != want {
		t.Fatalf("burned expected %d, got %d", want, burned)
	}
	pending, err := GetPendingFees(db, operator)
	if err != nil {
		t.Fatal(err)
	}
	// Two successful registrations, each leaving 10% with the operator.
	if want := 2 * (g.RootSpacePrice - g.RootSpacePrice*g.BurnBps/feeDenominator); pending != want {
		t.Fatalf("pending fees expected %d, got %d", want, pending)
	}
}

func TestRegisterOpPrivateSpace(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, creator, g.PrivateSpaceFee*2)

	c := testOpContext(t, g, db, creator, 1)
	cr := &CreateOp{
		BaseOp:  &BaseOp{Payment: g.PrivateSpaceFee},
		Space:   "corp",
		Price:   g.MinPrivatePrice,
		Private: true,
	}
	if err := cr.Execute(c); err != nil {
		t.Fatal(err)
	}

	// Even the creator cannot direct-register in a private space.
	reg := &RegisterOp{BaseOp: &BaseOp{Payment: g.MinPrivatePrice}, Label: "alice", Space: "corp"}
	if err := reg.Execute(c); !errors.Is(err, ErrPrivateSpace) {
		t.Fatalf("expected %v, got %v", ErrPrivateSpace, err)
	}
}
