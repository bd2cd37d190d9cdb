// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namesvm/auth"
)

func TestSponsorOpDirectProof(t *testing.T) {
	t.Parallel()

	creatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(creatorPriv.PublicKey)

	recipientPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	recipient := crypto.PubkeyToAddress(recipientPriv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.Operator = creator
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, creator, g.RootSpacePrice*10)

	sign := func(label, space string) []byte {
		dh, err := (&auth.AuthorizationRequest{
			Recipient: recipient,
			Label:     label,
			Space:     space,
		}).Digest(g.Magic)
		if err != nil {
			t.Fatal(err)
		}
		sig, err := auth.Sign(dh, recipientPriv)
		if err != nil {
			t.Fatal(err)
		}
		return sig
	}

	c := testOpContext(t, g, db, creator, 1)

	// A proof signed over a different label does not transfer.
	op := &SponsorOp{
		BaseOp:    &BaseOp{Payment: g.RootSpacePrice},
		Recipient: recipient,
		Label:     "bob",
		Proof:     sign("alice", g.RootSpace),
	}
	if err := op.Execute(c); !errors.Is(err, ErrInvalidProof) {
		t.Fatalf("expected %v, got %v", ErrInvalidProof, err)
	}

	// The digest covers the normalized space, so a proof over the root
	// space sentinel authorizes the bare-label form as well.
	op.Proof = sign("bob", g.RootSpace)
	if err := op.Execute(c); err != nil {
		t.Fatal(err)
	}

	owner, exists, err := GetNameInfo(db, g.RootSpace, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if !exists || owner.Owner != recipient {
		t.Fatalf("name not bound to recipient")
	}

	// Replaying the same proof cannot register anything else: the recipient
	// is bound and the label taken.
	if err := op.Execute(c); !errors.Is(err, ErrOwnerBound) {
		t.Fatalf("expected %v, got %v", ErrOwnerBound, err)
	}
}

func TestSponsorOpDelegateProof(t *testing.T) {
	t.Parallel()

	creatorPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	creator := crypto.PubkeyToAddress(creatorPriv.PublicKey)

	recipientPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	recipient := crypto.PubkeyToAddress(recipientPriv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	mustLoadGenesis(t, g, db)
	mustSetBalance(t, db, creator, g.PrivateSpaceFee+g.MinPrivatePrice*10)

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

	op := &SponsorOp{
		BaseOp:    &BaseOp{Payment: g.MinPrivatePrice},
		Recipient: recipient,
		Label:     "alice",
		Space:     "corp",
		Proof:     []byte("opaque-payload"),
	}

	// No delegate and a non-signature proof.
	if err := op.Execute(c); !errors.Is(err, ErrInvalidProof) {
		t.Fatalf("expected %v, got %v", ErrInvalidProof, err)
	}

	// A delegate that answers with the wrong acceptance value rejects.
	c.Authorizer.SetDelegate(recipient, rejectDelegate{})
	if err := op.Execute(c); !errors.Is(err, ErrInvalidProof) {
		t.Fatalf("expected %v, got %v", ErrInvalidProof, err)
	}

	c.Authorizer.SetDelegate(recipient, acceptDelegate{})
	if err := op.Execute(c); err != nil {
		t.Fatal(err)
	}
	owned, bound, err := GetOwned(db, recipient)
	if err != nil {
		t.Fatal(err)
	}
	if !bound || owned != "alice.corp" {
		t.Fatalf("reverse record expected %q, got %q", "alice.corp", owned)
	}

	// Only the creator may sponsor into a private space.
	otherPriv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	other := crypto.PubkeyToAddress(otherPriv.PublicKey)
	mustSetBalance(t, db, other, g.MinPrivatePrice*10)
	c2 := testOpContext(t, g, db, other, 1)
	c2.Authorizer = c.Authorizer
	op2 := op.Copy().(*SponsorOp)
	op2.Label = "dave"
	if err := op2.Execute(c2); !errors.Is(err, ErrNotSpaceCreator) {
		t.Fatalf("expected %v, got %v", ErrNotSpaceCreator, err)
	}
}
