// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/registry"
	"github.com/ava-labs/namesvm/server"
)

func TestServerRoundTrip(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := registry.DefaultGenesis()
	g.ExclusivityWindow = 0
	g.GenesisTime = 1
	g.Allocations = []*registry.Allocation{{Address: sender, Balance: g.RootSpacePrice * 10}}

	reg, err := registry.New(g, db)
	if err != nil {
		t.Fatal(err)
	}

	var config server.Config
	config.SetDefaults()
	handler, err := server.New(reg, config).Handler()
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(handler)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cli := client.New(ts.URL)

	ok, err := cli.Ping(ctx)
	if err != nil || !ok {
		t.Fatalf("ping failed: %v", err)
	}
	rg, err := cli.Genesis(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rg.Magic != g.Magic || rg.RootSpace != g.RootSpace {
		t.Fatalf("unexpected genesis %+v", rg)
	}

	bal, err := cli.Balance(ctx, sender)
	if err != nil {
		t.Fatal(err)
	}
	if bal != g.RootSpacePrice*10 {
		t.Fatalf("balance expected %d, got %d", g.RootSpacePrice*10, bal)
	}

	exists, price, err := cli.SpacePrice(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if !exists || price != g.RootSpacePrice {
		t.Fatalf("root space price expected %d, got %d (exists %v)", g.RootSpacePrice, price, exists)
	}
	exists, _, err = cli.SpacePrice(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("price reported for unknown space")
	}

	op := &registry.RegisterOp{
		BaseOp: &registry.BaseOp{Payment: g.RootSpacePrice},
		Label:  "bob",
	}
	reply, err := client.SignIssueOp(ctx, cli, op, priv)
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Success || reply.Sender != sender {
		t.Fatalf("unexpected reply %+v", reply)
	}

	exists, owner, err := cli.Resolve(ctx, "bob."+g.RootSpace)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || owner != sender {
		t.Fatal("registered name did not resolve")
	}
	exists, name, err := cli.ResolveName(ctx, sender)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || name != "bob" {
		t.Fatalf("reverse lookup expected bob, got %q", name)
	}

	valid, err := cli.ValidContents(ctx, "UPPER")
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("uppercase contents validated")
	}

	acts, err := cli.RecentActivity(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(acts) != 1 || acts[0].Typ != registry.RegisteredActivity {
		t.Fatalf("unexpected activity %+v", acts)
	}
}
