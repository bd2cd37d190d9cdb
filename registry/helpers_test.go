// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/auth"
)

func testOpContext(t *testing.T, g *Genesis, db database.Database, sender common.Address, blockTime uint64) *OpContext {
	t.Helper()
	return &OpContext{
		Genesis:    g,
		Database:   db,
		BlockTime:  blockTime,
		OpID:       ids.Empty,
		Sender:     sender,
		Authorizer: auth.New(g.Magic),
		Burner:     RecordedBurn{},
		guard:      new(int32),
	}
}

func mustSetBalance(t *testing.T, db database.Database, addr common.Address, bal uint64) {
	t.Helper()
	if err := SetBalance(db, addr, bal); err != nil {
		t.Fatal(err)
	}
}

func mustLoadGenesis(t *testing.T, g *Genesis, db database.Database) {
	t.Helper()
	if err := g.Verify(); err != nil {
		t.Fatal(err)
	}
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}
}

// acceptDelegate approves every proof.
type acceptDelegate struct{}

func (acceptDelegate) ValidateAuthorization([]byte, []byte) ([4]byte, error) {
	return auth.AcceptanceMagic, nil
}

// rejectDelegate returns a wrong acceptance value.
type rejectDelegate struct{}

func (rejectDelegate) ValidateAuthorization([]byte, []byte) ([4]byte, error) {
	return [4]byte{0xde, 0xad, 0xbe, 0xef}, nil
}
