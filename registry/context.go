// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"sync/atomic"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/auth"
)

// OpContext carries everything an operation needs to execute. Database is a
// snapshot of committed state; the registry commits it only if Execute
// returns nil, so any failure discards all of the operation's mutations.
type OpContext struct {
	Genesis    *Genesis
	Database   database.Database
	BlockTime  uint64
	OpID       ids.ID
	Sender     common.Address
	Authorizer *auth.Authorizer
	Burner     BurnLedger

	guard    *int32
	activity []*Activity
}

// charge debits exactly [required] from the sender. [payment] is the amount
// the sender attached; anything above [required] never leaves the payer,
// which is how excess is refunded.
func (c *OpContext) charge(payment uint64, required uint64) error {
	if payment < required {
		return ErrInsufficientPayment
	}
	if required == 0 {
		return nil
	}
	_, err := ModifyBalance(c.Database, c.Sender, false, required)
	return err
}

// verifyAuthorization checks a recipient's proof with re-entry protection:
// while a delegate callback runs, no mutating registry operation may start,
// so a delegate cannot register an alternate name mid-verification. The
// guard is registry-wide, not per call path: a delegate's recursive
// submission shows up on its own goroutine and cannot be told apart from an
// unrelated one, so both are rejected for the duration of the callback.
func (c *OpContext) verifyAuthorization(req *auth.AuthorizationRequest, proof []byte) error {
	atomic.StoreInt32(c.guard, 1)
	defer atomic.StoreInt32(c.guard, 0)
	if err := c.Authorizer.Verify(req, proof); err != nil {
		return ErrInvalidProof
	}
	return nil
}

func (c *OpContext) record(a *Activity) {
	a.Tmstmp = c.BlockTime
	c.activity = append(c.activity, a)
}
