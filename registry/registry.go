// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"sync"
	"sync/atomic"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/inconshreveable/log15"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/namesvm/auth"
	"github.com/ava-labs/namesvm/parser"
)

const defaultActivityCap = 128

// Registry is the name registry state machine. Every mutation arrives as a
// signed operation through Submit; mutations within an operation are applied
// to a snapshot and committed only if the whole operation succeeds.
type Registry struct {
	genesis *Genesis
	db      database.Database
	clock   mockable.Clock

	authorizer *auth.Authorizer
	burner     BurnLedger

	mu    sync.Mutex
	guard int32

	activityCap int
	activity    []*Activity
}

type Option func(*Registry)

// WithBurner overrides the ledger that records burned value.
func WithBurner(b BurnLedger) Option {
	return func(r *Registry) { r.burner = b }
}

// WithActivityCap bounds the in-memory activity tail.
func WithActivityCap(n int) Option {
	return func(r *Registry) { r.activityCap = n }
}

func New(g *Genesis, db database.Database, opts ...Option) (*Registry, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}
	r := &Registry{
		db:          db,
		burner:      RecordedBurn{},
		activityCap: defaultActivityCap,
	}
	for _, opt := range opts {
		opt(r)
	}

	stored, exists, err := GetGenesis(db)
	if err != nil {
		return nil, err
	}
	if exists {
		// Stored parameters win so a restart cannot silently repoint fees.
		r.genesis = stored
	} else {
		if g.GenesisTime == 0 {
			g.GenesisTime = uint64(r.clock.Time().Unix())
		}
		vdb := versiondb.New(db)
		if err := g.Load(vdb); err != nil {
			vdb.Abort()
			return nil, err
		}
		if err := SetGenesis(vdb, g); err != nil {
			vdb.Abort()
			return nil, err
		}
		if err := vdb.Commit(); err != nil {
			return nil, err
		}
		r.genesis = g
		log.Info("initialized registry", "root", g.RootSpace, "magic", g.Magic)
	}
	r.authorizer = auth.New(r.genesis.Magic)
	return r, nil
}

func (r *Registry) Genesis() *Genesis { return r.genesis }

// Authorizer exposes delegate management for the registry's proof checker.
func (r *Registry) Authorizer() *auth.Authorizer { return r.authorizer }

func opID(dh []byte, sig []byte) ids.ID {
	h := sha3.Sum256(append(append([]byte{}, dh...), sig...))
	return ids.ID(h)
}

// Submit authenticates and executes a signed operation. The sender is
// whoever signed the operation's typed-data digest.
func (r *Registry) Submit(o Op, sig []byte) (ids.ID, common.Address, error) {
	// A delegate callback re-entering here would deadlock on r.mu, so the
	// guard is checked first. An RPC delegate's recursive submission arrives
	// over a fresh connection on its own goroutine, which makes it
	// indistinguishable from an unrelated concurrent submission. Every
	// submission that lands while a delegate validation is in flight is
	// therefore rejected rather than queued; callers retry.
	if atomic.LoadInt32(&r.guard) == 1 {
		return ids.Empty, common.Address{}, ErrReentrantCall
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := o.ExecuteBase(r.genesis); err != nil {
		return ids.Empty, common.Address{}, err
	}
	dh, err := DigestHash(o)
	if err != nil {
		return ids.Empty, common.Address{}, err
	}
	pub, err := auth.DeriveSender(dh, sig)
	if err != nil {
		return ids.Empty, common.Address{}, err
	}
	sender := crypto.PubkeyToAddress(*pub)
	id := opID(dh, sig)

	vdb := versiondb.New(r.db)
	c := &OpContext{
		Genesis:    r.genesis,
		Database:   vdb,
		BlockTime:  uint64(r.clock.Time().Unix()),
		OpID:       id,
		Sender:     sender,
		Authorizer: r.authorizer,
		Burner:     r.burner,
		guard:      &r.guard,
	}
	if err := o.Execute(c); err != nil {
		vdb.Abort()
		log.Debug("op rejected", "id", id, "sender", sender.Hex(), "err", err)
		return ids.Empty, common.Address{}, err
	}
	if err := vdb.Commit(); err != nil {
		return ids.Empty, common.Address{}, err
	}
	r.appendActivity(c.activity)
	log.Debug("op accepted", "id", id, "sender", sender.Hex())
	return id, sender, nil
}

func (r *Registry) appendActivity(as []*Activity) {
	r.activity = append(r.activity, as...)
	if over := len(r.activity) - r.activityCap; over > 0 {
		r.activity = r.activity[over:]
	}
}

// ResolveAddress resolves a full or bare name to its owner.
func (r *Registry) ResolveAddress(name string) (common.Address, bool, error) {
	label, space, err := parser.ResolveName(name)
	if err != nil {
		return common.Address{}, false, err
	}
	return r.ResolveAddressIn(label, space)
}

// ResolveAddressIn resolves a label within a space. An empty space means the
// root space.
func (r *Registry) ResolveAddressIn(label string, space string) (common.Address, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	space = spaceOrRoot(space, r.genesis)
	info, exists, err := GetNameInfo(r.db, space, label)
	if err != nil || !exists {
		return common.Address{}, false, err
	}
	return info.Owner, true, nil
}

// ResolveName is the reverse lookup: what name, if any, an address owns.
func (r *Registry) ResolveName(address common.Address) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetOwned(r.db, address)
}

func (r *Registry) SpaceInfo(space string) (*SpaceInfo, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetSpaceInfo(r.db, spaceOrRoot(space, r.genesis))
}

// SpacePrice returns the per-name registration price of a space. An empty
// space means the root space.
func (r *Registry) SpacePrice(space string) (uint64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, exists, err := GetSpaceInfo(r.db, spaceOrRoot(space, r.genesis))
	if err != nil || !exists {
		return 0, false, err
	}
	return info.Price, true, nil
}

// SpaceByPrice returns the public space registered at exactly [price].
func (r *Registry) SpaceByPrice(price uint64) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetSpaceByPrice(r.db, price)
}

// InExclusivityWindow reports whether the space's creator still has
// exclusive registration rights.
func (r *Registry) InExclusivityWindow(space string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, exists, err := GetSpaceInfo(r.db, spaceOrRoot(space, r.genesis))
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrSpaceMissing
	}
	now := uint64(r.clock.Time().Unix())
	return inExclusivityWindow(r.genesis, info, now), nil
}

func (r *Registry) PendingFees(address common.Address) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetPendingFees(r.db, address)
}

func (r *Registry) Balance(address common.Address) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetBalance(r.db, address)
}

func (r *Registry) Burned(address common.Address) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetBurned(r.db, address)
}

func (r *Registry) TotalBurned() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return GetTotalBurned(r.db)
}

// VerifyProof dry-runs an authorization check without touching state. It is
// deliberately not guarded: it mutates nothing, so a delegate calling it
// mid-callback cannot corrupt an operation.
func (r *Registry) VerifyProof(recipient common.Address, label string, space string, proof []byte) error {
	req := &auth.AuthorizationRequest{
		Recipient: recipient,
		Label:     label,
		Space:     spaceOrRoot(space, r.genesis),
	}
	if err := r.authorizer.Verify(req, proof); err != nil {
		return ErrInvalidProof
	}
	return nil
}

// RecentActivity returns the in-memory activity tail, newest last.
func (r *Registry) RecentActivity() []*Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Activity, len(r.activity))
	copy(out, r.activity)
	return out
}
