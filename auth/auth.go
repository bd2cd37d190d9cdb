// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package auth verifies that a party has authorized a specific registration.
// Two signer kinds are supported: plain key-holding identities, checked by
// signature recovery, and delegate-validated identities, checked through an
// external validation callback.
package auth

import (
	"bytes"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namesvm/tdata"
)

const Authorization = "Authorization"

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrProofRejected    = errors.New("authorization proof rejected")

	// AcceptanceMagic is the fixed value a delegate validator must return
	// for a proof to be accepted.
	AcceptanceMagic = [4]byte{0x16, 0x26, 0xba, 0x7e}
)

const (
	tdRecipient = "recipient"
	tdLabel     = "label"
	tdSpace     = "space"

	tdString  = "string"
	tdAddress = "address"
)

// AuthorizationRequest is the exact structured payload a recipient signs to
// authorize a sponsored registration. It deliberately carries no sequence
// counter and no expiry; replay is neutralized by the registry's bind guards.
type AuthorizationRequest struct {
	Recipient common.Address `serialize:"true" json:"recipient"`
	Label     string         `serialize:"true" json:"label"`
	Space     string         `serialize:"true" json:"space"`
}

func (r *AuthorizationRequest) TypedData(magic uint64) *tdata.TypedData {
	return tdata.CreateTypedData(
		magic, Authorization,
		[]tdata.Type{
			{Name: tdRecipient, Type: tdAddress},
			{Name: tdLabel, Type: tdString},
			{Name: tdSpace, Type: tdString},
		},
		tdata.TypedDataMessage{
			tdRecipient: r.Recipient.Hex(),
			tdLabel:     r.Label,
			tdSpace:     r.Space,
		},
	)
}

func (r *AuthorizationRequest) Digest(magic uint64) ([]byte, error) {
	return tdata.DigestHash(r.TypedData(magic))
}

// DelegateValidator is the callback surface exposed by a delegate-validated
// identity (the contract wallet equivalent). It must return AcceptanceMagic
// for the proof to count as an authorization.
type DelegateValidator interface {
	ValidateAuthorization(digest []byte, proof []byte) ([4]byte, error)
}

// Authorizer dispatches between the direct-key and delegate-validated
// verification paths. Verification is stateless: a pure function of the
// request, the proof, and the claimed recipient.
type Authorizer struct {
	magic uint64

	mu        sync.RWMutex
	delegates map[common.Address]DelegateValidator
}

func New(magic uint64) *Authorizer {
	return &Authorizer{
		magic:     magic,
		delegates: map[common.Address]DelegateValidator{},
	}
}

// SetDelegate marks [addr] as a delegate-validated identity. A nil validator
// removes the marking.
func (a *Authorizer) SetDelegate(addr common.Address, v DelegateValidator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v == nil {
		delete(a.delegates, addr)
		return
	}
	a.delegates[addr] = v
}

func (a *Authorizer) Delegate(addr common.Address) (DelegateValidator, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.delegates[addr]
	return v, ok
}

// Verify checks that [proof] is a valid authorization of [req] by
// req.Recipient.
func (a *Authorizer) Verify(req *AuthorizationRequest, proof []byte) error {
	dh, err := req.Digest(a.magic)
	if err != nil {
		return err
	}
	if v, ok := a.Delegate(req.Recipient); ok {
		magic, err := v.ValidateAuthorization(dh, proof)
		if err != nil {
			return ErrProofRejected
		}
		if !bytes.Equal(magic[:], AcceptanceMagic[:]) {
			return ErrProofRejected
		}
		return nil
	}

	pk, err := DeriveSender(dh, proof)
	if err != nil {
		return err
	}
	if crypto.PubkeyToAddress(*pk) != req.Recipient {
		return ErrProofRejected
	}
	return nil
}
