// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const testMagic = 7

func TestVerifyDirectKey(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	recipient := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	a := New(testMagic)
	req := &AuthorizationRequest{Recipient: recipient, Label: "alice", Space: "xns"}
	dh, err := req.Digest(testMagic)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		req   *AuthorizationRequest
		proof []byte
		err   error
	}{
		{ // valid
			req:   req,
			proof: sig,
			err:   nil,
		},
		{ // tampered payload
			req:   &AuthorizationRequest{Recipient: recipient, Label: "mallory", Space: "xns"},
			proof: sig,
			err:   ErrProofRejected,
		},
		{ // signed by someone else
			req: req,
			proof: func() []byte {
				s, err := Sign(dh, priv2)
				if err != nil {
					t.Fatal(err)
				}
				return s
			}(),
			err: ErrProofRejected,
		},
		{ // truncated signature
			req:   req,
			proof: sig[:32],
			err:   ErrInvalidSignature,
		},
		{ // mangled recovery id
			req: req,
			proof: func() []byte {
				s := make([]byte, len(sig))
				copy(s, sig)
				s[64] = 77
				return s
			}(),
			err: ErrInvalidSignature,
		},
	}
	for i, tv := range tt {
		err := a.Verify(tv.req, tv.proof)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: Verify err expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestVerifyRejectsHighS(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	recipient := crypto.PubkeyToAddress(priv.PublicKey)

	a := New(testMagic)
	req := &AuthorizationRequest{Recipient: recipient, Label: "alice", Space: "xns"}
	dh, err := req.Digest(testMagic)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}

	// Flip s to the upper half of the curve order.
	malleated := make([]byte, len(sig))
	copy(malleated, sig)
	s := new(big.Int).SetBytes(malleated[32:64])
	s.Sub(crypto.S256().Params().N, s)
	copy(malleated[32:64], common.LeftPadBytes(s.Bytes(), 32))
	malleated[64] ^= 1

	if err := a.Verify(req, malleated); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("Verify err expected %v, got %v", ErrInvalidSignature, err)
	}
}

type testDelegate struct {
	magic [4]byte
	err   error

	lastDigest []byte
}

func (d *testDelegate) ValidateAuthorization(digest []byte, proof []byte) ([4]byte, error) {
	d.lastDigest = digest
	return d.magic, d.err
}

func TestVerifyDelegate(t *testing.T) {
	t.Parallel()

	delegated := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	req := &AuthorizationRequest{Recipient: delegated, Label: "wallet", Space: "xns"}

	tt := []struct {
		validator *testDelegate
		err       error
	}{
		{
			validator: &testDelegate{magic: AcceptanceMagic},
			err:       nil,
		},
		{
			validator: &testDelegate{magic: [4]byte{0xde, 0xad, 0xbe, 0xef}},
			err:       ErrProofRejected,
		},
		{
			validator: &testDelegate{magic: AcceptanceMagic, err: errors.New("callback unavailable")},
			err:       ErrProofRejected,
		},
	}
	for i, tv := range tt {
		a := New(testMagic)
		a.SetDelegate(delegated, tv.validator)
		err := a.Verify(req, []byte("opaque-delegate-proof"))
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: Verify err expected %v, got %v", i, tv.err, err)
		}
		if len(tv.validator.lastDigest) != 32 {
			t.Fatalf("#%d: delegate saw digest of %d bytes", i, len(tv.validator.lastDigest))
		}
	}
}
