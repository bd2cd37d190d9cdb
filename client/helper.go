// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"

	"github.com/ava-labs/namesvm/auth"
	"github.com/ava-labs/namesvm/registry"
	"github.com/ava-labs/namesvm/server"
)

// SignIssueOp stamps the deployment magic on the operation, signs its
// typed-data digest, and submits it.
func SignIssueOp(
	ctx context.Context,
	cli Client,
	op registry.Op,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (*server.IssueOpReply, error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis(ctx)
	if err != nil {
		return nil, err
	}
	op.SetMagic(g.Magic)

	dh, err := registry.DigestHash(op)
	if err != nil {
		return nil, err
	}
	sig, err := auth.Sign(dh, priv)
	if err != nil {
		return nil, err
	}

	reply, err := cli.IssueOp(ctx, op.TypedData(), sig)
	if err != nil {
		return nil, err
	}
	if ret.verbose {
		color.Green("issued op %s (sender %s)", reply.OpID, reply.Sender.Hex())
	}
	return reply, nil
}

// SignProof produces a direct-key authorization proof for a sponsored
// registration of [label] in [space] to the holder of [priv].
func SignProof(ctx context.Context, cli Client, label, space string, priv *ecdsa.PrivateKey) ([]byte, error) {
	g, err := cli.Genesis(ctx)
	if err != nil {
		return nil, err
	}
	if space == "" {
		space = g.RootSpace
	}
	dh, err := (&auth.AuthorizationRequest{
		Recipient: ethAddress(priv),
		Label:     label,
		Space:     space,
	}).Digest(g.Magic)
	if err != nil {
		return nil, err
	}
	return auth.Sign(dh, priv)
}

type Op struct {
	verbose bool
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// WithVerbose prints progress information to stdout.
func WithVerbose() OpOption {
	return func(op *Op) { op.verbose = true }
}

func ethAddress(priv *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(priv.PublicKey)
}
