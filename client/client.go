// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the namesvm client SDK.
package client

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ava-labs/namesvm/registry"
	"github.com/ava-labs/namesvm/server"
	"github.com/ava-labs/namesvm/tdata"
)

// Client defines namesvm client operations.
type Client interface {
	// Pings the server.
	Ping(ctx context.Context) (bool, error)
	// Returns the registry genesis.
	Genesis(ctx context.Context) (*registry.Genesis, error)

	// Resolve returns the owner of a full or bare name.
	Resolve(ctx context.Context, name string) (exists bool, owner common.Address, err error)
	// ResolveName is the reverse lookup: the name an address owns.
	ResolveName(ctx context.Context, addr common.Address) (exists bool, name string, err error)
	// SpaceInfo returns the space record.
	SpaceInfo(ctx context.Context, space string) (exists bool, info *registry.SpaceInfo, err error)
	// SpacePrice returns a space's per-name registration price.
	SpacePrice(ctx context.Context, space string) (exists bool, price uint64, err error)
	// SpaceByPrice returns the public space registered at exactly [price].
	SpaceByPrice(ctx context.Context, price uint64) (exists bool, space string, err error)
	// InExclusivityWindow reports whether the creator-exclusive period is
	// still open for a space.
	InExclusivityWindow(ctx context.Context, space string) (bool, error)

	// Balance returns an account's native-unit balance.
	Balance(ctx context.Context, addr common.Address) (uint64, error)
	// PendingFees returns an account's claimable fee share.
	PendingFees(ctx context.Context, addr common.Address) (uint64, error)
	// Burned returns an account's attributed burn total and the global one.
	Burned(ctx context.Context, addr common.Address) (mine uint64, total uint64, err error)

	// ValidContents dry-runs identifier syntax validation.
	ValidContents(ctx context.Context, contents string) (bool, error)
	// VerifyProof dry-runs an authorization proof.
	VerifyProof(ctx context.Context, recipient common.Address, label, space string, proof []byte) (bool, error)
	// RecentActivity returns the server's activity tail.
	RecentActivity(ctx context.Context) ([]*registry.Activity, error)

	// IssueOp submits a signed operation envelope.
	IssueOp(ctx context.Context, td *tdata.TypedData, sig []byte) (*server.IssueOpReply, error)
}

// New creates a new client object.
func New(uri string) Client {
	req := rpc.NewEndpointRequester(
		uri+server.PublicEndpoint,
		server.Name,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping(ctx context.Context) (bool, error) {
	resp := new(server.PingReply)
	err := cli.req.SendRequest(
		ctx,
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis(ctx context.Context) (*registry.Genesis, error) {
	resp := new(server.GenesisReply)
	err := cli.req.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Resolve(ctx context.Context, name string) (bool, common.Address, error) {
	resp := new(server.ResolveReply)
	if err := cli.req.SendRequest(
		ctx,
		"resolve",
		&server.ResolveArgs{Name: name},
		resp,
	); err != nil {
		return false, common.Address{}, err
	}
	return resp.Exists, resp.Address, nil
}

func (cli *client) ResolveName(ctx context.Context, addr common.Address) (bool, string, error) {
	resp := new(server.ResolveNameReply)
	if err := cli.req.SendRequest(
		ctx,
		"resolveName",
		&server.ResolveNameArgs{Address: addr},
		resp,
	); err != nil {
		return false, "", err
	}
	return resp.Exists, resp.Name, nil
}

func (cli *client) SpaceInfo(ctx context.Context, space string) (bool, *registry.SpaceInfo, error) {
	resp := new(server.SpaceInfoReply)
	if err := cli.req.SendRequest(
		ctx,
		"spaceInfo",
		&server.SpaceInfoArgs{Space: space},
		resp,
	); err != nil {
		return false, nil, err
	}
	return resp.Exists, resp.Info, nil
}

func (cli *client) SpacePrice(ctx context.Context, space string) (bool, uint64, error) {
	resp := new(server.SpacePriceReply)
	if err := cli.req.SendRequest(
		ctx,
		"spacePrice",
		&server.SpacePriceArgs{Space: space},
		resp,
	); err != nil {
		return false, 0, err
	}
	return resp.Exists, resp.Price, nil
}

func (cli *client) SpaceByPrice(ctx context.Context, price uint64) (bool, string, error) {
	resp := new(server.SpaceByPriceReply)
	if err := cli.req.SendRequest(
		ctx,
		"spaceByPrice",
		&server.SpaceByPriceArgs{Price: price},
		resp,
	); err != nil {
		return false, "", err
	}
	return resp.Exists, resp.Space, nil
}

func (cli *client) InExclusivityWindow(ctx context.Context, space string) (bool, error) {
	resp := new(server.InExclusivityWindowReply)
	if err := cli.req.SendRequest(
		ctx,
		"inExclusivityWindow",
		&server.InExclusivityWindowArgs{Space: space},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Exclusive, nil
}

func (cli *client) Balance(ctx context.Context, addr common.Address) (uint64, error) {
	resp := new(server.BalanceReply)
	if err := cli.req.SendRequest(
		ctx,
		"balance",
		&server.BalanceArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) PendingFees(ctx context.Context, addr common.Address) (uint64, error) {
	resp := new(server.PendingFeesReply)
	if err := cli.req.SendRequest(
		ctx,
		"pendingFees",
		&server.PendingFeesArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Pending, nil
}

func (cli *client) Burned(ctx context.Context, addr common.Address) (uint64, uint64, error) {
	resp := new(server.BurnedReply)
	if err := cli.req.SendRequest(
		ctx,
		"burned",
		&server.BurnedArgs{Address: addr},
		resp,
	); err != nil {
		return 0, 0, err
	}
	return resp.Burned, resp.Total, nil
}

func (cli *client) ValidContents(ctx context.Context, contents string) (bool, error) {
	resp := new(server.ValidContentsReply)
	if err := cli.req.SendRequest(
		ctx,
		"validContents",
		&server.ValidContentsArgs{Contents: contents},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

func (cli *client) VerifyProof(ctx context.Context, recipient common.Address, label, space string, proof []byte) (bool, error) {
	resp := new(server.VerifyProofReply)
	if err := cli.req.SendRequest(
		ctx,
		"verifyProof",
		&server.VerifyProofArgs{
			Recipient: recipient,
			Label:     label,
			Space:     space,
			Proof:     hexutil.Bytes(proof),
		},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

func (cli *client) RecentActivity(ctx context.Context) ([]*registry.Activity, error) {
	resp := new(server.RecentActivityReply)
	if err := cli.req.SendRequest(
		ctx,
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

func (cli *client) IssueOp(ctx context.Context, td *tdata.TypedData, sig []byte) (*server.IssueOpReply, error) {
	resp := new(server.IssueOpReply)
	if err := cli.req.SendRequest(
		ctx,
		"issueOp",
		&server.IssueOpArgs{TypedData: td, Signature: hexutil.Bytes(sig)},
		resp,
	); err != nil {
		return nil, err
	}
	return resp, nil
}
