// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RPCDelegate validates authorizations by calling out to an external
// JSON-RPC endpoint exposed by the delegate identity.
type RPCDelegate struct {
	req     rpc.EndpointRequester
	timeout time.Duration
}

var _ DelegateValidator = &RPCDelegate{}

func NewRPCDelegate(uri string, reqTimeout time.Duration) *RPCDelegate {
	return &RPCDelegate{
		req:     rpc.NewEndpointRequester(uri, "delegate"),
		timeout: reqTimeout,
	}
}

type ValidateArgs struct {
	Digest hexutil.Bytes `serialize:"true" json:"digest"`
	Proof  hexutil.Bytes `serialize:"true" json:"proof"`
}

type ValidateReply struct {
	Magic hexutil.Bytes `serialize:"true" json:"magic"`
}

func (d *RPCDelegate) ValidateAuthorization(digest []byte, proof []byte) ([4]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	resp := new(ValidateReply)
	if err := d.req.SendRequest(
		ctx,
		"validate",
		&ValidateArgs{Digest: digest, Proof: proof},
		resp,
	); err != nil {
		return [4]byte{}, err
	}
	var magic [4]byte
	copy(magic[:], resp.Magic)
	return magic, nil
}
