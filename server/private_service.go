// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/namesvm/auth"
)

// PrivateService carries operator-facing surface that must not be exposed
// publicly: delegate registration points proof validation at an arbitrary
// URI.
type PrivateService struct {
	s *Server
}

type SetDelegateArgs struct {
	Recipient common.Address `serialize:"true" json:"recipient"`

	// URI of the delegate validator endpoint. Empty removes the delegate.
	URI string `serialize:"true" json:"uri"`
}

type SetDelegateReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PrivateService) SetDelegate(_ *http.Request, args *SetDelegateArgs, reply *SetDelegateReply) error {
	if args.URI == "" {
		svc.s.reg.Authorizer().SetDelegate(args.Recipient, nil)
		log.Info("delegate removed", "recipient", args.Recipient.Hex())
		reply.Success = true
		return nil
	}
	d := auth.NewRPCDelegate(args.URI, svc.s.config.DelegateTimeout)
	svc.s.reg.Authorizer().SetDelegate(args.Recipient, d)
	log.Info("delegate set", "recipient", args.Recipient.Hex(), "uri", args.URI)
	reply.Success = true
	return nil
}

type HasDelegateArgs struct {
	Recipient common.Address `serialize:"true" json:"recipient"`
}

type HasDelegateReply struct {
	Registered bool `serialize:"true" json:"registered"`
}

func (svc *PrivateService) HasDelegate(_ *http.Request, args *HasDelegateArgs, reply *HasDelegateReply) error {
	_, ok := svc.s.reg.Authorizer().Delegate(args.Recipient)
	reply.Registered = ok
	return nil
}
