// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/namesvm/parser"
	"github.com/ava-labs/namesvm/registry"
	"github.com/ava-labs/namesvm/tdata"
)

type PublicService struct {
	s *Server
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *registry.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.s.reg.Genesis()
	return nil
}

type IssueOpArgs struct {
	TypedData *tdata.TypedData `serialize:"true" json:"typedData"`
	Signature hexutil.Bytes    `serialize:"true" json:"signature"`
}

type IssueOpReply struct {
	OpID    ids.ID         `serialize:"true" json:"opId"`
	Sender  common.Address `serialize:"true" json:"sender"`
	Success bool           `serialize:"true" json:"success"`

	// Registered is set for batch operations: how many items landed.
	Registered int `serialize:"true" json:"registered,omitempty"`
	// Claimed is set for fee claims: the amount paid out.
	Claimed uint64 `serialize:"true" json:"claimed,omitempty"`
}

func (svc *PublicService) IssueOp(_ *http.Request, args *IssueOpArgs, reply *IssueOpReply) error {
	op, err := registry.ParseTypedData(args.TypedData)
	if err != nil {
		return err
	}
	id, sender, err := svc.s.reg.Submit(op, args.Signature)
	if err != nil {
		reply.Success = false
		return err
	}
	reply.OpID = id
	reply.Sender = sender
	reply.Success = true
	switch o := op.(type) {
	case *registry.BatchOp:
		reply.Registered = o.Successes()
	case *registry.ClaimOp:
		reply.Claimed = o.Amount()
	}
	return nil
}

type ResolveArgs struct {
	Name string `serialize:"true" json:"name"`
}

type ResolveReply struct {
	Exists  bool           `serialize:"true" json:"exists"`
	Address common.Address `serialize:"true" json:"address"`
}

func (svc *PublicService) Resolve(_ *http.Request, args *ResolveArgs, reply *ResolveReply) error {
	addr, exists, err := svc.s.reg.ResolveAddress(args.Name)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Address = addr
	return nil
}

type ResolveNameArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type ResolveNameReply struct {
	Exists bool   `serialize:"true" json:"exists"`
	Name   string `serialize:"true" json:"name"`
}

func (svc *PublicService) ResolveName(_ *http.Request, args *ResolveNameArgs, reply *ResolveNameReply) error {
	name, exists, err := svc.s.reg.ResolveName(args.Address)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Name = name
	return nil
}

type SpaceInfoArgs struct {
	Space string `serialize:"true" json:"space"`
}

type SpaceInfoReply struct {
	Exists bool                `serialize:"true" json:"exists"`
	Info   *registry.SpaceInfo `serialize:"true" json:"info,omitempty"`
}

func (svc *PublicService) SpaceInfo(_ *http.Request, args *SpaceInfoArgs, reply *SpaceInfoReply) error {
	info, exists, err := svc.s.reg.SpaceInfo(args.Space)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Info = info
	return nil
}

type SpacePriceArgs struct {
	Space string `serialize:"true" json:"space"`
}

type SpacePriceReply struct {
	Exists bool   `serialize:"true" json:"exists"`
	Price  uint64 `serialize:"true" json:"price"`
}

func (svc *PublicService) SpacePrice(_ *http.Request, args *SpacePriceArgs, reply *SpacePriceReply) error {
	price, exists, err := svc.s.reg.SpacePrice(args.Space)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Price = price
	return nil
}

type SpaceByPriceArgs struct {
	Price uint64 `serialize:"true" json:"price"`
}

type SpaceByPriceReply struct {
	Exists bool   `serialize:"true" json:"exists"`
	Space  string `serialize:"true" json:"space"`
}

func (svc *PublicService) SpaceByPrice(_ *http.Request, args *SpaceByPriceArgs, reply *SpaceByPriceReply) error {
	space, exists, err := svc.s.reg.SpaceByPrice(args.Price)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Space = space
	return nil
}

type InExclusivityWindowArgs struct {
	Space string `serialize:"true" json:"space"`
}

type InExclusivityWindowReply struct {
	Exclusive bool `serialize:"true" json:"exclusive"`
}

func (svc *PublicService) InExclusivityWindow(_ *http.Request, args *InExclusivityWindowArgs, reply *InExclusivityWindowReply) error {
	exclusive, err := svc.s.reg.InExclusivityWindow(args.Space)
	if err != nil {
		return err
	}
	reply.Exclusive = exclusive
	return nil
}

type BalanceArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	bal, err := svc.s.reg.Balance(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = bal
	return nil
}

type PendingFeesArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type PendingFeesReply struct {
	Pending uint64 `serialize:"true" json:"pending"`
}

func (svc *PublicService) PendingFees(_ *http.Request, args *PendingFeesArgs, reply *PendingFeesReply) error {
	pending, err := svc.s.reg.PendingFees(args.Address)
	if err != nil {
		return err
	}
	reply.Pending = pending
	return nil
}

type BurnedArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type BurnedReply struct {
	Burned uint64 `serialize:"true" json:"burned"`
	Total  uint64 `serialize:"true" json:"total"`
}

func (svc *PublicService) Burned(_ *http.Request, args *BurnedArgs, reply *BurnedReply) error {
	burned, err := svc.s.reg.Burned(args.Address)
	if err != nil {
		return err
	}
	total, err := svc.s.reg.TotalBurned()
	if err != nil {
		return err
	}
	reply.Burned = burned
	reply.Total = total
	return nil
}

type ValidContentsArgs struct {
	Contents string `serialize:"true" json:"contents"`
}

type ValidContentsReply struct {
	Valid bool `serialize:"true" json:"valid"`
}

func (svc *PublicService) ValidContents(_ *http.Request, args *ValidContentsArgs, reply *ValidContentsReply) error {
	reply.Valid = parser.CheckContents(args.Contents) == nil
	return nil
}

type VerifyProofArgs struct {
	Recipient common.Address `serialize:"true" json:"recipient"`
	Label     string         `serialize:"true" json:"label"`
	Space     string         `serialize:"true" json:"space"`
	Proof     hexutil.Bytes  `serialize:"true" json:"proof"`
}

type VerifyProofReply struct {
	Valid bool `serialize:"true" json:"valid"`
}

func (svc *PublicService) VerifyProof(_ *http.Request, args *VerifyProofArgs, reply *VerifyProofReply) error {
	reply.Valid = svc.s.reg.VerifyProof(args.Recipient, args.Label, args.Space, args.Proof) == nil
	return nil
}

type RecentActivityReply struct {
	Activity []*registry.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.s.reg.RecentActivity()
	return nil
}
