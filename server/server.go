// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package server exposes the registry over JSON-RPC.
package server

import (
	"net/http"

	ajson "github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"

	"github.com/ava-labs/namesvm/registry"
)

const (
	Name = "names"

	PublicEndpoint  = "/public"
	PrivateEndpoint = "/private"
)

type Server struct {
	reg    *registry.Registry
	config Config
}

func New(reg *registry.Registry, config Config) *Server {
	return &Server{reg: reg, config: config}
}

func newRPCServer() *rpc.Server {
	server := rpc.NewServer()
	server.RegisterCodec(ajson.NewCodec(), "application/json")
	server.RegisterCodec(ajson.NewCodec(), "application/json;charset=UTF-8")
	return server
}

// Handler mounts the public and private services under their endpoints.
func (s *Server) Handler() (http.Handler, error) {
	public := newRPCServer()
	if err := public.RegisterService(&PublicService{s: s}, Name); err != nil {
		return nil, err
	}
	private := newRPCServer()
	if err := private.RegisterService(&PrivateService{s: s}, Name); err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle(PublicEndpoint, public)
	mux.Handle(PrivateEndpoint, private)
	return mux, nil
}
