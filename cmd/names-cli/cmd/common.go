// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namesvm/client"
	"github.com/ava-labs/namesvm/parser"
)

func loadKey() (*ecdsa.PrivateKey, error) {
	return crypto.LoadECDSA(privateKeyFile)
}

func newClient() client.Client {
	return client.New(uri)
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// splitName parses a "label" or "label.space" argument.
func splitName(arg string) (label string, space string, err error) {
	return parser.ResolveName(arg)
}

// opPayment resolves the value to attach: the explicit --payment flag or the
// target space's current price.
func opPayment(ctx context.Context, cli client.Client, space string) (uint64, error) {
	if payment > 0 {
		return payment, nil
	}
	exists, price, err := cli.SpacePrice(ctx, space)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("space %q not found", space)
	}
	return price, nil
}
