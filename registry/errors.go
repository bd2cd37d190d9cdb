// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
)

var (
	// Operation correctness
	ErrInvalidMagic        = errors.New("invalid magic")
	ErrInvalidType         = errors.New("invalid operation type")
	ErrTypedDataKeyMissing = errors.New("typed data key missing")
	ErrReentrantCall       = errors.New("reentrant registry call")

	// Existence
	ErrSpaceMissing  = errors.New("space missing")
	ErrSpaceExists   = errors.New("space already exists")
	ErrNameExists    = errors.New("name already registered")
	ErrOwnerBound    = errors.New("recipient already owns a name")
	ErrReservedSpace = errors.New("space name is reserved")

	// Policy
	ErrNotSpaceCreator = errors.New("sender is not the space creator")
	ErrPrivateSpace    = errors.New("private space disallows direct registration")
	ErrNotOperator     = errors.New("sender is not the operator")

	// Pricing and payment
	ErrInvalidPrice        = errors.New("invalid price")
	ErrPriceTaken          = errors.New("price already maps to a space")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrTransferFailure     = errors.New("transfer failed")

	// Proofs
	ErrInvalidProof     = errors.New("invalid authorization proof")
	ErrInvalidRecipient = errors.New("invalid recipient")

	// Batches
	ErrEmptyBatch                = errors.New("empty batch")
	ErrMixedSpaces               = errors.New("batch references multiple spaces")
	ErrNoSuccessfulRegistrations = errors.New("no successful registrations")

	// Claims
	ErrNothingToClaim = errors.New("nothing to claim")
)
