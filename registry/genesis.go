// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/parser"
)

var (
	ErrInvalidGenesis = errors.New("invalid genesis")
)

// Allocation seeds an address with an initial native-unit balance.
type Allocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic binds every signed payload to this deployment.
	Magic uint64 `serialize:"true" json:"magic"`

	// RootSpace is the reserved sentinel space bare names resolve into.
	// Creating a space with this name is disallowed.
	RootSpace      string `serialize:"true" json:"rootSpace"`
	RootSpacePrice uint64 `serialize:"true" json:"rootSpacePrice"`

	// PriceStep is the step unit every per-name price must be a multiple of.
	PriceStep       uint64 `serialize:"true" json:"priceStep"`
	MinPublicPrice  uint64 `serialize:"true" json:"minPublicPrice"`
	MinPrivatePrice uint64 `serialize:"true" json:"minPrivatePrice"`

	// One-time creation fees for new spaces.
	PublicSpaceFee  uint64 `serialize:"true" json:"publicSpaceFee"`
	PrivateSpaceFee uint64 `serialize:"true" json:"privateSpaceFee"`

	// ExclusivityWindow is the number of seconds after space creation during
	// which only the creator may register or sponsor names in it.
	ExclusivityWindow uint64 `serialize:"true" json:"exclusivityWindow"`

	// OnboardingWindow is the number of seconds after genesis during which
	// the operator may bootstrap spaces for other addresses at zero cost.
	OnboardingWindow uint64 `serialize:"true" json:"onboardingWindow"`

	// Fee split in basis points; the operator absorbs the remainder so the
	// three portions always sum exactly to the payment.
	BurnBps    uint64 `serialize:"true" json:"burnBps"`
	CreatorBps uint64 `serialize:"true" json:"creatorBps"`

	Operator    common.Address `serialize:"true" json:"operator"`
	GenesisTime uint64         `serialize:"true" json:"genesisTime"`

	Allocations []*Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic:     1,
		RootSpace: "avax",

		RootSpacePrice:  1000000,
		PriceStep:       1000,
		MinPublicPrice:  1000,
		MinPrivatePrice: 100000,

		PublicSpaceFee:  10000000,
		PrivateSpaceFee: 50000000,

		ExclusivityWindow: 30 * 24 * 60 * 60,
		OnboardingWindow:  90 * 24 * 60 * 60,

		BurnBps:    9000,
		CreatorBps: 500,
	}
}

func (g *Genesis) Verify() error {
	switch {
	case g.Magic == 0:
		return ErrInvalidGenesis
	case parser.CheckContents(g.RootSpace) != nil:
		return ErrInvalidGenesis
	case g.PriceStep == 0:
		return ErrInvalidGenesis
	case g.MinPublicPrice == 0 || g.MinPublicPrice%g.PriceStep != 0:
		return ErrInvalidGenesis
	case g.MinPrivatePrice <= g.MinPublicPrice || g.MinPrivatePrice%g.PriceStep != 0:
		return ErrInvalidGenesis
	case g.RootSpacePrice < g.MinPublicPrice || g.RootSpacePrice%g.PriceStep != 0:
		return ErrInvalidGenesis
	case g.BurnBps+g.CreatorBps > feeDenominator:
		return ErrInvalidGenesis
	}
	return nil
}

// Load writes the genesis state: the root space record and the initial
// balance allocations.
func (g *Genesis) Load(db database.Database) error {
	info := &SpaceInfo{
		Price:   g.RootSpacePrice,
		Creator: g.Operator,
		Created: g.GenesisTime,
	}
	if err := PutSpaceInfo(db, g.RootSpace, info); err != nil {
		return err
	}
	if err := putPriceIndex(db, g.RootSpacePrice, g.RootSpace); err != nil {
		return err
	}
	for _, a := range g.Allocations {
		if _, err := ModifyBalance(db, a.Address, true, a.Balance); err != nil {
			return err
		}
	}
	return nil
}
