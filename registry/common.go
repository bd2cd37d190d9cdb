// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/parser"
)

// inExclusivityWindow reports whether [blockTime] still falls inside the
// space's creator-exclusivity window. For private spaces this is
// informational only; the creator-only policy applies forever.
func inExclusivityWindow(g *Genesis, i *SpaceInfo, blockTime uint64) bool {
	return blockTime <= i.Created+g.ExclusivityWindow
}

// checkSponsor enforces the sponsoring-party policy: private spaces are
// creator-sponsored forever (keyed off the space's creator, not a global
// operator constant); public spaces are creator-sponsored only inside the
// exclusivity window.
func checkSponsor(c *OpContext, i *SpaceInfo) error {
	if i.Private {
		if c.Sender != i.Creator {
			return ErrNotSpaceCreator
		}
		return nil
	}
	if inExclusivityWindow(c.Genesis, i, c.BlockTime) && c.Sender != i.Creator {
		return ErrNotSpaceCreator
	}
	return nil
}

// bindName performs the terminal Unregistered -> Registered transition:
// the recipient must be unbound and the (label, space) pair unregistered.
func bindName(c *OpContext, space string, label string, owner common.Address) error {
	if owner == zeroAddress {
		return ErrInvalidRecipient
	}
	if _, bound, err := GetOwned(c.Database, owner); err != nil {
		return err
	} else if bound {
		return ErrOwnerBound
	}
	if has, err := HasName(c.Database, space, label); err != nil {
		return err
	} else if has {
		return ErrNameExists
	}
	if err := PutNameInfo(c.Database, space, label, &NameInfo{
		Owner:   owner,
		Created: c.BlockTime,
	}); err != nil {
		return err
	}
	if err := PutOwned(c.Database, owner, fullName(label, space, c.Genesis)); err != nil {
		return err
	}
	c.record(&Activity{
		Typ:   RegisteredActivity,
		Label: label,
		Space: space,
		Owner: owner.Hex(),
	})
	return nil
}

// checkNewSpace validates the syntax, reservation, uniqueness, and pricing
// rules shared by the paid and bootstrap creation paths, returning the
// creation fee for the requested visibility.
func checkNewSpace(c *OpContext, space string, price uint64, private bool) (uint64, error) {
	g := c.Genesis
	if err := parser.CheckContents(space); err != nil {
		return 0, err
	}
	if space == g.RootSpace {
		return 0, ErrReservedSpace
	}
	if has, err := HasSpace(c.Database, space); err != nil {
		return 0, err
	} else if has {
		return 0, ErrSpaceExists
	}

	min, fee := g.MinPublicPrice, g.PublicSpaceFee
	if private {
		min, fee = g.MinPrivatePrice, g.PrivateSpaceFee
	}
	if price < min || price%g.PriceStep != 0 {
		return 0, ErrInvalidPrice
	}
	if !private {
		if taken, err := HasPrice(c.Database, price); err != nil {
			return 0, err
		} else if taken {
			return 0, ErrPriceTaken
		}
	}
	return fee, nil
}

// createSpace persists the record and, for public spaces, its price index
// entry.
func createSpace(c *OpContext, space string, price uint64, private bool, creator common.Address) error {
	if err := PutSpaceInfo(c.Database, space, &SpaceInfo{
		Price:   price,
		Creator: creator,
		Created: c.BlockTime,
		Private: private,
	}); err != nil {
		return err
	}
	if !private {
		if err := putPriceIndex(c.Database, price, space); err != nil {
			return err
		}
	}
	c.record(&Activity{
		Typ:     SpaceActivity,
		Space:   space,
		Price:   price,
		Owner:   creator.Hex(),
		Private: private,
	})
	return nil
}
