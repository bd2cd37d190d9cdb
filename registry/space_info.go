// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ethereum/go-ethereum/common"
)

// SpaceInfo is immutable after creation: price, creator, and creation time
// never change, and spaces are never deleted.
type SpaceInfo struct {
	Price   uint64         `serialize:"true" json:"price"`
	Creator common.Address `serialize:"true" json:"creator"`
	Created uint64         `serialize:"true" json:"created"`
	Private bool           `serialize:"true" json:"private"`
}

// NameInfo binds a (label, space) pair to its owner. Registration is
// terminal; there is no release and no transfer.
type NameInfo struct {
	Owner   common.Address `serialize:"true" json:"owner"`
	Created uint64         `serialize:"true" json:"created"`
}
