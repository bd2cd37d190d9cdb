// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

// Activity record types. One "register" record is emitted per successfully
// bound name (including each non-skipped batch item), one "space" record per
// created space, and one "claim" record per fee claim.
const (
	RegisteredActivity = "register"
	SpaceActivity      = "space"
	ClaimActivity      = "claim"
)

type Activity struct {
	Tmstmp  uint64 `serialize:"true" json:"timestamp"`
	Typ     string `serialize:"true" json:"type"`
	Label   string `serialize:"true" json:"label,omitempty"`
	Space   string `serialize:"true" json:"space,omitempty"`
	Owner   string `serialize:"true" json:"owner,omitempty"`
	To      string `serialize:"true" json:"to,omitempty"`
	Price   uint64 `serialize:"true" json:"price,omitempty"`
	Amount  uint64 `serialize:"true" json:"amount,omitempty"`
	Private bool   `serialize:"true" json:"private,omitempty"`
}
