// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"time"
)

type Config struct {
	// DelegateTimeout bounds a single delegate validation callback.
	DelegateTimeout time.Duration `serialize:"true" json:"delegateTimeout"`

	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.DelegateTimeout = 3 * time.Second
	c.ActivityCacheSize = 128
}
