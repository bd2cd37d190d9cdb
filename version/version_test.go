// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "testing"

func TestVersion(t *testing.T) {
	if Version.String() == "" {
		t.Fatal("empty version string")
	}
}
