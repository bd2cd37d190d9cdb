// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "names-cli" implements the namesvm client operation interface.
package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/namesvm/cmd/names-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "names-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
