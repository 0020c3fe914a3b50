// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command sysgen runs the table generator on its own. It is what go generate
// invokes in the syscalls package, since the sysnames binary itself cannot be
// built until the tables exist.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"sysnames.dev/cmd/gen"
)

func main() {
	c := gen.NewCommand()
	switch err := c.Parse(os.Args[1:]); {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		return
	default:
		fmt.Fprintf(os.Stderr, "sysgen: error: %v\n", err)
		os.Exit(2)
	}

	if err := c.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "sysgen: error: %v\n", err)
		os.Exit(1)
	}
}
