// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
)

func newRootCommand() *ffcli.Command {
	c := &ffcli.Command{
		Name:        filepath.Base(os.Args[0]),
		ShortUsage:  "sysnames <command> [flags]",
		Subcommands: subcommands,
		FlagSet:     flag.NewFlagSet("sysnames", flag.ContinueOnError),
	}
	c.FlagSet.SetOutput(os.Stdout)

	// Only reached when args[0] names no subcommand.
	c.Exec = func(ctx context.Context, args []string) error {
		fmt.Fprintf(os.Stdout, "%s\n", c.UsageFunc(c))
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return nil
	}
	return c
}

func main() {
	c := newRootCommand()

	switch err := c.Parse(os.Args[1:]); {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		return
	case strings.Contains(err.Error(), "flag provided but not defined"):
		os.Exit(2)
	default:
		exit(err)
	}

	if err := c.Run(context.Background()); err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "sysnames: error: %v\n", err)
	os.Exit(1)
}
