// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x))

package main

import (
	"github.com/peterbourgon/ff/v3/ffcli"
	"sysnames.dev/cmd/gen"
)

// There is no syscall table for this target, so only the generator is
// available.
var subcommands = []*ffcli.Command{
	gen.NewCommand(),
}
