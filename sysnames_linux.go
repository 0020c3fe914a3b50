// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)

package main

import (
	"github.com/peterbourgon/ff/v3/ffcli"
	"sysnames.dev/cmd/gen"
	"sysnames.dev/cmd/list"
	"sysnames.dev/cmd/lookup"
	"sysnames.dev/cmd/version"
)

// seccomp is appended by sysnames_seccomp.go on the architectures it
// supports.
var subcommands = []*ffcli.Command{
	lookup.NewCommand(),
	list.NewCommand(),
	gen.NewCommand(),
	version.NewCommand(),
}
