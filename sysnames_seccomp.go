// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (amd64 || arm64)

package main

import "sysnames.dev/cmd/seccomp"

func init() {
	subcommands = append(subcommands, seccomp.NewCommand())
}
