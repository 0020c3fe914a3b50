// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package syscalls

//go:generate go run sysnames.dev/tools/sysgen -tables tables -out .
