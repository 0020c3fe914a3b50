// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
)

type Info struct {
	Sysname  string `json:"sysname"`
	Nodename string `json:"nodename"`
	Release  string `json:"release"`
	Machine  string `json:"machine"`
}

func cstr(b []byte) string {
	if end := bytes.IndexByte(b, 0); end != -1 {
		return string(b[:end])
	}
	return string(b)
}

func Uname() (*Info, error) {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return nil, fmt.Errorf("uname: %w", err)
	}
	return &Info{
		Sysname:  cstr(buf.Sysname[:]),
		Nodename: cstr(buf.Nodename[:]),
		Release:  cstr(buf.Release[:]),
		Machine:  cstr(buf.Machine[:]),
	}, nil
}

// Arch returns the machine architecture of the running kernel, which may
// differ from GOARCH (a 386 binary on an x86_64 kernel, for example).
func Arch() (string, error) {
	arch, err := host.KernelArch()
	if err == nil && arch != "" {
		return arch, nil
	}
	slog.Debug("falling back to uname for kernel arch", "err", err)

	info, err := Uname()
	if err != nil {
		return "", err
	}
	return info.Machine, nil
}

var aliases = map[string]string{
	"aarch64":   "arm64",
	"arm64":     "arm64",
	"i386":      "i386",
	"i486":      "i386",
	"i586":      "i386",
	"i686":      "i386",
	"x86":       "i386",
	"amd64":     "x86_64",
	"x86_64":    "x86_64",
	"ppc64le":   "powerpc64le",
	"ppc64":     "powerpc64",
	"loong64":   "loongarch64",
	"s390x":     "s390x",
	"riscv64":   "riscv64",
	"mips64":    "mips64",
	"mips64el":  "mips64le",
	"mips64le":  "mips64le",
	"mipsel":    "mipsle",
	"armoabi":   "arm",
	"armv6l":    "arm",
	"armv7l":    "arm",
	"armv8l":    "arm",
	"armhf":     "arm",
	"arm":       "arm",
	"powerpc64": "powerpc64",
}

// Normalize maps the many spellings of an architecture (uname machine names,
// GOARCH values, table names) onto the names used by syscall tables.
func Normalize(arch string) string {
	arch = strings.ToLower(arch)
	if norm, ok := aliases[arch]; ok {
		return norm
	}
	return arch
}

// MatchesTable reports whether a kernel reporting machine runs syscalls with
// the numbering of the named table.
func MatchesTable(machine string, table string) bool {
	return Normalize(machine) == Normalize(table)
}
