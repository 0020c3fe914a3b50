// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)

package version

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/peterbourgon/ff/v3/ffcli"
	"sysnames.dev/kernel"
	"sysnames.dev/syscalls"
)

var (
	Release    = "b000"
	CommitHash = "unknown"
	CommitTime = "unknown"
	BuildTime  = "unknown"
)

func getExecutableHashInner() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open executable: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, bufio.NewReader(io.LimitReader(f, 64<<20))); err != nil {
		return "", fmt.Errorf("copy hash: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

var getExecutableHash = sync.OnceValue(func() string {
	if hash, err := getExecutableHashInner(); err == nil {
		return hash
	}
	return "unknown"
})

type Command struct {
	flags struct {
		json bool
	}

	stdout io.Writer

	ffcli.Command
}

func NewCommand() *ffcli.Command {
	c := &Command{stdout: os.Stdout}

	c.Name = "version"
	c.ShortUsage = "sysnames version [flags]"
	c.ShortHelp = "print sysnames version and syscall table information"

	c.FlagSet = flag.NewFlagSet("", flag.ContinueOnError)
	c.FlagSet.BoolVar(&c.flags.json, "json", false, "output in JSON format")

	c.Exec = c.entrypoint
	return &c.Command
}

func (c *Command) entrypoint(ctx context.Context, args []string) error {
	fmt.Fprintf(c.stdout, "%s\n", Full(c.flags.json))
	return nil
}

func Full(isJSON bool) string {
	buildGoVersion, buildOS, buildArch := "unknown", "unknown", "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		buildGoVersion = info.GoVersion
		for _, s := range info.Settings {
			switch s.Key {
			case "GOOS":
				buildOS = s.Value
			case "GOARCH":
				buildArch = s.Value
			}
		}
	}

	kernelName, kernelVersion, kernelArch := "Unknown", "unknown", "unknown"
	if info, err := kernel.Uname(); err == nil {
		kernelName = info.Sysname
		kernelVersion = info.Release
	}
	if arch, err := kernel.Arch(); err == nil {
		kernelArch = arch
	}
	matches := kernel.MatchesTable(kernelArch, syscalls.Arch())

	b := new(bytes.Buffer)
	if isJSON {
		enc := json.NewEncoder(b)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]any{
			"release":        Release,
			"commitHash":     CommitHash,
			"commitTime":     CommitTime,
			"buildTime":      BuildTime,
			"buildGoVersion": buildGoVersion,
			"buildOS":        buildOS,
			"buildArch":      buildArch,
			"executableHash": getExecutableHash(),
			"kernelName":     kernelName,
			"kernelVersion":  kernelVersion,
			"kernelArch":     kernelArch,
			"tableArch":      syscalls.Arch(),
			"tableEntries":   syscalls.Current().Len(),
			"tableMatches":   matches,
		})
	} else {
		fmt.Fprintf(b, "%s\n", Release)
		fmt.Fprintf(b, "  commit %s at %s\n", CommitHash, CommitTime)
		fmt.Fprintf(b, "  built with %s %s/%s at %s hash %s\n", buildGoVersion, buildOS, buildArch, BuildTime, getExecutableHash())
		fmt.Fprintf(b, "  kernel %s %s on %s\n", kernelName, kernelVersion, kernelArch)
		fmt.Fprintf(b, "  running on %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(b, "  syscall table %s with %d entries", syscalls.Arch(), syscalls.Current().Len())
		if !matches {
			fmt.Fprintf(b, " (kernel is %s)", kernelArch)
		}
	}
	return b.String()
}
