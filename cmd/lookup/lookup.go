// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)

package lookup

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"sysnames.dev/logging"
	"sysnames.dev/syscalls"
)

type Command struct {
	flags struct {
		json bool
	}

	stdout io.Writer

	ffcli.Command
}

func NewCommand() *ffcli.Command {
	return newCommand(os.Stdout)
}

func newCommand(stdout io.Writer) *ffcli.Command {
	c := &Command{stdout: stdout}

	c.Name = "lookup"
	c.ShortUsage = "sysnames lookup [flags] <name|number>..."
	c.ShortHelp = "translate syscall names to numbers and back"
	c.LongHelp = `
Numeric arguments (decimal, or hex with a 0x prefix) are resolved to names,
everything else is resolved to a number. Names are matched case-insensitively
against the table of the architecture sysnames was built for.

Examples:
  $ sysnames lookup execve
  $ sysnames lookup 59 0x101
`

	c.FlagSet = flag.NewFlagSet("lookup", flag.ContinueOnError)
	c.FlagSet.BoolVar(&c.flags.json, "json", false, "output in JSON format")
	c.FlagSet.BoolVar(&logging.Verbose, "v", false, "enable verbose debug logging")

	c.Options = []ff.Option{ff.WithEnvVarPrefix("SYSNAMES")}
	c.Exec = c.entrypoint
	return &c.Command
}

func (c *Command) entrypoint(ctx context.Context, args []string) error {
	logging.Init()

	if len(args) == 0 {
		c.FlagSet.SetOutput(c.stdout)
		c.FlagSet.Usage()
		return nil
	}

	var found []syscalls.Entry
	var missing []string
	for _, arg := range args {
		if e, ok := resolve(arg); ok {
			found = append(found, e)
		} else {
			missing = append(missing, arg)
		}
	}

	if c.flags.json {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"arch":    syscalls.Arch(),
			"found":   found,
			"missing": missing,
		}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	} else {
		for _, e := range found {
			fmt.Fprintf(c.stdout, "%s\t%d\n", e.Name, e.Number)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("not found on %s: %s", syscalls.Arch(), strings.Join(missing, ", "))
	}
	return nil
}

func resolve(arg string) (syscalls.Entry, bool) {
	if nr, err := strconv.ParseUint(arg, 0, 64); err == nil {
		name, ok := syscalls.Name(nr)
		return syscalls.Entry{Name: name, Number: nr}, ok
	}
	nr, ok := syscalls.Number(arg)
	return syscalls.Entry{Name: strings.ToLower(arg), Number: nr}, ok
}
