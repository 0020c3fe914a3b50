// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64 || s390x)

package list

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/term"
	"sysnames.dev/filter"
	"sysnames.dev/logging"
	"sysnames.dev/syscalls"
)

type Command struct {
	flags struct {
		filter string
		json   bool
	}

	stdout   io.Writer
	terminal bool

	ffcli.Command
}

func NewCommand() *ffcli.Command {
	return newCommand(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

func newCommand(stdout io.Writer, terminal bool) *ffcli.Command {
	c := &Command{stdout: stdout, terminal: terminal}

	c.Name = "list"
	c.ShortUsage = "sysnames list [flags]"
	c.ShortHelp = "list the syscall table compiled into sysnames"
	c.LongHelp = `
The list command prints every syscall of the compiled in table, sorted by
number. Output to a pipe uses the same tab-separated format as the input
tables, so it can be fed back to "sysnames gen".

The -filter flag takes a CEL expression over the variables name (string),
number (int) and arch (string).

Examples:
  $ sysnames list -filter 'name.startsWith("open")'
  $ sysnames list -filter 'number >= 400' -json
`

	c.FlagSet = flag.NewFlagSet("list", flag.ContinueOnError)
	c.FlagSet.StringVar(&c.flags.filter, "filter", "", "CEL expression selecting entries")
	c.FlagSet.BoolVar(&c.flags.json, "json", false, "output in JSON format")
	c.FlagSet.BoolVar(&logging.Verbose, "v", false, "enable verbose debug logging")

	c.Options = []ff.Option{ff.WithEnvVarPrefix("SYSNAMES")}
	c.Exec = c.entrypoint
	return &c.Command
}

func (c *Command) entrypoint(ctx context.Context, args []string) error {
	logging.Init()

	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %q", args)
	}

	entries := syscalls.Entries()
	if c.flags.filter != "" {
		f, err := filter.New(c.flags.filter)
		if err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		if entries, err = f.Apply(syscalls.Current()); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		slog.Debug("applied filter", "expr", f, "matched", len(entries), "total", syscalls.Current().Len())
	}

	switch {
	case c.flags.json:
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"arch": syscalls.Arch(), "entries": entries}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case c.terminal:
		w := tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "NUMBER\tNAME\t\n")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t\n", e.Number, e.Name)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	default:
		for _, e := range entries {
			fmt.Fprintf(c.stdout, "%s\t%d\n", e.Name, e.Number)
		}
	}
	return nil
}
