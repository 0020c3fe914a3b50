// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package gen

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"sysnames.dev/config"
	"sysnames.dev/logging"
	"sysnames.dev/sysgen"
)

type Command struct {
	flags struct {
		tables string
		out    string
		config string
		prefix string
		pkg    string
	}

	ffcli.Command
}

func NewCommand() *ffcli.Command {
	c := new(Command)

	c.Name = "gen"
	c.ShortUsage = "sysnames gen [flags]"
	c.ShortHelp = "generate Go lookup tables from syscall table files"
	c.LongHelp = `
The gen command reads one tab-separated table per architecture from the
tables directory (files named <prefix><arch>, rows of <name> <number>) and
writes a Go file per architecture into the output directory. Each file is
gated by a build constraint on its GOARCH so that only one table is ever
compiled into a binary.

Examples:
  # Regenerate the tables shipped with this module
  sysnames gen -tables syscalls/tables -out syscalls

  # Map an extra table onto a GOARCH
  sysnames gen -config sysgen.yaml
`

	c.FlagSet = flag.NewFlagSet("gen", flag.ContinueOnError)
	c.FlagSet.StringVar(&c.flags.tables, "tables", "tables", "directory containing the syscall tables")
	c.FlagSet.StringVar(&c.flags.out, "out", ".", "directory to write generated files to")
	c.FlagSet.StringVar(&c.flags.config, "config", "", "generator configuration file path")
	c.FlagSet.StringVar(&c.flags.prefix, "prefix", "", "table file name prefix (overrides config)")
	c.FlagSet.StringVar(&c.flags.pkg, "pkg", "", "package name of generated files (overrides config)")
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

	cfg := config.Default()
	if c.flags.config != "" {
		if err := cfg.Load(c.flags.config); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if c.flags.prefix != "" {
		cfg.Prefix = c.flags.prefix
	}
	if c.flags.pkg != "" {
		cfg.Package = c.flags.pkg
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tables, err := sysgen.Ingest(c.flags.tables, cfg.Prefix)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	paths, err := sysgen.Emit(c.flags.out, tables, sysgen.EmitOptions{
		Package: cfg.Package,
		Arches:  cfg.Arches,
		Command: "sysnames gen",
	})
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	slog.Info("generated syscall tables", "arches", tables.Arches(), "files", len(paths), "out", c.flags.out)
	return nil
}
