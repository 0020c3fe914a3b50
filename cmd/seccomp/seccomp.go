// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (amd64 || arm64)

package seccomp

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/term"
	"sysnames.dev/kernel"
	"sysnames.dev/logging"
	"sysnames.dev/seccomp"
	"sysnames.dev/syscalls"
)

type Command struct {
	flags struct {
		deny   bool
		action string
		output string
		disasm bool
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

	c.Name = "seccomp"
	c.ShortUsage = "sysnames seccomp [flags] <name>..."
	c.ShortHelp = "build a seccomp BPF filter from syscall names"
	c.LongHelp = `
The seccomp command resolves the given syscall names (space or comma
separated) and writes a classic BPF program, as an array of struct
sock_filter in native byte order, suitable for SECCOMP_SET_MODE_FILTER.

By default the names are an allow list and every other syscall gets the
action. With -deny the names get the action and everything else is allowed.
Syscalls from any other architecture always kill the process.

Actions: kill, kill_thread, trap, errno[=N|NAME], log, trace, notify.

Examples:
  $ sysnames seccomp -o filter.bpf read write exit_group
  $ sysnames seccomp -deny -action errno=EPERM -disasm ptrace,kexec_load
`

	c.FlagSet = flag.NewFlagSet("seccomp", flag.ContinueOnError)
	c.FlagSet.BoolVar(&c.flags.deny, "deny", false, "treat names as a deny list")
	c.FlagSet.StringVar(&c.flags.action, "action", "kill", "action for filtered syscalls")
	c.FlagSet.StringVar(&c.flags.output, "o", "", "write the program to this file instead of stdout")
	c.FlagSet.BoolVar(&c.flags.disasm, "disasm", false, "print a disassembly instead of the program")
	c.FlagSet.BoolVar(&logging.Verbose, "v", false, "enable verbose debug logging")

	c.Options = []ff.Option{ff.WithEnvVarPrefix("SYSNAMES")}
	c.Exec = c.entrypoint
	return &c.Command
}

func (c *Command) entrypoint(ctx context.Context, args []string) error {
	logging.Init()

	var names []string
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		c.FlagSet.SetOutput(c.stdout)
		c.FlagSet.Usage()
		return nil
	}

	action, err := seccomp.ParseAction(c.flags.action)
	if err != nil {
		return fmt.Errorf("parse action: %w", err)
	}

	if machine, err := kernel.Arch(); err != nil {
		slog.Debug("failed to get kernel arch", "err", err)
	} else if !kernel.MatchesTable(machine, syscalls.Arch()) {
		slog.Warn("kernel architecture differs from the compiled syscall table", "kernel", machine, "table", syscalls.Arch())
	}

	instrs, err := seccomp.Compile(syscalls.Current(), runtime.GOARCH, names, c.flags.deny, action)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	slog.Debug("compiled seccomp filter", "syscalls", len(names), "instructions", len(instrs), "deny", c.flags.deny)

	if c.flags.disasm {
		_, err := io.WriteString(c.stdout, seccomp.Disassemble(syscalls.Current(), instrs))
		return err
	}

	prog := seccomp.Marshal(instrs)
	if c.flags.output != "" {
		if err := os.WriteFile(c.flags.output, prog, 0o644); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}

	if c.terminal {
		slog.Info("refusing to write a binary program to a terminal, showing a disassembly instead (use -o)")
		_, err := io.WriteString(c.stdout, seccomp.Disassemble(syscalls.Current(), instrs))
		return err
	}
	if _, err := c.stdout.Write(prog); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
