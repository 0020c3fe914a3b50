// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && (amd64 || arm64)

// Package seccomp builds classic BPF programs for seccomp(2) filters from
// syscall names. It does not install them. The gvisor bpf and abi packages
// it builds on only support amd64 and arm64.
package seccomp

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
	"gvisor.dev/gvisor/pkg/abi/linux"
	"gvisor.dev/gvisor/pkg/bpf"
	"sysnames.dev/syscalls"
)

const (
	// ref: <linux/seccomp.h>: https://elixir.bootlin.com/linux/v6.7/source/include/uapi/linux/seccomp.h
	SECCOMP_RET_KILL_PROCESS = 0x80000000
	SECCOMP_RET_KILL_THREAD  = 0x00000000
	SECCOMP_RET_TRAP         = 0x00030000
	SECCOMP_RET_ERRNO        = 0x00050000
	SECCOMP_RET_USER_NOTIF   = 0x7fc00000
	SECCOMP_RET_TRACE        = 0x7ff00000
	SECCOMP_RET_LOG          = 0x7ffc0000
	SECCOMP_RET_ALLOW        = 0x7fff0000
	SECCOMP_RET_DATA         = 0x0000ffff
)

const (
	// ref: <linux/seccomp.h>: struct seccomp_data
	offsetNR   = 0
	offsetArch = 4

	// ref: <asm/unistd.h>: __X32_SYSCALL_BIT
	x32SyscallBit = 0x40000000
)

// ParseAction parses an action name (kill, kill_thread, trap, errno, log,
// trace, notify, allow). errno returns EPERM; errno=N returns N.
func ParseAction(s string) (uint32, error) {
	name, arg, hasArg := strings.Cut(s, "=")
	switch name {
	case "kill", "kill_process":
		return SECCOMP_RET_KILL_PROCESS, nil
	case "kill_thread":
		return SECCOMP_RET_KILL_THREAD, nil
	case "trap":
		return SECCOMP_RET_TRAP, nil
	case "errno":
		errno := uint64(unix.EPERM)
		if hasArg {
			n, err := parseErrno(arg)
			if err != nil {
				return 0, err
			}
			errno = n
		}
		return SECCOMP_RET_ERRNO | uint32(errno), nil
	case "log":
		return SECCOMP_RET_LOG, nil
	case "trace":
		return SECCOMP_RET_TRACE, nil
	case "notify":
		return SECCOMP_RET_USER_NOTIF, nil
	case "allow":
		return SECCOMP_RET_ALLOW, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

func parseErrno(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return n, nil
	}
	for i := 1; i < 4096; i++ {
		if unix.ErrnoName(unix.Errno(i)) == strings.ToUpper(s) {
			return uint64(i), nil
		}
	}
	return 0, fmt.Errorf("invalid errno %q", s)
}

// AuditArch returns the AUDIT_ARCH_* value the kernel reports in
// seccomp_data.arch for binaries built for goarch.
func AuditArch(goarch string) (uint32, error) {
	switch goarch {
	case "amd64":
		return linux.AUDIT_ARCH_X86_64, nil
	case "arm64":
		return linux.AUDIT_ARCH_AARCH64, nil
	default:
		return 0, fmt.Errorf("unsupported arch: %q", goarch)
	}
}

type Policy struct {
	// AuditArch is checked against seccomp_data.arch. Any other
	// architecture kills the process.
	AuditArch uint32

	// Syscalls are the numbers Match applies to.
	Syscalls []uint64

	// Match is returned for listed syscalls, Default for everything else.
	Match   uint32
	Default uint32
}

// Build assembles the filter program for p.
func Build(p Policy) ([]linux.BPFInstruction, error) {
	builder := bpf.NewProgramBuilder()

	// Check that the BPF program is running in the expected architecture. If
	// not, kill the process.
	builder.AddStmt(bpf.Ld|bpf.W|bpf.Abs, offsetArch)
	builder.AddJump(bpf.Jmp|bpf.Jeq|bpf.K, p.AuditArch, 1, 0)
	builder.AddStmt(bpf.Ret|bpf.K, SECCOMP_RET_KILL_PROCESS)

	// Check if the number matches one of the listed syscalls.
	builder.AddStmt(bpf.Ld|bpf.W|bpf.Abs, offsetNR)

	// x32 syscalls share AUDIT_ARCH_X86_64 but set a high bit in nr, so they
	// would never match a listed number. Kill them outright.
	if p.AuditArch == linux.AUDIT_ARCH_X86_64 {
		builder.AddJump(bpf.Jmp|bpf.Jge|bpf.K, x32SyscallBit, 0, 1)
		builder.AddStmt(bpf.Ret|bpf.K, SECCOMP_RET_KILL_PROCESS)
	}

	seen := make(map[uint64]bool)
	for _, nr := range p.Syscalls {
		if nr > math.MaxUint32 {
			return nil, fmt.Errorf("syscall number %d out of range", nr)
		}
		if seen[nr] {
			continue
		}
		seen[nr] = true
		builder.AddJump(bpf.Jmp|bpf.Jeq|bpf.K, uint32(nr), 0, 1)
		builder.AddStmt(bpf.Ret|bpf.K, p.Match)
	}

	builder.AddStmt(bpf.Ret|bpf.K, p.Default)

	var instrs []linux.BPFInstruction
	if arr, err := builder.Instructions(); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	} else {
		for _, ins := range arr {
			instrs = append(instrs, linux.BPFInstruction(ins))
		}
	}
	return instrs, nil
}

// Compile resolves names against t and builds a filter for goarch. By default
// the names form an allow list and everything else gets action; with deny
// the names get action and everything else is allowed.
func Compile(t *syscalls.Table, goarch string, names []string, deny bool, action uint32) ([]linux.BPFInstruction, error) {
	arch, err := AuditArch(goarch)
	if err != nil {
		return nil, err
	}

	var nrs []uint64
	var unknown []string
	for _, name := range names {
		nr, ok := t.Number(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		nrs = append(nrs, nr)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown syscalls on %s: %s", t.Arch, strings.Join(unknown, ", "))
	}

	p := Policy{AuditArch: arch, Syscalls: nrs, Match: SECCOMP_RET_ALLOW, Default: action}
	if deny {
		p.Match, p.Default = action, SECCOMP_RET_ALLOW
	}
	return Build(p)
}

// Marshal encodes instrs as an array of struct sock_filter in native byte
// order, ready for SECCOMP_SET_MODE_FILTER.
func Marshal(instrs []linux.BPFInstruction) []byte {
	ret := make([]byte, 0, 8*len(instrs))
	for _, ins := range instrs {
		ret = binary.NativeEndian.AppendUint16(ret, ins.OpCode)
		ret = append(ret, ins.JumpIfTrue, ins.JumpIfFalse)
		ret = binary.NativeEndian.AppendUint32(ret, ins.K)
	}
	return ret
}

// Disassemble renders instrs one per line, resolving syscall numbers
// against t where an instruction compares the loaded nr.
func Disassemble(t *syscalls.Table, instrs []linux.BPFInstruction) string {
	var b strings.Builder
	loadedNR := false
	for i, ins := range instrs {
		fmt.Fprintf(&b, "%04d: ", i)
		switch ins.OpCode {
		case bpf.Ld | bpf.W | bpf.Abs:
			loadedNR = ins.K == offsetNR
			switch ins.K {
			case offsetNR:
				fmt.Fprintf(&b, "ld [nr]")
			case offsetArch:
				fmt.Fprintf(&b, "ld [arch]")
			default:
				fmt.Fprintf(&b, "ld [%d]", ins.K)
			}
		case bpf.Jmp | bpf.Jeq | bpf.K:
			fmt.Fprintf(&b, "jeq #0x%x, %d, %d", ins.K, ins.JumpIfTrue, ins.JumpIfFalse)
			if loadedNR && t != nil {
				fmt.Fprintf(&b, " ; %s", t.Format(uint64(ins.K)))
			}
		case bpf.Jmp | bpf.Jge | bpf.K:
			fmt.Fprintf(&b, "jge #0x%x, %d, %d", ins.K, ins.JumpIfTrue, ins.JumpIfFalse)
		case bpf.Ret | bpf.K:
			fmt.Fprintf(&b, "ret %s", actionString(ins.K))
		default:
			fmt.Fprintf(&b, "op=0x%04x jt=%d jf=%d k=0x%x", ins.OpCode, ins.JumpIfTrue, ins.JumpIfFalse, ins.K)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func actionString(k uint32) string {
	switch k &^ SECCOMP_RET_DATA {
	case SECCOMP_RET_KILL_PROCESS:
		return "KILL_PROCESS"
	case SECCOMP_RET_KILL_THREAD:
		return "KILL_THREAD"
	case SECCOMP_RET_TRAP:
		return "TRAP"
	case SECCOMP_RET_ERRNO:
		return fmt.Sprintf("ERRNO(%d)", k&SECCOMP_RET_DATA)
	case SECCOMP_RET_USER_NOTIF:
		return "USER_NOTIF"
	case SECCOMP_RET_TRACE:
		return "TRACE"
	case SECCOMP_RET_LOG:
		return "LOG"
	case SECCOMP_RET_ALLOW:
		return "ALLOW"
	default:
		return fmt.Sprintf("0x%08x", k)
	}
}
