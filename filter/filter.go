// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"sysnames.dev/syscalls"
)

// Filter is a compiled CEL predicate over syscall table entries, e.g.
//
//	number < 100 && name.startsWith("open")
type Filter struct {
	expr    string
	program cel.Program
}

func New(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("number", cel.IntType),
		cel.Variable("arch", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("create env: %w", err)
	}

	ast, iss := env.Compile(expr)
	if err = iss.Err(); err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	if got, want := ast.OutputType(), cel.BoolType; !reflect.DeepEqual(got, want) {
		return nil, fmt.Errorf("invalid output type: got %v, want %v", got, want)
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	f := &Filter{expr: expr, program: program}
	if _, err := f.Eval("x86_64", dummy); err != nil {
		return nil, fmt.Errorf("static test: %w", err)
	}
	return f, nil
}

func (f *Filter) String() string {
	return f.expr
}

func (f *Filter) Eval(arch string, e syscalls.Entry) (bool, error) {
	ret, _, err := f.program.Eval(map[string]any{
		"name":   e.Name,
		"number": int64(e.Number),
		"arch":   arch,
	})
	if err != nil {
		return false, fmt.Errorf("eval: %w", err)
	}

	if x, ok := ret.Value().(bool); !ok {
		return false, fmt.Errorf("invalid return type: got %T, want bool", ret.Value())
	} else {
		return x, nil
	}
}

// Apply returns the entries of t for which f is true.
func (f *Filter) Apply(t *syscalls.Table) ([]syscalls.Entry, error) {
	var ret []syscalls.Entry
	for _, e := range t.Entries() {
		ok, err := f.Eval(t.Arch, e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		if ok {
			ret = append(ret, e)
		}
	}
	return ret, nil
}

var dummy = syscalls.Entry{Name: "execve", Number: 59}
