// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package sysgen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/exp/maps"
)

const filePrefix = "zsyscalls_linux"

type EmitOptions struct {
	// Package is the package clause of the generated files.
	Package string

	// Arches maps a table architecture to the GOARCH it is built into.
	Arches map[string]string

	// Command is recorded in the generated file header.
	Command string
}

type entry struct {
	Name   string
	Number uint64
}

type unit struct {
	Arch    string
	GOARCH  string
	Entries []entry
}

// Emit writes one Go file per architecture into dir, each gated by a build
// constraint on its GOARCH, plus a file with the lookup functions gated on
// the union of those GOARCHes. Previously generated files in dir are
// removed once the new ones are in place. If any file cannot be written,
// dir is left as it was. It returns the paths written.
func Emit(dir string, tables Tables, opts EmitOptions) ([]string, error) {
	if opts.Command == "" {
		opts.Command = "sysnames gen"
	}

	units, err := plan(tables, opts.Arches)
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte)
	var goarches []string
	for _, u := range units {
		b, err := renderTable(opts.Package, opts.Command, u)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", u.Arch, err)
		}
		files[filepath.Join(dir, fmt.Sprintf("%s_%s.go", filePrefix, u.GOARCH))] = b
		goarches = append(goarches, u.GOARCH)
	}

	b, err := renderLookup(opts.Package, opts.Command, goarches)
	if err != nil {
		return nil, fmt.Errorf("render lookup: %w", err)
	}
	files[filepath.Join(dir, filePrefix+".go")] = b

	// Nothing in dir is replaced until every file is staged.
	paths := maps.Keys(files)
	slices.Sort(paths)
	staged := make(map[string]string, len(paths))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for _, path := range paths {
		if fi, err := os.Lstat(path); err == nil && fi.IsDir() {
			return nil, fmt.Errorf("%s: is a directory", path)
		}
		tmp, err := writeTemp(dir, files[path])
		if err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
		staged[path] = tmp
	}

	for _, path := range paths {
		if err := os.Rename(staged[path], path); err != nil {
			return nil, fmt.Errorf("rename: %w", err)
		}
		delete(staged, path)
		slog.Debug("wrote generated file", "path", path, "bytes", len(files[path]))
	}

	stale, err := filepath.Glob(filepath.Join(dir, filePrefix+"*.go"))
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}
	for _, path := range stale {
		if _, ok := files[path]; ok {
			continue
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove stale: %w", err)
		}
		slog.Debug("removed stale generated file", "path", path)
	}
	return paths, nil
}

func writeTemp(dir string, b []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".zsyscalls-*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// plan pairs every table with its GOARCH. Each GOARCH may receive at most one
// table, otherwise two tables would be compiled into the same binary.
func plan(tables Tables, arches map[string]string) ([]unit, error) {
	var units []unit
	owner := make(map[string]string)
	for _, arch := range tables.Arches() {
		goarch, ok := arches[arch]
		if !ok {
			slog.Warn("skipping syscall table without a GOARCH", "arch", arch)
			continue
		}
		if prev, ok := owner[goarch]; ok {
			return nil, fmt.Errorf("tables %q and %q both map to GOARCH %q", prev, arch, goarch)
		}
		owner[goarch] = arch

		u := unit{Arch: arch, GOARCH: goarch}
		for name, nr := range tables[arch] {
			u.Entries = append(u.Entries, entry{Name: name, Number: nr})
		}
		slices.SortFunc(u.Entries, func(a, b entry) int {
			if c := cmp.Compare(a.Number, b.Number); c != 0 {
				return c
			}
			return strings.Compare(a.Name, b.Name)
		})
		units = append(units, u)
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("no syscall tables to emit")
	}
	slices.SortFunc(units, func(a, b unit) int { return strings.Compare(a.GOARCH, b.GOARCH) })
	return units, nil
}

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by {{.Command}}; DO NOT EDIT.

//go:build linux && {{.GOARCH}}

package {{.Package}}

var table = newTable({{printf "%q" .Arch}}, []Entry{
{{- range .Entries}}
	{Name: {{printf "%q" .Name}}, Number: {{.Number}}},
{{- end}}
})
`))

var lookupTemplate = template.Must(template.New("lookup").Parse(`// Code generated by {{.Command}}; DO NOT EDIT.

//go:build linux && ({{.Constraint}})

package {{.Package}}

// Current returns the table compiled in for this GOARCH.
func Current() *Table { return table }

// Arch returns the architecture of the compiled in table.
func Arch() string { return table.Arch }

// Number returns the number of the named system call. Names are matched
// case-insensitively.
func Number(name string) (uint64, bool) { return table.Number(name) }

// Name returns the name of the system call numbered nr.
func Name(nr uint64) (string, bool) { return table.Name(nr) }

// Format returns the name of nr, or a SYS_0x placeholder if it is unknown.
func Format(nr uint64) string { return table.Format(nr) }

// Entries returns every entry of the table sorted by number.
func Entries() []Entry { return table.Entries() }
`))

func renderTable(pkg, command string, u unit) ([]byte, error) {
	return render(tableTemplate, map[string]any{
		"Command": command,
		"Package": pkg,
		"Arch":    u.Arch,
		"GOARCH":  u.GOARCH,
		"Entries": u.Entries,
	})
}

func renderLookup(pkg, command string, goarches []string) ([]byte, error) {
	return render(lookupTemplate, map[string]any{
		"Command":    command,
		"Package":    pkg,
		"Constraint": strings.Join(goarches, " || "),
	})
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := tmpl.Execute(b, data); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}
