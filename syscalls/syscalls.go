// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package syscalls maps Linux system call names to numbers and back for the
// architecture the binary is built for. The tables are generated from the
// files in tables/ by go generate; only the table matching GOARCH is compiled
// in, and targets without a table have no lookup API at all.
package syscalls

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Entry struct {
	Name   string `json:"name"`
	Number uint64 `json:"number"`
}

// Table is an immutable bidirectional name/number table for one
// architecture. The lookup maps are built on first use.
type Table struct {
	Arch string

	entries []Entry

	once     sync.Once
	byName   map[string]uint64
	byNumber map[uint64]string
}

func newTable(arch string, entries []Entry) *Table {
	return &Table{Arch: arch, entries: entries}
}

// NewTable builds a table from entries as they would appear in a generated
// file. Names are expected to be folded with Fold already.
func NewTable(arch string, entries []Entry) *Table {
	return newTable(arch, slices.Clone(entries))
}

func (t *Table) load() {
	t.once.Do(func() {
		t.byName = make(map[string]uint64, len(t.entries))
		t.byNumber = make(map[uint64]string, len(t.entries))
		for _, e := range t.entries {
			t.byName[e.Name] = e.Number
			// Aliases: the first name emitted for a number wins.
			if _, ok := t.byNumber[e.Number]; !ok {
				t.byNumber[e.Number] = e.Name
			}
		}
	})
}

// Number returns the number of the named system call. The name is matched
// case-insensitively.
func (t *Table) Number(name string) (uint64, bool) {
	t.load()
	nr, ok := t.byName[Fold(name)]
	return nr, ok
}

// Fold lowercases name the way table names are stored. Non-ASCII input goes
// through the Unicode lowercase mapping, so a final sigma stays final.
func Fold(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return cases.Lower(language.Und).String(name)
		}
	}
	return strings.ToLower(name)
}

// Name returns the name of the system call with the given number.
func (t *Table) Name(nr uint64) (string, bool) {
	t.load()
	name, ok := t.byNumber[nr]
	return name, ok
}

// Format returns the name for nr, or a placeholder like SYS_0x1C8 when the
// number is unknown. Handy for log lines.
func (t *Table) Format(nr uint64) string {
	if name, ok := t.Name(nr); ok {
		return name
	}
	return fmt.Sprintf("SYS_0x%X", nr)
}

// Entries returns a copy of the table sorted by number, then name.
func (t *Table) Entries() []Entry {
	ret := slices.Clone(t.entries)
	slices.SortFunc(ret, compareEntries)
	return ret
}

func (t *Table) Len() int {
	return len(t.entries)
}

func compareEntries(a, b Entry) int {
	switch {
	case a.Number < b.Number:
		return -1
	case a.Number > b.Number:
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}
