// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package sysgen turns per-architecture syscall tables into Go source.
package sysgen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tables maps an architecture to the syscall numbers of its table.
type Tables map[string]map[string]uint64

// Arches returns the architectures in t in sorted order.
func (t Tables) Arches() []string {
	arches := maps.Keys(t)
	slices.Sort(arches)
	return arches
}

// Ingest reads every file in dir whose name starts with prefix. The rest of
// the file name is the architecture. Each row is <name>\t<number>; extra
// columns are ignored and rows without a valid number are skipped.
func Ingest(dir string, prefix string) (Tables, error) {
	if fi, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, globEscape(prefix)+"*"))
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}

	// Must agree with syscalls.Fold, which folds names at lookup time.
	lower := cases.Lower(language.Und)
	tables := make(Tables)
	for _, path := range paths {
		base := filepath.Base(path)
		if !utf8.ValidString(base) {
			return nil, fmt.Errorf("%q: file name is not valid UTF-8", path)
		}
		arch := strings.TrimPrefix(base, prefix)
		if arch == "" {
			return nil, fmt.Errorf("%s: empty architecture", path)
		}

		if tables[arch] == nil {
			tables[arch] = make(map[string]uint64)
		}
		if err := ingestFile(path, lower, tables[arch]); err != nil {
			return nil, fmt.Errorf("ingest %s: %w", base, err)
		}
	}
	return tables, nil
}

func ingestFile(path string, lower cases.Caser, dst map[string]uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	var rows, skipped int
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rows++

		var perr *csv.ParseError
		switch {
		case errors.As(err, &perr):
			skipped++
			continue
		case err != nil:
			return fmt.Errorf("read: %w", err)
		}

		name, nr, ok := parseRow(record, lower)
		if !ok {
			skipped++
			continue
		}
		dst[name] = nr
	}

	slog.Debug("ingested syscall table", "path", path, "rows", rows, "skipped", skipped, "entries", len(dst))
	return nil
}

func parseRow(record []string, lower cases.Caser) (string, uint64, bool) {
	if len(record) < 2 {
		return "", 0, false
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return "", 0, false
	}
	nr, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return "", 0, false
	}
	return lower.String(name), nr, true
}

// globEscape quotes the glob metacharacters in s.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
