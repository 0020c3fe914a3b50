// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var Verbose bool

// Init installs the default logger. Logs go to stderr so that lookup and
// generated output on stdout stay machine readable.
func Init() {
	slog.SetDefault(New(os.Stderr, Verbose))
}

func New(w io.Writer, verbose bool) *slog.Logger {
	_, path, _, _ := runtime.Caller(0)
	prefix := strings.TrimSuffix(path, "/logging/logging.go")

	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		AddSource: verbose,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.SourceKey:
				src, ok := attr.Value.Any().(*slog.Source)
				if !ok {
					return attr
				}
				src.File = strings.TrimPrefix(src.File, prefix+"/")
				src.File = strings.TrimPrefix(src.File, filepath.Dir(prefix)+"/")
				return slog.Attr{Key: "src", Value: attr.Value}
			case slog.MessageKey:
				if msg, _ := attr.Value.Any().(string); msg == "" {
					return slog.Attr{}
				}
			}
			return attr
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
