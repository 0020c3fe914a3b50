// Copyright (c) Subtrace, Inc.
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config controls how syscall tables are turned into Go source.
type Config struct {
	// Prefix is stripped from each table file name to get the architecture.
	Prefix string `yaml:"prefix"`

	// Package is the package clause of the generated files.
	Package string `yaml:"package"`

	// Arches maps a table architecture to the GOARCH whose build it is
	// compiled into. Tables for architectures missing here are skipped.
	Arches map[string]string `yaml:"arches"`
}

// goarches are the GOARCH values Go supports on linux.
var goarches = []string{
	"386",
	"amd64",
	"arm",
	"arm64",
	"loong64",
	"mips",
	"mips64",
	"mips64le",
	"mipsle",
	"ppc64",
	"ppc64le",
	"riscv64",
	"s390x",
}

func Default() *Config {
	return &Config{
		Prefix:  "syscalls-",
		Package: "syscalls",
		Arches: map[string]string{
			"x86_64":      "amd64",
			"i386":        "386",
			"arm64":       "arm64",
			"aarch64":     "arm64",
			"arm":         "arm",
			"armoabi":     "arm",
			"riscv64":     "riscv64",
			"powerpc64":   "ppc64",
			"powerpc64le": "ppc64le",
			"s390x":       "s390x",
			"loongarch64": "loong64",
			"mips":        "mips",
			"mipsle":      "mipsle",
			"mips64":      "mips64",
			"mips64le":    "mips64le",
		},
	}
}

// Load reads a YAML file over c. Keys absent from the file keep their
// current values; entries under arches are merged, and an empty GOARCH
// removes the architecture.
func (c *Config) Load(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if file.Prefix != "" {
		c.Prefix = file.Prefix
	}
	if file.Package != "" {
		c.Package = file.Package
	}
	if c.Arches == nil {
		c.Arches = make(map[string]string)
	}
	for arch, goarch := range file.Arches {
		if goarch == "" {
			delete(c.Arches, arch)
			continue
		}
		c.Arches[arch] = goarch
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	slog.Debug("parsed config", "path", path, "prefix", c.Prefix, "package", c.Package, "arches", len(c.Arches))
	return nil
}

func (c *Config) Validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("config: empty table prefix")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("config: invalid package name %q", c.Package)
	}
	for arch, goarch := range c.Arches {
		if arch == "" {
			return fmt.Errorf("config: empty architecture for GOARCH %q", goarch)
		}
		if !slices.Contains(goarches, goarch) {
			return fmt.Errorf("config: architecture %q: unsupported GOARCH %q", arch, goarch)
		}
	}
	return nil
}
