// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

const aliasFileVersion = 1

// AliasFile is an integrator-provided TOML file overriding the registry's
// alias table, e.g.:
//
//	version = 1
//	clear = true
//
//	[aliases]
//	b = "build"
//	t = "test"
//
// When clear is true, the seeded aliases ("-h", "-v") are dropped before the
// file's mappings are applied.
type AliasFile struct {
	Version int               `toml:"version,omitempty"`
	Clear   bool              `toml:"clear,omitempty"`
	Aliases map[string]string `toml:"aliases"`
}

// LoadAliasFile reads and validates an alias file. A missing file is
// reported with os.ErrNotExist so the caller can treat it as optional.
func LoadAliasFile(path string) (*AliasFile, error) {
	var f AliasFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if f.Version == 0 {
		f.Version = aliasFileVersion
	}
	if f.Version != aliasFileVersion {
		return nil, fmt.Errorf("%s: unsupported version %d", path, f.Version)
	}
	for alias, canonical := range f.Aliases {
		if alias == "" || canonical == "" {
			return nil, fmt.Errorf("%s: empty alias mapping", path)
		}
		if alias == canonical {
			return nil, fmt.Errorf("%s: alias %q maps to itself", path, alias)
		}
	}
	return &f, nil
}

// ApplyAliasFile applies an alias file to the CLI's root group. Call it
// before the first interpretation.
func (c *CLI) ApplyAliasFile(f *AliasFile) {
	if f == nil {
		return
	}
	if f.Clear {
		c.Root.ClearAliases()
	}
	for alias, canonical := range f.Aliases {
		c.Root.Alias(alias, canonical)
	}
}

// ApplyAliasFileIfPresent loads path and applies it, ignoring a missing
// file. Parse failures are logged and skipped; a bad alias file should not
// take the whole tool down.
func (c *CLI) ApplyAliasFileIfPresent(path string) {
	f, err := LoadAliasFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to load alias file: %v", err)
		}
		return
	}
	c.ApplyAliasFile(f)
}
