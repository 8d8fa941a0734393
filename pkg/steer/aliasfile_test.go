// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeAliasFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAliasFile(t *testing.T) {
	path := writeAliasFile(t, `
version = 1

[aliases]
b = "build"
t = "test"
`)
	f, err := LoadAliasFile(path)
	if err != nil {
		t.Fatalf("LoadAliasFile() error = %v", err)
	}
	want := map[string]string{"b": "build", "t": "test"}
	if diff := cmp.Diff(want, f.Aliases); diff != "" {
		t.Errorf("Aliases mismatch (-want +got):\n%s", diff)
	}
	if f.Clear {
		t.Error("Clear = true, want false")
	}
}

func TestLoadAliasFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "unsupported version",
			contents: "version = 99\n",
		},
		{
			name: "self alias",
			contents: `
[aliases]
build = "build"
`,
		},
		{
			name:     "malformed toml",
			contents: "aliases = [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAliasFile(t, tt.contents)
			if _, err := LoadAliasFile(path); err == nil {
				t.Errorf("LoadAliasFile(%q) succeeded, want error", tt.contents)
			}
		})
	}
}

func TestLoadAliasFileMissing(t *testing.T) {
	_, err := LoadAliasFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("LoadAliasFile() error = %v, want not-exist", err)
	}
}

func TestApplyAliasFile(t *testing.T) {
	cli := New("tool", "1.0.0")
	cli.ApplyAliasFile(&AliasFile{Aliases: map[string]string{"b": "build"}})

	got := cli.Root.Aliases()
	want := map[string]string{
		"-h": "help",
		"-v": "version",
		"b":  "build",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyAliasFileClear(t *testing.T) {
	cli := New("tool", "1.0.0")
	cli.ApplyAliasFile(&AliasFile{Clear: true, Aliases: map[string]string{"b": "build"}})

	got := cli.Root.Aliases()
	want := map[string]string{"b": "build"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyAliasFileIfPresent(t *testing.T) {
	cli := New("tool", "1.0.0")
	// A missing file is not an error and changes nothing.
	cli.ApplyAliasFileIfPresent(filepath.Join(t.TempDir(), "nope.toml"))
	if _, ok := cli.Root.Aliases()["-h"]; !ok {
		t.Error("seeded aliases were disturbed by a missing file")
	}

	path := writeAliasFile(t, `
[aliases]
g = "greet"
`)
	cli.ApplyAliasFileIfPresent(path)
	if got := cli.Root.Aliases()["g"]; got != "greet" {
		t.Errorf("alias g = %q, want %q", got, "greet")
	}
}
