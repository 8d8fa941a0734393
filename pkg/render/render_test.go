// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"strings"
	"testing"

	"github.com/steerrun/steer/pkg/steer"
)

func testPath() *steer.ResolvedPath {
	cmd := &steer.Command{
		Name:        "hello",
		Description: "Greet somebody",
		Options: []*steer.Option{
			steer.Flag("Greet loudly", "-l", "--loud"),
			steer.KeyedOption(steer.IntValue, "Number of repeats", "-n", "--times"),
		},
		Params: steer.MustSignature(
			steer.Required("name"),
			steer.Optional("greeting", "Hello"),
		),
	}
	root := steer.NewGroup("greet")
	root.MustAdd(cmd)
	return &steer.ResolvedPath{Groups: []*steer.Group{root}, Command: cmd}
}

func TestUsage(t *testing.T) {
	got := New(false).Usage(testPath())

	for _, want := range []string{
		"Greet somebody",
		"USAGE:",
		"greet hello [OPTIONS] <NAME> [GREETING]",
		"ARGUMENTS:",
		"(default: Hello)",
		"OPTIONS:",
		"-l, --loud",
		"-n, --times <int>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Usage() missing %q:\n%s", want, got)
		}
	}
}

func TestUsageVariadic(t *testing.T) {
	cmd := &steer.Command{
		Name:   "wave",
		Params: steer.MustSignature(steer.Variadic("names")),
	}
	root := steer.NewGroup("greet")
	root.MustAdd(cmd)
	path := &steer.ResolvedPath{Groups: []*steer.Group{root}, Command: cmd}

	got := New(false).Usage(path)
	if !strings.Contains(got, "greet wave [OPTIONS] [NAMES...]") {
		t.Errorf("Usage() missing variadic placeholder:\n%s", got)
	}
}

func TestCommandList(t *testing.T) {
	root := steer.NewGroup("greet")
	root.MustAdd(
		&steer.Command{Name: "wave", Description: "Wave at everybody"},
		&steer.Command{Name: "hello", Description: "Greet somebody"},
		steer.NewGroup("formal"),
	)
	root.Alias("hi", "hello")

	got := New(false).CommandList([]*steer.Group{root})

	for _, want := range []string{
		"greet COMMAND [OPTIONS] [ARGS...]",
		"COMMANDS:",
		"COMMAND GROUPS:",
		"formal",
		"ALIASES:",
		"hi",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CommandList() missing %q:\n%s", want, got)
		}
	}

	// Commands are listed sorted by name, not in registration order.
	if strings.Index(got, "hello") > strings.Index(got, "wave") {
		t.Errorf("CommandList() not sorted:\n%s", got)
	}
}

func TestCommandListDescription(t *testing.T) {
	root := steer.NewGroup("greet")
	root.Description = "Greetings from the command line"
	root.MustAdd(&steer.Command{Name: "hello"})

	got := New(false).CommandList([]*steer.Group{root})
	if !strings.HasPrefix(got, "Greetings from the command line\n\n") {
		t.Errorf("CommandList() does not open with the description:\n%s", got)
	}
}

func TestCommandListNested(t *testing.T) {
	sub := steer.NewGroup("formal")
	sub.MustAdd(&steer.Command{Name: "address"})
	root := steer.NewGroup("greet")
	root.MustAdd(sub)

	got := New(false).CommandList([]*steer.Group{root, sub})
	if !strings.Contains(got, "greet formal COMMAND") {
		t.Errorf("CommandList() missing nested path prefix:\n%s", got)
	}
	if !strings.Contains(got, "address") {
		t.Errorf("CommandList() missing nested command:\n%s", got)
	}
}

func TestMisusedOptions(t *testing.T) {
	err := &steer.OptionError{Kind: steer.UnrecognizedOption, Name: "--bogus"}
	got := New(false).MisusedOptions(testPath(), err)

	if !strings.Contains(got, "unknown option: --bogus") {
		t.Errorf("MisusedOptions() missing error text:\n%s", got)
	}
	if !strings.Contains(got, "USAGE:") {
		t.Errorf("MisusedOptions() missing usage statement:\n%s", got)
	}
}

func TestDetectRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	r := Detect(os.Stdout)
	if r.bold("x") != "x" {
		t.Error("Detect() colorized output with NO_COLOR set")
	}
}

func TestDetectNilFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	r := Detect(nil)
	if r.bold("x") != "x" {
		t.Error("Detect(nil) colorized output, want plain")
	}
}
