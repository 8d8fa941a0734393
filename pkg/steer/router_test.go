// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import (
	"testing"
)

func routerRegistry() *Group {
	root := NewGroup("app")
	root.MustAdd(
		&Command{Name: "build"},
		NewGroup("test").MustAdd(
			&Command{Name: "unit"},
			&Command{Name: "e2e"},
		),
	)
	root.Alias("b", "build")
	return root
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPath    string
		wantErr     bool
		wantToken   string
		wantDeepest string
	}{
		{
			name:     "top-level command",
			args:     []string{"build"},
			wantPath: "app build",
		},
		{
			name:     "nested command",
			args:     []string{"test", "unit"},
			wantPath: "app test unit",
		},
		{
			name:     "alias resolves in one substitution",
			args:     []string{"b"},
			wantPath: "app build",
		},
		{
			name:        "unknown top-level token",
			args:        []string{"bogus"},
			wantErr:     true,
			wantToken:   "bogus",
			wantDeepest: "app",
		},
		{
			name:        "unknown token inside a group",
			args:        []string{"test", "bogus"},
			wantErr:     true,
			wantToken:   "bogus",
			wantDeepest: "test",
		},
		{
			name:        "empty stream",
			args:        nil,
			wantErr:     true,
			wantDeepest: "app",
		},
		{
			name:        "stream exhausted inside a group",
			args:        []string{"test"},
			wantErr:     true,
			wantDeepest: "test",
		},
		{
			name:        "matching is case sensitive",
			args:        []string{"Build"},
			wantErr:     true,
			wantToken:   "Build",
			wantDeepest: "app",
		},
		{
			name:     "option tokens are stepped over",
			args:     []string{"--loud", "build"},
			wantPath: "app build",
		},
		{
			name:      "negative number is not a command",
			args:      []string{"-5"},
			wantErr:   true,
			wantToken: "-5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := routerRegistry()
			path, rerr := route(root, nil, nil, NewStream(tt.args))
			if tt.wantErr {
				if rerr == nil {
					t.Fatalf("route(%v) succeeded with path %q, want error", tt.args, path.String())
				}
				if rerr.UnmatchedToken != tt.wantToken {
					t.Errorf("UnmatchedToken = %q, want %q", rerr.UnmatchedToken, tt.wantToken)
				}
				if tt.wantDeepest != "" && rerr.deepest().Name != tt.wantDeepest {
					t.Errorf("deepest group = %q, want %q", rerr.deepest().Name, tt.wantDeepest)
				}
				if rerr.Partial[0] != root {
					t.Error("Partial does not start at the root group")
				}
				return
			}
			if rerr != nil {
				t.Fatalf("route(%v) error = %v", tt.args, rerr)
			}
			if got := path.String(); got != tt.wantPath {
				t.Errorf("path = %q, want %q", got, tt.wantPath)
			}
		})
	}
}

func TestRouteSkipsKeyedValues(t *testing.T) {
	// The value of a keyed option must never be mistaken for a command name,
	// even when it collides with one.
	root := routerRegistry()
	keyed := map[string]bool{"--name": true}

	st := NewStream([]string{"--name", "build", "test", "unit"})
	path, rerr := route(root, nil, keyed, st)
	if rerr != nil {
		t.Fatalf("route() error = %v", rerr)
	}
	if got := path.String(); got != "app test unit" {
		t.Errorf("path = %q, want %q", got, "app test unit")
	}
}

func TestRouteLeavesOptionTokensForRecognition(t *testing.T) {
	root := routerRegistry()
	st := NewStream([]string{"--loud", "build", "Alice"})
	if _, rerr := route(root, nil, nil, st); rerr != nil {
		t.Fatalf("route() error = %v", rerr)
	}
	got := st.Remaining()
	want := []string{"--loud", "Alice"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Remaining() = %v, want %v", got, want)
	}
}

func TestRouteAliasIsSingleSubstitution(t *testing.T) {
	root := NewGroup("app")
	root.MustAdd(&Command{Name: "build"})
	root.Alias("a", "b")
	root.Alias("b", "build")

	// "a" resolves to "b" only; "b" is not itself re-resolved.
	_, rerr := route(root, nil, nil, NewStream([]string{"a"}))
	if rerr == nil {
		t.Fatal("route() resolved a chained alias, want error")
	}
	if rerr.UnmatchedToken != "a" {
		t.Errorf("UnmatchedToken = %q, want %q", rerr.UnmatchedToken, "a")
	}
}

func TestRouteAliasScopedToGroup(t *testing.T) {
	root := routerRegistry()
	// "b" aliases build on the root group only; inside "test" it is unknown.
	_, rerr := route(root, nil, nil, NewStream([]string{"test", "b"}))
	if rerr == nil {
		t.Fatal("route() resolved a root alias inside a nested group")
	}
	if rerr.deepest().Name != "test" {
		t.Errorf("deepest group = %q, want %q", rerr.deepest().Name, "test")
	}
}

func TestVisibleOptions(t *testing.T) {
	global := Flag("verbose output", "--verbose")
	shared := KeyedOption(StringValue, "title to use", "--title")
	own := Flag("loud greeting", "--loud")

	cmd := &Command{Name: "address", Options: []*Option{own}}
	sub := NewGroup("formal")
	sub.Shared = []*Option{shared}
	sub.MustAdd(cmd)
	root := NewGroup("app")
	root.MustAdd(sub)

	path, rerr := route(root, []*Option{global}, nil, NewStream([]string{"formal", "address"}))
	if rerr != nil {
		t.Fatalf("route() error = %v", rerr)
	}
	visible := path.VisibleOptions()
	want := []*Option{global, shared, own}
	if len(visible) != len(want) {
		t.Fatalf("VisibleOptions() len = %d, want %d", len(visible), len(want))
	}
	for i := range want {
		if visible[i] != want[i] {
			t.Errorf("VisibleOptions()[%d] = %v, want %v", i, visible[i].primary(), want[i].primary())
		}
	}
}
