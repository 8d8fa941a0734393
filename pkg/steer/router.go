// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import "strings"

// ResolvedPath is the result of routing: the ordered chain of groups
// traversed (starting at the root) plus the terminal command, and the option
// set visible to it.
type ResolvedPath struct {
	Groups  []*Group
	Command *Command

	global []*Option
}

// VisibleOptions returns the command's full option set: process-wide global
// options, each traversed group's shared options in order, then the
// command's own options.
func (p *ResolvedPath) VisibleOptions() []*Option {
	visible := append([]*Option{}, p.global...)
	for _, g := range p.Groups {
		visible = append(visible, g.Shared...)
	}
	return append(visible, p.Command.Options...)
}

// String returns the space-joined invocation path, e.g. "tool remote add".
func (p *ResolvedPath) String() string {
	parts := make([]string, 0, len(p.Groups)+1)
	for _, g := range p.Groups {
		parts = append(parts, g.Name)
	}
	parts = append(parts, p.Command.Name)
	return strings.Join(parts, " ")
}

// route walks the registry consuming one token per level. Matching is
// exact-string and case-sensitive, with no prefix matching and no
// backtracking. Each candidate token is first resolved through the current
// group's alias table with a single substitution.
//
// Option-looking tokens are stepped over, not consumed: they stay in place
// for the recognizer, which scans the whole stream after routing. A token
// that is a known keyed-option spelling steps over its value token too, so
// the value is never mistaken for a command name. keyed is the union of
// keyed spellings registered anywhere; it is fully known before routing.
func route(root *Group, global []*Option, keyed map[string]bool, st *Stream) (*ResolvedPath, *RoutingError) {
	partial := []*Group{root}
	current := root
	i := 0
	for {
		token, idx, ok := nextCandidate(st, keyed, i)
		if !ok {
			// Out of routable tokens inside a group: a subcommand is required.
			return nil, &RoutingError{Partial: partial}
		}
		canonical := current.resolveAlias(token)
		child, ok := current.child(canonical)
		if !ok {
			// An aliased token committed to routing; report it under its
			// original spelling. Anything else option-looking is left for
			// the recognizer.
			if canonical == token && looksLikeOption(token) {
				i = idx + 1
				continue
			}
			return nil, &RoutingError{Partial: partial, UnmatchedToken: token}
		}
		st.consume(idx)
		i = idx + 1
		switch r := child.(type) {
		case *Group:
			partial = append(partial, r)
			current = r
		case *Command:
			return &ResolvedPath{Groups: partial, Command: r, global: global}, nil
		}
	}
}

// nextCandidate returns the next unconsumed token from index from onward,
// stepping over known keyed-option spellings together with their value
// tokens.
func nextCandidate(st *Stream, keyed map[string]bool, from int) (string, int, bool) {
	skipValue := false
	for i := from; i < st.size(); i++ {
		token, ok := st.at(i)
		if !ok {
			continue
		}
		if skipValue {
			skipValue = false
			if !looksLikeOption(token) {
				continue
			}
		}
		if keyed[token] {
			skipValue = true
			continue
		}
		return token, i, true
	}
	return "", 0, false
}
