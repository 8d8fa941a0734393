// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides default implementations of the steer rendering
// collaborators: command lists, usage statements, and misused-option
// reports.
package render

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/steerrun/steer/pkg/steer"
	"golang.org/x/term"
)

// Renderer renders interpretation results as plain or colorized text. The
// zero value renders without color.
type Renderer struct {
	bold func(a ...interface{}) string
	dim  func(a ...interface{}) string
	bad  func(a ...interface{}) string
}

var _ steer.Renderer = (*Renderer)(nil)

// New returns a renderer with color on or off.
func New(colorized bool) *Renderer {
	if !colorized {
		passthrough := fmt.Sprint
		return &Renderer{bold: passthrough, dim: passthrough, bad: passthrough}
	}
	return &Renderer{
		bold: color.New(color.Bold).SprintFunc(),
		dim:  color.New(color.Faint).SprintFunc(),
		bad:  color.New(color.FgRed).SprintFunc(),
	}
}

// Detect returns a renderer colorized only when f is a terminal, NO_COLOR is
// unset, and TERM is usable.
func Detect(f *os.File) *Renderer {
	if f == nil {
		return New(false)
	}
	if os.Getenv("NO_COLOR") != "" {
		return New(false)
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return New(false)
	}
	return New(term.IsTerminal(int(f.Fd())))
}

// CommandList renders the commands and groups available under the deepest
// group of the traversed chain.
func (r *Renderer) CommandList(partial []*steer.Group) string {
	group := partial[len(partial)-1]

	var b strings.Builder
	if group.Description != "" {
		b.WriteString(group.Description)
		b.WriteString("\n\n")
	}
	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s COMMAND [OPTIONS] [ARGS...]\n\n", pathPrefix(partial))

	var commands, groups []steer.Routable
	for _, child := range group.Children() {
		switch child.(type) {
		case *steer.Group:
			groups = append(groups, child)
		default:
			commands = append(commands, child)
		}
	}
	writeRoutables(&b, r, "COMMANDS:", commands)
	writeRoutables(&b, r, "COMMAND GROUPS:", groups)

	if aliases := group.Aliases(); len(aliases) > 0 {
		b.WriteString("ALIASES:\n")
		keys := make([]string, 0, len(aliases))
		for alias := range aliases {
			keys = append(keys, alias)
		}
		sort.Strings(keys)
		for _, alias := range keys {
			fmt.Fprintf(&b, "    %-12s %s\n", alias, r.dim(aliases[alias]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeRoutables(b *strings.Builder, r *Renderer, heading string, routables []steer.Routable) {
	if len(routables) == 0 {
		return
	}
	sort.Slice(routables, func(i, j int) bool {
		return steer.RoutableName(routables[i]) < steer.RoutableName(routables[j])
	})
	b.WriteString(heading)
	b.WriteString("\n")
	for _, child := range routables {
		desc := ""
		switch v := child.(type) {
		case *steer.Command:
			desc = v.Description
		case *steer.Group:
			desc = v.Description
		}
		fmt.Fprintf(b, "    %-12s %s\n", r.bold(steer.RoutableName(child)), desc)
	}
	b.WriteString("\n")
}

// Usage renders the usage statement for a resolved command: the invocation
// line with parameter placeholders, the arguments, and the visible options.
func (r *Renderer) Usage(path *steer.ResolvedPath) string {
	var b strings.Builder
	cmd := path.Command
	if cmd.Description != "" {
		b.WriteString(cmd.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("USAGE:\n")
	line := "    " + path.String() + " [OPTIONS]"
	for _, slot := range cmd.Params.Slots() {
		name := strings.ToUpper(slot.Name)
		switch slot.Kind {
		case steer.RequiredSlot:
			line += fmt.Sprintf(" <%s>", name)
		case steer.OptionalSlot:
			line += fmt.Sprintf(" [%s]", name)
		case steer.VariadicSlot:
			line += fmt.Sprintf(" [%s...]", name)
		}
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	if slots := cmd.Params.Slots(); len(slots) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, slot := range slots {
			desc := slot.Usage
			if slot.Kind == steer.OptionalSlot && slot.Default != "" {
				desc = strings.TrimSpace(desc + r.dim(fmt.Sprintf(" (default: %s)", slot.Default)))
			}
			fmt.Fprintf(&b, "    %-20s %s\n", strings.ToUpper(slot.Name), desc)
		}
		b.WriteString("\n")
	}

	if options := path.VisibleOptions(); len(options) > 0 {
		b.WriteString("OPTIONS:\n")
		for _, opt := range options {
			spellings := strings.Join(opt.Spellings, ", ")
			if opt.Keyed {
				spellings += " <" + opt.Kind.String() + ">"
			}
			fmt.Fprintf(&b, "    %-24s %s\n", r.bold(spellings), opt.Usage)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MisusedOptions renders an option or parameter error in the context of the
// resolved command, followed by its usage statement.
func (r *Renderer) MisusedOptions(path *steer.ResolvedPath, err error) string {
	var b strings.Builder
	if err != nil {
		fmt.Fprintf(&b, "%s\n\n", r.bad(err.Error()))
	}
	b.WriteString(r.Usage(path))
	return b.String()
}

func pathPrefix(partial []*steer.Group) string {
	parts := make([]string, 0, len(partial))
	for _, g := range partial {
		parts = append(parts, g.Name)
	}
	return strings.Join(parts, " ")
}
