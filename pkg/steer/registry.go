// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

// Routable is either a leaf Command or a Command Group. The set is closed;
// the router switches over it exhaustively.
type Routable interface {
	routableName() string
	routable()
}

// Command is a leaf unit of work: a name, declared options and option
// groups, a parameter signature, and an action invoked with the bound
// invocation.
type Command struct {
	Name        string
	Description string
	Options     []*Option
	Groups      []OptionGroup
	Params      Signature
	Action      func(*BoundCommand) error
}

func (c *Command) routableName() string { return c.Name }
func (c *Command) routable()            {}

// Group is a non-leaf node: it holds child routables and a set of shared
// options inherited by every descendant. The registry root is itself a Group.
type Group struct {
	Name        string
	Description string
	Shared      []*Option

	children []Routable
	aliases  map[string]string
}

func (g *Group) routableName() string { return g.Name }
func (g *Group) routable()            {}

// NewGroup returns an empty group with the given name.
func NewGroup(name string) *Group { return &Group{Name: name} }

// Add registers child routables. A child whose name collides with an
// existing child is a configuration error.
func (g *Group) Add(children ...Routable) error {
	for _, child := range children {
		name := child.routableName()
		if name == "" {
			return configErrorf("child of group %q has no name", g.Name)
		}
		if _, ok := g.child(name); ok {
			return configErrorf("group %q already has a child named %q", g.Name, name)
		}
		g.children = append(g.children, child)
	}
	return nil
}

// MustAdd is Add that panics on a configuration error. It returns the group
// for chaining.
func (g *Group) MustAdd(children ...Routable) *Group {
	if err := g.Add(children...); err != nil {
		panic(err)
	}
	return g
}

// Children returns the group's child routables in registration order.
func (g *Group) Children() []Routable { return g.children }

func (g *Group) child(name string) (Routable, bool) {
	for _, child := range g.children {
		if child.routableName() == name {
			return child, true
		}
	}
	return nil, false
}

// Alias maps an alternate invocation name to a canonical child name.
// Resolution during routing is a single substitution, never iterative.
func (g *Group) Alias(alias, canonical string) {
	if g.aliases == nil {
		g.aliases = make(map[string]string)
	}
	g.aliases[alias] = canonical
}

// ClearAliases drops every alias on the group, including seeded ones.
func (g *Group) ClearAliases() { g.aliases = nil }

// Aliases returns a copy of the group's alias table.
func (g *Group) Aliases() map[string]string {
	out := make(map[string]string, len(g.aliases))
	for alias, canonical := range g.aliases {
		out[alias] = canonical
	}
	return out
}

func (g *Group) resolveAlias(token string) string {
	if canonical, ok := g.aliases[token]; ok {
		return canonical
	}
	return token
}

// RoutableName returns the name of a routable without a type switch at the
// call site.
func RoutableName(r Routable) string { return r.routableName() }

// validate checks the whole subtree for configuration mistakes: alias cycles
// of length one, children resolvable, and per-command option sets free of
// duplicate spellings once shared and global options are accumulated.
func (g *Group) validate(inherited []*Option, helpOption *Option) error {
	for alias, canonical := range g.aliases {
		if alias == "" || canonical == "" {
			return configErrorf("group %q has an empty alias mapping", g.Name)
		}
		if alias == canonical {
			return configErrorf("group %q alias %q maps to itself", g.Name, alias)
		}
	}
	visible := append(append([]*Option{}, inherited...), g.Shared...)
	for _, child := range g.children {
		switch r := child.(type) {
		case *Group:
			if err := r.validate(visible, helpOption); err != nil {
				return err
			}
		case *Command:
			set := append(append([]*Option{}, visible...), r.Options...)
			if helpOption != nil {
				set = append(set, helpOption)
			}
			if _, err := buildOptionLookup(set); err != nil {
				return configErrorf("command %q: %v", r.Name, err.(*ConfigurationError).Reason)
			}
			if err := r.validateGroups(); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateGroups verifies every option-group member is one of the command's
// own declared options.
func (c *Command) validateGroups() error {
	declared := make(map[*Option]bool, len(c.Options))
	for _, opt := range c.Options {
		declared[opt] = true
	}
	for _, og := range c.Groups {
		if len(og.Options) == 0 {
			return configErrorf("command %q: option group %q is empty", c.Name, og.Name)
		}
		for _, opt := range og.Options {
			if !declared[opt] {
				return configErrorf("command %q: option group %q references an undeclared option %q",
					c.Name, og.Name, opt.primary())
			}
		}
	}
	return nil
}

// keyedSpellings walks the subtree collecting the spellings of every keyed
// option reachable anywhere in it. The short-flag splitter uses the union to
// avoid splitting a cluster that is some keyed option's value.
func (g *Group) keyedSpellings(into []string) []string {
	for _, opt := range g.Shared {
		if opt.Keyed {
			into = append(into, opt.Spellings...)
		}
	}
	for _, child := range g.children {
		switch r := child.(type) {
		case *Group:
			into = r.keyedSpellings(into)
		case *Command:
			for _, opt := range r.Options {
				if opt.Keyed {
					into = append(into, opt.Spellings...)
				}
			}
		}
	}
	return into
}
