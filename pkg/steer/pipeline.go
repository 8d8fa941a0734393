// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
)

// Seeded aliases and built-in command names.
const (
	helpCommand    = "help"
	versionCommand = "version"
	helpAliasShort = "-h"
	versionAlias   = "-v"
)

// Renderer is the set of rendering collaborators the pipeline hands
// structured values to. The core never formats user-facing text itself.
type Renderer interface {
	// CommandList renders the commands available under the deepest group of
	// a traversed chain.
	CommandList(partial []*Group) string
	// Usage renders the usage statement for a resolved command.
	Usage(path *ResolvedPath) string
	// MisusedOptions renders an option error in the context of the resolved
	// command.
	MisusedOptions(path *ResolvedPath, err error) string
}

// Executor runs a bound command. Execution is outside the pipeline; it may
// block arbitrarily long.
type Executor interface {
	Execute(*BoundCommand) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(*BoundCommand) error

func (f ExecutorFunc) Execute(b *BoundCommand) error { return f(b) }

// Outcome is the result contract of one interpretation: exactly one of a
// BoundCommand ready to run, a UsageRequest that stops with success, or a
// Failure carrying a message and status.
type Outcome interface {
	outcome()
}

// BoundCommand is a fully resolved and bound invocation.
type BoundCommand struct {
	Path    *ResolvedPath
	Options *OptionValues
	Params  *BoundParams
}

func (*BoundCommand) outcome() {}

// UsageRequest asks the caller to print a usage statement and stop with
// success status. Path is nil when the root command list is wanted.
type UsageRequest struct {
	Path *ResolvedPath
}

func (*UsageRequest) outcome() {}

// Failure is a terminal, user-facing interpretation failure. Status defaults
// to 1 when left zero. Exactly one of Partial (routing) or Path
// (option/parameter) is set for rendering context.
type Failure struct {
	Message string
	Status  int
	Err     error
	Partial []*Group
	Path    *ResolvedPath
}

func (*Failure) outcome() {}

// CLI is a configured command-line interpreter: the registry root, global
// options, collaborators, and built-in command policy. Configure it fully
// before the first Interpret call; the pipeline only reads it afterwards.
type CLI struct {
	Name        string
	Description string
	// Version enables the built-in version command when non-empty.
	Version string
	// GlobalOptions are visible to every command.
	GlobalOptions []*Option
	// DisableHelp suppresses both the built-in help command and the help flag.
	DisableHelp bool
	Root        *Group
	Renderer    Renderer
	Executor    Executor
	Out         io.Writer
	Err         io.Writer

	// Manipulators run before interpretation, in order. When nil, the
	// default short-flag splitter is used.
	Manipulators []Manipulator

	built      bool
	helpOption *Option
}

// New returns a CLI whose root group is seeded with the fixed aliases
// "-h" -> help and "-v" -> version. An integrator may override or clear them.
func New(name, version string) *CLI {
	root := NewGroup(name)
	root.Alias(helpAliasShort, helpCommand)
	root.Alias(versionAlias, versionCommand)
	return &CLI{Name: name, Version: version, Root: root}
}

func (c *CLI) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// renderer returns the configured Renderer, or a silent one so Run stays
// usable without collaborators wired.
func (c *CLI) renderer() Renderer {
	if c.Renderer != nil {
		return c.Renderer
	}
	return noopRenderer{}
}

type noopRenderer struct{}

func (noopRenderer) CommandList([]*Group) string                { return "" }
func (noopRenderer) Usage(*ResolvedPath) string                 { return "" }
func (noopRenderer) MisusedOptions(*ResolvedPath, error) string { return "" }

func (c *CLI) errOut() io.Writer {
	if c.Err != nil {
		return c.Err
	}
	return os.Stderr
}

// build registers the built-in commands and validates the whole registry.
// Built-ins are constructed explicitly here, not lazily, so registry contents
// are fully known before any routing occurs.
func (c *CLI) build() error {
	if c.built {
		return nil
	}
	if c.Root == nil {
		c.Root = NewGroup(c.Name)
	}
	if c.Root.Description == "" {
		c.Root.Description = c.Description
	}
	if !c.DisableHelp {
		c.helpOption = Flag("Show help for this command", "-h", "--help")
		if _, ok := c.Root.child(helpCommand); !ok {
			if err := c.Root.Add(c.newHelpCommand()); err != nil {
				return err
			}
		}
	}
	if c.Version != "" {
		if _, ok := c.Root.child(versionCommand); !ok {
			if err := c.Root.Add(c.newVersionCommand()); err != nil {
				return err
			}
		}
	}
	if err := c.Root.validate(c.GlobalOptions, c.helpOption); err != nil {
		return err
	}
	c.built = true
	return nil
}

// Validate builds the registry and reports configuration mistakes without
// interpreting anything. Useful in integrator tests.
func (c *CLI) Validate() error { return c.build() }

// keyedSet is the union of every keyed-option spelling registered anywhere:
// globals, group shared options, command options. The splitter and the
// router both consult it so a keyed option's value token is never split or
// routed.
func (c *CLI) keyedSet() map[string]bool {
	spellings := c.Root.keyedSpellings(nil)
	for _, opt := range c.GlobalOptions {
		if opt.Keyed {
			spellings = append(spellings, opt.Spellings...)
		}
	}
	set := make(map[string]bool, len(spellings))
	for _, s := range spellings {
		set[s] = true
	}
	return set
}

func (c *CLI) manipulators(keyed map[string]bool) []Manipulator {
	if c.Manipulators != nil {
		return c.Manipulators
	}
	spellings := make([]string, 0, len(keyed))
	for s := range keyed {
		spellings = append(spellings, s)
	}
	return []Manipulator{NewShortFlagSplitter(spellings)}
}

// Interpret runs the full pipeline over one token stream: manipulators,
// routing, option recognition, parameter filling. It never executes the
// action. Configuration errors are a programming mistake and panic; every
// user-level failure comes back as a *Failure outcome.
func (c *CLI) Interpret(args []string) Outcome {
	if err := c.build(); err != nil {
		panic(err)
	}

	keyed := c.keyedSet()
	st := NewStream(args)
	for _, m := range c.manipulators(keyed) {
		m.Manipulate(st)
	}

	path, rerr := route(c.Root, c.GlobalOptions, keyed, st)
	if rerr != nil {
		return &Failure{Message: rerr.Error(), Err: rerr, Partial: rerr.Partial}
	}

	values, helpRequested, err := recognize(path, st, c.helpOption)
	if err != nil {
		var confErr *ConfigurationError
		if errors.As(err, &confErr) {
			panic(confErr)
		}
		return &Failure{Message: err.Error(), Err: err, Path: path}
	}
	if helpRequested {
		return &UsageRequest{Path: path}
	}

	params, perr := path.Command.Params.Fill(st.Remaining())
	if perr != nil {
		perr.Command = path.String()
		return &Failure{Message: perr.Error(), Err: perr, Path: path}
	}

	return &BoundCommand{Path: path, Options: values, Params: params}
}

// Run interprets args, maps the outcome onto the collaborators, and returns
// a process exit status.
func (c *CLI) Run(args []string) int {
	switch out := c.Interpret(args).(type) {
	case *BoundCommand:
		if err := c.execute(out); err != nil {
			var fe *FailureError
			if errors.As(err, &fe) {
				if fe.Failure.Message != "" {
					fmt.Fprintln(c.errOut(), "Error:", fe.Failure.Message)
				}
				return fe.Failure.status()
			}
			fmt.Fprintln(c.errOut(), "Error:", err)
			return 1
		}
		return 0
	case *UsageRequest:
		if out.Path != nil {
			fmt.Fprint(c.out(), c.renderer().Usage(out.Path))
		} else {
			fmt.Fprint(c.out(), c.renderer().CommandList([]*Group{c.Root}))
		}
		return 0
	case *Failure:
		c.renderFailure(out)
		return out.status()
	}
	return 1
}

func (c *CLI) execute(bound *BoundCommand) error {
	if c.Executor != nil {
		return c.Executor.Execute(bound)
	}
	if bound.Path.Command.Action == nil {
		return fmt.Errorf("command %q has no action", bound.Path.String())
	}
	return bound.Path.Command.Action(bound)
}

func (c *CLI) renderFailure(f *Failure) {
	if f.Message != "" {
		fmt.Fprintln(c.errOut(), "Error:", f.Message)
	}
	switch {
	case f.Partial != nil:
		fmt.Fprint(c.errOut(), c.renderer().CommandList(f.Partial))
	case f.Path != nil:
		fmt.Fprint(c.errOut(), c.renderer().MisusedOptions(f.Path, f.Err))
	}
}

func (f *Failure) status() int {
	if f.Status == 0 {
		return 1
	}
	return f.Status
}

// FailureError wraps a Failure as an error so actions can choose their exit
// status.
type FailureError struct {
	Failure *Failure
}

func (e *FailureError) Error() string { return e.Failure.Message }

// newHelpCommand builds the built-in help command. With no arguments it
// requests the root command list; given a command path it requests that
// command's usage.
func (c *CLI) newHelpCommand() *Command {
	return &Command{
		Name:        helpCommand,
		Description: "Show help for a command",
		Params:      MustSignature(Variadic("command")),
		Action: func(b *BoundCommand) error {
			tokens := b.Params.Variadic()
			if len(tokens) == 0 {
				fmt.Fprint(c.out(), c.renderer().CommandList([]*Group{c.Root}))
				return nil
			}
			path, rerr := route(c.Root, c.GlobalOptions, c.keyedSet(), NewStream(tokens))
			if rerr != nil {
				fmt.Fprint(c.out(), c.renderer().CommandList(rerr.Partial))
				return nil
			}
			fmt.Fprint(c.out(), c.renderer().Usage(path))
			return nil
		},
	}
}

// newVersionCommand builds the built-in version command. The configured
// version string is normalized through semver when it parses; otherwise it
// is printed verbatim.
func (c *CLI) newVersionCommand() *Command {
	display := c.Version
	if v, err := semver.NewVersion(c.Version); err == nil {
		display = v.String()
	}
	return &Command{
		Name:        versionCommand,
		Description: "Print the version",
		Action: func(b *BoundCommand) error {
			fmt.Fprintf(c.out(), "%s version %s\n", c.Name, display)
			return nil
		},
	}
}
