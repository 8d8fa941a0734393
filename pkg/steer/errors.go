// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import "fmt"

// ConfigurationError reports a mistake made by the integrator: a duplicate
// option spelling, a malformed parameter signature, a duplicate child name.
// It is detectable at registration time, before any token is processed, and
// is fatal rather than user-facing.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "steer: invalid configuration: " + e.Reason
}

func configErrorf(format string, a ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, a...)}
}

// RoutingError is returned when no command matches the token stream. Partial
// is the chain of groups successfully traversed, starting at the root group.
// UnmatchedToken is the token that matched no child; it is empty when the
// stream ran out where a subcommand was required.
type RoutingError struct {
	Partial        []*Group
	UnmatchedToken string
}

func (e *RoutingError) Error() string {
	if e.UnmatchedToken == "" {
		return "a subcommand is required"
	}
	return fmt.Sprintf("unknown command: %q", e.UnmatchedToken)
}

// deepest returns the last group traversed before the failure.
func (e *RoutingError) deepest() *Group {
	return e.Partial[len(e.Partial)-1]
}

// OptionErrorKind enumerates the ways option recognition can fail.
type OptionErrorKind int

const (
	// UnrecognizedOption means the token looked like an option but matched
	// no visible spelling.
	UnrecognizedOption OptionErrorKind = iota
	// ExpectedValue means a keyed option was not followed by a value token.
	ExpectedValue
	// InvalidValue means a keyed option's value failed type coercion.
	InvalidValue
	// OptionGroupMisuse means a declared option-group restriction was violated.
	OptionGroupMisuse
)

// OptionError is returned when option recognition fails. Name is the option
// spelling as typed. Expected describes the expected value type for
// InvalidValue, or the violated restriction for OptionGroupMisuse.
type OptionError struct {
	Kind     OptionErrorKind
	Name     string
	Expected string
}

func (e *OptionError) Error() string {
	switch e.Kind {
	case UnrecognizedOption:
		return fmt.Sprintf("unknown option: %s", e.Name)
	case ExpectedValue:
		return fmt.Sprintf("expected a value after %s", e.Name)
	case InvalidValue:
		return fmt.Sprintf("invalid value for %s: expected %s", e.Name, e.Expected)
	case OptionGroupMisuse:
		return fmt.Sprintf("illegal combination of options: %s", e.Expected)
	}
	return "option error"
}

// ParameterError is returned when the positional tokens do not satisfy the
// command's parameter signature. Expected is a human count description such
// as "2", "1-3", or "at least 1".
type ParameterError struct {
	Expected string
	Got      int
	Command  string
	TooMany  bool
}

func (e *ParameterError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("'%s' requires %s argument(s), got %d", e.Command, e.Expected, e.Got)
	}
	return fmt.Sprintf("requires %s argument(s), got %d", e.Expected, e.Got)
}
