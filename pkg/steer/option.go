// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import (
	"strconv"
	"strings"
	"time"
)

// ValueKind is the declared type of a keyed option's value.
type ValueKind int

const (
	StringValue ValueKind = iota
	BoolValue
	IntValue
	Float64Value
	DurationValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case BoolValue:
		return "bool"
	case IntValue:
		return "int"
	case Float64Value:
		return "float"
	case DurationValue:
		return "duration"
	}
	return "unknown"
}

// Option is a flag or a keyed option with one or more accepted spellings,
// e.g. {"-v", "--verbose"}. A flag is boolean presence; a keyed option
// requires exactly one following value token of its declared kind.
type Option struct {
	Spellings []string
	Usage     string
	Keyed     bool
	Kind      ValueKind
}

// Flag declares a boolean, value-less option.
func Flag(usage string, spellings ...string) *Option {
	return &Option{Spellings: spellings, Usage: usage}
}

// KeyedOption declares an option that consumes one following value token.
func KeyedOption(kind ValueKind, usage string, spellings ...string) *Option {
	return &Option{Spellings: spellings, Usage: usage, Keyed: true, Kind: kind}
}

// primary returns the option's canonical spelling.
func (o *Option) primary() string {
	if len(o.Spellings) == 0 {
		return ""
	}
	return o.Spellings[0]
}

// coerce converts a raw value token to the option's declared kind.
func (o *Option) coerce(raw string) (any, error) {
	switch o.Kind {
	case StringValue:
		return raw, nil
	case BoolValue:
		return strconv.ParseBool(raw)
	case IntValue:
		return strconv.Atoi(raw)
	case Float64Value:
		return strconv.ParseFloat(raw, 64)
	case DurationValue:
		return time.ParseDuration(raw)
	}
	return raw, nil
}

// GroupRestriction constrains how many options of an OptionGroup may be set
// in one invocation.
type GroupRestriction int

const (
	AtMostOne GroupRestriction = iota
	ExactlyOne
	AtLeastOne
)

func (r GroupRestriction) String() string {
	switch r {
	case AtMostOne:
		return "at most one"
	case ExactlyOne:
		return "exactly one"
	case AtLeastOne:
		return "at least one"
	}
	return "unknown"
}

// OptionGroup is a mutually constrained set of a command's options, e.g.
// "at most one of --json, --yaml". Groups are validated after recognition
// completes, against the whole invocation.
type OptionGroup struct {
	Name        string
	Options     []*Option
	Restriction GroupRestriction
}

// optionLookup maps every accepted spelling of a visible option set to its
// Option. Construction fails on a duplicate or malformed spelling; that is an
// ambiguous configuration, caught before any token is read.
type optionLookup struct {
	bySpelling map[string]*Option
	options    []*Option
}

func buildOptionLookup(options []*Option) (*optionLookup, error) {
	l := &optionLookup{
		bySpelling: make(map[string]*Option),
		options:    options,
	}
	for _, opt := range options {
		if len(opt.Spellings) == 0 {
			return nil, configErrorf("option %q has no spellings", opt.Usage)
		}
		for _, spelling := range opt.Spellings {
			if !strings.HasPrefix(spelling, "-") {
				return nil, configErrorf("option spelling %q must start with '-'", spelling)
			}
			if prev, ok := l.bySpelling[spelling]; ok && prev != opt {
				return nil, configErrorf("duplicate option spelling %q", spelling)
			}
			l.bySpelling[spelling] = opt
		}
	}
	return l, nil
}

// OptionValues holds the bound option values produced by recognition.
type OptionValues struct {
	lookup *optionLookup
	values map[*Option]any
}

func newOptionValues(lookup *optionLookup) *OptionValues {
	return &OptionValues{lookup: lookup, values: make(map[*Option]any)}
}

func (v *OptionValues) option(spelling string) (*Option, bool) {
	opt, ok := v.lookup.bySpelling[spelling]
	return opt, ok
}

// IsSet reports whether the option with the given spelling was provided.
func (v *OptionValues) IsSet(spelling string) bool {
	opt, ok := v.option(spelling)
	if !ok {
		return false
	}
	_, set := v.values[opt]
	return set
}

// Bool returns true if the named flag was set, or the keyed bool value.
func (v *OptionValues) Bool(spelling string) bool {
	opt, ok := v.option(spelling)
	if !ok {
		return false
	}
	b, _ := v.values[opt].(bool)
	return b
}

// String returns the bound string value for the given spelling.
func (v *OptionValues) String(spelling string) (string, bool) {
	opt, ok := v.option(spelling)
	if !ok {
		return "", false
	}
	s, ok := v.values[opt].(string)
	return s, ok
}

// Int returns the bound int value for the given spelling.
func (v *OptionValues) Int(spelling string) (int, bool) {
	opt, ok := v.option(spelling)
	if !ok {
		return 0, false
	}
	n, ok := v.values[opt].(int)
	return n, ok
}

// Float64 returns the bound float value for the given spelling.
func (v *OptionValues) Float64(spelling string) (float64, bool) {
	opt, ok := v.option(spelling)
	if !ok {
		return 0, false
	}
	f, ok := v.values[opt].(float64)
	return f, ok
}

// Duration returns the bound duration value for the given spelling.
func (v *OptionValues) Duration(spelling string) (time.Duration, bool) {
	opt, ok := v.option(spelling)
	if !ok {
		return 0, false
	}
	d, ok := v.values[opt].(time.Duration)
	return d, ok
}

func (v *OptionValues) set(opt *Option, value any) {
	v.values[opt] = value
}
