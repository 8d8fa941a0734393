// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import "strings"

// recognize scans the unconsumed stream left to right, binding option tokens
// against the resolved command's visible option set. Tokens that do not look
// like options are left untouched for parameter filling. It reports whether
// the built-in help flag was set, which short-circuits the remaining stages.
func recognize(path *ResolvedPath, st *Stream, helpOption *Option) (*OptionValues, bool, error) {
	visible := path.VisibleOptions()
	if helpOption != nil {
		visible = append(visible, helpOption)
	}
	lookup, err := buildOptionLookup(visible)
	if err != nil {
		return nil, false, err
	}

	values := newOptionValues(lookup)
	helpRequested := false
	for i := 0; i < st.size(); i++ {
		token, ok := st.at(i)
		if !ok {
			continue
		}
		if token == "--" {
			// Everything after the terminator is positional, verbatim.
			st.consume(i)
			break
		}
		if !looksLikeOption(token) {
			continue
		}

		name, attached, hasAttached := token, "", false
		if _, known := lookup.bySpelling[token]; !known {
			if idx := strings.Index(token, "="); idx > 0 {
				name, attached, hasAttached = token[:idx], token[idx+1:], true
			}
		}
		opt, known := lookup.bySpelling[name]
		if !known {
			return nil, false, &OptionError{Kind: UnrecognizedOption, Name: name}
		}
		st.consume(i)

		if !opt.Keyed {
			if hasAttached {
				return nil, false, &OptionError{Kind: InvalidValue, Name: name, Expected: "no value"}
			}
			values.set(opt, true)
			if opt == helpOption {
				helpRequested = true
			}
			continue
		}

		raw := attached
		if !hasAttached {
			next := i + 1
			if next >= st.size() {
				return nil, false, &OptionError{Kind: ExpectedValue, Name: name}
			}
			value, unconsumed := st.at(next)
			if !unconsumed || looksLikeOption(value) {
				return nil, false, &OptionError{Kind: ExpectedValue, Name: name}
			}
			st.consume(next)
			raw = value
			i = next
		}
		typed, err := opt.coerce(raw)
		if err != nil {
			return nil, false, &OptionError{Kind: InvalidValue, Name: name, Expected: opt.Kind.String()}
		}
		values.set(opt, typed)
	}

	if helpRequested {
		// Help short-circuits before any post-scan validation; the user asked
		// how to invoke the command, not to invoke it.
		return values, true, nil
	}
	if err := validateOptionGroups(path.Command, values); err != nil {
		return nil, false, err
	}
	return values, false, nil
}

// validateOptionGroups enforces each declared option-group restriction
// against the full set of bound values.
func validateOptionGroups(cmd *Command, values *OptionValues) error {
	for _, og := range cmd.Groups {
		set := 0
		spellings := make([]string, 0, len(og.Options))
		for _, opt := range og.Options {
			spellings = append(spellings, opt.primary())
			if _, ok := values.values[opt]; ok {
				set++
			}
		}
		describe := og.Restriction.String() + " of " + strings.Join(spellings, ", ")
		switch og.Restriction {
		case AtMostOne:
			if set > 1 {
				return &OptionError{Kind: OptionGroupMisuse, Name: og.Name, Expected: describe}
			}
		case ExactlyOne:
			if set != 1 {
				return &OptionError{Kind: OptionGroupMisuse, Name: og.Name, Expected: describe}
			}
		case AtLeastOne:
			if set < 1 {
				return &OptionError{Kind: OptionGroupMisuse, Name: og.Name, Expected: describe}
			}
		}
	}
	return nil
}

// looksLikeOption reports whether a token follows the option-prefix
// convention. A lone dash, the "--" terminator, and negative numbers such as
// "-5" or "-3.14" are not option tokens.
func looksLikeOption(token string) bool {
	if token == "-" || token == "--" || !strings.HasPrefix(token, "-") {
		return false
	}
	return !isNumeric(token)
}

// isNumeric reports whether s is a plain or signed number ("10", "-10",
// "-3.14").
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
