// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import "unicode"

// Stream is an ordered sequence of raw command-line tokens. It is created
// once per interpretation and threaded through every stage. Tokens are never
// reordered; they are only split in place, marked consumed, or left for a
// later stage.
type Stream struct {
	tokens []streamToken
}

type streamToken struct {
	text     string
	consumed bool
}

// NewStream builds a Stream from raw arguments, excluding the program name.
func NewStream(args []string) *Stream {
	tokens := make([]streamToken, len(args))
	for i, arg := range args {
		tokens[i] = streamToken{text: arg}
	}
	return &Stream{tokens: tokens}
}

// Peek returns the first unconsumed token without consuming it.
func (s *Stream) Peek() (string, bool) {
	for _, t := range s.tokens {
		if !t.consumed {
			return t.text, true
		}
	}
	return "", false
}

// Pop consumes and returns the first unconsumed token.
func (s *Stream) Pop() (string, bool) {
	for i := range s.tokens {
		if !s.tokens[i].consumed {
			s.tokens[i].consumed = true
			return s.tokens[i].text, true
		}
	}
	return "", false
}

// Remaining returns the unconsumed tokens in order.
func (s *Stream) Remaining() []string {
	out := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		if !t.consumed {
			out = append(out, t.text)
		}
	}
	return out
}

func (s *Stream) size() int { return len(s.tokens) }

func (s *Stream) at(i int) (string, bool) {
	t := s.tokens[i]
	return t.text, !t.consumed
}

func (s *Stream) consume(i int) { s.tokens[i].consumed = true }

// split replaces the token at index i with parts, preserving order.
func (s *Stream) split(i int, parts ...string) {
	replaced := make([]streamToken, len(parts))
	for j, p := range parts {
		replaced[j] = streamToken{text: p}
	}
	out := make([]streamToken, 0, len(s.tokens)+len(parts)-1)
	out = append(out, s.tokens[:i]...)
	out = append(out, replaced...)
	out = append(out, s.tokens[i+1:]...)
	s.tokens = out
}

// A Manipulator rewrites the stream before any stage consumes meaning from
// tokens. Manipulators run in registration order; each receives the output of
// the previous one. Rewrites must be deterministic and idempotent.
type Manipulator interface {
	Manipulate(*Stream)
}

// ShortFlagSplitter splits a short-flag cluster such as "-xyz" into the
// tokens "-x", "-y", "-z". The split is syntactic: it does not know which
// flags are declared, so later stages may still reject the results as
// unrecognized options. A cluster immediately preceded by a keyed-option
// spelling is left intact, since it is that option's value.
type ShortFlagSplitter struct {
	keyed map[string]bool
}

// NewShortFlagSplitter returns a splitter that skips clusters claimed as
// values by any of the given keyed-option spellings.
func NewShortFlagSplitter(keyedSpellings []string) *ShortFlagSplitter {
	keyed := make(map[string]bool, len(keyedSpellings))
	for _, s := range keyedSpellings {
		keyed[s] = true
	}
	return &ShortFlagSplitter{keyed: keyed}
}

// Manipulate splits every eligible cluster in a single left-to-right pass.
func (m *ShortFlagSplitter) Manipulate(st *Stream) {
	for i := 0; i < st.size(); i++ {
		text, ok := st.at(i)
		if !ok {
			continue
		}
		if text == "--" {
			// Tokens past the terminator are positional, verbatim.
			break
		}
		if !isShortFlagCluster(text) {
			continue
		}
		if i > 0 {
			if prev, _ := st.at(i - 1); m.keyed[prev] {
				continue
			}
		}
		parts := make([]string, 0, len(text)-1)
		for _, r := range text[1:] {
			parts = append(parts, "-"+string(r))
		}
		st.split(i, parts...)
		i += len(parts) - 1
	}
}

// isShortFlagCluster reports whether text is a single-dash token carrying
// two or more flag letters, e.g. "-xyz" but not "--xyz", "-x", or "-10".
func isShortFlagCluster(text string) bool {
	if len(text) < 3 || text[0] != '-' || text[1] == '-' {
		return false
	}
	for _, r := range text[1:] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
