// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package steer

import "fmt"

// SlotKind classifies a parameter slot.
type SlotKind int

const (
	// RequiredSlot must receive exactly one token.
	RequiredSlot SlotKind = iota
	// OptionalSlot receives one token or keeps its declared default.
	OptionalSlot
	// VariadicSlot collects all remaining tokens, possibly zero.
	VariadicSlot
)

// Slot is one position in a parameter signature.
type Slot struct {
	Name    string
	Kind    SlotKind
	Default string
	Usage   string
}

// Required declares a required parameter slot.
func Required(name string) Slot { return Slot{Name: name, Kind: RequiredSlot} }

// Optional declares an optional parameter slot with a default value.
func Optional(name, def string) Slot {
	return Slot{Name: name, Kind: OptionalSlot, Default: def}
}

// Variadic declares a trailing slot collecting all remaining tokens.
func Variadic(name string) Slot { return Slot{Name: name, Kind: VariadicSlot} }

// Signature is an ordered declaration of a command's positional parameters:
// zero or more required slots, then zero or more optional slots, then at most
// one variadic slot.
type Signature struct {
	slots    []Slot
	required int
	optional int
	variadic bool
}

// NewSignature validates slot ordering at construction time. A required slot
// after an optional or variadic slot, more than one variadic slot, or a
// variadic slot that is not last all fail with a ConfigurationError; the
// slots are never silently reordered.
func NewSignature(slots ...Slot) (Signature, error) {
	sig := Signature{slots: slots}
	seenOptional := false
	for i, slot := range slots {
		if slot.Name == "" {
			return Signature{}, configErrorf("parameter slot %d has no name", i)
		}
		switch slot.Kind {
		case RequiredSlot:
			if seenOptional || sig.variadic {
				return Signature{}, configErrorf("required parameter %q follows an optional or variadic slot", slot.Name)
			}
			sig.required++
		case OptionalSlot:
			if sig.variadic {
				return Signature{}, configErrorf("optional parameter %q follows a variadic slot", slot.Name)
			}
			seenOptional = true
			sig.optional++
		case VariadicSlot:
			if sig.variadic {
				return Signature{}, configErrorf("multiple variadic parameters (%q)", slot.Name)
			}
			sig.variadic = true
		}
	}
	return sig, nil
}

// MustSignature is NewSignature that panics on a malformed declaration.
func MustSignature(slots ...Slot) Signature {
	sig, err := NewSignature(slots...)
	if err != nil {
		panic(err)
	}
	return sig
}

// Slots returns the declared slots in order.
func (sig Signature) Slots() []Slot { return sig.slots }

// expected describes the acceptable token count: "2", "1-3", "at least 1".
func (sig Signature) expected() string {
	if sig.variadic {
		return fmt.Sprintf("at least %d", sig.required)
	}
	if sig.optional == 0 {
		return fmt.Sprintf("%d", sig.required)
	}
	return fmt.Sprintf("%d-%d", sig.required, sig.required+sig.optional)
}

// Fill binds the remaining positional tokens to the signature with a single
// greedy, order-preserving pass: required slots first, then optional slots in
// declared order, then the variadic slot collects whatever is left.
func (sig Signature) Fill(tokens []string) (*BoundParams, *ParameterError) {
	if len(tokens) < sig.required {
		return nil, &ParameterError{Expected: sig.expected(), Got: len(tokens)}
	}
	if !sig.variadic && len(tokens) > sig.required+sig.optional {
		return nil, &ParameterError{Expected: sig.expected(), Got: len(tokens), TooMany: true}
	}

	bound := &BoundParams{scalars: make(map[string]string, len(sig.slots))}
	next := 0
	for _, slot := range sig.slots {
		switch slot.Kind {
		case RequiredSlot:
			bound.scalars[slot.Name] = tokens[next]
			next++
		case OptionalSlot:
			if next < len(tokens) {
				bound.scalars[slot.Name] = tokens[next]
				next++
			} else {
				bound.scalars[slot.Name] = slot.Default
			}
		case VariadicSlot:
			bound.variadicName = slot.Name
			bound.variadic = append([]string{}, tokens[next:]...)
			next = len(tokens)
		}
	}
	return bound, nil
}

// BoundParams holds positional values after filling.
type BoundParams struct {
	scalars      map[string]string
	variadic     []string
	variadicName string
}

// Value returns the token or default bound to the named scalar slot.
func (p *BoundParams) Value(name string) (string, bool) {
	v, ok := p.scalars[name]
	return v, ok
}

// Variadic returns the tokens collected by the variadic slot, in order.
// It is empty, never nil semantics aside, when zero tokens remained.
func (p *BoundParams) Variadic() []string { return p.variadic }

// VariadicName returns the declared name of the variadic slot, if any.
func (p *BoundParams) VariadicName() string { return p.variadicName }
