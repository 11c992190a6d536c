// Package codes holds the closed catalogs of theurgist codes: formulas,
// modifiers, spell traits, forms, profiles, properties, affection periods
// and the mutable parameter codes of formulas and modifiers.
//
// Every code family is a string type with a fixed, ordered set of values.
// Parse functions fail with ErrUnknownCode for tokens outside the set.
package codes

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned when a token does not belong to a catalog.
var ErrUnknownCode = errors.New("unknown code")

// catalog is an ordered set of codes with O(1) lookup by token.
type catalog[T ~string] struct {
	family string
	values []T
	index  map[string]T
}

func newCatalog[T ~string](family string, values ...T) catalog[T] {
	index := make(map[string]T, len(values))
	for _, v := range values {
		index[string(v)] = v
	}
	return catalog[T]{family: family, values: values, index: index}
}

func (c catalog[T]) parse(token string) (T, error) {
	v, ok := c.index[token]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownCode, c.family, token)
	}
	return v, nil
}

func (c catalog[T]) contains(v T) bool {
	_, ok := c.index[string(v)]
	return ok
}

// strings returns a fresh copy, callers may modify it.
func (c catalog[T]) strings() []string {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		out[i] = string(v)
	}
	return out
}

func (c catalog[T]) all() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}
