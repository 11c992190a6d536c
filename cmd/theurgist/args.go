package main

import (
	"fmt"
	"strings"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// listFlag collects every occurrence of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, " ") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type modifierArg struct {
	code      codes.Modifier
	additions map[string]any
}

type traitArg struct {
	code       codes.SpellTrait
	trapChange int
}

// parseAdditions turns "param=value" pairs into raw additions. Values stay
// strings: the engine coerces and validates them.
func parseAdditions(pairs []string) (map[string]any, error) {
	additions := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected param=value, got %q", pair)
		}
		if _, dup := additions[key]; dup {
			return nil, fmt.Errorf("addition of %s given twice", key)
		}
		additions[key] = strings.TrimSpace(value)
	}
	return additions, nil
}

// parseModifierArg parses "gate" or "gate:radius=1,epicenter_shift=2".
func parseModifierArg(raw string) (modifierArg, error) {
	token, rest, _ := strings.Cut(raw, ":")
	code, err := codes.ParseModifier(strings.TrimSpace(token))
	if err != nil {
		return modifierArg{}, err
	}
	var pairs []string
	if rest != "" {
		pairs = strings.Split(rest, ",")
	}
	additions, err := parseAdditions(pairs)
	if err != nil {
		return modifierArg{}, err
	}
	return modifierArg{code: code, additions: additions}, nil
}

// parseTraitArg parses "invisible" or "invisible=6", the latter asking for a
// trap of value 6.
func parseTraitArg(raw string) (traitArg, error) {
	token, trap, hasTrap := strings.Cut(raw, "=")
	code, err := codes.ParseSpellTrait(strings.TrimSpace(token))
	if err != nil {
		return traitArg{}, err
	}
	arg := traitArg{code: code}
	if hasTrap {
		if arg.trapChange, err = param.ToInteger(trap); err != nil {
			return traitArg{}, fmt.Errorf("trap: %w", err)
		}
	}
	return arg, nil
}
