package spell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/udisondev/theurgist/internal/spell/param"
)

// flattenModifiers accepts *Modifier, []*Modifier and []any nested to any
// depth and returns the modifiers in input order.
func flattenModifiers(items []any) ([]*Modifier, error) {
	var out []*Modifier
	for _, item := range items {
		switch v := item.(type) {
		case *Modifier:
			if v == nil {
				return nil, fmt.Errorf("%w: got nil", ErrInvalidModifier)
			}
			out = append(out, v)
		case []*Modifier:
			for _, m := range v {
				if m == nil {
					return nil, fmt.Errorf("%w: got nil", ErrInvalidModifier)
				}
			}
			out = append(out, v...)
		case []any:
			nested, err := flattenModifiers(v)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			return nil, fmt.Errorf("%w: expected modifier, got %T", ErrInvalidModifier, item)
		}
	}
	return out, nil
}

// flattenSpellTraits is flattenModifiers for spell traits.
func flattenSpellTraits(items []any) ([]*SpellTrait, error) {
	var out []*SpellTrait
	for _, item := range items {
		switch v := item.(type) {
		case *SpellTrait:
			if v == nil {
				return nil, fmt.Errorf("%w: got nil", ErrInvalidSpellTrait)
			}
			out = append(out, v)
		case []*SpellTrait:
			for _, t := range v {
				if t == nil {
					return nil, fmt.Errorf("%w: got nil", ErrInvalidSpellTrait)
				}
			}
			out = append(out, v...)
		case []any:
			nested, err := flattenSpellTraits(v)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			return nil, fmt.Errorf("%w: expected spell trait, got %T", ErrInvalidSpellTrait, item)
		}
	}
	return out, nil
}

// sanitizeAdditions turns raw additions keyed by parameter token into a map
// holding every known parameter, 0 where nothing was given.
//
// Non-zero additions of parameters the owner does not use are rejected, as
// are keys outside known.
func sanitizeAdditions[P ~string](owner string, known []P, raw map[string]any, used func(P) bool) (map[P]int, error) {
	sanitized := make(map[P]int, len(known))
	seen := make(map[string]struct{}, len(raw))

	for _, code := range known {
		value, ok := raw[string(code)]
		if !ok {
			sanitized[code] = 0
			continue
		}
		seen[string(code)] = struct{}{}

		addition, err := param.ToInteger(value)
		if err != nil {
			return nil, fmt.Errorf("%w: expected integer, got %v for %s: %w",
				ErrInvalidParameterAddition, value, code, err)
		}
		if addition != 0 && !used(code) {
			return nil, fmt.Errorf("%w: casting parameter %s is not used for %s, so given non-zero addition %v is thrown away",
				ErrUselessAdditionForUnusedParameter, code, owner, value)
		}
		sanitized[code] = addition
	}

	if len(seen) < len(raw) {
		var unknown []string
		for key := range raw {
			if _, ok := seen[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		expected := make([]string, len(known))
		for i, code := range known {
			expected[i] = string(code)
		}
		return nil, fmt.Errorf("%w: unexpected [%s] for %s, expected only %s",
			ErrUnknownParameter, strings.Join(unknown, ", "), owner, strings.Join(expected, ", "))
	}

	return sanitized, nil
}
