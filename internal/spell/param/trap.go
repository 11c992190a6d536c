package param

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
)

// Trap is a casting parameter tested against a property of whoever
// triggers the spell.
type Trap struct {
	CastingParameter
	property codes.Property
}

// NewTrap builds a trap from [value, addition by difficulty notation, property].
func NewTrap(values []string) (*Trap, error) {
	base, err := NewCastingParameter(KindTrap, values)
	if err != nil {
		return nil, err
	}
	if len(values) < 3 {
		return nil, fmt.Errorf("%w: expected valid property code, got nothing", ErrInvalidPropertyForTrap)
	}
	property, err := codes.ParseProperty(values[2])
	if err != nil {
		return nil, fmt.Errorf("%w: expected valid property code, got %s",
			ErrInvalidPropertyForTrap, describeAt(values, 2))
	}
	return &Trap{CastingParameter: *base, property: property}, nil
}

func (t *Trap) Property() codes.Property { return t.property }

// WithAddition returns the trap with delta more invested. Zero delta returns
// the receiver itself.
func (t *Trap) WithAddition(delta int) *Trap {
	if delta == 0 {
		return t
	}
	return &Trap{
		CastingParameter: *t.CastingParameter.WithAddition(delta),
		property:         t.property,
	}
}

func (t *Trap) String() string {
	return fmt.Sprintf("%d %s (%s)", t.Value(), t.property, t.addition)
}
