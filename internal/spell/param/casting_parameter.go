package param

import (
	"fmt"
	"strings"

	"github.com/udisondev/theurgist/internal/measure"
)

// Kind names a casting parameter.
type Kind string

const (
	KindRadius             Kind = "radius"
	KindDuration           Kind = "duration"
	KindPower              Kind = "power"
	KindAttack             Kind = "attack"
	KindSizeChange         Kind = "size_change"
	KindDetailLevel        Kind = "detail_level"
	KindBrightness         Kind = "brightness"
	KindSpellSpeed         Kind = "spell_speed"
	KindEpicenterShift     Kind = "epicenter_shift"
	KindGrafts             Kind = "grafts"
	KindPoints             Kind = "points"
	KindInvisibility       Kind = "invisibility"
	KindQuality            Kind = "quality"
	KindConditions         Kind = "conditions"
	KindResistance         Kind = "resistance"
	KindNumberOfSituations Kind = "number_of_situations"
	KindThreshold          Kind = "threshold"
	KindTrap               Kind = "trap"
)

// Positive reports whether the table value of this kind must be > 0.
func (k Kind) Positive() bool {
	switch k {
	case KindDuration, KindDetailLevel, KindBrightness:
		return true
	default:
		return false
	}
}

// Name is the human readable kind, "size change" for KindSizeChange.
func (k Kind) Name() string {
	return strings.ReplaceAll(string(k), "_", " ")
}

// CastingParameter is an immutable integer parameter of a formula, modifier
// or spell trait.
//
// The table value stays untouched as the default; investments are tracked
// in the addition notation and Value() is default + current addition.
type CastingParameter struct {
	kind         Kind
	defaultValue int
	addition     AdditionByDifficulty
}

// NewCastingParameter builds a parameter from its raw table cells
// [value, addition by difficulty notation].
func NewCastingParameter(kind Kind, values []string) (*CastingParameter, error) {
	defaultValue, err := parseParameterValue(kind, values)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%s: %w", kind.Name(), ErrMissingAdditionNotation)
	}
	addition, err := NewAdditionByDifficulty(values[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind.Name(), err)
	}
	return &CastingParameter{
		kind:         kind,
		defaultValue: defaultValue,
		addition:     addition,
	}, nil
}

func parseParameterValue(kind Kind, values []string) (int, error) {
	if len(values) == 0 {
		return 0, invalidValueError(kind, values)
	}
	v, err := ToInteger(values[0])
	if err != nil || (kind.Positive() && v <= 0) {
		return 0, invalidValueError(kind, values)
	}
	return v, nil
}

func invalidValueError(kind Kind, values []string) error {
	if kind.Positive() {
		return fmt.Errorf("%w: expected positive integer for %s, got %s",
			ErrInvalidValueForPositiveParameter, kind.Name(), describeAt(values, 0))
	}
	return fmt.Errorf("%w: expected integer for %s, got %s",
		ErrInvalidValueForIntegerParameter, kind.Name(), describeAt(values, 0))
}

func (p *CastingParameter) Kind() Kind { return p.kind }

// DefaultValue is the value as the table states it.
func (p *CastingParameter) DefaultValue() int { return p.defaultValue }

// Value is the effective value. A nil parameter reads as 0.
func (p *CastingParameter) Value() int {
	if p == nil {
		return 0
	}
	return p.defaultValue + p.addition.CurrentAddition()
}

func (p *CastingParameter) AdditionByDifficulty() AdditionByDifficulty { return p.addition }

// WithAddition returns the parameter with delta more invested. Zero delta
// returns the receiver itself.
func (p *CastingParameter) WithAddition(delta int) *CastingParameter {
	if delta == 0 {
		return p
	}
	changed := *p
	changed.addition = p.addition.WithCurrentAddition(p.addition.CurrentAddition() + delta)
	return &changed
}

// Distance converts the value as a distance bonus (radius, epicenter shift).
func (p *CastingParameter) Distance(table measure.DistanceTable) measure.Distance {
	return table.ToDistance(p.Value())
}

// Time converts the value as a time bonus (duration).
func (p *CastingParameter) Time(table measure.TimeTable) measure.Time {
	return table.ToTime(p.Value())
}

// Speed converts the value as a speed bonus (spell speed).
func (p *CastingParameter) Speed(table measure.SpeedTable) measure.Speed {
	return table.ToSpeed(p.Value())
}

func (p *CastingParameter) String() string {
	return fmt.Sprintf("%d (%s)", p.Value(), p.addition)
}
