package param

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/measure"
)

// Realm is the magical tier a caster needs for a formula.
type Realm struct {
	value int
}

func NewRealm(raw string) (*Realm, error) {
	v, err := ToInteger(raw)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: expected positive integer, got %q", ErrInvalidRealm, raw)
	}
	return &Realm{value: v}, nil
}

func (r *Realm) Value() int { return r.value }

// Add returns a realm higher by n. Zero returns the receiver.
func (r *Realm) Add(n int) *Realm {
	if n == 0 {
		return r
	}
	return &Realm{value: r.value + n}
}

func (r *Realm) Sub(n int) *Realm { return r.Add(-n) }

func (r *Realm) String() string { return fmt.Sprintf("%d", r.value) }

// DifficultyChange is a signed difficulty delta of a modifier or spell trait.
type DifficultyChange struct {
	value int
}

func NewDifficultyChange(raw string) (*DifficultyChange, error) {
	v, err := ToInteger(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: expected integer, got %q", ErrInvalidDifficultyChange, raw)
	}
	return &DifficultyChange{value: v}, nil
}

// Value reads 0 on a nil change.
func (d *DifficultyChange) Value() int {
	if d == nil {
		return 0
	}
	return d.value
}

// Add returns a change higher by n. Zero returns the receiver.
func (d *DifficultyChange) Add(n int) *DifficultyChange {
	if n == 0 {
		return d
	}
	return &DifficultyChange{value: d.Value() + n}
}

func (d *DifficultyChange) String() string { return fmt.Sprintf("%d", d.Value()) }

// FormulaDifficulty is the difficulty range of a formula together with the
// change applied to its minimum.
//
// Raw cells: [minimal, maximal, addition by realms notation]. The notation
// says how much difficulty above maximal one more realm allows.
type FormulaDifficulty struct {
	minimal  int
	maximal  int
	byRealms AdditionByRealms
	change   int
}

func NewFormulaDifficulty(values []string) (*FormulaDifficulty, error) {
	if len(values) < 3 {
		return nil, fmt.Errorf("%w: expected [minimal, maximal, notation], got %d values",
			ErrInvalidFormulaDifficulty, len(values))
	}
	minimal, err := ToInteger(values[0])
	if err != nil || minimal < 0 {
		return nil, fmt.Errorf("%w: expected non-negative minimal, got %q", ErrInvalidFormulaDifficulty, values[0])
	}
	maximal, err := ToInteger(values[1])
	if err != nil || maximal < minimal {
		return nil, fmt.Errorf("%w: expected maximal at least %d, got %q",
			ErrInvalidFormulaDifficulty, minimal, values[1])
	}
	byRealms, err := NewAdditionByRealms(values[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormulaDifficulty, err)
	}
	if byRealms.AdditionStep() <= 0 {
		return nil, fmt.Errorf("%w: difficulty per realm must be positive, got %q",
			ErrInvalidFormulaDifficulty, values[2])
	}
	return &FormulaDifficulty{minimal: minimal, maximal: maximal, byRealms: byRealms}, nil
}

func (d *FormulaDifficulty) Minimal() int                       { return d.minimal }
func (d *FormulaDifficulty) Maximal() int                       { return d.maximal }
func (d *FormulaDifficulty) AdditionByRealms() AdditionByRealms { return d.byRealms }
func (d *FormulaDifficulty) Change() int                        { return d.change }

// Value is minimal difficulty plus the change.
func (d *FormulaDifficulty) Value() int { return d.minimal + d.change }

// CreateWithChange returns the same difficulty range with change applied to
// the minimum. The previous change is replaced, not accumulated.
func (d *FormulaDifficulty) CreateWithChange(change int) *FormulaDifficulty {
	changed := *d
	changed.change = change
	return &changed
}

// CurrentRealmsIncrement is how many realms above the formula's own realm
// the current difficulty requires.
func (d *FormulaDifficulty) CurrentRealmsIncrement() int {
	over := d.Value() - d.maximal
	if over <= 0 {
		return 0
	}
	return ceilDiv(over*d.byRealms.RealmsPerAdditionStep(), d.byRealms.AdditionStep())
}

func (d *FormulaDifficulty) String() string {
	return fmt.Sprintf("%d (%d...%d [%s])", d.Value(), d.minimal, d.maximal, d.byRealms.Notation())
}

// RealmsAffection is how strongly casting affects the caster's realms,
// and in which period the affection accumulates.
type RealmsAffection struct {
	value  int
	period codes.AffectionPeriod
}

// NewRealmsAffection builds an affection from [value, period].
func NewRealmsAffection(values []string) (*RealmsAffection, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: expected [value, period], got %d values", ErrInvalidRealmsAffection, len(values))
	}
	v, err := ToInteger(values[0])
	if err != nil || v > 0 {
		return nil, fmt.Errorf("%w: expected non-positive integer, got %q", ErrInvalidRealmsAffection, values[0])
	}
	period, err := codes.ParseAffectionPeriod(values[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRealmsAffection, err)
	}
	return &RealmsAffection{value: v, period: period}, nil
}

// RealmsAffectionOf builds an already validated affection, used when
// affections of several sources are summed up.
func RealmsAffectionOf(value int, period codes.AffectionPeriod) *RealmsAffection {
	return &RealmsAffection{value: value, period: period}
}

func (a *RealmsAffection) Value() int                    { return a.value }
func (a *RealmsAffection) Period() codes.AffectionPeriod { return a.period }

func (a *RealmsAffection) String() string { return fmt.Sprintf("%d %s", a.value, a.period) }

// CastingRounds is how many rounds the casting takes.
type CastingRounds struct {
	value int
}

func NewCastingRounds(values []string) (*CastingRounds, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: got nothing", ErrInvalidCastingRounds)
	}
	v, err := ToInteger(values[0])
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: expected non-negative integer, got %q", ErrInvalidCastingRounds, values[0])
	}
	return &CastingRounds{value: v}, nil
}

// Value reads 0 on nil rounds.
func (c *CastingRounds) Value() int {
	if c == nil {
		return 0
	}
	return c.value
}

// Add returns rounds longer by n. Zero returns the receiver.
func (c *CastingRounds) Add(n int) *CastingRounds {
	if n == 0 {
		return c
	}
	return &CastingRounds{value: c.Value() + n}
}

func (c *CastingRounds) String() string { return fmt.Sprintf("%d", c.Value()) }

// Evocation is the time bonus of evoking a formula before it can be cast.
type Evocation struct {
	value int
}

func NewEvocation(values []string) (*Evocation, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: got nothing", ErrInvalidEvocation)
	}
	v, err := ToInteger(values[0])
	if err != nil {
		return nil, fmt.Errorf("%w: expected integer, got %q", ErrInvalidEvocation, values[0])
	}
	return &Evocation{value: v}, nil
}

func (e *Evocation) Value() int { return e.value }

func (e *Evocation) Time(table measure.TimeTable) measure.Time {
	return table.ToTime(e.value)
}

func (e *Evocation) String() string { return fmt.Sprintf("%d", e.value) }
