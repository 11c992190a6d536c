package spell

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// Modifier is an active modifier of a formula with the caster's
// investments into its own parameters.
type Modifier struct {
	code      codes.Modifier
	table     ModifiersTable
	additions map[codes.ModifierParameter]int
}

// NewModifier validates additions the same way NewFormula does, against the
// parameters the modifier uses. A modifier without a table row fails with
// ErrUnknownModifier.
func NewModifier(code codes.Modifier, table ModifiersTable, additions map[string]any) (*Modifier, error) {
	if !table.Known(code) {
		return nil, fmt.Errorf("%w: required row not found for %s", ErrUnknownModifier, code)
	}
	m := &Modifier{code: code, table: table}
	var err error
	m.additions, err = sanitizeAdditions("modifier "+string(code), codes.AllModifierParameters(), additions,
		func(p codes.ModifierParameter) bool { return m.Base(p) != nil })
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Modifier) Code() codes.Modifier { return m.code }

func (m *Modifier) Addition(code codes.ModifierParameter) int { return m.additions[code] }

// Base is the parameter as the table states it, nil when unused.
func (m *Modifier) Base(code codes.ModifierParameter) *param.CastingParameter {
	switch code {
	case codes.ModifierParameterRadius:
		return m.table.Radius(m.code)
	case codes.ModifierParameterEpicenterShift:
		return m.table.EpicenterShift(m.code)
	case codes.ModifierParameterPower:
		return m.table.Power(m.code)
	case codes.ModifierParameterAttack:
		return m.table.Attack(m.code)
	case codes.ModifierParameterGrafts:
		return m.table.Grafts(m.code)
	case codes.ModifierParameterSpellSpeed:
		return m.table.SpellSpeed(m.code)
	case codes.ModifierParameterPoints:
		return m.table.Points(m.code)
	case codes.ModifierParameterInvisibility:
		return m.table.Invisibility(m.code)
	case codes.ModifierParameterQuality:
		return m.table.Quality(m.code)
	case codes.ModifierParameterConditions:
		return m.table.Conditions(m.code)
	case codes.ModifierParameterResistance:
		return m.table.Resistance(m.code)
	case codes.ModifierParameterNumberOfSituations:
		return m.table.NumberOfSituations(m.code)
	case codes.ModifierParameterThreshold:
		return m.table.Threshold(m.code)
	default:
		return nil
	}
}

// WithAddition is the base parameter with the modifier's addition, nil
// when the modifier does not use it.
func (m *Modifier) WithAddition(code codes.ModifierParameter) *param.CastingParameter {
	base := m.Base(code)
	if base == nil {
		return nil
	}
	return base.WithAddition(m.additions[code])
}

func (m *Modifier) RadiusWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterRadius)
}

func (m *Modifier) EpicenterShiftWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterEpicenterShift)
}

func (m *Modifier) PowerWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterPower)
}

func (m *Modifier) AttackWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterAttack)
}

func (m *Modifier) GraftsWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterGrafts)
}

func (m *Modifier) SpellSpeedWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterSpellSpeed)
}

func (m *Modifier) PointsWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterPoints)
}

func (m *Modifier) InvisibilityWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterInvisibility)
}

func (m *Modifier) QualityWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterQuality)
}

func (m *Modifier) ConditionsWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterConditions)
}

func (m *Modifier) ResistanceWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterResistance)
}

func (m *Modifier) NumberOfSituationsWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterNumberOfSituations)
}

func (m *Modifier) ThresholdWithAddition() *param.CastingParameter {
	return m.WithAddition(codes.ModifierParameterThreshold)
}

// DifficultyChange is the table change plus the difficulty paid for the
// modifier's own additions.
func (m *Modifier) DifficultyChange() *param.DifficultyChange {
	var paid int
	for _, code := range codes.AllModifierParameters() {
		if current := m.WithAddition(code); current != nil {
			paid += current.AdditionByDifficulty().CurrentDifficultyIncrement()
		}
	}
	return m.table.DifficultyChange(m.code).Add(paid)
}

func (m *Modifier) RequiredRealm() *param.Realm             { return m.table.Realm(m.code) }
func (m *Modifier) CastingRounds() *param.CastingRounds     { return m.table.CastingRounds(m.code) }
func (m *Modifier) RealmsAffection() *param.RealmsAffection { return m.table.RealmsAffection(m.code) }

func (m *Modifier) Forms() ([]codes.Form, error) {
	forms, err := m.table.Forms(m.code)
	if err != nil {
		return nil, fmt.Errorf("forms of %s: %w", m.code, err)
	}
	return forms, nil
}

func (m *Modifier) SpellTraitCodes() ([]codes.SpellTrait, error) {
	traits, err := m.table.SpellTraitCodes(m.code)
	if err != nil {
		return nil, fmt.Errorf("spell traits of %s: %w", m.code, err)
	}
	return traits, nil
}

func (m *Modifier) Profiles() ([]codes.Profile, error) {
	profiles, err := m.table.Profiles(m.code)
	if err != nil {
		return nil, fmt.Errorf("profiles of %s: %w", m.code, err)
	}
	return profiles, nil
}

func (m *Modifier) FormulaCodes() ([]codes.Formula, error) {
	formulas, err := m.table.FormulaCodes(m.code)
	if err != nil {
		return nil, fmt.Errorf("formulas of %s: %w", m.code, err)
	}
	return formulas, nil
}

func (m *Modifier) ParentModifierCodes() ([]codes.Modifier, error) {
	parents, err := m.table.ParentModifierCodes(m.code)
	if err != nil {
		return nil, fmt.Errorf("parent modifiers of %s: %w", m.code, err)
	}
	return parents, nil
}

func (m *Modifier) ChildModifierCodes() ([]codes.Modifier, error) {
	children, err := m.table.ChildModifierCodes(m.code)
	if err != nil {
		return nil, fmt.Errorf("child modifiers of %s: %w", m.code, err)
	}
	return children, nil
}

func (m *Modifier) String() string { return string(m.code) }
