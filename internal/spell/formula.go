package spell

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/measure"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// Formula is one casting of a formula: its table row, the caster's
// investments into its parameters, and the active modifiers and traits.
type Formula struct {
	code        codes.Formula
	table       FormulasTable
	distances   measure.DistanceTable
	additions   map[codes.FormulaParameter]int
	modifiers   []*Modifier
	spellTraits []*SpellTrait
}

// NewFormula validates the additions and flattens modifiers and spell
// traits, which may be given as *Modifier, []*Modifier or nested []any.
func NewFormula(
	code codes.Formula,
	table FormulasTable,
	distances measure.DistanceTable,
	additions map[string]any,
	modifiers []any,
	spellTraits []any,
) (*Formula, error) {
	flatModifiers, err := flattenModifiers(modifiers)
	if err != nil {
		return nil, err
	}
	flatTraits, err := flattenSpellTraits(spellTraits)
	if err != nil {
		return nil, err
	}

	f := &Formula{
		code:        code,
		table:       table,
		distances:   distances,
		modifiers:   flatModifiers,
		spellTraits: flatTraits,
	}
	f.additions, err = sanitizeAdditions("formula "+string(code), codes.AllFormulaParameters(), additions,
		func(p codes.FormulaParameter) bool { return f.Base(p) != nil })
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Formula) Code() codes.Formula { return f.code }

func (f *Formula) Modifiers() []*Modifier {
	out := make([]*Modifier, len(f.modifiers))
	copy(out, f.modifiers)
	return out
}

func (f *Formula) SpellTraits() []*SpellTrait {
	out := make([]*SpellTrait, len(f.spellTraits))
	copy(out, f.spellTraits)
	return out
}

// Addition is the investment into the parameter, 0 when none was given.
func (f *Formula) Addition(code codes.FormulaParameter) int {
	return f.additions[code]
}

// Base is the parameter as the table states it, nil when unused.
func (f *Formula) Base(code codes.FormulaParameter) *param.CastingParameter {
	switch code {
	case codes.FormulaParameterRadius:
		return f.table.Radius(f.code)
	case codes.FormulaParameterDuration:
		return f.table.Duration(f.code)
	case codes.FormulaParameterPower:
		return f.table.Power(f.code)
	case codes.FormulaParameterAttack:
		return f.table.Attack(f.code)
	case codes.FormulaParameterSizeChange:
		return f.table.SizeChange(f.code)
	case codes.FormulaParameterDetailLevel:
		return f.table.DetailLevel(f.code)
	case codes.FormulaParameterBrightness:
		return f.table.Brightness(f.code)
	case codes.FormulaParameterSpellSpeed:
		return f.table.SpellSpeed(f.code)
	case codes.FormulaParameterEpicenterShift:
		return f.table.EpicenterShift(f.code)
	default:
		return nil
	}
}

// CurrentParameter is the base parameter with the formula's own addition,
// nil when the formula does not use it. Modifiers are not reflected.
func (f *Formula) CurrentParameter(code codes.FormulaParameter) *param.CastingParameter {
	base := f.Base(code)
	if base == nil {
		return nil
	}
	return base.WithAddition(f.additions[code])
}

func (f *Formula) CurrentDuration() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterDuration)
}

func (f *Formula) CurrentPower() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterPower)
}

func (f *Formula) CurrentAttack() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterAttack)
}

func (f *Formula) CurrentSizeChange() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterSizeChange)
}

func (f *Formula) CurrentDetailLevel() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterDetailLevel)
}

func (f *Formula) CurrentBrightness() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterBrightness)
}

func (f *Formula) CurrentSpellSpeed() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterSpellSpeed)
}

func (f *Formula) CurrentEpicenterShift() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterEpicenterShift)
}

// RadiusWithAddition is the formula's own radius with its addition.
func (f *Formula) RadiusWithAddition() *param.CastingParameter {
	return f.CurrentParameter(codes.FormulaParameterRadius)
}

// CurrentRadius is the formula radius enlarged by every modifier radius.
// Nil when the formula has no radius of its own.
func (f *Formula) CurrentRadius() *param.CastingParameter {
	radius := f.RadiusWithAddition()
	if radius == nil {
		return nil
	}
	var fromModifiers int
	for _, m := range f.modifiers {
		fromModifiers += m.RadiusWithAddition().Value()
	}
	return radius.WithAddition(fromModifiers)
}

// CurrentRadiusDistance converts CurrentRadius; false when there is none.
func (f *Formula) CurrentRadiusDistance() (measure.Distance, bool) {
	radius := f.CurrentRadius()
	if radius == nil {
		return measure.Distance{}, false
	}
	return radius.Distance(f.distances), true
}

// CurrentEpicenterShiftDistance converts the current epicenter shift; false
// when the formula cannot shift its epicenter.
func (f *Formula) CurrentEpicenterShiftDistance() (measure.Distance, bool) {
	shift := f.CurrentEpicenterShift()
	if shift == nil {
		return measure.Distance{}, false
	}
	return shift.Distance(f.distances), true
}

// CurrentDifficulty is the formula difficulty changed by the difficulty
// paid for own parameter additions and by every modifier and spell trait.
func (f *Formula) CurrentDifficulty() *param.FormulaDifficulty {
	var change int
	for _, code := range codes.AllFormulaParameters() {
		if current := f.CurrentParameter(code); current != nil {
			change += current.AdditionByDifficulty().CurrentDifficultyIncrement()
		}
	}
	for _, m := range f.modifiers {
		change += m.DifficultyChange().Value()
	}
	for _, t := range f.spellTraits {
		change += t.DifficultyChange().Value()
	}
	return f.table.FormulaDifficulty(f.code).CreateWithChange(change)
}

// RequiredRealm is the formula realm raised by what the current difficulty
// demands. A modifier needing a strictly higher realm wins; the first such
// highest modifier is returned.
func (f *Formula) RequiredRealm() *param.Realm {
	realm := f.table.Realm(f.code).Add(f.CurrentDifficulty().CurrentRealmsIncrement())
	for _, m := range f.modifiers {
		required := m.RequiredRealm()
		if required != nil && required.Value() > realm.Value() {
			realm = required
		}
	}
	return realm
}

func (f *Formula) CurrentCastingRounds() *param.CastingRounds {
	rounds := f.table.CastingRounds(f.code)
	for _, m := range f.modifiers {
		rounds = rounds.Add(m.CastingRounds().Value())
	}
	return rounds
}

// CurrentRealmsAffections sums affections of the formula and its modifiers
// per affection period.
func (f *Formula) CurrentRealmsAffections() map[codes.AffectionPeriod]*param.RealmsAffection {
	sums := make(map[codes.AffectionPeriod]int)
	for _, m := range f.modifiers {
		if affection := m.RealmsAffection(); affection != nil {
			sums[affection.Period()] += affection.Value()
		}
	}
	base := f.table.RealmsAffection(f.code)
	sums[base.Period()] += base.Value()

	affections := make(map[codes.AffectionPeriod]*param.RealmsAffection, len(sums))
	for period, value := range sums {
		affections[period] = param.RealmsAffectionOf(value, period)
	}
	return affections
}

func (f *Formula) CurrentEvocation() *param.Evocation {
	return f.table.Evocation(f.code)
}

func (f *Formula) Forms() []codes.Form                 { return f.table.Forms(f.code) }
func (f *Formula) Profiles() []codes.Profile           { return f.table.Profiles(f.code) }
func (f *Formula) SpellTraitCodes() []codes.SpellTrait { return f.table.SpellTraitCodes(f.code) }

func (f *Formula) String() string {
	return fmt.Sprintf("%s (difficulty %d, realm %d)", f.code, f.CurrentDifficulty().Value(), f.RequiredRealm().Value())
}
