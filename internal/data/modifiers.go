package data

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
)

type modifierRecord struct {
	Realm            string   `yaml:"realm"`
	RealmsAffection  []string `yaml:"realms_affection"`
	CastingRounds    []string `yaml:"casting_rounds"`
	DifficultyChange string   `yaml:"difficulty_change"`

	Radius             []string `yaml:"radius"`
	EpicenterShift     []string `yaml:"epicenter_shift"`
	Power              []string `yaml:"power"`
	Attack             []string `yaml:"attack"`
	Grafts             []string `yaml:"grafts"`
	SpellSpeed         []string `yaml:"spell_speed"`
	Points             []string `yaml:"points"`
	Invisibility       []string `yaml:"invisibility"`
	Quality            []string `yaml:"quality"`
	Conditions         []string `yaml:"conditions"`
	Resistance         []string `yaml:"resistance"`
	NumberOfSituations []string `yaml:"number_of_situations"`
	Threshold          []string `yaml:"threshold"`

	Forms           []string `yaml:"forms"`
	SpellTraits     []string `yaml:"spell_traits"`
	Profiles        []string `yaml:"profiles"`
	Formulas        []string `yaml:"formulas"`
	ParentModifiers []string `yaml:"parent_modifiers"`
	ChildModifiers  []string `yaml:"child_modifiers"`
}

type modifierRow struct {
	realm            *param.Realm
	realmsAffection  *param.RealmsAffection
	castingRounds    *param.CastingRounds
	difficultyChange *param.DifficultyChange
	parameters       map[codes.ModifierParameter]*param.CastingParameter

	forms       []codes.Form
	spellTraits []codes.SpellTrait
	profiles    []codes.Profile
	formulas    []codes.Formula
	parents     []codes.Modifier
	children    []codes.Modifier
}

// ModifiersTable implements spell.ModifiersTable.
//
// Modifiers may be missing from the file. Known reports them as unknown,
// their values read as nil and their relations fail with
// spell.ErrUnknownModifier.
type ModifiersTable struct {
	rows map[codes.Modifier]*modifierRow
}

var _ spell.ModifiersTable = (*ModifiersTable)(nil)

func newModifiersTable(records map[string]modifierRecord) (*ModifiersTable, error) {
	rows := make(map[codes.Modifier]*modifierRow, len(records))
	for token, rec := range records {
		code, err := codes.ParseModifier(token)
		if err != nil {
			return nil, err
		}
		row, err := parseModifierRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: modifier %s: %w", ErrInvalidRow, code, err)
		}
		rows[code] = row
	}
	return &ModifiersTable{rows: rows}, nil
}

func parseModifierRecord(rec modifierRecord) (*modifierRow, error) {
	var (
		row = &modifierRow{parameters: make(map[codes.ModifierParameter]*param.CastingParameter)}
		err error
	)
	if row.realm, err = param.NewRealm(rec.Realm); err != nil {
		return nil, err
	}
	if row.difficultyChange, err = param.NewDifficultyChange(rec.DifficultyChange); err != nil {
		return nil, err
	}
	// Пустые ячейки: модификатор не меняет влияние на сферы и время каста.
	if len(rec.RealmsAffection) > 0 {
		if row.realmsAffection, err = param.NewRealmsAffection(rec.RealmsAffection); err != nil {
			return nil, err
		}
	}
	if len(rec.CastingRounds) > 0 {
		if row.castingRounds, err = param.NewCastingRounds(rec.CastingRounds); err != nil {
			return nil, err
		}
	}

	cells := map[codes.ModifierParameter][]string{
		codes.ModifierParameterRadius:             rec.Radius,
		codes.ModifierParameterEpicenterShift:     rec.EpicenterShift,
		codes.ModifierParameterPower:              rec.Power,
		codes.ModifierParameterAttack:             rec.Attack,
		codes.ModifierParameterGrafts:             rec.Grafts,
		codes.ModifierParameterSpellSpeed:         rec.SpellSpeed,
		codes.ModifierParameterPoints:             rec.Points,
		codes.ModifierParameterInvisibility:       rec.Invisibility,
		codes.ModifierParameterQuality:            rec.Quality,
		codes.ModifierParameterConditions:         rec.Conditions,
		codes.ModifierParameterResistance:         rec.Resistance,
		codes.ModifierParameterNumberOfSituations: rec.NumberOfSituations,
		codes.ModifierParameterThreshold:          rec.Threshold,
	}
	for code, values := range cells {
		if len(values) == 0 {
			continue
		}
		p, err := param.NewCastingParameter(param.Kind(code), values)
		if err != nil {
			return nil, err
		}
		row.parameters[code] = p
	}

	if row.forms, err = parseCodes(rec.Forms, codes.ParseForm); err != nil {
		return nil, err
	}
	if row.spellTraits, err = parseCodes(rec.SpellTraits, codes.ParseSpellTrait); err != nil {
		return nil, err
	}
	if row.profiles, err = parseCodes(rec.Profiles, codes.ParseProfile); err != nil {
		return nil, err
	}
	if row.formulas, err = parseCodes(rec.Formulas, codes.ParseFormula); err != nil {
		return nil, err
	}
	if row.parents, err = parseCodes(rec.ParentModifiers, codes.ParseModifier); err != nil {
		return nil, err
	}
	if row.children, err = parseCodes(rec.ChildModifiers, codes.ParseModifier); err != nil {
		return nil, err
	}
	return row, nil
}

// Codes lists the modifiers present in the table in catalog order.
func (t *ModifiersTable) Codes() []codes.Modifier {
	var out []codes.Modifier
	for _, code := range codes.AllModifiers() {
		if _, ok := t.rows[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// Known reports whether modifiers.yaml has a row for c.
func (t *ModifiersTable) Known(c codes.Modifier) bool {
	_, ok := t.rows[c]
	return ok
}

func (t *ModifiersTable) known(c codes.Modifier) (*modifierRow, error) {
	row, ok := t.rows[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", spell.ErrUnknownModifier, c)
	}
	return row, nil
}

func (t *ModifiersTable) row(c codes.Modifier) *modifierRow {
	if row, ok := t.rows[c]; ok {
		return row
	}
	return &modifierRow{}
}

func (t *ModifiersTable) parameter(c codes.Modifier, p codes.ModifierParameter) *param.CastingParameter {
	return t.row(c).parameters[p]
}

func (t *ModifiersTable) Realm(c codes.Modifier) *param.Realm { return t.row(c).realm }

func (t *ModifiersTable) RealmsAffection(c codes.Modifier) *param.RealmsAffection {
	return t.row(c).realmsAffection
}

func (t *ModifiersTable) CastingRounds(c codes.Modifier) *param.CastingRounds {
	return t.row(c).castingRounds
}

func (t *ModifiersTable) DifficultyChange(c codes.Modifier) *param.DifficultyChange {
	return t.row(c).difficultyChange
}

func (t *ModifiersTable) Radius(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterRadius)
}

func (t *ModifiersTable) EpicenterShift(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterEpicenterShift)
}

func (t *ModifiersTable) Power(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterPower)
}

func (t *ModifiersTable) Attack(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterAttack)
}

func (t *ModifiersTable) Grafts(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterGrafts)
}

func (t *ModifiersTable) SpellSpeed(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterSpellSpeed)
}

func (t *ModifiersTable) Points(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterPoints)
}

func (t *ModifiersTable) Invisibility(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterInvisibility)
}

func (t *ModifiersTable) Quality(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterQuality)
}

func (t *ModifiersTable) Conditions(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterConditions)
}

func (t *ModifiersTable) Resistance(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterResistance)
}

func (t *ModifiersTable) NumberOfSituations(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterNumberOfSituations)
}

func (t *ModifiersTable) Threshold(c codes.Modifier) *param.CastingParameter {
	return t.parameter(c, codes.ModifierParameterThreshold)
}

func (t *ModifiersTable) Forms(c codes.Modifier) ([]codes.Form, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.forms), nil
}

func (t *ModifiersTable) SpellTraitCodes(c codes.Modifier) ([]codes.SpellTrait, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.spellTraits), nil
}

func (t *ModifiersTable) Profiles(c codes.Modifier) ([]codes.Profile, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.profiles), nil
}

func (t *ModifiersTable) FormulaCodes(c codes.Modifier) ([]codes.Formula, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.formulas), nil
}

func (t *ModifiersTable) ParentModifierCodes(c codes.Modifier) ([]codes.Modifier, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.parents), nil
}

func (t *ModifiersTable) ChildModifierCodes(c codes.Modifier) ([]codes.Modifier, error) {
	row, err := t.known(c)
	if err != nil {
		return nil, err
	}
	return clone(row.children), nil
}
