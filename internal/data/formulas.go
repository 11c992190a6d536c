package data

import (
	"errors"
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// formulaRecord хранит строку formulas.yaml как есть, ячейки ещё не проверены.
type formulaRecord struct {
	Realm           string   `yaml:"realm"`
	RealmsAffection []string `yaml:"realms_affection"`
	Evocation       []string `yaml:"evocation"`
	Difficulty      []string `yaml:"difficulty"`
	CastingRounds   []string `yaml:"casting_rounds"`

	Radius         []string `yaml:"radius"`
	Duration       []string `yaml:"duration"`
	Power          []string `yaml:"power"`
	Attack         []string `yaml:"attack"`
	SizeChange     []string `yaml:"size_change"`
	DetailLevel    []string `yaml:"detail_level"`
	Brightness     []string `yaml:"brightness"`
	SpellSpeed     []string `yaml:"spell_speed"`
	EpicenterShift []string `yaml:"epicenter_shift"`

	Forms       []string `yaml:"forms"`
	Profiles    []string `yaml:"profiles"`
	SpellTraits []string `yaml:"spell_traits"`
}

type formulaRow struct {
	realm           *param.Realm
	realmsAffection *param.RealmsAffection
	evocation       *param.Evocation
	difficulty      *param.FormulaDifficulty
	castingRounds   *param.CastingRounds
	parameters      map[codes.FormulaParameter]*param.CastingParameter
	forms           []codes.Form
	profiles        []codes.Profile
	spellTraits     []codes.SpellTrait
}

// FormulasTable implements spell.FormulasTable. It holds a row for every
// formula code.
type FormulasTable struct {
	rows map[codes.Formula]*formulaRow
}

var _ spell.FormulasTable = (*FormulasTable)(nil)

func newFormulasTable(records map[string]formulaRecord) (*FormulasTable, error) {
	rows := make(map[codes.Formula]*formulaRow, len(records))
	for token, rec := range records {
		code, err := codes.ParseFormula(token)
		if err != nil {
			return nil, err
		}
		row, err := parseFormulaRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: formula %s: %w", ErrInvalidRow, code, err)
		}
		rows[code] = row
	}
	for _, code := range codes.AllFormulas() {
		if _, ok := rows[code]; !ok {
			return nil, fmt.Errorf("%w: formula %s", ErrRequiredRowNotFound, code)
		}
	}
	return &FormulasTable{rows: rows}, nil
}

func parseFormulaRecord(rec formulaRecord) (*formulaRow, error) {
	var (
		row = &formulaRow{parameters: make(map[codes.FormulaParameter]*param.CastingParameter)}
		err error
	)
	if row.realm, err = param.NewRealm(rec.Realm); err != nil {
		return nil, err
	}
	if row.realmsAffection, err = param.NewRealmsAffection(rec.RealmsAffection); err != nil {
		return nil, err
	}
	if row.evocation, err = param.NewEvocation(rec.Evocation); err != nil {
		return nil, err
	}
	if row.difficulty, err = param.NewFormulaDifficulty(rec.Difficulty); err != nil {
		return nil, err
	}
	if row.castingRounds, err = param.NewCastingRounds(rec.CastingRounds); err != nil {
		return nil, err
	}

	cells := map[codes.FormulaParameter][]string{
		codes.FormulaParameterRadius:         rec.Radius,
		codes.FormulaParameterDuration:       rec.Duration,
		codes.FormulaParameterPower:          rec.Power,
		codes.FormulaParameterAttack:         rec.Attack,
		codes.FormulaParameterSizeChange:     rec.SizeChange,
		codes.FormulaParameterDetailLevel:    rec.DetailLevel,
		codes.FormulaParameterBrightness:     rec.Brightness,
		codes.FormulaParameterSpellSpeed:     rec.SpellSpeed,
		codes.FormulaParameterEpicenterShift: rec.EpicenterShift,
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
	if row.parameters[codes.FormulaParameterDuration] == nil {
		return nil, errors.New("duration is required")
	}

	if row.forms, err = parseCodes(rec.Forms, codes.ParseForm); err != nil {
		return nil, err
	}
	if row.profiles, err = parseCodes(rec.Profiles, codes.ParseProfile); err != nil {
		return nil, err
	}
	if row.spellTraits, err = parseCodes(rec.SpellTraits, codes.ParseSpellTrait); err != nil {
		return nil, err
	}
	return row, nil
}

func (t *FormulasTable) row(c codes.Formula) *formulaRow {
	if row, ok := t.rows[c]; ok {
		return row
	}
	return &formulaRow{}
}

func (t *FormulasTable) parameter(c codes.Formula, p codes.FormulaParameter) *param.CastingParameter {
	return t.row(c).parameters[p]
}

func (t *FormulasTable) Realm(c codes.Formula) *param.Realm { return t.row(c).realm }

func (t *FormulasTable) RealmsAffection(c codes.Formula) *param.RealmsAffection {
	return t.row(c).realmsAffection
}

func (t *FormulasTable) Evocation(c codes.Formula) *param.Evocation { return t.row(c).evocation }

func (t *FormulasTable) FormulaDifficulty(c codes.Formula) *param.FormulaDifficulty {
	return t.row(c).difficulty
}

func (t *FormulasTable) CastingRounds(c codes.Formula) *param.CastingRounds {
	return t.row(c).castingRounds
}

func (t *FormulasTable) Radius(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterRadius)
}

func (t *FormulasTable) Duration(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterDuration)
}

func (t *FormulasTable) Power(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterPower)
}

func (t *FormulasTable) Attack(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterAttack)
}

func (t *FormulasTable) SizeChange(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterSizeChange)
}

func (t *FormulasTable) DetailLevel(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterDetailLevel)
}

func (t *FormulasTable) Brightness(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterBrightness)
}

func (t *FormulasTable) SpellSpeed(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterSpellSpeed)
}

func (t *FormulasTable) EpicenterShift(c codes.Formula) *param.CastingParameter {
	return t.parameter(c, codes.FormulaParameterEpicenterShift)
}

// Forms returns a copy, as do Profiles and SpellTraitCodes.
func (t *FormulasTable) Forms(c codes.Formula) []codes.Form {
	return clone(t.row(c).forms)
}

func (t *FormulasTable) Profiles(c codes.Formula) []codes.Profile {
	return clone(t.row(c).profiles)
}

func (t *FormulasTable) SpellTraitCodes(c codes.Formula) []codes.SpellTrait {
	return clone(t.row(c).spellTraits)
}

// parseCodes validates every token of a relation cell.
func parseCodes[T any](tokens []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(tokens))
	for _, token := range tokens {
		v, err := parse(token)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
