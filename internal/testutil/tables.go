package testutil

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// FormulaRow описывает строку фейковой таблицы формул.
type FormulaRow struct {
	Realm           *param.Realm
	RealmsAffection *param.RealmsAffection
	Evocation       *param.Evocation
	Difficulty      *param.FormulaDifficulty
	CastingRounds   *param.CastingRounds

	// Параметры, которых нет в map, формулой не используются.
	Parameters map[codes.FormulaParameter]*param.CastingParameter

	Forms       []codes.Form
	Profiles    []codes.Profile
	SpellTraits []codes.SpellTrait
}

// FormulasTable реализует spell.FormulasTable в памяти для unit тестов.
type FormulasTable struct {
	Rows map[codes.Formula]FormulaRow
}

func NewFormulasTable() *FormulasTable {
	return &FormulasTable{Rows: make(map[codes.Formula]FormulaRow)}
}

func (t *FormulasTable) Set(code codes.Formula, row FormulaRow) *FormulasTable {
	t.Rows[code] = row
	return t
}

func (t *FormulasTable) parameter(code codes.Formula, p codes.FormulaParameter) *param.CastingParameter {
	return t.Rows[code].Parameters[p]
}

func (t *FormulasTable) Realm(c codes.Formula) *param.Realm {
	return t.Rows[c].Realm
}

func (t *FormulasTable) RealmsAffection(c codes.Formula) *param.RealmsAffection {
	return t.Rows[c].RealmsAffection
}

func (t *FormulasTable) Evocation(c codes.Formula) *param.Evocation {
	return t.Rows[c].Evocation
}

func (t *FormulasTable) FormulaDifficulty(c codes.Formula) *param.FormulaDifficulty {
	return t.Rows[c].Difficulty
}

func (t *FormulasTable) CastingRounds(c codes.Formula) *param.CastingRounds {
	return t.Rows[c].CastingRounds
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

func (t *FormulasTable) Forms(c codes.Formula) []codes.Form {
	return t.Rows[c].Forms
}

func (t *FormulasTable) Profiles(c codes.Formula) []codes.Profile {
	return t.Rows[c].Profiles
}

func (t *FormulasTable) SpellTraitCodes(c codes.Formula) []codes.SpellTrait {
	return t.Rows[c].SpellTraits
}

// ModifierRow описывает строку фейковой таблицы модификаторов.
type ModifierRow struct {
	Realm            *param.Realm
	RealmsAffection  *param.RealmsAffection
	CastingRounds    *param.CastingRounds
	DifficultyChange *param.DifficultyChange

	Parameters map[codes.ModifierParameter]*param.CastingParameter

	Forms       []codes.Form
	SpellTraits []codes.SpellTrait
	Profiles    []codes.Profile
	Formulas    []codes.Formula
	Parents     []codes.Modifier
	Children    []codes.Modifier
}

// ModifiersTable реализует spell.ModifiersTable в памяти.
// Для кода без строки структурные геттеры возвращают spell.ErrUnknownModifier.
type ModifiersTable struct {
	Rows map[codes.Modifier]ModifierRow
}

func NewModifiersTable() *ModifiersTable {
	return &ModifiersTable{Rows: make(map[codes.Modifier]ModifierRow)}
}

func (t *ModifiersTable) Set(code codes.Modifier, row ModifierRow) *ModifiersTable {
	t.Rows[code] = row
	return t
}

func (t *ModifiersTable) row(c codes.Modifier) (ModifierRow, error) {
	row, ok := t.Rows[c]
	if !ok {
		return ModifierRow{}, fmt.Errorf("%w: %s", spell.ErrUnknownModifier, c)
	}
	return row, nil
}

func (t *ModifiersTable) Known(c codes.Modifier) bool {
	_, ok := t.Rows[c]
	return ok
}

func (t *ModifiersTable) parameter(c codes.Modifier, p codes.ModifierParameter) *param.CastingParameter {
	return t.Rows[c].Parameters[p]
}

func (t *ModifiersTable) Realm(c codes.Modifier) *param.Realm {
	return t.Rows[c].Realm
}

func (t *ModifiersTable) RealmsAffection(c codes.Modifier) *param.RealmsAffection {
	return t.Rows[c].RealmsAffection
}

func (t *ModifiersTable) CastingRounds(c codes.Modifier) *param.CastingRounds {
	return t.Rows[c].CastingRounds
}

func (t *ModifiersTable) DifficultyChange(c codes.Modifier) *param.DifficultyChange {
	return t.Rows[c].DifficultyChange
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
	row, err := t.row(c)
	return row.Forms, err
}

func (t *ModifiersTable) SpellTraitCodes(c codes.Modifier) ([]codes.SpellTrait, error) {
	row, err := t.row(c)
	return row.SpellTraits, err
}

func (t *ModifiersTable) Profiles(c codes.Modifier) ([]codes.Profile, error) {
	row, err := t.row(c)
	return row.Profiles, err
}

func (t *ModifiersTable) FormulaCodes(c codes.Modifier) ([]codes.Formula, error) {
	row, err := t.row(c)
	return row.Formulas, err
}

func (t *ModifiersTable) ParentModifierCodes(c codes.Modifier) ([]codes.Modifier, error) {
	row, err := t.row(c)
	return row.Parents, err
}

func (t *ModifiersTable) ChildModifierCodes(c codes.Modifier) ([]codes.Modifier, error) {
	row, err := t.row(c)
	return row.Children, err
}

// SpellTraitRow описывает строку фейковой таблицы свойств заклинаний.
type SpellTraitRow struct {
	DifficultyChange *param.DifficultyChange
	Trap             *param.Trap
}

// SpellTraitsTable реализует spell.SpellTraitsTable в памяти.
type SpellTraitsTable struct {
	Rows map[codes.SpellTrait]SpellTraitRow
}

func NewSpellTraitsTable() *SpellTraitsTable {
	return &SpellTraitsTable{Rows: make(map[codes.SpellTrait]SpellTraitRow)}
}

func (t *SpellTraitsTable) Set(code codes.SpellTrait, row SpellTraitRow) *SpellTraitsTable {
	t.Rows[code] = row
	return t
}

func (t *SpellTraitsTable) DifficultyChange(c codes.SpellTrait) *param.DifficultyChange {
	return t.Rows[c].DifficultyChange
}

func (t *SpellTraitsTable) Trap(c codes.SpellTrait) *param.Trap {
	return t.Rows[c].Trap
}

var (
	_ spell.FormulasTable    = (*FormulasTable)(nil)
	_ spell.ModifiersTable   = (*ModifiersTable)(nil)
	_ spell.SpellTraitsTable = (*SpellTraitsTable)(nil)
)
