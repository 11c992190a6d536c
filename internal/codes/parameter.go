package codes

// FormulaParameter is a formula casting parameter a caster may invest into.
type FormulaParameter string

const (
	FormulaParameterRadius         FormulaParameter = "radius"
	FormulaParameterDuration       FormulaParameter = "duration"
	FormulaParameterPower          FormulaParameter = "power"
	FormulaParameterAttack         FormulaParameter = "attack"
	FormulaParameterSizeChange     FormulaParameter = "size_change"
	FormulaParameterDetailLevel    FormulaParameter = "detail_level"
	FormulaParameterBrightness     FormulaParameter = "brightness"
	FormulaParameterSpellSpeed     FormulaParameter = "spell_speed"
	FormulaParameterEpicenterShift FormulaParameter = "epicenter_shift"
)

var formulaParameters = newCatalog("formula parameter",
	FormulaParameterRadius,
	FormulaParameterDuration,
	FormulaParameterPower,
	FormulaParameterAttack,
	FormulaParameterSizeChange,
	FormulaParameterDetailLevel,
	FormulaParameterBrightness,
	FormulaParameterSpellSpeed,
	FormulaParameterEpicenterShift,
)

func ParseFormulaParameter(token string) (FormulaParameter, error) {
	return formulaParameters.parse(token)
}
func FormulaParameterValues() []string         { return formulaParameters.strings() }
func AllFormulaParameters() []FormulaParameter { return formulaParameters.all() }

func (p FormulaParameter) Valid() bool    { return formulaParameters.contains(p) }
func (p FormulaParameter) String() string { return string(p) }

// ModifierParameter is a modifier casting parameter a caster may invest into.
type ModifierParameter string

const (
	ModifierParameterRadius             ModifierParameter = "radius"
	ModifierParameterEpicenterShift     ModifierParameter = "epicenter_shift"
	ModifierParameterPower              ModifierParameter = "power"
	ModifierParameterAttack             ModifierParameter = "attack"
	ModifierParameterGrafts             ModifierParameter = "grafts"
	ModifierParameterSpellSpeed         ModifierParameter = "spell_speed"
	ModifierParameterPoints             ModifierParameter = "points"
	ModifierParameterInvisibility       ModifierParameter = "invisibility"
	ModifierParameterQuality            ModifierParameter = "quality"
	ModifierParameterConditions         ModifierParameter = "conditions"
	ModifierParameterResistance         ModifierParameter = "resistance"
	ModifierParameterNumberOfSituations ModifierParameter = "number_of_situations"
	ModifierParameterThreshold          ModifierParameter = "threshold"
)

var modifierParameters = newCatalog("modifier parameter",
	ModifierParameterRadius,
	ModifierParameterEpicenterShift,
	ModifierParameterPower,
	ModifierParameterAttack,
	ModifierParameterGrafts,
	ModifierParameterSpellSpeed,
	ModifierParameterPoints,
	ModifierParameterInvisibility,
	ModifierParameterQuality,
	ModifierParameterConditions,
	ModifierParameterResistance,
	ModifierParameterNumberOfSituations,
	ModifierParameterThreshold,
)

func ParseModifierParameter(token string) (ModifierParameter, error) {
	return modifierParameters.parse(token)
}
func ModifierParameterValues() []string          { return modifierParameters.strings() }
func AllModifierParameters() []ModifierParameter { return modifierParameters.all() }

func (p ModifierParameter) Valid() bool    { return modifierParameters.contains(p) }
func (p ModifierParameter) String() string { return string(p) }
