package spell

import (
	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// FormulasTable provides the base parameters of every formula.
//
// Optional parameters a formula does not use are nil. Duration, realm,
// difficulty, casting rounds and evocation are always present.
type FormulasTable interface {
	Realm(codes.Formula) *param.Realm
	RealmsAffection(codes.Formula) *param.RealmsAffection
	Evocation(codes.Formula) *param.Evocation
	FormulaDifficulty(codes.Formula) *param.FormulaDifficulty
	CastingRounds(codes.Formula) *param.CastingRounds

	Radius(codes.Formula) *param.CastingParameter
	Duration(codes.Formula) *param.CastingParameter
	Power(codes.Formula) *param.CastingParameter
	Attack(codes.Formula) *param.CastingParameter
	SizeChange(codes.Formula) *param.CastingParameter
	DetailLevel(codes.Formula) *param.CastingParameter
	Brightness(codes.Formula) *param.CastingParameter
	SpellSpeed(codes.Formula) *param.CastingParameter
	EpicenterShift(codes.Formula) *param.CastingParameter

	Forms(codes.Formula) []codes.Form
	Profiles(codes.Formula) []codes.Profile
	SpellTraitCodes(codes.Formula) []codes.SpellTrait
}

// ModifiersTable provides the parameters and relations of every modifier.
//
// Relation lookups fail with ErrUnknownModifier when the table has no row
// for the code at all; a known modifier without relations yields an empty
// slice.
type ModifiersTable interface {
	// Known reports whether the table has a row for the modifier.
	Known(codes.Modifier) bool

	Realm(codes.Modifier) *param.Realm
	RealmsAffection(codes.Modifier) *param.RealmsAffection
	CastingRounds(codes.Modifier) *param.CastingRounds
	DifficultyChange(codes.Modifier) *param.DifficultyChange

	Radius(codes.Modifier) *param.CastingParameter
	EpicenterShift(codes.Modifier) *param.CastingParameter
	Power(codes.Modifier) *param.CastingParameter
	Attack(codes.Modifier) *param.CastingParameter
	Grafts(codes.Modifier) *param.CastingParameter
	SpellSpeed(codes.Modifier) *param.CastingParameter
	Points(codes.Modifier) *param.CastingParameter
	Invisibility(codes.Modifier) *param.CastingParameter
	Quality(codes.Modifier) *param.CastingParameter
	Conditions(codes.Modifier) *param.CastingParameter
	Resistance(codes.Modifier) *param.CastingParameter
	NumberOfSituations(codes.Modifier) *param.CastingParameter
	Threshold(codes.Modifier) *param.CastingParameter

	Forms(codes.Modifier) ([]codes.Form, error)
	SpellTraitCodes(codes.Modifier) ([]codes.SpellTrait, error)
	Profiles(codes.Modifier) ([]codes.Profile, error)
	FormulaCodes(codes.Modifier) ([]codes.Formula, error)
	ParentModifierCodes(codes.Modifier) ([]codes.Modifier, error)
	ChildModifierCodes(codes.Modifier) ([]codes.Modifier, error)
}

// SpellTraitsTable provides the difficulty change and optional trap of
// every spell trait.
type SpellTraitsTable interface {
	DifficultyChange(codes.SpellTrait) *param.DifficultyChange
	Trap(codes.SpellTrait) *param.Trap
}
