package codes

// SpellTrait identifies a trait of a cast spell, e.g. "active".
type SpellTrait string

const (
	SpellTraitActive        SpellTrait = "active"
	SpellTraitInvisible     SpellTrait = "invisible"
	SpellTraitSilent        SpellTrait = "silent"
	SpellTraitOdorless      SpellTrait = "odorless"
	SpellTraitCyclic        SpellTrait = "cyclic"
	SpellTraitMemory        SpellTrait = "memory"
	SpellTraitDeformation   SpellTrait = "deformation"
	SpellTraitBidirectional SpellTrait = "bidirectional"
	SpellTraitUndead        SpellTrait = "undead"
	SpellTraitInanimate     SpellTrait = "inanimate"
	SpellTraitNatureChange  SpellTrait = "nature_change"
	SpellTraitNoSmoke       SpellTrait = "no_smoke"
	SpellTraitTransparent   SpellTrait = "transparent"
	SpellTraitRelease       SpellTrait = "release"
)

var spellTraits = newCatalog("spell trait",
	SpellTraitActive,
	SpellTraitInvisible,
	SpellTraitSilent,
	SpellTraitOdorless,
	SpellTraitCyclic,
	SpellTraitMemory,
	SpellTraitDeformation,
	SpellTraitBidirectional,
	SpellTraitUndead,
	SpellTraitInanimate,
	SpellTraitNatureChange,
	SpellTraitNoSmoke,
	SpellTraitTransparent,
	SpellTraitRelease,
)

func ParseSpellTrait(token string) (SpellTrait, error) { return spellTraits.parse(token) }
func SpellTraitValues() []string                       { return spellTraits.strings() }
func AllSpellTraits() []SpellTrait                     { return spellTraits.all() }

func (s SpellTrait) Valid() bool    { return spellTraits.contains(s) }
func (s SpellTrait) String() string { return string(s) }
