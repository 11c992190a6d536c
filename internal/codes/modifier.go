package codes

// Modifier identifies an optional effect attached to a formula.
type Modifier string

const (
	ModifierColor               Modifier = "color"
	ModifierGate                Modifier = "gate"
	ModifierExplosion           Modifier = "explosion"
	ModifierFilter              Modifier = "filter"
	ModifierWatcher             Modifier = "watcher"
	ModifierThunder             Modifier = "thunder"
	ModifierInteractiveIllusion Modifier = "interactive_illusion"
	ModifierHammer              Modifier = "hammer"
	ModifierCamouflage          Modifier = "camouflage"
	ModifierInvisibility        Modifier = "invisibility"
	ModifierMovement            Modifier = "movement"
	ModifierBreach              Modifier = "breach"
	ModifierRecurrence          Modifier = "recurrence"
	ModifierStepToFuture        Modifier = "step_to_future"
	ModifierStepToPast          Modifier = "step_to_past"
	ModifierTransposition       Modifier = "transposition"
	ModifierRelease             Modifier = "release"
	ModifierFragrance           Modifier = "fragrance"
)

var modifiers = newCatalog("modifier",
	ModifierColor,
	ModifierGate,
	ModifierExplosion,
	ModifierFilter,
	ModifierWatcher,
	ModifierThunder,
	ModifierInteractiveIllusion,
	ModifierHammer,
	ModifierCamouflage,
	ModifierInvisibility,
	ModifierMovement,
	ModifierBreach,
	ModifierRecurrence,
	ModifierStepToFuture,
	ModifierStepToPast,
	ModifierTransposition,
	ModifierRelease,
	ModifierFragrance,
)

func ParseModifier(token string) (Modifier, error) { return modifiers.parse(token) }
func ModifierValues() []string                     { return modifiers.strings() }
func AllModifiers() []Modifier                     { return modifiers.all() }

func (m Modifier) Valid() bool    { return modifiers.contains(m) }
func (m Modifier) String() string { return string(m) }
