package codes

// Property is a character property a trap is tested against.
type Property string

const (
	PropertyStrength     Property = "strength"
	PropertyAgility      Property = "agility"
	PropertyKnack        Property = "knack"
	PropertyWill         Property = "will"
	PropertyIntelligence Property = "intelligence"
	PropertyCharisma     Property = "charisma"
	PropertyEndurance    Property = "endurance"
	PropertyToughness    Property = "toughness"
	PropertySenses       Property = "senses"
	PropertySpeed        Property = "speed"
	PropertyBeauty       Property = "beauty"
	PropertyDignity      Property = "dignity"
)

var properties = newCatalog("property",
	PropertyStrength,
	PropertyAgility,
	PropertyKnack,
	PropertyWill,
	PropertyIntelligence,
	PropertyCharisma,
	PropertyEndurance,
	PropertyToughness,
	PropertySenses,
	PropertySpeed,
	PropertyBeauty,
	PropertyDignity,
)

func ParseProperty(token string) (Property, error) { return properties.parse(token) }
func PropertyValues() []string                     { return properties.strings() }

func (p Property) Valid() bool    { return properties.contains(p) }
func (p Property) String() string { return string(p) }

// AffectionPeriod is how often a realms affection hits the caster.
type AffectionPeriod string

const (
	AffectionPeriodDaily   AffectionPeriod = "daily"
	AffectionPeriodMonthly AffectionPeriod = "monthly"
	AffectionPeriodYearly  AffectionPeriod = "yearly"
	AffectionPeriodLife    AffectionPeriod = "life"
)

var affectionPeriods = newCatalog("affection period",
	AffectionPeriodDaily,
	AffectionPeriodMonthly,
	AffectionPeriodYearly,
	AffectionPeriodLife,
)

func ParseAffectionPeriod(token string) (AffectionPeriod, error) {
	return affectionPeriods.parse(token)
}
func AffectionPeriodValues() []string { return affectionPeriods.strings() }

func (a AffectionPeriod) Valid() bool    { return affectionPeriods.contains(a) }
func (a AffectionPeriod) String() string { return string(a) }

// Form is a manifestation form of a formula or modifier.
type Form string

const (
	FormDirect      Form = "direct"
	FormIndirect    Form = "indirect"
	FormVolume      Form = "volume"
	FormPlanar      Form = "planar"
	FormBeam        Form = "beam"
	FormTangible    Form = "tangible"
	FormIntangible  Form = "intangible"
	FormVisible     Form = "visible"
	FormInvisible   Form = "invisible"
	FormOpaque      Form = "opaque"
	FormTransparent Form = "transparent"
)

var forms = newCatalog("form",
	FormDirect,
	FormIndirect,
	FormVolume,
	FormPlanar,
	FormBeam,
	FormTangible,
	FormIntangible,
	FormVisible,
	FormInvisible,
	FormOpaque,
	FormTransparent,
)

func ParseForm(token string) (Form, error) { return forms.parse(token) }
func FormValues() []string                 { return forms.strings() }

func (f Form) Valid() bool    { return forms.contains(f) }
func (f Form) String() string { return string(f) }

// Profile is a gendered magical profile (venus/mars) a caster must know.
type Profile string

const (
	ProfileBarrierVenus       Profile = "barrier_venus"
	ProfileBarrierMars        Profile = "barrier_mars"
	ProfileSparkVenus         Profile = "spark_venus"
	ProfileSparkMars          Profile = "spark_mars"
	ProfileReleaseVenus       Profile = "release_venus"
	ProfileReleaseMars        Profile = "release_mars"
	ProfileScentVenus         Profile = "scent_venus"
	ProfileScentMars          Profile = "scent_mars"
	ProfileIllusionVenus      Profile = "illusion_venus"
	ProfileIllusionMars       Profile = "illusion_mars"
	ProfileReceptorVenus      Profile = "receptor_venus"
	ProfileReceptorMars       Profile = "receptor_mars"
	ProfileBreachVenus        Profile = "breach_venus"
	ProfileBreachMars         Profile = "breach_mars"
	ProfileFireVenus          Profile = "fire_venus"
	ProfileFireMars           Profile = "fire_mars"
	ProfileGateVenus          Profile = "gate_venus"
	ProfileGateMars           Profile = "gate_mars"
	ProfileMovementVenus      Profile = "movement_venus"
	ProfileMovementMars       Profile = "movement_mars"
	ProfileTranspositionVenus Profile = "transposition_venus"
	ProfileTranspositionMars  Profile = "transposition_mars"
	ProfileTimeVenus          Profile = "time_venus"
	ProfileTimeMars           Profile = "time_mars"
)

var profiles = newCatalog("profile",
	ProfileBarrierVenus,
	ProfileBarrierMars,
	ProfileSparkVenus,
	ProfileSparkMars,
	ProfileReleaseVenus,
	ProfileReleaseMars,
	ProfileScentVenus,
	ProfileScentMars,
	ProfileIllusionVenus,
	ProfileIllusionMars,
	ProfileReceptorVenus,
	ProfileReceptorMars,
	ProfileBreachVenus,
	ProfileBreachMars,
	ProfileFireVenus,
	ProfileFireMars,
	ProfileGateVenus,
	ProfileGateMars,
	ProfileMovementVenus,
	ProfileMovementMars,
	ProfileTranspositionVenus,
	ProfileTranspositionMars,
	ProfileTimeVenus,
	ProfileTimeMars,
)

func ParseProfile(token string) (Profile, error) { return profiles.parse(token) }
func ProfileValues() []string                    { return profiles.strings() }

func (p Profile) Valid() bool    { return profiles.contains(p) }
func (p Profile) String() string { return string(p) }
