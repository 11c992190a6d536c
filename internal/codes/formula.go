package codes

// Formula identifies a theurgist formula (spell template).
type Formula string

const (
	FormulaBarrier                  Formula = "barrier"
	FormulaSmoke                    Formula = "smoke"
	FormulaIllusion                 Formula = "illusion"
	FormulaMetamorphosis            Formula = "metamorphosis"
	FormulaFire                     Formula = "fire"
	FormulaPortal                   Formula = "portal"
	FormulaLight                    Formula = "light"
	FormulaFlowOfTime               Formula = "flow_of_time"
	FormulaTsunamiFromClayAndStones Formula = "tsunami_from_clay_and_stones"
	FormulaHit                      Formula = "hit"
	FormulaLock                     Formula = "lock"
	FormulaDischarge                Formula = "discharge"
)

var formulas = newCatalog("formula",
	FormulaBarrier,
	FormulaSmoke,
	FormulaIllusion,
	FormulaMetamorphosis,
	FormulaFire,
	FormulaPortal,
	FormulaLight,
	FormulaFlowOfTime,
	FormulaTsunamiFromClayAndStones,
	FormulaHit,
	FormulaLock,
	FormulaDischarge,
)

// ParseFormula returns the formula code for token.
func ParseFormula(token string) (Formula, error) { return formulas.parse(token) }

// FormulaValues lists every formula token in catalog order.
func FormulaValues() []string { return formulas.strings() }

// AllFormulas lists every formula code in catalog order.
func AllFormulas() []Formula { return formulas.all() }

func (f Formula) Valid() bool    { return formulas.contains(f) }
func (f Formula) String() string { return string(f) }
