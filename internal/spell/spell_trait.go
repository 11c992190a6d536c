package spell

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// SpellTrait is a trait of a cast spell, optionally carrying a trap.
type SpellTrait struct {
	code       codes.SpellTrait
	table      SpellTraitsTable
	trapChange int
}

// NewSpellTrait builds a trait. trapChange 0 leaves the trap unchanged, as
// the table states it. A non-zero trapChange is the wanted trap value and
// requires the trait to have a trap.
func NewSpellTrait(code codes.SpellTrait, table SpellTraitsTable, trapChange int) (*SpellTrait, error) {
	if trapChange != 0 && table.Trap(code) == nil {
		return nil, fmt.Errorf("%w: spell trait %s has no trap, change %d is not applicable",
			ErrCanNotChangeNotExistingTrap, code, trapChange)
	}
	return &SpellTrait{code: code, table: table, trapChange: trapChange}, nil
}

func (s *SpellTrait) Code() codes.SpellTrait { return s.code }
func (s *SpellTrait) TrapChange() int        { return s.trapChange }

// BaseTrap is the trap as the table states it, nil when the trait has none.
func (s *SpellTrait) BaseTrap() *param.Trap {
	return s.table.Trap(s.code)
}

// CurrentTrap is the base trap raised or lowered to the wanted value.
// Without a wanted value it is the base trap itself.
func (s *SpellTrait) CurrentTrap() *param.Trap {
	base := s.BaseTrap()
	if base == nil || s.trapChange == 0 {
		return base
	}
	return base.WithAddition(s.trapChange - base.DefaultValue())
}

// DifficultyChange is the trait's own change plus the difficulty paid for
// moving its trap.
func (s *SpellTrait) DifficultyChange() *param.DifficultyChange {
	change := s.table.DifficultyChange(s.code)
	trap := s.CurrentTrap()
	if trap == nil {
		return change
	}
	return change.Add(trap.AdditionByDifficulty().CurrentDifficultyIncrement())
}

func (s *SpellTrait) String() string { return string(s.code) }
