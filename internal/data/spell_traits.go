package data

import (
	"fmt"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
)

type spellTraitRecord struct {
	DifficultyChange string   `yaml:"difficulty_change"`
	Trap             []string `yaml:"trap"`
}

type spellTraitRow struct {
	difficultyChange *param.DifficultyChange
	trap             *param.Trap
}

// SpellTraitsTable implements spell.SpellTraitsTable. It holds a row for
// every spell trait code.
type SpellTraitsTable struct {
	rows map[codes.SpellTrait]*spellTraitRow
}

var _ spell.SpellTraitsTable = (*SpellTraitsTable)(nil)

func newSpellTraitsTable(records map[string]spellTraitRecord) (*SpellTraitsTable, error) {
	rows := make(map[codes.SpellTrait]*spellTraitRow, len(records))
	for token, rec := range records {
		code, err := codes.ParseSpellTrait(token)
		if err != nil {
			return nil, err
		}
		change, err := param.NewDifficultyChange(rec.DifficultyChange)
		if err != nil {
			return nil, fmt.Errorf("%w: spell trait %s: %w", ErrInvalidRow, code, err)
		}
		row := &spellTraitRow{difficultyChange: change}
		if len(rec.Trap) > 0 {
			if row.trap, err = param.NewTrap(rec.Trap); err != nil {
				return nil, fmt.Errorf("%w: spell trait %s: %w", ErrInvalidRow, code, err)
			}
		}
		rows[code] = row
	}
	for _, code := range codes.AllSpellTraits() {
		if _, ok := rows[code]; !ok {
			return nil, fmt.Errorf("%w: spell trait %s", ErrRequiredRowNotFound, code)
		}
	}
	return &SpellTraitsTable{rows: rows}, nil
}

func (t *SpellTraitsTable) DifficultyChange(c codes.SpellTrait) *param.DifficultyChange {
	if row, ok := t.rows[c]; ok {
		return row.difficultyChange
	}
	return nil
}

// Trap is nil for traits without a trap.
func (t *SpellTraitsTable) Trap(c codes.SpellTrait) *param.Trap {
	if row, ok := t.rows[c]; ok {
		return row.trap
	}
	return nil
}
