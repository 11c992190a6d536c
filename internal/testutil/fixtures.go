package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell/param"
)

// Parameter строит параметр из сырых ячеек таблицы, тест падает при ошибке.
func Parameter(t testing.TB, kind param.Kind, value, notation string) *param.CastingParameter {
	t.Helper()

	p, err := param.NewCastingParameter(kind, []string{value, notation})
	require.NoError(t, err)
	return p
}

func Trap(t testing.TB, value, notation string, property codes.Property) *param.Trap {
	t.Helper()

	trap, err := param.NewTrap([]string{value, notation, string(property)})
	require.NoError(t, err)
	return trap
}

func Realm(t testing.TB, value string) *param.Realm {
	t.Helper()

	r, err := param.NewRealm(value)
	require.NoError(t, err)
	return r
}

func DifficultyChange(t testing.TB, value string) *param.DifficultyChange {
	t.Helper()

	d, err := param.NewDifficultyChange(value)
	require.NoError(t, err)
	return d
}

func FormulaDifficulty(t testing.TB, minimal, maximal, notation string) *param.FormulaDifficulty {
	t.Helper()

	d, err := param.NewFormulaDifficulty([]string{minimal, maximal, notation})
	require.NoError(t, err)
	return d
}

func RealmsAffection(t testing.TB, value string, period codes.AffectionPeriod) *param.RealmsAffection {
	t.Helper()

	a, err := param.NewRealmsAffection([]string{value, string(period)})
	require.NoError(t, err)
	return a
}

func CastingRounds(t testing.TB, value string) *param.CastingRounds {
	t.Helper()

	c, err := param.NewCastingRounds([]string{value})
	require.NoError(t, err)
	return c
}

func Evocation(t testing.TB, value string) *param.Evocation {
	t.Helper()

	e, err := param.NewEvocation([]string{value})
	require.NoError(t, err)
	return e
}

// MinimalFormulaRow возвращает строку с обязательными колонками и одной длительностью.
// Остальные параметры тесты добавляют сами.
func MinimalFormulaRow(t testing.TB) FormulaRow {
	t.Helper()

	return FormulaRow{
		Realm:           Realm(t, "1"),
		RealmsAffection: RealmsAffection(t, "-1", codes.AffectionPeriodDaily),
		Evocation:       Evocation(t, "10"),
		Difficulty:      FormulaDifficulty(t, "5", "10", "1=2"),
		CastingRounds:   CastingRounds(t, "1"),
		Parameters: map[codes.FormulaParameter]*param.CastingParameter{
			codes.FormulaParameterDuration: Parameter(t, param.KindDuration, "10", "1=1"),
		},
	}
}
