package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/measure"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
	"github.com/udisondev/theurgist/internal/testutil"
)

func kindOf(code codes.FormulaParameter) param.Kind { return param.Kind(code) }

func newFormula(t *testing.T, table spell.FormulasTable, additions map[string]any, modifiers, traits []any) *spell.Formula {
	t.Helper()

	f, err := spell.NewFormula(codes.FormulaPortal, table, measure.DistanceTable{}, additions, modifiers, traits)
	require.NoError(t, err)
	return f
}

func TestFormula_CurrentParametersWithoutAdditions(t *testing.T) {
	for _, code := range codes.AllFormulaParameters() {
		t.Run(string(code)+" used", func(t *testing.T) {
			row := testutil.MinimalFormulaRow(t)
			base := testutil.Parameter(t, kindOf(code), "7", "2=3")
			row.Parameters[code] = base
			table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

			f := newFormula(t, table, nil, nil, nil)

			current := f.CurrentParameter(code)
			require.NotNil(t, current)
			assert.Same(t, base, current)
			assert.Equal(t, 7, current.Value())
			assert.Equal(t, 0, f.Addition(code))
		})

		if code == codes.FormulaParameterDuration {
			continue
		}
		t.Run(string(code)+" unused", func(t *testing.T) {
			table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))

			f := newFormula(t, table, nil, nil, nil)

			assert.Nil(t, f.CurrentParameter(code))
		})
	}

	t.Run("duration is always present", func(t *testing.T) {
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))

		f := newFormula(t, table, nil, nil, nil)

		require.NotNil(t, f.CurrentDuration())
		assert.Equal(t, 10, f.CurrentDuration().Value())
	})
}

func TestFormula_NamedGettersMatchCurrentParameter(t *testing.T) {
	row := testutil.MinimalFormulaRow(t)
	for _, code := range codes.AllFormulaParameters() {
		row.Parameters[code] = testutil.Parameter(t, kindOf(code), "4", "1")
	}
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)
	f := newFormula(t, table, map[string]any{"power": 2, "brightness": "3"}, nil, nil)

	getters := map[codes.FormulaParameter]func() *param.CastingParameter{
		codes.FormulaParameterRadius:         f.RadiusWithAddition,
		codes.FormulaParameterDuration:       f.CurrentDuration,
		codes.FormulaParameterPower:          f.CurrentPower,
		codes.FormulaParameterAttack:         f.CurrentAttack,
		codes.FormulaParameterSizeChange:     f.CurrentSizeChange,
		codes.FormulaParameterDetailLevel:    f.CurrentDetailLevel,
		codes.FormulaParameterBrightness:     f.CurrentBrightness,
		codes.FormulaParameterSpellSpeed:     f.CurrentSpellSpeed,
		codes.FormulaParameterEpicenterShift: f.CurrentEpicenterShift,
	}
	require.Len(t, getters, len(codes.AllFormulaParameters()))

	for code, get := range getters {
		assert.Equal(t, f.CurrentParameter(code).Value(), get().Value(), "parameter %s", code)
	}
	assert.Equal(t, 6, f.CurrentPower().Value())
	assert.Equal(t, 7, f.CurrentBrightness().Value())
	assert.Equal(t, 4, f.CurrentAttack().Value())
}

func TestFormula_Additions(t *testing.T) {
	tests := []struct {
		name      string
		additions map[string]any
		wantErr   error
		contains  []string
	}{
		{
			name:      "integer",
			additions: map[string]any{"duration": 3},
		},
		{
			name:      "integer-like string",
			additions: map[string]any{"duration": "5.000"},
		},
		{
			name:      "float without fraction",
			additions: map[string]any{"duration": 2.0},
		},
		{
			name:      "zero for unused parameter",
			additions: map[string]any{"radius": 0},
		},
		{
			name:      "not an integer",
			additions: map[string]any{"duration": "much"},
			wantErr:   spell.ErrInvalidParameterAddition,
			contains:  []string{"much", "duration"},
		},
		{
			name:      "fractional float",
			additions: map[string]any{"duration": 1.5},
			wantErr:   spell.ErrInvalidParameterAddition,
			contains:  []string{"1.5"},
		},
		{
			name:      "non-zero for unused parameter",
			additions: map[string]any{"radius": 5},
			wantErr:   spell.ErrUselessAdditionForUnusedParameter,
			contains:  []string{"radius", "5"},
		},
		{
			name:      "unknown parameter",
			additions: map[string]any{"duration": 1, "goodness": 2, "beauty": 0},
			wantErr:   spell.ErrUnknownParameter,
			contains:  []string{"[beauty, goodness]", "duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))

			f, err := spell.NewFormula(codes.FormulaPortal, table, measure.DistanceTable{}, tt.additions, nil, nil)

			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, f)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestFormula_AdditionShiftsParameter(t *testing.T) {
	row := testutil.MinimalFormulaRow(t)
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

	f := newFormula(t, table, map[string]any{"duration": int8(4)}, nil, nil)

	assert.Equal(t, 4, f.Addition(codes.FormulaParameterDuration))
	assert.Equal(t, 14, f.CurrentDuration().Value())
	assert.Equal(t, 10, f.CurrentDuration().DefaultValue())
	assert.Equal(t, 10, f.Base(codes.FormulaParameterDuration).Value(), "base stays untouched")
}

func TestFormula_CurrentDifficulty(t *testing.T) {
	t.Run("sums modifiers and spell traits", func(t *testing.T) {
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))
		modifiers := testutil.NewModifiersTable().
			Set(codes.ModifierColor, testutil.ModifierRow{DifficultyChange: testutil.DifficultyChange(t, "123")}).
			Set(codes.ModifierGate, testutil.ModifierRow{DifficultyChange: testutil.DifficultyChange(t, "456")})
		traits := testutil.NewSpellTraitsTable().
			Set(codes.SpellTraitActive, testutil.SpellTraitRow{DifficultyChange: testutil.DifficultyChange(t, "789")}).
			Set(codes.SpellTraitSilent, testutil.SpellTraitRow{DifficultyChange: testutil.DifficultyChange(t, "159")})

		f := newFormula(t, table, nil,
			[]any{mustModifier(t, codes.ModifierColor, modifiers, nil), mustModifier(t, codes.ModifierGate, modifiers, nil)},
			[]any{
				mustSpellTrait(t, codes.SpellTraitActive, traits, 0),
				[]any{mustSpellTrait(t, codes.SpellTraitActive, traits, 0)},
				mustSpellTrait(t, codes.SpellTraitSilent, traits, 0),
			},
		)

		difficulty := f.CurrentDifficulty()
		assert.Equal(t, 123+456+789+789+159, difficulty.Change())
		assert.Equal(t, 5+123+456+789+789+159, difficulty.Value())
		assert.Equal(t, 5, difficulty.Minimal())
		assert.Equal(t, 10, difficulty.Maximal())
	})

	t.Run("pays for own additions", func(t *testing.T) {
		row := testutil.MinimalFormulaRow(t)
		row.Parameters[codes.FormulaParameterPower] = testutil.Parameter(t, param.KindPower, "1", "2=3")
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

		// duration 1=1: +3 costs 3; power 2=3: +4 costs ceil(4*2/3) = 3
		f := newFormula(t, table, map[string]any{"duration": 3, "power": 4}, nil, nil)

		assert.Equal(t, 6, f.CurrentDifficulty().Change())
	})

	t.Run("no change", func(t *testing.T) {
		row := testutil.MinimalFormulaRow(t)
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

		f := newFormula(t, table, nil, nil, nil)

		assert.Equal(t, row.Difficulty.Value(), f.CurrentDifficulty().Value())
		assert.Equal(t, 0, f.CurrentDifficulty().Change())
	})
}

func TestFormula_RequiredRealm(t *testing.T) {
	newTable := func(t *testing.T) *testutil.FormulasTable {
		row := testutil.MinimalFormulaRow(t)
		row.Realm = testutil.Realm(t, "123")
		return testutil.NewFormulasTable().Set(codes.FormulaPortal, row)
	}
	modifiers := testutil.NewModifiersTable().
		Set(codes.ModifierColor, testutil.ModifierRow{Realm: testutil.Realm(t, "122")}).
		Set(codes.ModifierGate, testutil.ModifierRow{Realm: testutil.Realm(t, "123")}).
		Set(codes.ModifierExplosion, testutil.ModifierRow{Realm: testutil.Realm(t, "124")}).
		Set(codes.ModifierFilter, testutil.ModifierRow{Realm: testutil.Realm(t, "124")})

	t.Run("own realm when no modifier exceeds it", func(t *testing.T) {
		table := newTable(t)
		f := newFormula(t, table, nil, []any{
			mustModifier(t, codes.ModifierColor, modifiers, nil),
			mustModifier(t, codes.ModifierGate, modifiers, nil),
		}, nil)

		assert.Same(t, table.Rows[codes.FormulaPortal].Realm, f.RequiredRealm())
	})

	t.Run("highest modifier realm", func(t *testing.T) {
		f := newFormula(t, newTable(t), nil, []any{
			mustModifier(t, codes.ModifierColor, modifiers, nil),
			mustModifier(t, codes.ModifierExplosion, modifiers, nil),
			mustModifier(t, codes.ModifierFilter, modifiers, nil),
		}, nil)

		assert.Same(t, modifiers.Rows[codes.ModifierExplosion].Realm, f.RequiredRealm())
		assert.Equal(t, 124, f.RequiredRealm().Value())
	})

	t.Run("raised by difficulty over maximum", func(t *testing.T) {
		row := testutil.MinimalFormulaRow(t)
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

		// difficulty 5...10, one realm per 2 difficulty above maximum;
		// +8 duration makes 13, three over
		f := newFormula(t, table, map[string]any{"duration": 8}, nil, nil)

		assert.Equal(t, 13, f.CurrentDifficulty().Value())
		assert.Equal(t, 2, f.CurrentDifficulty().CurrentRealmsIncrement())
		assert.Equal(t, 3, f.RequiredRealm().Value())
	})
}

func TestFormula_CurrentRadius(t *testing.T) {
	modifiers := testutil.NewModifiersTable().
		Set(codes.ModifierColor, testutil.ModifierRow{
			Parameters: map[codes.ModifierParameter]*param.CastingParameter{
				codes.ModifierParameterRadius: testutil.Parameter(t, param.KindRadius, "3", "1=1"),
			},
		}).
		Set(codes.ModifierGate, testutil.ModifierRow{})

	t.Run("without own radius", func(t *testing.T) {
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))
		f := newFormula(t, table, nil, []any{mustModifier(t, codes.ModifierColor, modifiers, nil)}, nil)

		assert.Nil(t, f.CurrentRadius())
		_, ok := f.CurrentRadiusDistance()
		assert.False(t, ok)
	})

	t.Run("modifier radii folded in", func(t *testing.T) {
		row := testutil.MinimalFormulaRow(t)
		row.Parameters[codes.FormulaParameterRadius] = testutil.Parameter(t, param.KindRadius, "10", "1=1")
		table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

		f := newFormula(t, table, map[string]any{"radius": 2}, []any{
			mustModifier(t, codes.ModifierColor, modifiers, map[string]any{"radius": 1}),
			mustModifier(t, codes.ModifierGate, modifiers, nil),
		}, nil)

		testutil.AssertParameter(t, f.RadiusWithAddition(), 12, 2)
		testutil.AssertParameter(t, f.CurrentRadius(), 12+4, 2+4)

		distance, ok := f.CurrentRadiusDistance()
		require.True(t, ok)
		assert.Equal(t, 16, distance.Bonus)
		assert.InDelta(t, 6.3, distance.Meters, 0.001)
	})
}

func TestFormula_CurrentCastingRounds(t *testing.T) {
	row := testutil.MinimalFormulaRow(t)
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)
	modifiers := testutil.NewModifiersTable().
		Set(codes.ModifierColor, testutil.ModifierRow{CastingRounds: testutil.CastingRounds(t, "2")}).
		Set(codes.ModifierGate, testutil.ModifierRow{})

	f := newFormula(t, table, nil, nil, nil)
	assert.Same(t, row.CastingRounds, f.CurrentCastingRounds())

	f = newFormula(t, table, nil, []any{
		mustModifier(t, codes.ModifierColor, modifiers, nil),
		mustModifier(t, codes.ModifierGate, modifiers, nil),
		mustModifier(t, codes.ModifierColor, modifiers, nil),
	}, nil)
	assert.Equal(t, 1+2+2, f.CurrentCastingRounds().Value())
}

func TestFormula_CurrentRealmsAffections(t *testing.T) {
	row := testutil.MinimalFormulaRow(t)
	row.RealmsAffection = testutil.RealmsAffection(t, "-11", codes.AffectionPeriodYearly)
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)
	modifiers := testutil.NewModifiersTable().
		Set(codes.ModifierColor, testutil.ModifierRow{RealmsAffection: testutil.RealmsAffection(t, "-5", codes.AffectionPeriodDaily)}).
		Set(codes.ModifierGate, testutil.ModifierRow{RealmsAffection: testutil.RealmsAffection(t, "-2", codes.AffectionPeriodDaily)}).
		Set(codes.ModifierExplosion, testutil.ModifierRow{RealmsAffection: testutil.RealmsAffection(t, "-8", codes.AffectionPeriodMonthly)}).
		Set(codes.ModifierFilter, testutil.ModifierRow{}).
		Set(codes.ModifierWatcher, testutil.ModifierRow{RealmsAffection: testutil.RealmsAffection(t, "-1", codes.AffectionPeriodYearly)})

	f := newFormula(t, table, nil, []any{
		mustModifier(t, codes.ModifierColor, modifiers, nil),
		[]*spell.Modifier{
			mustModifier(t, codes.ModifierGate, modifiers, nil),
			mustModifier(t, codes.ModifierExplosion, modifiers, nil),
		},
		[]any{[]any{mustModifier(t, codes.ModifierFilter, modifiers, nil)}},
		mustModifier(t, codes.ModifierWatcher, modifiers, nil),
	}, nil)

	affections := f.CurrentRealmsAffections()

	got := make(map[codes.AffectionPeriod]int, len(affections))
	for period, affection := range affections {
		assert.Equal(t, period, affection.Period())
		got[period] = affection.Value()
	}
	assert.Equal(t, map[codes.AffectionPeriod]int{
		codes.AffectionPeriodDaily:   -7,
		codes.AffectionPeriodMonthly: -8,
		codes.AffectionPeriodYearly:  -12,
	}, got)
}

func TestFormula_PassThrough(t *testing.T) {
	row := testutil.MinimalFormulaRow(t)
	row.Forms = []codes.Form{codes.FormDirect, codes.FormVolume}
	row.Profiles = []codes.Profile{codes.ProfileGateVenus}
	row.SpellTraits = []codes.SpellTrait{codes.SpellTraitActive}
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, row)

	f := newFormula(t, table, nil, nil, nil)

	assert.Equal(t, codes.FormulaPortal, f.Code())
	assert.Same(t, row.Evocation, f.CurrentEvocation())
	assert.Equal(t, row.Forms, f.Forms())
	assert.Equal(t, row.Profiles, f.Profiles())
	assert.Equal(t, row.SpellTraits, f.SpellTraitCodes())
	assert.Empty(t, f.Modifiers())
	assert.Empty(t, f.SpellTraits())
}

func TestFormula_InvalidModifiersAndTraits(t *testing.T) {
	table := testutil.NewFormulasTable().Set(codes.FormulaPortal, testutil.MinimalFormulaRow(t))
	traits := testutil.NewSpellTraitsTable().Set(codes.SpellTraitActive, testutil.SpellTraitRow{})
	trait := mustSpellTrait(t, codes.SpellTraitActive, traits, 0)

	_, err := spell.NewFormula(codes.FormulaPortal, table, measure.DistanceTable{}, nil, []any{trait}, nil)
	require.ErrorIs(t, err, spell.ErrInvalidModifier)
	assert.Contains(t, err.Error(), "*spell.SpellTrait")

	_, err = spell.NewFormula(codes.FormulaPortal, table, measure.DistanceTable{}, nil, nil, []any{[]any{"active"}})
	require.ErrorIs(t, err, spell.ErrInvalidSpellTrait)
	assert.Contains(t, err.Error(), "string")
}
