package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/theurgist/internal/codes"
	"github.com/udisondev/theurgist/internal/spell"
	"github.com/udisondev/theurgist/internal/spell/param"
	"github.com/udisondev/theurgist/internal/testutil"
)

func mustModifier(t *testing.T, code codes.Modifier, table spell.ModifiersTable, additions map[string]any) *spell.Modifier {
	t.Helper()

	m, err := spell.NewModifier(code, table, additions)
	require.NoError(t, err)
	return m
}

func TestModifier_ReadsThroughTable(t *testing.T) {
	row := testutil.ModifierRow{
		Realm:            testutil.Realm(t, "3"),
		RealmsAffection:  testutil.RealmsAffection(t, "-2", codes.AffectionPeriodMonthly),
		CastingRounds:    testutil.CastingRounds(t, "4"),
		DifficultyChange: testutil.DifficultyChange(t, "-1"),
		Forms:            []codes.Form{codes.FormIndirect},
		SpellTraits:      []codes.SpellTrait{codes.SpellTraitCyclic},
		Profiles:         []codes.Profile{codes.ProfileGateMars},
		Formulas:         []codes.Formula{codes.FormulaPortal, codes.FormulaLock},
		Parents:          []codes.Modifier{codes.ModifierBreach},
		Children:         []codes.Modifier{codes.ModifierMovement},
	}
	table := testutil.NewModifiersTable().Set(codes.ModifierGate, row)

	m := mustModifier(t, codes.ModifierGate, table, nil)

	assert.Equal(t, codes.ModifierGate, m.Code())
	assert.Equal(t, "gate", m.String())
	assert.Same(t, row.Realm, m.RequiredRealm())
	assert.Same(t, row.RealmsAffection, m.RealmsAffection())
	assert.Same(t, row.CastingRounds, m.CastingRounds())
	assert.Same(t, row.DifficultyChange, m.DifficultyChange())
	assert.Nil(t, m.RadiusWithAddition())

	forms, err := m.Forms()
	require.NoError(t, err)
	assert.Equal(t, row.Forms, forms)

	traits, err := m.SpellTraitCodes()
	require.NoError(t, err)
	assert.Equal(t, row.SpellTraits, traits)

	profiles, err := m.Profiles()
	require.NoError(t, err)
	assert.Equal(t, row.Profiles, profiles)

	formulas, err := m.FormulaCodes()
	require.NoError(t, err)
	assert.Equal(t, row.Formulas, formulas)

	parents, err := m.ParentModifierCodes()
	require.NoError(t, err)
	assert.Equal(t, row.Parents, parents)

	children, err := m.ChildModifierCodes()
	require.NoError(t, err)
	assert.Equal(t, row.Children, children)
}

func TestModifier_UnknownToTable(t *testing.T) {
	t.Run("construction fails without a row", func(t *testing.T) {
		table := testutil.NewModifiersTable().Set(codes.ModifierColor, testutil.ModifierRow{})

		m, err := spell.NewModifier(codes.ModifierGate, table, nil)
		require.ErrorIs(t, err, spell.ErrUnknownModifier)
		assert.Contains(t, err.Error(), "gate")
		assert.Nil(t, m)
	})

	t.Run("with additions", func(t *testing.T) {
		table := testutil.NewModifiersTable().Set(codes.ModifierColor, testutil.ModifierRow{})

		_, err := spell.NewModifier(codes.ModifierGate, table, map[string]any{"radius": 1})
		require.ErrorIs(t, err, spell.ErrUnknownModifier)
	})

	t.Run("structural getters after the row is gone", func(t *testing.T) {
		table := testutil.NewModifiersTable().Set(codes.ModifierThunder, testutil.ModifierRow{})
		m := mustModifier(t, codes.ModifierThunder, table, nil)
		delete(table.Rows, codes.ModifierThunder)

		structural := map[string]func() error{
			"forms":            func() error { _, err := m.Forms(); return err },
			"spell traits":     func() error { _, err := m.SpellTraitCodes(); return err },
			"profiles":         func() error { _, err := m.Profiles(); return err },
			"formulas":         func() error { _, err := m.FormulaCodes(); return err },
			"parent modifiers": func() error { _, err := m.ParentModifierCodes(); return err },
			"child modifiers":  func() error { _, err := m.ChildModifierCodes(); return err },
		}
		for name, call := range structural {
			t.Run(name, func(t *testing.T) {
				err := call()
				require.ErrorIs(t, err, spell.ErrUnknownModifier)
				assert.Contains(t, err.Error(), "thunder")
			})
		}
	})
}

func TestModifier_Additions(t *testing.T) {
	table := testutil.NewModifiersTable().Set(codes.ModifierColor, testutil.ModifierRow{
		DifficultyChange: testutil.DifficultyChange(t, "2"),
		Parameters: map[codes.ModifierParameter]*param.CastingParameter{
			codes.ModifierParameterRadius:    testutil.Parameter(t, param.KindRadius, "1", "1=1"),
			codes.ModifierParameterThreshold: testutil.Parameter(t, param.KindThreshold, "-2", "3=1"),
		},
	})

	t.Run("pays difficulty for additions", func(t *testing.T) {
		m := mustModifier(t, codes.ModifierColor, table, map[string]any{"radius": 2, "threshold": "2"})

		testutil.AssertParameter(t, m.RadiusWithAddition(), 3, 2)
		testutil.AssertParameter(t, m.ThresholdWithAddition(), 0, 2)
		// radius 1=1: 2; threshold 3=1: 6
		assert.Equal(t, 2+2+6, m.DifficultyChange().Value())
	})

	t.Run("unused parameter", func(t *testing.T) {
		_, err := spell.NewModifier(codes.ModifierColor, table, map[string]any{"points": 1})
		require.ErrorIs(t, err, spell.ErrUselessAdditionForUnusedParameter)
		assert.Contains(t, err.Error(), "points")
	})

	t.Run("formula parameter is unknown to modifier", func(t *testing.T) {
		_, err := spell.NewModifier(codes.ModifierColor, table, map[string]any{"duration": 1})
		require.ErrorIs(t, err, spell.ErrUnknownParameter)
		assert.Contains(t, err.Error(), "[duration]")
	})
}

func TestModifier_WithAdditionGetters(t *testing.T) {
	parameters := make(map[codes.ModifierParameter]*param.CastingParameter)
	for _, code := range codes.AllModifierParameters() {
		parameters[code] = testutil.Parameter(t, param.Kind(code), "5", "1")
	}
	table := testutil.NewModifiersTable().Set(codes.ModifierHammer, testutil.ModifierRow{Parameters: parameters})
	m := mustModifier(t, codes.ModifierHammer, table, nil)

	getters := map[codes.ModifierParameter]func() *param.CastingParameter{
		codes.ModifierParameterRadius:             m.RadiusWithAddition,
		codes.ModifierParameterEpicenterShift:     m.EpicenterShiftWithAddition,
		codes.ModifierParameterPower:              m.PowerWithAddition,
		codes.ModifierParameterAttack:             m.AttackWithAddition,
		codes.ModifierParameterGrafts:             m.GraftsWithAddition,
		codes.ModifierParameterSpellSpeed:         m.SpellSpeedWithAddition,
		codes.ModifierParameterPoints:             m.PointsWithAddition,
		codes.ModifierParameterInvisibility:       m.InvisibilityWithAddition,
		codes.ModifierParameterQuality:            m.QualityWithAddition,
		codes.ModifierParameterConditions:         m.ConditionsWithAddition,
		codes.ModifierParameterResistance:         m.ResistanceWithAddition,
		codes.ModifierParameterNumberOfSituations: m.NumberOfSituationsWithAddition,
		codes.ModifierParameterThreshold:          m.ThresholdWithAddition,
	}
	require.Len(t, getters, len(codes.AllModifierParameters()))

	for code, get := range getters {
		assert.Same(t, parameters[code], get(), "parameter %s", code)
	}
}
