// Package spell composes the effective casting parameters of a formula.
//
// A Formula reads its base parameters from a FormulasTable and combines them
// with the caster's additions, active modifiers and spell traits. Every
// value it returns is immutable; changing an addition means building a new
// Formula.
package spell
