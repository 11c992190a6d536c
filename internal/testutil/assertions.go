package testutil

import (
	"testing"

	"github.com/udisondev/theurgist/internal/spell/param"
)

// AssertParameter проверяет значение параметра и текущую добавку к нему.
func AssertParameter(t testing.TB, p *param.CastingParameter, value, addition int) {
	t.Helper()

	if p == nil {
		t.Fatalf("parameter is nil, expected value %d with addition %d", value, addition)
	}
	if got := p.Value(); got != value {
		t.Fatalf("%s value mismatch: expected %d, got %d", p.Kind(), value, got)
	}
	if got := p.AdditionByDifficulty().CurrentAddition(); got != addition {
		t.Fatalf("%s addition mismatch: expected %d, got %d", p.Kind(), addition, got)
	}
}

// AssertTrap проверяет значение ловушки и свойство, против которого она срабатывает.
func AssertTrap(t testing.TB, trap *param.Trap, value int, property string) {
	t.Helper()

	if trap == nil {
		t.Fatalf("trap is nil, expected %d %s", value, property)
	}
	if got := trap.Value(); got != value {
		t.Fatalf("trap value mismatch: expected %d, got %d", value, got)
	}
	if got := string(trap.Property()); got != property {
		t.Fatalf("trap property mismatch: expected %s, got %s", property, got)
	}
}
