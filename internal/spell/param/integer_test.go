package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInteger(t *testing.T) {
	valid := []struct {
		in   any
		want int
	}{
		{in: 5, want: 5},
		{in: int8(-3), want: -3},
		{in: int64(1 << 40), want: 1 << 40},
		{in: uint8(7), want: 7},
		{in: uint64(9), want: 9},
		{in: float32(2), want: 2},
		{in: -4.0, want: -4},
		{in: "12", want: 12},
		{in: " -6 ", want: -6},
		{in: "5.000", want: 5},
		{in: "+3", want: 3},
		{in: "-7.", want: -7},
		{in: uint(math.MaxInt), want: math.MaxInt},
		{in: float64(-(1 << 63)), want: math.MinInt64},
	}
	for _, tt := range valid {
		got, err := ToInteger(tt.in)
		require.NoError(t, err, "%T %v", tt.in, tt.in)
		assert.Equal(t, tt.want, got)
	}

	invalid := []any{
		nil, 1.5, "1.5", "five", "", "-", ".0", []int{1}, true,
		// за пределами int
		float64(1 << 63), "9223372036854775808.0", "9223372036854775808",
		uint(math.MaxInt) + 1, uint64(math.MaxInt64) + 1,
		// не десятичная запись
		"0x1p4", "1e3", "0x10", "1_000", " 5 5",
	}
	for _, in := range invalid {
		_, err := ToInteger(in)
		assert.ErrorIs(t, err, ErrNotInteger, "%T %v", in, in)
	}
}
