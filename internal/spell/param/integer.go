package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInteger coerces an integer-like value: any Go integer, a float without
// fraction, or a string holding one of those ("5", "-3", "5.000").
func ToInteger(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows", ErrNotInteger, n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows", ErrNotInteger, n)
		}
		return int(n), nil
	case float32:
		return floatToInteger(float64(n))
	case float64:
		return floatToInteger(n)
	case string:
		return stringToInteger(n)
	case nil:
		return 0, fmt.Errorf("%w: got nothing", ErrNotInteger)
	default:
		return 0, fmt.Errorf("%w: got %T %v", ErrNotInteger, v, v)
	}
}

func floatToInteger(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: got %v", ErrNotInteger, f)
	}
	// float64(math.MaxInt64) is 2^63, already out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v overflows", ErrNotInteger, f)
	}
	return int(f), nil
}

// stringToInteger accepts plain decimals only: "12", "-6", "5.000".
func stringToInteger(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	whole, fraction, hasFraction := strings.Cut(trimmed, ".")
	if hasFraction && strings.Trim(fraction, "0") != "" {
		return 0, fmt.Errorf("%w: got %q", ErrNotInteger, s)
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(whole, "-"), "+")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%w: got %q", ErrNotInteger, s)
	}
	i, err := strconv.Atoi(whole)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrNotInteger, s)
	}
	return i, nil
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
