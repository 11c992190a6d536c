// Package measure converts ruleset bonuses into measurements.
//
// A bonus is logarithmic: every +20 multiplies the measured value by ten,
// bonus 0 is one base unit. Values are rounded to two significant digits
// the same way the printed bonus tables are.
package measure

import (
	"fmt"
	"math"
)

// BonusToValue returns 10^(bonus/20) rounded to two significant digits.
func BonusToValue(bonus int) float64 {
	raw := math.Pow(10, float64(bonus)/20)
	return roundSignificant(raw, 2)
}

// ValueToBonus is the inverse of BonusToValue, rounded to the nearest bonus.
// Non-positive values have no bonus and return false.
func ValueToBonus(value float64) (int, bool) {
	if value <= 0 {
		return 0, false
	}
	return int(math.Round(20 * math.Log10(value))), true
}

func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	magnitude := math.Floor(math.Log10(math.Abs(v)))
	factor := math.Pow(10, float64(digits-1)-magnitude)
	return math.Round(v*factor) / factor
}

// Distance is a length in meters.
type Distance struct {
	Bonus  int
	Meters float64
}

func (d Distance) String() string {
	if d.Meters >= 1000 {
		return fmt.Sprintf("%g km", d.Meters/1000)
	}
	return fmt.Sprintf("%g m", d.Meters)
}

// DistanceTable converts distance bonuses to distances.
type DistanceTable struct{}

func (DistanceTable) ToDistance(bonus int) Distance {
	return Distance{Bonus: bonus, Meters: BonusToValue(bonus)}
}

// Time is a duration measured in combat rounds.
type Time struct {
	Bonus  int
	Rounds float64
}

const (
	roundsPerMinute = 10
	roundsPerHour   = 60 * roundsPerMinute
	roundsPerDay    = 24 * roundsPerHour
)

func (t Time) String() string {
	switch {
	case t.Rounds >= roundsPerDay:
		return fmt.Sprintf("%g days", roundSignificant(t.Rounds/roundsPerDay, 2))
	case t.Rounds >= roundsPerHour:
		return fmt.Sprintf("%g hours", roundSignificant(t.Rounds/roundsPerHour, 2))
	case t.Rounds >= roundsPerMinute:
		return fmt.Sprintf("%g minutes", roundSignificant(t.Rounds/roundsPerMinute, 2))
	default:
		return fmt.Sprintf("%g rounds", t.Rounds)
	}
}

// TimeTable converts time bonuses to times.
type TimeTable struct{}

func (TimeTable) ToTime(bonus int) Time {
	return Time{Bonus: bonus, Rounds: BonusToValue(bonus)}
}

// Speed is measured in meters per round.
type Speed struct {
	Bonus          int
	MetersPerRound float64
}

func (s Speed) String() string {
	return fmt.Sprintf("%g m/round", s.MetersPerRound)
}

// SpeedTable converts speed bonuses to speeds.
type SpeedTable struct{}

func (SpeedTable) ToSpeed(bonus int) Speed {
	return Speed{Bonus: bonus, MetersPerRound: BonusToValue(bonus)}
}
