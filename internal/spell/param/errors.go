package param

import (
	"errors"
	"fmt"
)

var (
	ErrNotInteger = errors.New("value is not an integer")

	ErrMissingAdditionNotation      = errors.New("missing addition notation")
	ErrAdditionNotationTooManyParts = errors.New("addition notation has too many parts")
	ErrAdditionNotationNotANumber   = errors.New("addition notation part is not a number")
	ErrAdditionNotationInvalidStep  = errors.New("addition notation step must be positive")

	ErrInvalidValueForIntegerParameter  = errors.New("invalid value for integer casting parameter")
	ErrInvalidValueForPositiveParameter = errors.New("invalid value for positive integer casting parameter")
	ErrInvalidPropertyForTrap           = errors.New("invalid format of property used for trap")

	ErrInvalidRealm             = errors.New("invalid realm")
	ErrInvalidDifficultyChange  = errors.New("invalid difficulty change")
	ErrInvalidFormulaDifficulty = errors.New("invalid formula difficulty")
	ErrInvalidRealmsAffection   = errors.New("invalid realms affection")
	ErrInvalidCastingRounds     = errors.New("invalid casting rounds")
	ErrInvalidEvocation         = errors.New("invalid evocation")
)

// describeAt renders values[i] for error messages, "nothing" when absent.
func describeAt(values []string, i int) string {
	if i >= len(values) {
		return "nothing"
	}
	return fmt.Sprintf("%q", values[i])
}
