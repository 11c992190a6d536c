package param

import (
	"fmt"
	"strconv"
	"strings"
)

// notation is one "step=increment" entry plus the amount currently added.
//
// A bare "increment" means step 1. Spending one step (of difficulty or of
// realms) buys one increment of the parameter.
type notation struct {
	step      int
	increment int
	current   int
}

func parseNotation(text string) (notation, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return notation{}, fmt.Errorf("%w: got %q", ErrMissingAdditionNotation, text)
	}

	parts := strings.Split(trimmed, "=")
	switch len(parts) {
	case 1:
		increment, err := parseNotationNumber(text, parts[0])
		if err != nil {
			return notation{}, err
		}
		return notation{step: 1, increment: increment}, nil
	case 2:
		step, err := parseNotationNumber(text, parts[0])
		if err != nil {
			return notation{}, err
		}
		if step <= 0 {
			return notation{}, fmt.Errorf("%w: got %d in %q", ErrAdditionNotationInvalidStep, step, text)
		}
		increment, err := parseNotationNumber(text, parts[1])
		if err != nil {
			return notation{}, err
		}
		return notation{step: step, increment: increment}, nil
	default:
		return notation{}, fmt.Errorf("%w: %q", ErrAdditionNotationTooManyParts, text)
	}
}

func parseNotationNumber(text, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, fmt.Errorf("%w: %q in %q", ErrAdditionNotationNotANumber, part, text)
	}
	return n, nil
}

// additionFor converts an invested amount of steps into a parameter delta.
func (n notation) additionFor(invested int) int {
	return floorDiv(invested, n.step) * n.increment
}

// currentStepIncrement is how many steps the current addition costs.
func (n notation) currentStepIncrement() int {
	if n.increment == 0 || n.current == 0 {
		return 0
	}
	return ceilDiv(n.current*n.step, n.increment)
}

func (n notation) text() string {
	return fmt.Sprintf("%d=%d", n.step, n.increment)
}

func (n notation) String() string {
	return fmt.Sprintf("%d {%d=>%d}", n.current, n.step, n.increment)
}

// AdditionByDifficulty tells how much difficulty buys one addition step of a
// casting parameter, e.g. "2=3" means +3 for every 2 points of difficulty.
type AdditionByDifficulty struct {
	n notation
}

func NewAdditionByDifficulty(text string) (AdditionByDifficulty, error) {
	n, err := parseNotation(text)
	if err != nil {
		return AdditionByDifficulty{}, err
	}
	return AdditionByDifficulty{n: n}, nil
}

func (a AdditionByDifficulty) DifficultyPerAdditionStep() int { return a.n.step }
func (a AdditionByDifficulty) AdditionStep() int              { return a.n.increment }
func (a AdditionByDifficulty) CurrentAddition() int           { return a.n.current }
func (a AdditionByDifficulty) Notation() string               { return a.n.text() }
func (a AdditionByDifficulty) String() string                 { return a.n.String() }

// WithCurrentAddition returns a copy carrying addition as the current one.
func (a AdditionByDifficulty) WithCurrentAddition(addition int) AdditionByDifficulty {
	a.n.current = addition
	return a
}

// CurrentDifficultyIncrement is the difficulty paid for the current addition.
func (a AdditionByDifficulty) CurrentDifficultyIncrement() int {
	return a.n.currentStepIncrement()
}

// AdditionFor is the addition bought by the given difficulty.
func (a AdditionByDifficulty) AdditionFor(difficulty int) int {
	return a.n.additionFor(difficulty)
}

// AdditionByRealms tells how many realms buy one addition step, e.g. the
// difficulty a formula may exceed its maximum by for every extra realm.
type AdditionByRealms struct {
	n notation
}

func NewAdditionByRealms(text string) (AdditionByRealms, error) {
	n, err := parseNotation(text)
	if err != nil {
		return AdditionByRealms{}, err
	}
	return AdditionByRealms{n: n}, nil
}

func (a AdditionByRealms) RealmsPerAdditionStep() int { return a.n.step }
func (a AdditionByRealms) AdditionStep() int          { return a.n.increment }
func (a AdditionByRealms) CurrentAddition() int       { return a.n.current }
func (a AdditionByRealms) Notation() string           { return a.n.text() }
func (a AdditionByRealms) String() string             { return a.n.String() }

func (a AdditionByRealms) WithCurrentAddition(addition int) AdditionByRealms {
	a.n.current = addition
	return a
}

// CurrentRealmsIncrement is the number of realms paid for the current addition.
func (a AdditionByRealms) CurrentRealmsIncrement() int {
	return a.n.currentStepIncrement()
}

// AdditionFor is the addition bought by the given number of realms.
func (a AdditionByRealms) AdditionFor(realms int) int {
	return a.n.additionFor(realms)
}
