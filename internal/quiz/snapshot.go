package quiz

import (
	"animalquiz/internal/model"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidSnapshot is wrapped when a stored attempt does not fit its bank
var ErrInvalidSnapshot = errors.New("invalid attempt snapshot")

// Snapshot is the serializable state of an Engine
type Snapshot struct {
	Bank     string           `json:"bank"`
	Index    int              `json:"index"`
	Answered int              `json:"answered"`
	Tally    Tally            `json:"tally"`
	Shuffled [][]model.Option `json:"shuffled"`
	Result   model.Category   `json:"result,omitempty"`
	Finished bool             `json:"finished"`
}

// Snapshot captures the engine state, shuffles included
func (e *Engine) Snapshot() *Snapshot {
	shuffled := make([][]model.Option, len(e.shuffled))
	for i, opts := range e.shuffled {
		shuffled[i] = append([]model.Option(nil), opts...)
	}
	return &Snapshot{
		Bank:     e.bank.Name,
		Index:    e.index,
		Answered: e.answered,
		Tally:    e.tally.Clone(),
		Shuffled: shuffled,
		Result:   e.result,
		Finished: e.finished,
	}
}

// Restore rebuilds an engine from a snapshot taken against bank.
// A nil rng uses a randomly seeded source for later resets.
func Restore(bank *model.Bank, s *Snapshot, rng *rand.Rand) (*Engine, error) {
	if err := checkSnapshot(bank, s); err != nil {
		return nil, err
	}

	e := New(bank, rng)
	e.index = s.Index
	e.answered = s.Answered
	e.tally = NewTally(bank.Categories)
	for c, n := range s.Tally {
		e.tally[c] = n
	}
	for i, opts := range s.Shuffled {
		e.shuffled[i] = append([]model.Option(nil), opts...)
	}
	e.result = s.Result
	e.finished = s.Finished
	return e, nil
}

func checkSnapshot(bank *model.Bank, s *Snapshot) error {
	if s.Bank != bank.Name {
		return fmt.Errorf("%w: taken against bank %q, not %q", ErrInvalidSnapshot, s.Bank, bank.Name)
	}
	if s.Index < 0 || s.Index >= len(bank.Questions) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidSnapshot, s.Index)
	}
	if len(s.Shuffled) != len(bank.Questions) {
		return fmt.Errorf("%w: %d shuffles for %d questions", ErrInvalidSnapshot, len(s.Shuffled), len(bank.Questions))
	}
	for i, q := range bank.Questions {
		if !isPermutation(q.Options, s.Shuffled[i]) {
			return fmt.Errorf("%w: options of question %d changed", ErrInvalidSnapshot, i+1)
		}
	}
	for c, n := range s.Tally {
		if n < 0 {
			return fmt.Errorf("%w: negative count %d for %s", ErrInvalidSnapshot, n, c)
		}
	}
	if s.Tally.Total() != s.Answered {
		return fmt.Errorf("%w: tally sums to %d after %d answers", ErrInvalidSnapshot, s.Tally.Total(), s.Answered)
	}
	if s.Finished != (s.Answered == len(bank.Questions)) {
		return fmt.Errorf("%w: finished=%v after %d answers", ErrInvalidSnapshot, s.Finished, s.Answered)
	}
	if !s.Finished {
		if s.Answered != s.Index {
			return fmt.Errorf("%w: %d answers at question %d", ErrInvalidSnapshot, s.Answered, s.Index+1)
		}
		if s.Result != "" {
			return fmt.Errorf("%w: result %q before the last answer", ErrInvalidSnapshot, s.Result)
		}
		return nil
	}
	if s.Index != len(bank.Questions)-1 {
		return fmt.Errorf("%w: finished at question %d", ErrInvalidSnapshot, s.Index+1)
	}
	if leader := s.Tally.Leader(bank.Categories); s.Result != leader {
		return fmt.Errorf("%w: result %q, tally leads with %q", ErrInvalidSnapshot, s.Result, leader)
	}
	return nil
}

func isPermutation(a, b []model.Option) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[model.Option]int, len(a))
	for _, o := range a {
		seen[o]++
	}
	for _, o := range b {
		if seen[o] == 0 {
			return false
		}
		seen[o]--
	}
	return true
}
