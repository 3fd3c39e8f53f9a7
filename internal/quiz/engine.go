// Package quiz holds the scoring and progression rules of a personality quiz.
//
// An Engine is owned by exactly one UI session and is not safe for concurrent
// use. Callers that share one across goroutines must serialize access.
package quiz

import (
	"animalquiz/internal/model"
	"errors"
	"math/rand/v2"
)

// ErrFinished is returned by Answer once a result has been decided
var ErrFinished = errors.New("quiz already finished")

// Engine tracks one attempt at a bank: position, tally, shuffles and result
type Engine struct {
	bank *model.Bank
	rng  *rand.Rand

	index    int
	answered int
	tally    Tally
	shuffled [][]model.Option
	result   model.Category
	finished bool
}

// New starts an attempt at question 0 with fresh shuffles. bank must pass
// Validate. A nil rng uses a randomly seeded source.
func New(bank *model.Bank, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Engine{bank: bank, rng: rng}
	e.initialize()
	return e
}

func (e *Engine) initialize() {
	e.index = 0
	e.answered = 0
	e.tally = NewTally(e.bank.Categories)
	e.shuffled = make([][]model.Option, len(e.bank.Questions))
	for i, q := range e.bank.Questions {
		e.shuffled[i] = Shuffle(q.Options, e.rng)
	}
	e.result = ""
	e.finished = false
}

// Shuffle returns a uniformly random permutation of options (Fisher-Yates).
// The input slice is left untouched.
func Shuffle(options []model.Option, rng *rand.Rand) []model.Option {
	out := make([]model.Option, len(options))
	copy(out, options)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Answer records a vote for category at the current question and advances.
// On the last question the vote is counted before the result is decided.
// The category is not checked against the current options.
func (e *Engine) Answer(category model.Category) error {
	if e.finished {
		return ErrFinished
	}

	e.tally[category]++
	e.answered++

	if e.index+1 < len(e.bank.Questions) {
		e.index++
		return nil
	}

	e.result = e.tally.Leader(e.bank.Categories)
	e.finished = true
	return nil
}

// Reset discards the attempt and starts over with new shuffles
func (e *Engine) Reset() {
	e.initialize()
}

// CurrentQuestion returns the prompt and the cached option order of the
// current question, or false once a result exists.
func (e *Engine) CurrentQuestion() (model.Question, bool) {
	if e.finished {
		return model.Question{}, false
	}
	opts := make([]model.Option, len(e.shuffled[e.index]))
	copy(opts, e.shuffled[e.index])
	return model.Question{
		Prompt:  e.bank.Questions[e.index].Prompt,
		Options: opts,
	}, true
}

// Result returns the decided category, if any
func (e *Engine) Result() (model.Category, bool) {
	return e.result, e.finished
}

func (e *Engine) Finished() bool { return e.finished }

// Index is the 0-based position of the current question
func (e *Engine) Index() int { return e.index }

// Total is the number of questions in the bank
func (e *Engine) Total() int { return len(e.bank.Questions) }

// Answered counts answers given in this attempt
func (e *Engine) Answered() int { return e.answered }

// Tally returns a copy of the running scores
func (e *Engine) Tally() Tally { return e.tally.Clone() }

func (e *Engine) Bank() *model.Bank { return e.bank }
