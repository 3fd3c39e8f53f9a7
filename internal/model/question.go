package model

import (
	"errors"
	"fmt"
)

// ErrInvalidBank is wrapped by every Bank validation failure
var ErrInvalidBank = errors.New("invalid question bank")

// Option is a display label voting for exactly one category
type Option struct {
	Text     string   `json:"text" bson:"text" yaml:"text"`
	Category Category `json:"category" bson:"category" yaml:"category"`
}

// Question is a prompt with a fixed set of options
type Question struct {
	Prompt  string   `json:"prompt" bson:"prompt" yaml:"prompt"`
	Options []Option `json:"options" bson:"options" yaml:"options"`
}

// Bank is the static question/category set a quiz runs on
type Bank struct {
	Name       string     `json:"name" bson:"name" yaml:"name"`
	Title      string     `json:"title" bson:"title" yaml:"title"`
	Categories []Category `json:"categories" bson:"categories" yaml:"categories"` // Enumeration order, used for tie-breaks
	Questions  []Question `json:"questions" bson:"questions" yaml:"questions"`
}

// Validate checks the bank is usable by the quiz engine
func (b *Bank) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidBank)
	}
	if len(b.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidBank)
	}

	declared := make(map[Category]bool, len(b.Categories))
	for _, c := range b.Categories {
		if c == "" {
			return fmt.Errorf("%w: empty category", ErrInvalidBank)
		}
		if declared[c] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidBank, c)
		}
		declared[c] = true
	}

	if len(b.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidBank)
	}
	for i, q := range b.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("%w: question %d has no prompt", ErrInvalidBank, i+1)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrInvalidBank, i+1)
		}
		for _, opt := range q.Options {
			if !declared[opt.Category] {
				return fmt.Errorf("%w: question %d option %q votes for undeclared category %q",
					ErrInvalidBank, i+1, opt.Text, opt.Category)
			}
		}
	}
	return nil
}

// HasCategory reports whether c is declared by the bank
func (b *Bank) HasCategory(c Category) bool {
	for _, declared := range b.Categories {
		if declared == c {
			return true
		}
	}
	return false
}
