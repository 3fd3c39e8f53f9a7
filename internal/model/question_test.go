package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBank() *Bank {
	return &Bank{
		Name:       "pets",
		Categories: []Category{CategoryCat, CategoryDog},
		Questions: []Question{
			{Prompt: "Pick one", Options: []Option{{Text: "Purr", Category: CategoryCat}, {Text: "Bark", Category: CategoryDog}}},
		},
	}
}

func TestBankValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Bank)
		wantErr string
	}{
		{"valid", func(b *Bank) {}, ""},
		{"no name", func(b *Bank) { b.Name = "" }, "missing name"},
		{"no categories", func(b *Bank) { b.Categories = nil }, "no categories"},
		{"empty category", func(b *Bank) { b.Categories = append(b.Categories, "") }, "empty category"},
		{"duplicate category", func(b *Bank) { b.Categories = append(b.Categories, CategoryCat) }, "duplicate category"},
		{"no questions", func(b *Bank) { b.Questions = nil }, "no questions"},
		{"no prompt", func(b *Bank) { b.Questions[0].Prompt = "" }, "no prompt"},
		{"no options", func(b *Bank) { b.Questions[0].Options = nil }, "no options"},
		{"undeclared category", func(b *Bank) { b.Questions[0].Options[0].Category = CategoryFox }, "undeclared category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBank()
			tt.mutate(b)

			err := b.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidBank)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHasCategory(t *testing.T) {
	b := validBank()
	assert.True(t, b.HasCategory(CategoryDog))
	assert.False(t, b.HasCategory(CategoryHorse))
}
