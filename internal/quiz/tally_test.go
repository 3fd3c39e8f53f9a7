package quiz

import (
	"animalquiz/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyLeader(t *testing.T) {
	order := model.DefaultCategories()

	tests := []struct {
		name  string
		tally Tally
		want  model.Category
	}{
		{"all zero", NewTally(order), model.CategoryCat},
		{"clear winner", Tally{"cat": 1, "dog": 0, "fox": 3, "hamster": 1, "horse": 0}, model.CategoryFox},
		{"tie goes to earlier", Tally{"cat": 0, "dog": 2, "fox": 0, "hamster": 2, "horse": 1}, model.CategoryDog},
		{"unknown ignored", Tally{"cat": 0, "dog": 0, "fox": 0, "hamster": 0, "horse": 1, "unicorn": 9}, model.CategoryHorse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tally.Leader(order))
		})
	}
}

func TestTallyCloneIsIndependent(t *testing.T) {
	a := Tally{"cat": 1}
	b := a.Clone()
	b["cat"] = 5

	assert.Equal(t, 1, a["cat"])
	assert.Equal(t, 5, b.Total())
}
