package quiz

import "animalquiz/internal/model"

// Tally counts votes per category
type Tally map[model.Category]int

// NewTally returns a tally with every category present at zero
func NewTally(categories []model.Category) Tally {
	t := make(Tally, len(categories))
	for _, c := range categories {
		t[c] = 0
	}
	return t
}

// Total is the number of votes cast
func (t Tally) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// Leader returns the category with the highest count. Among equal counts the
// one listed first in order wins, not the most recently scored. Categories
// outside order are never picked.
func (t Tally) Leader(order []model.Category) model.Category {
	var (
		leader model.Category
		best   = -1
	)
	for _, c := range order {
		if t[c] > best {
			leader, best = c, t[c]
		}
	}
	return leader
}

func (t Tally) Clone() Tally {
	out := make(Tally, len(t))
	for c, n := range t {
		out[c] = n
	}
	return out
}
