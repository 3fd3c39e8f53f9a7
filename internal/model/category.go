package model

// Category is one of the result labels a bank can assign
type Category string

const (
	CategoryCat     Category = "cat"
	CategoryDog     Category = "dog"
	CategoryFox     Category = "fox"
	CategoryHamster Category = "hamster"
	CategoryHorse   Category = "horse"
)

// DefaultCategories is the enumeration order of the built-in bank.
// Ties are broken in favour of the earliest entry.
func DefaultCategories() []Category {
	return []Category{CategoryCat, CategoryDog, CategoryFox, CategoryHamster, CategoryHorse}
}
