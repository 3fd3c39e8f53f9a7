package quiz

import "animalquiz/internal/model"

// DefaultBankName names the built-in bank
const DefaultBankName = "default"

// DefaultBank returns a fresh copy of the built-in animal bank
func DefaultBank() *model.Bank {
	opt := func(text string, c model.Category) model.Option {
		return model.Option{Text: text, Category: c}
	}
	cat, dog, fox, hamster, horse := model.CategoryCat, model.CategoryDog, model.CategoryFox, model.CategoryHamster, model.CategoryHorse

	return &model.Bank{
		Name:       DefaultBankName,
		Title:      "Which animal are you?",
		Categories: model.DefaultCategories(),
		Questions: []model.Question{
			{
				Prompt: "What is your favorite type of food?",
				Options: []model.Option{
					opt("Meat", cat),
					opt("Fish", cat),
					opt("Berries", fox),
					opt("Seeds", hamster),
					opt("Grass", horse),
				},
			},
			{
				Prompt: "Which activity do you enjoy most?",
				Options: []model.Option{
					opt("Chasing mice", cat),
					opt("Playing fetch", dog),
					opt("Hunting in the woods", fox),
					opt("Nibbling on treats", hamster),
					opt("Running in fields", horse),
				},
			},
			{
				Prompt: "What is your preferred living environment?",
				Options: []model.Option{
					opt("Indoor cozy", cat),
					opt("Outdoor park", dog),
					opt("Forest", fox),
					opt("Small cage", hamster),
					opt("Open pasture", horse),
				},
			},
			{
				Prompt: "How do you like to communicate?",
				Options: []model.Option{
					opt("Purrs", cat),
					opt("Barks", dog),
					opt("Howls", fox),
					opt("Squeaks", hamster),
					opt("Neighs", horse),
				},
			},
			{
				Prompt: "What is your favorite pastime?",
				Options: []model.Option{
					opt("Sleeping", cat),
					opt("Playing", dog),
					opt("Hiding", fox),
					opt("Running in a wheel", hamster),
					opt("Galloping", horse),
				},
			},
		},
	}
}
