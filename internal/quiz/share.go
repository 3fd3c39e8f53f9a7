package quiz

import (
	"animalquiz/internal/model"
	"fmt"
)

// DefaultSiteURL is used when no site URL is configured
const DefaultSiteURL = "https://animalquiz.example"

// Share is everything the result screen hands to the share widget
type Share struct {
	Category model.Category
	Heading  string
	Image    string
	Message  string
	URL      string
}

// NewShare builds the share payload for a finished attempt
func NewShare(result model.Category, siteURL string) Share {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return Share{
		Category: result,
		Heading:  Heading(result),
		Image:    ImagePath(result),
		Message:  ShareMessage(result, siteURL),
		URL:      siteURL,
	}
}

func ShareMessage(result model.Category, siteURL string) string {
	return fmt.Sprintf("I am a %s! Check out the quiz at %s", result, siteURL)
}

// ImagePath addresses the static image of a category
func ImagePath(c model.Category) string {
	return "/" + string(c) + ".png"
}

func Heading(result model.Category) string {
	return fmt.Sprintf("You are most like a %s!", result)
}
