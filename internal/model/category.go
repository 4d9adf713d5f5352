package model

import "fmt"

// Category is the kind of thing a phrase names
type Category int

const (
	CategoryActors Category = iota
	CategoryScientists
	CategoryFruits
)

// Category names as they appear in answer files
const (
	CategoryNameActors     = "actors"
	CategoryNameScientists = "scientists"
	CategoryNameFruits     = "fruits"
)

// ParseCategory maps an answer-file category name to a Category
func ParseCategory(name string) (Category, error) {
	switch name {
	case CategoryNameActors:
		return CategoryActors, nil
	case CategoryNameScientists:
		return CategoryScientists, nil
	case CategoryNameFruits:
		return CategoryFruits, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
}

// String returns the answer-file name of the category
func (c Category) String() string {
	switch c {
	case CategoryActors:
		return CategoryNameActors
	case CategoryScientists:
		return CategoryNameScientists
	case CategoryFruits:
		return CategoryNameFruits
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Hint returns the clue printed before a round
func (c Category) Hint() string {
	switch c {
	case CategoryActors:
		return "This person is an actor."
	case CategoryScientists:
		return "This person is a scientist."
	case CategoryFruits:
		return "This is a fruit."
	default:
		return ""
	}
}

// ValidCategories returns all known categories
func ValidCategories() []Category {
	return []Category{CategoryActors, CategoryScientists, CategoryFruits}
}
