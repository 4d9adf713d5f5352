package redis

import "fmt"

// Key prefix for all hangman data
const keyPrefix = "hangman"

// categoriesKey returns the Redis key for the SET of stored category names
func categoriesKey() string {
	return fmt.Sprintf("%s:categories", keyPrefix)
}

// answersKey returns the Redis key for the LIST of answers in a category
func answersKey(category string) string {
	return fmt.Sprintf("%s:answers:%s", keyPrefix, category)
}

// loadedKey returns the Redis key marking that answer sets have been saved
func loadedKey() string {
	return fmt.Sprintf("%s:answers_loaded", keyPrefix)
}
