// Package flashcard holds the client-side study logic: answer grading and the
// card-by-card session state machine.
package flashcard

import "strings"

// IsMatch reports whether userAnswer is accepted for correctMeaning.
// Both sides are trimmed and lower-cased; the answer matches when it equals
// the meaning or when either one contains the other. A blank answer never
// matches.
func IsMatch(userAnswer, correctMeaning string) bool {
	answer := strings.ToLower(strings.TrimSpace(userAnswer))
	meaning := strings.ToLower(strings.TrimSpace(correctMeaning))

	if answer == "" {
		return false
	}

	return answer == meaning ||
		strings.Contains(meaning, answer) ||
		strings.Contains(answer, meaning)
}
