package api

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// suggest finds the closest allowed value to an invalid input so the error
// message can offer a correction. Returns "" when nothing is close enough
// to be worth suggesting.
func suggest(input string, allowed []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	lowered := make([]string, len(allowed))
	for i, a := range allowed {
		lowered[i] = strings.ToLower(a)
	}
	matches := fuzzy.Find(input, lowered)
	if len(matches) == 0 {
		return ""
	}
	return allowed[matches[0].Index]
}
