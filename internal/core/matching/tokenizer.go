// Package matching ranks candidate records against a free-text query by
// weighted keyword overlap.
package matching

import (
	"regexp"
	"strings"
)

// experienceToken matches tokens such as "2+" or "10+yrs".
var experienceToken = regexp.MustCompile(`\d\+`)

// Tokenize lower-cases query and splits it on runs of whitespace. Duplicate
// tokens are kept: each one contributes its own matches.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// mentionsExperience reports whether any token reads like an experience
// requirement.
func mentionsExperience(tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(tok, "year") || strings.Contains(tok, "yr") || experienceToken.MatchString(tok) {
			return true
		}
	}
	return false
}
