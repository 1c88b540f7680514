package command

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Suggest returns the known verb closest to token.
// A case-insensitive exact match wins; otherwise the best fuzzy
// subsequence match over the lowercase verb names is used.
func Suggest(token string) (Verb, bool) {
	if token == "" {
		return VerbUnknown, false
	}

	// Casers are stateful, so each call gets its own.
	folder := cases.Fold()
	folded := folder.String(token)
	for _, v := range knownVerbs {
		if folder.String(v.String()) == folded {
			return v, true
		}
	}

	names := make([]string, len(knownVerbs))
	for i, v := range knownVerbs {
		names[i] = strings.ToLower(v.String())
	}

	matches := fuzzy.Find(strings.ToLower(token), names)
	if len(matches) == 0 {
		return VerbUnknown, false
	}
	return knownVerbs[matches[0].Index], true
}
