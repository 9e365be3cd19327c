package search

import "strings"

// PopularTerms is the fixed vocabulary suggestions draw from.
var PopularTerms = []string{
	"pizza",
	"sushi",
	"empanadas",
	"hamburguesa",
	"ensalada",
	"pasta",
	"completo",
	"tacos",
	"pollo",
	"postres",
}

const defaultSuggestionCount = 5

// Suggest returns prefix matches of the query against the popular-terms
// list, or the top of the list when there is no query.
func Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]string{}, PopularTerms[:defaultSuggestionCount]...)
	}
	suggestions := []string{}
	for _, term := range PopularTerms {
		if strings.HasPrefix(term, query) {
			suggestions = append(suggestions, term)
		}
	}
	return suggestions
}

// suggest prefers what users actually search for: with no query the
// counter's top terms come first, padded from the fixed list.
func (e *Engine) suggest(query string) []string {
	if strings.TrimSpace(query) != "" {
		return Suggest(query)
	}
	suggestions := make([]string, 0, defaultSuggestionCount)
	seen := make(map[string]struct{}, defaultSuggestionCount)
	for _, term := range e.counter.TopQueries(defaultSuggestionCount) {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		suggestions = append(suggestions, term)
	}
	for _, term := range PopularTerms {
		if len(suggestions) == defaultSuggestionCount {
			break
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		suggestions = append(suggestions, term)
	}
	return suggestions
}
