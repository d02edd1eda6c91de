package service

import (
	"pokedex/internal/domain"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter keeps the entries whose name contains the lowercased query.
// Names are compared as-is; upstream names are already lowercase.
func Filter(list []domain.CreatureSummary, query string) []domain.CreatureSummary {
	if query == "" {
		return list
	}

	needle := cases.Lower(language.Und).String(query)
	filtered := make([]domain.CreatureSummary, 0, len(list))
	for _, c := range list {
		if strings.Contains(c.Name, needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
