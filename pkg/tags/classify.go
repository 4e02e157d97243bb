package tags

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classify returns the first entry, in table order, with a keyword contained
// in tech. Matching is a case-insensitive substring test, so "js" matches
// "ObjectJS". The default entry is returned when nothing matches.
func (t Table) Classify(tech string) (entry Entry) {
	lower := cases.Lower(language.Und)
	techLower := lower.String(tech)

	for _, key := range t.keys {
		candidate := t.entries[key]
		for _, keyword := range candidate.Keywords {
			if strings.Contains(techLower, lower.String(keyword)) {
				entry = candidate.clone()
				return entry
			}
		}
	}

	entry = t.Default()
	return entry
}
