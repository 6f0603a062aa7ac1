package kbportal

import "strings"

// CategoryFilter governs which documents are visible before text search
// is applied. It is either FilterAll, FilterFavorites, or the string
// value of a specific EquipmentType. ALL and FAVORITES are not equipment
// types and are never matched against Document.Type.
type CategoryFilter string

// Pseudo-category filters.
const (
	FilterAll       CategoryFilter = "ALL"
	FilterFavorites CategoryFilter = "FAVORITES"
)

// Valid reports whether f is a known filter value.
func (f CategoryFilter) Valid() bool {
	if f == FilterAll || f == FilterFavorites {
		return true
	}
	return EquipmentType(f).Valid()
}

// FilterDocuments returns the ordered visible subset of docs for the
// given category filter and free-text query. It is a pure function of
// its inputs: docs is never mutated and matches retain their relative
// order.
//
// The category stage runs first. The search stage only applies when
// query is non-empty: the query is lowercased and a document passes if
// its title, manufacturer, model series, or any one tag contains it as
// a substring, case-insensitively. No tokenization, no ranking. A
// whitespace-only query counts as non-empty and typically matches
// nothing.
func FilterDocuments(docs []*Document, filter CategoryFilter, query string) []*Document {
	var out []*Document
	q := strings.ToLower(query)
	for _, doc := range docs {
		if filter == FilterFavorites && !doc.IsFavorite {
			continue
		}
		if filter != FilterAll && filter != FilterFavorites && doc.Type != EquipmentType(filter) {
			continue
		}
		if query != "" && !matchesQuery(doc, q) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// matchesQuery reports whether doc contains the lowercased query as a
// substring of title, manufacturer, model series, or any tag.
func matchesQuery(doc *Document, q string) bool {
	if strings.Contains(strings.ToLower(doc.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Manufacturer), q) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.ModelSeries), q) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
