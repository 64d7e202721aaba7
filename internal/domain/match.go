package domain

import "strings"

// Matching engines for the scheme catalog.
//
// All functions here are pure, synchronous filters over an immutable snapshot:
// they never reorder results (catalog order is preserved), never mutate their
// input and are safe to call concurrently. The matching predicate is a plain
// case-insensitive substring test. No fuzzy matching, no stemming, no
// tokenization; the golden outputs of the portal depend on that.

// Field selects a localized scheme attribute for text matching.
type Field int

const (
	FieldTitle Field = iota
	FieldDepartment
	FieldBenefits
)

// The two match-field sets in use. The portal grid searches title+department;
// the chatbot searches title+benefits. They are configured separately on
// purpose; do not merge them.
var (
	PortalFields = []Field{FieldTitle, FieldDepartment}
	ChatFields   = []Field{FieldTitle, FieldBenefits}
)

// SuggestLimit caps autocomplete results.
const SuggestLimit = 5

func (s *Scheme) fieldText(f Field, lang string) string {
	switch f {
	case FieldTitle:
		return s.Title.Get(lang)
	case FieldDepartment:
		return s.Department.Get(lang)
	case FieldBenefits:
		return s.Benefits.Get(lang)
	}
	return ""
}

// Search returns the schemes whose localized fields contain text,
// case-insensitively. An empty (or all-whitespace) query returns the full
// catalog unchanged.
func Search(catalog []*Scheme, text, lang string, fields []Field) []*Scheme {
	text = strings.TrimSpace(text)
	if text == "" {
		return catalog
	}
	needle := strings.ToLower(text)

	var out []*Scheme
	for _, s := range catalog {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(s.fieldText(f, lang)), needle) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Suggest returns at most SuggestLimit title matches in catalog order, for
// autocomplete.
func Suggest(catalog []*Scheme, text, lang string) []*Scheme {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	needle := strings.ToLower(text)

	var out []*Scheme
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Title.Get(lang)), needle) {
			out = append(out, s)
			if len(out) == SuggestLimit {
				break
			}
		}
	}
	return out
}

// AllCategories is the filter sentinel that disables category filtering.
const AllCategories = "all"

// FilterByCategory returns the schemes whose category set contains tag.
// The "all" sentinel returns the full catalog. Tag comparison is exact and
// case-sensitive: tags are enumerated identifiers, not user text.
func FilterByCategory(catalog []*Scheme, tag string) []*Scheme {
	if tag == AllCategories {
		return catalog
	}

	var out []*Scheme
	for _, s := range catalog {
		if s.Category.Contains(tag) {
			out = append(out, s)
		}
	}
	return out
}

// Recommend returns the schemes whose eligibility bounds admit the profile:
// age within [minAge, maxAge] inclusive, income at or below the ceiling, and
// category either "any" or a case-insensitive member of the scheme's set.
// Absent bounds are open. This is a filter, not a ranker.
func Recommend(catalog []*Scheme, p ApplicantProfile) []*Scheme {
	var out []*Scheme
	for _, s := range catalog {
		if Eligible(s, p) {
			out = append(out, s)
		}
	}
	return out
}

// Eligible reports whether a single scheme admits the profile.
func Eligible(s *Scheme, p ApplicantProfile) bool {
	minAge := 0
	if s.MinAge != nil {
		minAge = *s.MinAge
	}
	if p.Age < minAge {
		return false
	}
	if s.MaxAge != nil && p.Age > *s.MaxAge {
		return false
	}
	if s.MaxIncome != nil && p.Income > *s.MaxIncome {
		return false
	}
	if p.Category != AnyCategory && !s.Category.ContainsFold(p.Category) {
		return false
	}
	return true
}
