package schemes

import (
	"fmt"

	"github.com/schemehub/schemehub/internal/domain"
)

// Validate enforces the catalog invariants: at least one record, unique ids,
// and an "en" entry for every localized field so language fallback always
// resolves.
func Validate(records []*domain.Scheme) error {
	if len(records) == 0 {
		return fmt.Errorf("no scheme records found in catalog file")
	}

	seen := make(map[string]bool, len(records))
	for i, s := range records {
		id := s.ID.String()
		if id == "" {
			return fmt.Errorf("record %d has no id", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate scheme id %q", id)
		}
		seen[id] = true

		for name, lt := range map[string]domain.LocalText{
			"title":       s.Title,
			"department":  s.Department,
			"eligibility": s.Eligibility,
			"benefits":    s.Benefits,
			"apply":       s.Apply,
		} {
			if lt[domain.FallbackLang] == "" {
				return fmt.Errorf("scheme %q is missing the %q fallback for %s", id, domain.FallbackLang, name)
			}
		}
	}

	return nil
}
