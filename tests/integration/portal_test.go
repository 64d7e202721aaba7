package integration

import (
	"testing"

	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/domain"
)

func intp(v int) *int { return &v }

// testCatalog mirrors the shape of a real scheme file: mixed categories,
// partial localization, open and closed eligibility bounds.
func testCatalog() []*domain.Scheme {
	return []*domain.Scheme{
		{
			ID:         "1",
			Title:      domain.LocalText{"en": "Farmer Aid Scheme", "hi": "किसान सहायता योजना"},
			Department: domain.LocalText{"en": "Agriculture Department"},
			Benefits:   domain.LocalText{"en": "Annual income support of Rs 6000"},
			Link:       "https://portal.example/farmer-aid",
			Category:   domain.CategorySet{"agriculture"},
			MinAge:     intp(18),
			MaxIncome:  intp(200000),
		},
		{
			ID:         "2",
			Title:      domain.LocalText{"en": "Student Scholarship", "hi": "छात्र छात्रवृत्ति"},
			Department: domain.LocalText{"en": "Education Department"},
			Benefits:   domain.LocalText{"en": "Tuition fee waiver for merit students"},
			Link:       "https://portal.example/scholarship",
			Category:   domain.CategorySet{"education"},
			MinAge:     intp(16),
			MaxAge:     intp(25),
		},
		{
			ID:         "3",
			Title:      domain.LocalText{"en": "Senior Pension", "hi": "वरिष्ठ पेंशन"},
			Department: domain.LocalText{"en": "Social Welfare Department"},
			Benefits:   domain.LocalText{"en": "Monthly pension of Rs 1500"},
			Link:       "https://portal.example/pension",
			Category:   domain.CategorySet{"pension", "welfare"},
			MinAge:     intp(60),
		},
		{
			ID:         "4",
			Title:      domain.LocalText{"en": "Health Cover for All"},
			Department: domain.LocalText{"en": "Health Department"},
			Benefits:   domain.LocalText{"en": "Cashless treatment up to Rs 5 lakh"},
			Link:       "https://portal.example/health",
			Category:   domain.CategorySet{"health"},
		},
	}
}

func ids(schemes []*domain.Scheme) []string {
	out := make([]string, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, s.ID.String())
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestPortalScenarios walks a realistic user journey over one catalog
// snapshot: browse, search in both languages, filter, then ask for
// recommendations.
func TestPortalScenarios(t *testing.T) {
	cat := catalog.New()
	cat.Replace(testCatalog())

	if !cat.Loaded() {
		t.Fatal("catalog should report loaded after Replace")
	}
	snapshot := cat.Snapshot()

	t.Run("browse returns everything in load order", func(t *testing.T) {
		if got := ids(snapshot); !equalIDs(got, []string{"1", "2", "3", "4"}) {
			t.Fatalf("unexpected catalog order: %v", got)
		}
	})

	t.Run("search matches title and department", func(t *testing.T) {
		byTitle := domain.Search(snapshot, "farmer", "en", domain.PortalFields)
		if got := ids(byTitle); !equalIDs(got, []string{"1"}) {
			t.Fatalf("title search: got %v", got)
		}

		byDept := domain.Search(snapshot, "education", "en", domain.PortalFields)
		if got := ids(byDept); !equalIDs(got, []string{"2"}) {
			t.Fatalf("department search: got %v", got)
		}
	})

	t.Run("search works in hindi", func(t *testing.T) {
		matches := domain.Search(snapshot, "किसान", "hi", domain.PortalFields)
		if got := ids(matches); !equalIDs(got, []string{"1"}) {
			t.Fatalf("hindi search: got %v", got)
		}
	})

	t.Run("portal search does not match benefits text", func(t *testing.T) {
		matches := domain.Search(snapshot, "pension of", "en", domain.PortalFields)
		if len(matches) != 0 {
			t.Fatalf("benefits text must not match portal search, got %v", ids(matches))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		welfare := domain.FilterByCategory(snapshot, "welfare")
		if got := ids(welfare); !equalIDs(got, []string{"3"}) {
			t.Fatalf("welfare filter: got %v", got)
		}

		all := domain.FilterByCategory(snapshot, domain.AllCategories)
		if len(all) != len(snapshot) {
			t.Fatalf("all filter should return full catalog, got %d", len(all))
		}
	})

	t.Run("recommendations honor bounds and category", func(t *testing.T) {
		// A 20 year old student with no income: scholarship, farmer aid
		// and the unbounded health cover all admit them.
		profile := domain.ParseProfile("20", "", "any")
		if got := ids(domain.Recommend(snapshot, profile)); !equalIDs(got, []string{"1", "2", "4"}) {
			t.Fatalf("student profile: got %v", got)
		}

		// A 65 year old pensioner restricted to the pension category.
		profile = domain.ParseProfile("65", "0", "pension")
		if got := ids(domain.Recommend(snapshot, profile)); !equalIDs(got, []string{"3"}) {
			t.Fatalf("pensioner profile: got %v", got)
		}

		// Garbage numeric input coerces to zero rather than failing.
		profile = domain.ParseProfile("not-a-number", "-40", "")
		if got := ids(domain.Recommend(snapshot, profile)); !equalIDs(got, []string{"4"}) {
			t.Fatalf("lenient profile: got %v", got)
		}
	})

	t.Run("chat matching sees benefits text", func(t *testing.T) {
		matches := domain.Search(snapshot, "pension of", "en", domain.ChatFields)
		if got := ids(matches); !equalIDs(got, []string{"3"}) {
			t.Fatalf("chat search: got %v", got)
		}
	})
}
