package schemes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schemehub/schemehub/internal/domain"
)

const validJSON = `[
  {
    "id": 1,
    "title": {"en": "Farmer Aid", "ta": "விவசாயி உதவி"},
    "department": {"en": "Agriculture Department"},
    "eligibility": {"en": "Farmers aged 18-60"},
    "benefits": {"en": "Cash support"},
    "apply": {"en": "Apply online"},
    "link": "https://example.gov/farmer-aid",
    "category": ["agriculture"],
    "minAge": 18,
    "maxAge": 60,
    "maxIncome": 200000
  },
  {
    "id": "housing-1",
    "title": {"en": "Housing Grant"},
    "department": {"en": "Housing Board"},
    "eligibility": {"en": "Low income families"},
    "benefits": {"en": "Construction subsidy"},
    "apply": {"en": "Apply at taluk office"},
    "link": "https://example.gov/housing",
    "category": "housing"
  }
]`

const validYAML = `- id: 1
  title: {en: Farmer Aid}
  department: {en: Agriculture Department}
  eligibility: {en: Farmers}
  benefits: {en: Cash support}
  apply: {en: Apply online}
  link: https://example.gov/farmer-aid
  category: agriculture
  minAge: 18
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	loader := NewLoader(writeTemp(t, "schemes.json", validJSON))

	records, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// File order preserved, ids normalized to strings.
	if records[0].ID != "1" || records[1].ID != "housing-1" {
		t.Errorf("ids = %s, %s", records[0].ID, records[1].ID)
	}
	if records[0].MinAge == nil || *records[0].MinAge != 18 {
		t.Error("minAge not decoded")
	}
	if records[1].MaxIncome != nil {
		t.Error("absent maxIncome should stay nil (open bound)")
	}
	if !records[1].Category.Contains("housing") {
		t.Errorf("scalar category not decoded: %v", records[1].Category)
	}
}

func TestLoadYAML(t *testing.T) {
	loader := NewLoader(writeTemp(t, "schemes.yaml", validYAML))

	records, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].ID != "1" {
		t.Fatalf("records = %+v", records)
	}
	if records[0].MaxAge != nil {
		t.Error("absent maxAge should stay nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	full := func(id string) *domain.Scheme {
		return &domain.Scheme{
			ID:          domain.SchemeID(id),
			Title:       domain.LocalText{"en": "t"},
			Department:  domain.LocalText{"en": "d"},
			Eligibility: domain.LocalText{"en": "e"},
			Benefits:    domain.LocalText{"en": "b"},
			Apply:       domain.LocalText{"en": "a"},
		}
	}

	tests := []struct {
		name    string
		records []*domain.Scheme
		wantErr bool
	}{
		{"valid", []*domain.Scheme{full("1"), full("2")}, false},
		{"empty catalog", nil, true},
		{"duplicate id", []*domain.Scheme{full("1"), full("1")}, true},
		{"missing id", []*domain.Scheme{full("")}, true},
		{
			"missing en fallback",
			[]*domain.Scheme{{
				ID:          "1",
				Title:       domain.LocalText{"ta": "தலைப்பு"},
				Department:  domain.LocalText{"en": "d"},
				Eligibility: domain.LocalText{"en": "e"},
				Benefits:    domain.LocalText{"en": "b"},
				Apply:       domain.LocalText{"en": "a"},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
