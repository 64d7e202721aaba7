package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FallbackLang is the language every localized field is guaranteed to carry.
const FallbackLang = "en"

// LocalText maps a language code ("en", "ta", ...) to display text for one
// logical attribute.
type LocalText map[string]string

// Get returns the text for lang, falling back to FallbackLang when the
// requested language is missing or empty.
func (lt LocalText) Get(lang string) string {
	if v, ok := lt[lang]; ok && v != "" {
		return v
	}
	return lt[FallbackLang]
}

// SchemeID is an opaque stable identifier. Scheme files in the wild carry both
// numeric and string ids, so decoding accepts either and normalizes to string.
type SchemeID string

func (id *SchemeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = SchemeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = SchemeID(n.String())
		return nil
	}
	return fmt.Errorf("scheme id must be a string or a number, got %s", string(data))
}

func (id *SchemeID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*id = SchemeID(v)
	case int:
		*id = SchemeID(strconv.Itoa(v))
	case float64:
		*id = SchemeID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("scheme id must be a string or a number, got %T", raw)
	}
	return nil
}

func (id SchemeID) String() string { return string(id) }

// CategorySet is a semantic set of category tags. Scheme files declare either a
// single tag or a list; both decode into the same set. Duplicates are
// meaningless and order is irrelevant for matching.
type CategorySet []string

func (cs *CategorySet) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*cs = CategorySet{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*cs = CategorySet(many)
		return nil
	}
	return fmt.Errorf("category must be a string or a list of strings")
}

func (cs *CategorySet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var one string
	if err := unmarshal(&one); err == nil {
		*cs = CategorySet{one}
		return nil
	}
	var many []string
	if err := unmarshal(&many); err == nil {
		*cs = CategorySet(many)
		return nil
	}
	return fmt.Errorf("category must be a string or a list of strings")
}

// Contains reports exact (case-sensitive) membership. Tags are fixed
// enumerated identifiers, not free text.
func (cs CategorySet) Contains(tag string) bool {
	for _, c := range cs {
		if c == tag {
			return true
		}
	}
	return false
}

// ContainsFold reports case-insensitive membership, used by the recommender
// where the applicant category comes from user input.
func (cs CategorySet) ContainsFold(tag string) bool {
	for _, c := range cs {
		if strings.EqualFold(c, tag) {
			return true
		}
	}
	return false
}

// Scheme is a single welfare scheme record. Records are immutable once loaded;
// the catalog replaces the whole snapshot on reload instead of mutating.
type Scheme struct {
	ID SchemeID `json:"id" yaml:"id"`

	Title       LocalText `json:"title" yaml:"title"`
	Department  LocalText `json:"department" yaml:"department"`
	Eligibility LocalText `json:"eligibility" yaml:"eligibility"`
	Benefits    LocalText `json:"benefits" yaml:"benefits"`
	Apply       LocalText `json:"apply" yaml:"apply"`

	// Link points at the authoritative source for the scheme.
	Link string `json:"link" yaml:"link"`

	Category CategorySet `json:"category" yaml:"category"`

	// Eligibility bounds. nil means the bound is open: no minimum age, no
	// maximum age, no income ceiling.
	MinAge    *int `json:"minAge,omitempty" yaml:"minAge,omitempty"`
	MaxAge    *int `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`
	MaxIncome *int `json:"maxIncome,omitempty" yaml:"maxIncome,omitempty"`
}

// ApplicantProfile is the eligibility wizard input. It is never persisted.
type ApplicantProfile struct {
	Age      int
	Income   int
	Category string // a category tag, or "any"
}

// AnyCategory is the profile sentinel that disables category filtering.
const AnyCategory = "any"

// ParseProfile builds a profile from raw form/query input. Non-numeric or
// missing age/income coerce to 0 rather than erroring; an empty category means
// "any". The lenient coercion reproduces the portal's historical behavior.
func ParseProfile(age, income, category string) ApplicantProfile {
	p := ApplicantProfile{
		Age:      lenientInt(age),
		Income:   lenientInt(income),
		Category: strings.ToLower(strings.TrimSpace(category)),
	}
	if p.Category == "" {
		p.Category = AnyCategory
	}
	return p
}

func lenientInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
