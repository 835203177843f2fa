// Package catalog holds the curated per-country table of government services
// and the category matcher used as the deterministic fallback path. The table
// is seeded once at init and never mutated, so it is safe to share across
// concurrent requests.
package catalog

import "strings"

// ServiceRecord describes one government service offering. Only Name is
// required; sparse records are valid and must flow through unmodified.
// Display-time defaulting for missing fields is the caller's job.
type ServiceRecord struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	RequiredDocuments []string `json:"required_documents,omitempty"`
	ProcessingTime    string   `json:"processing_time,omitempty"`
	Fees              string   `json:"fees,omitempty"`
	Category          string   `json:"category,omitempty"`
	WhyRelevant       string   `json:"why_relevant,omitempty"`
}

// Service categories used by the seed data. The taxonomy is open: remote
// results and onboarding free text may carry values outside this list.
const (
	CategoryHealth     = "Health Services"
	CategoryEducation  = "Education Services"
	CategoryBusiness   = "Business Registration"
	CategoryTax        = "Tax Services"
	CategoryNationalID = "National ID"
)

// Catalog is a read-only country -> services table. Countries preserves
// insertion order so the default-country fallback is deterministic.
type Catalog struct {
	countries []string
	services  map[string][]ServiceRecord
}

// New builds an empty catalog. Most callers want Default instead.
func New() *Catalog {
	return &Catalog{services: make(map[string][]ServiceRecord)}
}

// add registers a country's service list. Used only during seeding.
func (c *Catalog) add(country string, services []ServiceRecord) {
	if _, exists := c.services[country]; !exists {
		c.countries = append(c.countries, country)
	}
	c.services[country] = services
}

// Countries returns the seeded country names in insertion order.
func (c *Catalog) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}

// DefaultCountry returns the first seeded country, or "" for an empty catalog.
func (c *Catalog) DefaultCountry() string {
	if len(c.countries) == 0 {
		return ""
	}
	return c.countries[0]
}

// ResolveCountry returns the input when the catalog covers that country and
// the default country otherwise. Blank input resolves to the default too.
func (c *Catalog) ResolveCountry(country string) string {
	if _, ok := c.services[country]; ok {
		return country
	}
	return c.DefaultCountry()
}

// Services returns the full list for a country in catalog order. Unknown
// countries resolve to the default country: an approximate answer is judged
// better than an empty one for this domain. Only an empty catalog yields nil.
func (c *Catalog) Services(country string) []ServiceRecord {
	if recs, ok := c.services[country]; ok {
		return recs
	}
	if len(c.countries) == 0 {
		return nil
	}
	return c.services[c.countries[0]]
}

// Match filters a country's services by the requested categories. A record
// matches when its category equals one of the requested values
// (case-insensitive) or a requested value appears as a substring of the
// record name. The substring rule covers free-text needs from onboarding
// that do not line up with the fixed category taxonomy.
//
// Empty categories means no filter. Relative catalog order is preserved and
// the function is total: unknown countries and unknown categories degrade to
// best-effort results rather than errors.
func (c *Catalog) Match(country string, categories []string) []ServiceRecord {
	services := c.Services(country)
	if len(categories) == 0 {
		return services
	}

	wanted := make([]string, 0, len(categories))
	for _, cat := range categories {
		if trimmed := strings.TrimSpace(cat); trimmed != "" {
			wanted = append(wanted, strings.ToLower(trimmed))
		}
	}
	if len(wanted) == 0 {
		return services
	}

	var matched []ServiceRecord
	for _, svc := range services {
		if recordMatches(svc, wanted) {
			matched = append(matched, svc)
		}
	}
	return matched
}

func recordMatches(svc ServiceRecord, wanted []string) bool {
	category := strings.ToLower(svc.Category)
	name := strings.ToLower(svc.Name)
	for _, w := range wanted {
		if category == w {
			return true
		}
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}
