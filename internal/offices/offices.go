// Package offices holds a directory of government offices and service
// centers with simple proximity search.
package offices

import (
	"math"
	"sort"
	"strings"
)

// degreesToKM converts the flat squared-degree distance to an approximate
// kilometre figure. Good enough at city scale.
const degreesToKM = 111.0

// Office is one government office or service center.
type Office struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	City       string  `json:"city"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKM float64 `json:"distance_km,omitempty"`
}

// Directory is an in-memory office registry.
type Directory struct {
	offices []Office
}

// NewDirectory wraps a fixed office list.
func NewDirectory(offices []Office) *Directory {
	return &Directory{offices: offices}
}

// Default returns the seeded directory.
func Default() *Directory {
	return NewDirectory(seedOffices())
}

// officeTypesByNeed maps onboarding need keywords to office types.
var officeTypesByNeed = map[string][]string{
	"health":      {"Hospital", "Health Center", "Clinic"},
	"education":   {"School", "University", "Education Office"},
	"immigration": {"Immigration", "Passport Office"},
	"government":  {"Government Office", "State Government", "County Government"},
}

// TypesForNeeds resolves a citizen's needs to the office types worth showing.
// Needs without a mapping contribute nothing; an empty result means no filter
// should be applied.
func TypesForNeeds(needs []string) []string {
	seen := make(map[string]bool)
	var types []string
	for _, need := range needs {
		for _, t := range officeTypesByNeed[strings.ToLower(strings.TrimSpace(need))] {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	return types
}

// Filter returns offices whose type matches one of the given types
// (substring, case-insensitive). An empty type list returns everything.
func (d *Directory) Filter(types []string) []Office {
	if len(types) == 0 {
		out := make([]Office, len(d.offices))
		copy(out, d.offices)
		return out
	}

	var out []Office
	for _, office := range d.offices {
		haystack := strings.ToLower(office.Type)
		for _, t := range types {
			if strings.Contains(haystack, strings.ToLower(t)) {
				out = append(out, office)
				break
			}
		}
	}
	return out
}

// Nearest returns up to limit offices matching the given types, sorted by
// distance from the given coordinates. The distance is the flat euclidean
// distance in degrees scaled to kilometres, which is fine for ranking
// nearby offices and deliberately avoids great-circle math.
func (d *Directory) Nearest(lat, lon float64, types []string, limit int) []Office {
	matched := d.Filter(types)

	for i := range matched {
		dLat := matched[i].Lat - lat
		dLon := matched[i].Lon - lon
		matched[i].DistanceKM = math.Sqrt(dLat*dLat+dLon*dLon) * degreesToKM
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DistanceKM < matched[j].DistanceKM
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Cities returns the distinct cities in the directory, in seed order.
func (d *Directory) Cities() []string {
	seen := make(map[string]bool)
	var cities []string
	for _, office := range d.offices {
		if !seen[office.City] {
			seen[office.City] = true
			cities = append(cities, office.City)
		}
	}
	return cities
}
