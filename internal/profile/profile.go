// Package profile models the user data collected by onboarding. The core
// never owns this data; it only reads country and needs and tolerates the
// absence of either.
package profile

import (
	"encoding/json"
	"strings"
)

// Profile is the onboarding output handed to the recommendation pipeline.
// Needs is the canonical field; historical payloads used the key
// "services_needed" and both are accepted on input as synonyms.
type Profile struct {
	Country          string   `json:"country,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	Age              string   `json:"age,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	MaritalStatus    string   `json:"marital_status,omitempty"`
	EducationLevel   string   `json:"education_level,omitempty"`
	EmploymentStatus string   `json:"employment_status,omitempty"`
	Purpose          string   `json:"purpose,omitempty"`
	Needs            []string `json:"needs,omitempty"`
}

// profileAlias avoids recursion in UnmarshalJSON.
type profileAlias Profile

type profileWire struct {
	profileAlias
	ServicesNeeded []string `json:"services_needed"`
}

// UnmarshalJSON accepts both "needs" and "services_needed" for the requested
// categories. When both are present, "needs" wins.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var wire profileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = Profile(wire.profileAlias)
	if len(p.Needs) == 0 {
		p.Needs = wire.ServicesNeeded
	}
	return nil
}

// ResolvedCountry returns the profile country, or fallback when unset.
func (p Profile) ResolvedCountry(fallback string) string {
	if c := strings.TrimSpace(p.Country); c != "" {
		return c
	}
	return fallback
}

// CleanNeeds returns the requested categories with blanks removed. An empty
// result means "no filter".
func (p Profile) CleanNeeds() []string {
	var out []string
	for _, n := range p.Needs {
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ContextFields renders the optional profile fields as label/value pairs for
// prompt construction, skipping anything unset.
func (p Profile) ContextFields() [][2]string {
	pairs := [][2]string{
		{"Country", p.Country},
		{"City", p.City},
		{"Age", p.Age},
		{"Gender", p.Gender},
		{"Marital Status", p.MaritalStatus},
		{"Education Level", p.EducationLevel},
		{"Employment Status", p.EmploymentStatus},
		{"Services Interested In", strings.Join(p.Needs, ", ")},
		{"Purpose", p.Purpose},
	}
	var out [][2]string
	for _, pair := range pairs {
		if strings.TrimSpace(pair[1]) != "" {
			out = append(out, pair)
		}
	}
	return out
}
