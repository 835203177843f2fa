package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCountryOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"Nigeria", "Kenya", "Ghana", "South Africa"}, c.Countries())
	assert.Equal(t, "Nigeria", c.DefaultCountry())
}

func TestServicesUnknownCountryFallsBack(t *testing.T) {
	c := Default()
	unknown := c.Services("Unknownland")
	require.NotEmpty(t, unknown)
	assert.Equal(t, c.Services("Nigeria"), unknown)
}

func TestServicesEmptyCatalog(t *testing.T) {
	c := New()
	assert.Nil(t, c.Services("Nigeria"))
	assert.Nil(t, c.Match("Nigeria", []string{"Health"}))
	assert.Equal(t, "", c.DefaultCountry())
}

func TestMatchNoFilterReturnsFullList(t *testing.T) {
	c := Default()
	full := c.Services("Kenya")
	assert.Equal(t, full, c.Match("Kenya", nil))
	assert.Equal(t, full, c.Match("Kenya", []string{}))
	// Blank entries collapse to no filter.
	assert.Equal(t, full, c.Match("Kenya", []string{"", "  "}))
}

func TestMatchByCategoryCaseInsensitive(t *testing.T) {
	c := Default()

	got := c.Match("Ghana", []string{"health services"})
	require.Len(t, got, 2)
	assert.Equal(t, "National Health Insurance Scheme (NHIS) Registration", got[0].Name)
	assert.Equal(t, "Community-based Health Planning and Services (CHPS)", got[1].Name)
}

func TestMatchByNameSubstring(t *testing.T) {
	c := Default()

	// "Health" is not a seeded category value, but matches Ghana's two health
	// records through the name-substring rule.
	got := c.Match("Ghana", []string{"Health"})
	require.Len(t, got, 2)
	for _, svc := range got {
		assert.Equal(t, CategoryHealth, svc.Category)
	}

	// Free-text need that only exists inside service names.
	tax := c.Match("Kenya", []string{"KRA"})
	require.Len(t, tax, 1)
	assert.Equal(t, "KRA PIN Registration", tax[0].Name)
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	c := Default()
	full := c.Services("Nigeria")

	got := c.Match("Nigeria", []string{CategoryHealth, CategoryTax})
	require.NotEmpty(t, got)

	// The filtered list must be a subsequence of the catalog order.
	idx := 0
	for _, svc := range got {
		found := false
		for ; idx < len(full); idx++ {
			if full[idx].Name == svc.Name {
				found = true
				idx++
				break
			}
		}
		assert.True(t, found, "record %q out of catalog order", svc.Name)
	}
}

func TestMatchUnknownCountryFiltersDefault(t *testing.T) {
	c := Default()
	got := c.Match("Unknownland", []string{CategoryNationalID})
	require.Len(t, got, 1)
	assert.Equal(t, "National ID Card Registration", got[0].Name)
}

func TestMatchUnknownCategoryReturnsEmpty(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Match("Ghana", []string{"Space Travel"}))
}

func TestRecordNameUniquePerCountry(t *testing.T) {
	c := Default()
	for _, country := range c.Countries() {
		seen := make(map[string]bool)
		for _, svc := range c.Services(country) {
			assert.False(t, seen[svc.Name], "%s: duplicate service %q", country, svc.Name)
			seen[svc.Name] = true
		}
	}
}
