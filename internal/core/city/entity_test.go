package city

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownCities(t *testing.T) {
	t.Run("ExactMatchIgnoresCase", func(t *testing.T) {
		result := LookupKnownCities("  PARIS ", 5)
		require.Len(t, result, 1)
		assert.Equal(t, CityOption{"Paris", "France", "fr", 48.8566, 2.3522}, result[0])
	})

	t.Run("SubstringAcrossKeys", func(t *testing.T) {
		result := LookupKnownCities("new", 5)
		require.Len(t, result, 1)
		assert.Equal(t, "New York", result[0].City)
	})

	t.Run("SubstringRespectsLimit", func(t *testing.T) {
		result := LookupKnownCities("o", 3)
		assert.Len(t, result, 3)
	})

	t.Run("UnknownCityIsTitleCased", func(t *testing.T) {
		result := LookupKnownCities("atlantis deep", 5)
		require.Len(t, result, 1)
		assert.Equal(t, CityOption{City: "Atlantis Deep", Country: "Unknown", CountryCode: "xx"}, result[0])
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		result := LookupKnownCities("   ", 5)
		require.Len(t, result, 1)
		assert.Equal(t, "", result[0].City)
		assert.Equal(t, "Unknown", result[0].Country)
	})
}

func TestKnownCities_UseLowercaseCodes(t *testing.T) {
	for key, c := range knownCities {
		assert.Len(t, c.CountryCode, 2, key)
		assert.Equal(t, key, strings.ToLower(c.City))
	}
}

func TestCityOption_Normalize(t *testing.T) {
	c := CityOption{City: " Lyon ", Country: " France", CountryCode: "FR "}
	c.Normalize()
	assert.Equal(t, CityOption{City: "Lyon", Country: "France", CountryCode: "fr"}, c)
}
