package city

import (
	"sort"
	"strings"

	"sunsip.app/pkg/validation"
)

// CityOption is a candidate location for a search query
type CityOption struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

const (
	UnknownCountry     = "Unknown"
	UnknownCountryCode = "xx"
)

// EmptyQueryResult is returned for a blank query
func EmptyQueryResult() []CityOption {
	return []CityOption{{City: "", Country: UnknownCountry}}
}

// UnknownCity builds the last-resort entry for a query nothing matched
func UnknownCity(query string) CityOption {
	return CityOption{
		City:        validation.TitleCase(query),
		Country:     UnknownCountry,
		CountryCode: UnknownCountryCode,
	}
}

// Normalize lowercases the country code
func (c *CityOption) Normalize() {
	c.City = strings.TrimSpace(c.City)
	c.Country = strings.TrimSpace(c.Country)
	c.CountryCode = strings.ToLower(strings.TrimSpace(c.CountryCode))
}

var knownCities = map[string]CityOption{
	"amsterdam":      {"Amsterdam", "Netherlands", "nl", 52.3676, 4.9041},
	"athens":         {"Athens", "Greece", "gr", 37.9838, 23.7275},
	"bangkok":        {"Bangkok", "Thailand", "th", 13.7563, 100.5018},
	"barcelona":      {"Barcelona", "Spain", "es", 41.3874, 2.1686},
	"beijing":        {"Beijing", "China", "cn", 39.9042, 116.4074},
	"berlin":         {"Berlin", "Germany", "de", 52.5200, 13.4050},
	"buenos aires":   {"Buenos Aires", "Argentina", "ar", -34.6037, -58.3816},
	"cape town":      {"Cape Town", "South Africa", "za", -33.9249, 18.4241},
	"dublin":         {"Dublin", "Ireland", "ie", 53.3498, -6.2603},
	"havana":         {"Havana", "Cuba", "cu", 23.1136, -82.3666},
	"istanbul":       {"Istanbul", "Turkey", "tr", 41.0082, 28.9784},
	"kingston":       {"Kingston", "Jamaica", "jm", 17.9712, -76.7936},
	"kyiv":           {"Kyiv", "Ukraine", "ua", 50.4501, 30.5234},
	"lima":           {"Lima", "Peru", "pe", -12.0464, -77.0428},
	"london":         {"London", "United Kingdom", "gb", 51.5074, -0.1278},
	"los angeles":    {"Los Angeles", "United States", "us", 34.0522, -118.2437},
	"madrid":         {"Madrid", "Spain", "es", 40.4168, -3.7038},
	"manila":         {"Manila", "Philippines", "ph", 14.5995, 120.9842},
	"mexico city":    {"Mexico City", "Mexico", "mx", 19.4326, -99.1332},
	"moscow":         {"Moscow", "Russia", "ru", 55.7558, 37.6173},
	"mumbai":         {"Mumbai", "India", "in", 19.0760, 72.8777},
	"new york":       {"New York", "United States", "us", 40.7128, -74.0060},
	"paris":          {"Paris", "France", "fr", 48.8566, 2.3522},
	"rio de janeiro": {"Rio de Janeiro", "Brazil", "br", -22.9068, -43.1729},
	"rome":           {"Rome", "Italy", "it", 41.9028, 12.4964},
	"seoul":          {"Seoul", "South Korea", "kr", 37.5665, 126.9780},
	"stockholm":      {"Stockholm", "Sweden", "se", 59.3293, 18.0686},
	"sydney":         {"Sydney", "Australia", "au", -33.8688, 151.2093},
	"tokyo":          {"Tokyo", "Japan", "jp", 35.6762, 139.6503},
	"toronto":        {"Toronto", "Canada", "ca", 43.6532, -79.3832},
	"warsaw":         {"Warsaw", "Poland", "pl", 52.2297, 21.0122},
	"wellington":     {"Wellington", "New Zealand", "nz", -41.2866, 174.7762},
}

// LookupKnownCities resolves a query against the built-in table: exact key first,
// then keys containing the query, then a single unknown entry. Never empty.
func LookupKnownCities(query string, limit int) []CityOption {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return EmptyQueryResult()
	}
	if c, ok := knownCities[key]; ok {
		return []CityOption{c}
	}

	var keys []string
	for k := range knownCities {
		if strings.Contains(k, key) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return []CityOption{UnknownCity(strings.TrimSpace(query))}
	}

	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	out := make([]CityOption, 0, len(keys))
	for _, k := range keys {
		out = append(out, knownCities[k])
	}
	return out
}
