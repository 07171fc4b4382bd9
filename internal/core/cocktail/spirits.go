package cocktail

import "strings"

var defaultSpirits = []string{"Gin", "Vodka", "Rum", "Whiskey"}

// countrySpirits maps a lowercase ISO 3166 alpha-2 code to its preferred spirits, most preferred first
var countrySpirits = map[string][]string{
	"ar": {"Fernet", "Gin", "Rum"},
	"au": {"Gin", "Rum", "Whiskey"},
	"br": {"Cachaça", "Rum", "Vodka"},
	"ca": {"Whiskey", "Vodka", "Gin"},
	"cn": {"Baijiu", "Whiskey", "Rum"},
	"cu": {"Rum", "Vodka"},
	"de": {"Gin", "Whiskey", "Vodka"},
	"es": {"Gin", "Rum", "Brandy"},
	"fr": {"Cognac", "Gin", "Rum"},
	"gb": {"Gin", "Whiskey", "Vodka"},
	"gr": {"Ouzo", "Gin", "Vodka"},
	"ie": {"Whiskey", "Gin", "Vodka"},
	"in": {"Rum", "Whiskey", "Gin"},
	"it": {"Grappa", "Gin", "Vodka"},
	"jm": {"Rum", "Whiskey"},
	"jp": {"Whiskey", "Sake", "Gin"},
	"kr": {"Soju", "Whiskey", "Vodka"},
	"mx": {"Tequila", "Mezcal", "Rum"},
	"nl": {"Gin", "Vodka"},
	"nz": {"Gin", "Whiskey", "Vodka"},
	"pe": {"Pisco", "Rum"},
	"ph": {"Rum", "Gin"},
	"pl": {"Vodka", "Gin"},
	"ru": {"Vodka", "Cognac"},
	"se": {"Vodka", "Gin"},
	"th": {"Rum", "Whiskey"},
	"tr": {"Raki", "Gin", "Vodka"},
	"ua": {"Vodka", "Gin"},
	"us": {"Whiskey", "Bourbon", "Rum"},
	"za": {"Gin", "Brandy", "Rum"},
}

// PreferredSpirits returns the spirits favoured in a country, falling back to a default list for unknown codes
func PreferredSpirits(countryCode string) []string {
	spirits, ok := countrySpirits[strings.ToLower(strings.TrimSpace(countryCode))]
	if !ok {
		spirits = defaultSpirits
	}
	return append([]string(nil), spirits...)
}
