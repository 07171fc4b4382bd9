package cocktail

import (
	"fmt"
	"strings"
)

// Cocktail is a recommendation picked from the static catalog
type Cocktail struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Recipe      []string `json:"recipe"`
	ImageURL    string   `json:"imageUrl"`
	Mood        string   `json:"mood"`
}

// Request carries the inputs of a cocktail selection
type Request struct {
	CountryCode string
	Condition   string
	Temperature float64
}

// Normalize trims the request strings
func (r *Request) Normalize() {
	r.CountryCode = strings.ToLower(strings.TrimSpace(r.CountryCode))
	r.Condition = strings.TrimSpace(r.Condition)
}

// IsValid checks that a cocktail is well formed
func (c *Cocktail) IsValid() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(c.Ingredients) == 0 {
		return fmt.Errorf("ingredients cannot be empty")
	}
	if len(c.Recipe) == 0 {
		return fmt.Errorf("recipe cannot be empty")
	}
	if !strings.HasPrefix(c.ImageURL, "https://") {
		return fmt.Errorf("image url must be absolute")
	}
	return nil
}

// HasIngredient reports whether any ingredient contains needle, ignoring case
func (c *Cocktail) HasIngredient(needle string) bool {
	needle = strings.ToLower(needle)
	for _, ingredient := range c.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), needle) {
			return true
		}
	}
	return false
}

func (c Cocktail) clone() Cocktail {
	c.Ingredients = append([]string(nil), c.Ingredients...)
	c.Recipe = append([]string(nil), c.Recipe...)
	return c
}

const imageBaseURL = "https://cdn.sunsip.app/cocktails/"

var catalog = []Cocktail{
	{
		Name:        "Mojito",
		Description: "A Havana highball of rum, mint and lime over crushed ice.",
		Ingredients: []string{"2 oz white rum", "6 fresh mint leaves", "1 oz fresh lime juice", "2 tsp sugar", "Soda water"},
		Recipe: []string{
			"Muddle the mint leaves with sugar and lime juice",
			"Add the rum and fill the glass with crushed ice",
			"Top with soda water and garnish with a mint sprig",
		},
		ImageURL: imageBaseURL + "mojito.jpg",
		Mood:     "refreshing",
	},
	{
		Name:        "Margarita",
		Description: "Tequila, orange liqueur and lime, served with a salted rim.",
		Ingredients: []string{"2 oz tequila", "1 oz triple sec", "1 oz fresh lime juice", "Salt for the rim"},
		Recipe: []string{
			"Rub a lime wedge around the rim and dip it in salt",
			"Shake tequila, triple sec and lime juice with ice",
			"Strain into the glass over fresh ice",
		},
		ImageURL: imageBaseURL + "margarita.jpg",
		Mood:     "zesty",
	},
	{
		Name:        "Hot Toddy",
		Description: "Whiskey warmed with honey, lemon and spice.",
		Ingredients: []string{"2 oz whiskey", "1 tbsp honey", "1/2 oz fresh lemon juice", "4 oz hot water", "1 cinnamon stick"},
		Recipe: []string{
			"Pour honey and hot water into a mug and stir until dissolved",
			"Add the whiskey and lemon juice",
			"Garnish with the cinnamon stick",
		},
		ImageURL: imageBaseURL + "hot-toddy.jpg",
		Mood:     "warming",
	},
	{
		Name:        "Old Fashioned",
		Description: "Bourbon stirred down with sugar and bitters.",
		Ingredients: []string{"2 oz bourbon whiskey", "1 sugar cube", "2 dashes Angostura bitters", "Orange peel"},
		Recipe: []string{
			"Muddle the sugar cube with bitters and a splash of water",
			"Add the bourbon and a large ice cube",
			"Stir and express the orange peel over the glass",
		},
		ImageURL: imageBaseURL + "old-fashioned.jpg",
		Mood:     "smooth",
	},
	{
		Name:        "Gin and Tonic",
		Description: "Dry gin lengthened with tonic water and a wedge of lime.",
		Ingredients: []string{"2 oz gin", "4 oz tonic water", "Lime wedge"},
		Recipe: []string{
			"Fill a highball glass with ice",
			"Add the gin and top with tonic water",
			"Squeeze in the lime wedge and stir gently",
		},
		ImageURL: imageBaseURL + "gin-and-tonic.jpg",
		Mood:     "refreshing",
	},
	{
		Name:        "Moscow Mule",
		Description: "Vodka, spicy ginger beer and lime in a copper mug.",
		Ingredients: []string{"2 oz vodka", "4 oz ginger beer", "1/2 oz fresh lime juice", "Lime wheel"},
		Recipe: []string{
			"Fill a copper mug with ice",
			"Add the vodka and lime juice",
			"Top with ginger beer and garnish with the lime wheel",
		},
		ImageURL: imageBaseURL + "moscow-mule.jpg",
		Mood:     "refreshing",
	},
	{
		Name:        "Penicillin",
		Description: "Blended Scotch with honey, ginger and lemon under a smoky Islay float.",
		Ingredients: []string{"2 oz blended Scotch whiskey", "3/4 oz honey-ginger syrup", "3/4 oz fresh lemon juice", "1/4 oz Islay Scotch whiskey"},
		Recipe: []string{
			"Shake the blended Scotch, syrup and lemon juice with ice",
			"Strain over a large ice cube",
			"Float the Islay Scotch on top",
		},
		ImageURL: imageBaseURL + "penicillin.jpg",
		Mood:     "smoky",
	},
	{
		Name:        "Negroni",
		Description: "Equal parts gin, Campari and sweet vermouth.",
		Ingredients: []string{"1 oz gin", "1 oz Campari", "1 oz sweet vermouth", "Orange peel"},
		Recipe: []string{
			"Stir gin, Campari and vermouth with ice",
			"Strain over a large ice cube",
			"Garnish with the orange peel",
		},
		ImageURL: imageBaseURL + "negroni.jpg",
		Mood:     "classic",
	},
	{
		Name:        "Dark 'n' Stormy",
		Description: "Dark rum floated over ginger beer.",
		Ingredients: []string{"2 oz dark rum", "4 oz ginger beer", "Lime wedge"},
		Recipe: []string{
			"Fill a highball glass with ice and ginger beer",
			"Float the dark rum on top",
			"Garnish with the lime wedge",
		},
		ImageURL: imageBaseURL + "dark-n-stormy.jpg",
		Mood:     "spicy",
	},
	{
		Name:        "Espresso Martini",
		Description: "Vodka shaken hard with fresh espresso and coffee liqueur.",
		Ingredients: []string{"2 oz vodka", "1 oz fresh espresso", "1/2 oz coffee liqueur", "3 coffee beans"},
		Recipe: []string{
			"Shake vodka, espresso and coffee liqueur hard with ice",
			"Double strain into a chilled coupe",
			"Garnish with the coffee beans",
		},
		ImageURL: imageBaseURL + "espresso-martini.jpg",
		Mood:     "intense",
	},
}

// Catalog returns a copy of the static cocktail catalog
func Catalog() []Cocktail {
	out := make([]Cocktail, len(catalog))
	for i, c := range catalog {
		out[i] = c.clone()
	}
	return out
}
