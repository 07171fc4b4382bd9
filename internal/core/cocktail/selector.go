package cocktail

import "math/rand/v2"

// RandomSource supplies uniform random indexes in [0, n)
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomSource returns the process-wide uniform generator
func DefaultRandomSource() RandomSource {
	return globalRandom{}
}

// Selection is the outcome of a catalog lookup
type Selection struct {
	Cocktail Cocktail
	Mood     Mood
	Spirits  []string
	Tier     Tier
}

// Tier records which filter produced a selection
type Tier string

const (
	TierSpiritAndMood Tier = "spirit_and_mood"
	TierSpirit        Tier = "spirit"
	TierMood          Tier = "mood"
	TierAny           Tier = "any"
)

// Selector picks cocktails from a catalog
type Selector struct {
	rng     RandomSource
	catalog []Cocktail
}

// NewSelector creates a selector over the built-in catalog. A nil source uses the default generator.
func NewSelector(rng RandomSource) *Selector {
	return NewSelectorWithCatalog(rng, catalog)
}

// NewSelectorWithCatalog creates a selector over a custom, non-empty catalog
func NewSelectorWithCatalog(rng RandomSource, items []Cocktail) *Selector {
	if rng == nil {
		rng = DefaultRandomSource()
	}
	if len(items) == 0 {
		items = catalog
	}
	return &Selector{rng: rng, catalog: items}
}

// Select never fails: every branch ends in a catalog entry
func (s *Selector) Select(countryCode, condition string, temperature float64) Selection {
	spirits := PreferredSpirits(countryCode)
	mood := DeriveMood(condition, temperature, s.rng)

	spiritMatches := s.filter(func(c *Cocktail) bool {
		for _, spirit := range spirits {
			if c.HasIngredient(spirit) {
				return true
			}
		}
		return false
	})
	moodFilter := func(c *Cocktail) bool { return mood.Matches(c.Mood) }

	result := Selection{Mood: mood, Spirits: spirits}
	if len(spiritMatches) > 0 {
		if both := filter(spiritMatches, moodFilter); len(both) > 0 {
			result.Cocktail, result.Tier = s.pick(both), TierSpiritAndMood
			return result
		}
		result.Cocktail, result.Tier = s.pick(spiritMatches), TierSpirit
		return result
	}

	if moodMatches := s.filter(moodFilter); len(moodMatches) > 0 {
		result.Cocktail, result.Tier = s.pick(moodMatches), TierMood
		return result
	}

	result.Cocktail, result.Tier = s.pick(s.catalog), TierAny
	return result
}

func (s *Selector) filter(keep func(*Cocktail) bool) []Cocktail {
	return filter(s.catalog, keep)
}

func (s *Selector) pick(items []Cocktail) Cocktail {
	return items[s.rng.IntN(len(items))].clone()
}

func filter(items []Cocktail, keep func(*Cocktail) bool) []Cocktail {
	var out []Cocktail
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
