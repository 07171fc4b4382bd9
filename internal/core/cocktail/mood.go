package cocktail

import "strings"

// MoodSet names a group of interchangeable mood tags
type MoodSet string

const (
	MoodSetWarming    MoodSet = "warming"
	MoodSetReflective MoodSet = "reflective"
	MoodSetBalanced   MoodSet = "balanced"
	MoodSetBright     MoodSet = "bright"
	MoodSetCooling    MoodSet = "cooling"
	MoodSetDynamic    MoodSet = "dynamic"
	MoodSetMysterious MoodSet = "mysterious"
	MoodSetBold       MoodSet = "bold"
)

const fallbackMood = "balanced"

var moodSets = map[MoodSet][]string{
	MoodSetWarming:    {"warming", "cozy", "comforting"},
	MoodSetReflective: {"reflective", "mellow", "smooth"},
	MoodSetBalanced:   {"balanced", "classic", "smooth"},
	MoodSetBright:     {"bright", "refreshing", "zesty"},
	MoodSetCooling:    {"cooling", "refreshing", "light"},
	MoodSetDynamic:    {"dynamic", "energizing", "spicy"},
	MoodSetMysterious: {"mysterious", "moody", "smoky"},
	MoodSetBold:       {"bold", "intense", "daring"},
}

// Mood is a derived mood tag together with the set it was drawn from
type Mood struct {
	Tag        string   `json:"tag"`
	Set        MoodSet  `json:"set"`
	Candidates []string `json:"candidates"`
}

// Matches reports whether a cocktail mood fits this mood
func (m Mood) Matches(tag string) bool {
	if tag == m.Tag {
		return true
	}
	for _, candidate := range m.Candidates {
		if tag == candidate {
			return true
		}
	}
	return false
}

// ClassifyCondition picks the mood set for a condition and temperature.
// Condition keywords always win over temperature; temperature only decides
// when no keyword in the first group matches.
func ClassifyCondition(condition string, temperature float64) MoodSet {
	c := strings.ToLower(condition)
	switch {
	case containsAny(c, "snow", "sleet"):
		return MoodSetWarming
	case containsAny(c, "rain", "drizzle"):
		return MoodSetReflective
	case containsAny(c, "cloud", "overcast"):
		return MoodSetBalanced
	case containsAny(c, "sunny", "clear"):
		return MoodSetBright
	case temperature > 25:
		return MoodSetCooling
	case temperature < 5:
		return MoodSetWarming
	case strings.Contains(c, "wind"):
		return MoodSetDynamic
	case containsAny(c, "fog", "mist"):
		return MoodSetMysterious
	case containsAny(c, "thunder", "storm"):
		return MoodSetBold
	default:
		return ""
	}
}

// DeriveMood draws one tag from the mood set matching the weather
func DeriveMood(condition string, temperature float64, rng RandomSource) Mood {
	set := ClassifyCondition(condition, temperature)
	if set == "" {
		return Mood{Tag: fallbackMood, Set: MoodSetBalanced, Candidates: append([]string(nil), moodSets[MoodSetBalanced]...)}
	}
	candidates := moodSets[set]
	return Mood{
		Tag:        candidates[rng.IntN(len(candidates))],
		Set:        set,
		Candidates: append([]string(nil), candidates...),
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
