package session

import (
	"sync"
	"time"

	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/combination"
	"sunsip.app/internal/core/weather"
)

// MaxCachedCombinations bounds the per-session combination cache
const MaxCachedCombinations = 20

// Token identifies one city selection; a newer selection supersedes older tokens
type Token uint64

// Selection is what the user is currently looking at
type Selection struct {
	City      *city.CityOption   `json:"city,omitempty"`
	Weather   *weather.Snapshot  `json:"weather,omitempty"`
	Cocktail  *cocktail.Cocktail `json:"cocktail,omitempty"`
	CityImage string             `json:"cityImage,omitempty"`
}

// State is a point-in-time copy of a session
type State struct {
	Selection    Selection                 `json:"selection"`
	Loading      bool                      `json:"loading"`
	LastError    string                    `json:"lastError,omitempty"`
	Combinations []combination.Combination `json:"combinations"`
	Token        Token                     `json:"token"`
}

// Result is the output of the concurrent part of a selection
type Result struct {
	CityImage string
	Cocktail  cocktail.Cocktail
}

// Container holds the state of one session. All methods are safe for concurrent use.
type Container struct {
	mu       sync.Mutex
	state    State
	lastUsed time.Time
	now      func() time.Time
}

// NewContainer creates an empty session
func NewContainer(now func() time.Time) *Container {
	if now == nil {
		now = time.Now
	}
	return &Container{now: now, lastUsed: now()}
}

// BeginSelection starts a selection for c and returns its token.
// Weather, cocktail and image from any previous selection are cleared.
func (s *Container) BeginSelection(c city.CityOption) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.state.Token++
	s.state.Selection = Selection{City: &c}
	s.state.Loading = true
	s.state.LastError = ""
	return s.state.Token
}

// SetWeather stores the weather for the selection; stale tokens are ignored
func (s *Container) SetWeather(token Token, snapshot weather.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.state.Token {
		return false
	}
	s.state.Selection.Weather = &snapshot
	return true
}

// CompleteSelection stores the result and clears loading; stale tokens are ignored
func (s *Container) CompleteSelection(token Token, result Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.state.Token {
		return false
	}
	s.state.Selection.CityImage = result.CityImage
	s.state.Selection.Cocktail = &result.Cocktail
	s.state.Loading = false
	return true
}

// FailSelection records err and clears loading, keeping whatever was already stored
func (s *Container) FailSelection(token Token, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.state.Token {
		return false
	}
	s.state.Loading = false
	if err != nil {
		s.state.LastError = err.Error()
	}
	return true
}

// AddCombination puts c first, evicting the oldest past the cap
func (s *Container) AddCombination(c combination.Combination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.state.Combinations = append([]combination.Combination{c.Clone()}, s.state.Combinations...)
	if len(s.state.Combinations) > MaxCachedCombinations {
		s.state.Combinations = s.state.Combinations[:MaxCachedCombinations]
	}
}

// ReplaceCombinations swaps in a list already ordered most recent first
func (s *Container) ReplaceCombinations(items []combination.Combination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	if len(items) > MaxCachedCombinations {
		items = items[:MaxCachedCombinations]
	}
	s.state.Combinations = make([]combination.Combination, len(items))
	for i := range items {
		s.state.Combinations[i] = items[i].Clone()
	}
}

// UpdateCombination replaces the cached entry with the same id
func (s *Container) UpdateCombination(c combination.Combination) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Combinations {
		if s.state.Combinations[i].ID == c.ID {
			s.state.Combinations[i] = c.Clone()
			return true
		}
	}
	return false
}

// RemoveCombination drops the cached entry with id
func (s *Container) RemoveCombination(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Combinations {
		if s.state.Combinations[i].ID == id {
			s.state.Combinations = append(s.state.Combinations[:i], s.state.Combinations[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state
func (s *Container) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	out := s.state
	out.Combinations = make([]combination.Combination, len(s.state.Combinations))
	for i := range s.state.Combinations {
		out.Combinations[i] = s.state.Combinations[i].Clone()
	}
	if s.state.Selection.City != nil {
		c := *s.state.Selection.City
		out.Selection.City = &c
	}
	if s.state.Selection.Weather != nil {
		w := *s.state.Selection.Weather
		out.Selection.Weather = &w
	}
	if s.state.Selection.Cocktail != nil {
		c := *s.state.Selection.Cocktail
		out.Selection.Cocktail = &c
	}
	return out
}

// IdleSince reports when the session was last used
func (s *Container) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUsed
}

func (s *Container) touch() {
	s.lastUsed = s.now()
}
