package integration

import (
	"fmt"
	"net/http"

	"sunsip.app/internal/adapters/api"
	"sunsip.app/internal/adapters/database"
	"sunsip.app/internal/core/combination"
	"sunsip.app/internal/core/session"
)

var lisbon = api.RecommendationRequest{
	City:        "Lisbon",
	Country:     "Portugal",
	CountryCode: "PT",
	Latitude:    38.7223,
	Longitude:   -9.1393,
}

func (s *IntegrationTestSuite) TestCompleteCombinationWorkflow() {
	token := s.SignUp("workflow@example.com")

	// Step 1: pick a city; weather comes from the mock upstream
	w := s.request(http.MethodPost, "/api/recommendations", lisbon, bearer(token)...)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var recommendation api.RecommendationResponse
	s.decode(w, &recommendation)
	s.Require().NotNil(recommendation.Recommendation)
	s.False(recommendation.Recommendation.Weather.Synthetic)
	s.Equal(24, recommendation.Recommendation.Weather.Temperature)
	s.Equal(60, recommendation.Recommendation.Weather.Humidity)
	s.NotEmpty(recommendation.Recommendation.Cocktail.Name)
	s.NotEmpty(recommendation.Recommendation.CityImage)

	// Step 2: save the selection
	w = s.request(http.MethodPost, "/api/combinations", map[string]bool{"fromSelection": true}, bearer(token)...)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var saved combination.Combination
	s.decode(w, &saved)
	s.Equal("Lisbon", saved.CityName)
	s.Equal("Portugal", saved.CountryName)
	s.Equal(recommendation.Recommendation.Cocktail.Name, saved.CocktailName)

	var stored database.CombinationModel
	s.Require().NoError(s.db.First(&stored, saved.ID).Error)
	s.Equal(saved.CocktailName, stored.CocktailName)

	path := fmt.Sprintf("/api/combinations/%d", saved.ID)

	// Step 3: rate and revisit it
	w = s.request(http.MethodPatch, path, map[string]interface{}{"rating": 4, "notes": "sunset on the river"}, bearer(token)...)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.request(http.MethodPost, path+"/access", nil, bearer(token)...)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	s.Require().NoError(s.db.First(&stored, saved.ID).Error)
	s.Require().NotNil(stored.Rating)
	s.Equal(4, *stored.Rating)
	s.Equal(1, stored.AccessCount)
	s.NotNil(stored.LastAccessed)

	// Step 4: the list survives a fresh sign in
	w = s.request(http.MethodPost, "/api/auth/signin", map[string]string{"email": "workflow@example.com", "password": "golden-hour"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var signIn struct {
		Session struct {
			Token string `json:"token"`
		} `json:"session"`
	}
	s.decode(w, &signIn)

	w = s.request(http.MethodGet, "/api/combinations", nil, bearer(signIn.Session.Token)...)
	s.Require().Equal(http.StatusOK, w.Code)

	var list api.CombinationsResponse
	s.decode(w, &list)
	s.Require().Len(list.Combinations, 1)
	s.Equal(saved.ID, list.Combinations[0].ID)

	// Step 5: delete it
	w = s.request(http.MethodDelete, path, nil, bearer(token)...)
	s.Equal(http.StatusNoContent, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&database.CombinationModel{}).Where("id = ?", saved.ID).Count(&count).Error)
	s.Zero(count)

	w = s.request(http.MethodGet, "/api/state", nil, bearer(token)...)
	var state session.State
	s.decode(w, &state)
	s.Empty(state.Combinations)
}

func (s *IntegrationTestSuite) TestListKeepsTenMostRecent() {
	token := s.SignUp("collector@example.com")

	w := s.request(http.MethodPost, "/api/recommendations", lisbon, bearer(token)...)
	s.Require().Equal(http.StatusOK, w.Code)

	for i := 0; i < 12; i++ {
		w = s.request(http.MethodPost, "/api/combinations", map[string]bool{"fromSelection": true}, bearer(token)...)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w = s.request(http.MethodGet, "/api/combinations", nil, bearer(token)...)
	s.Require().Equal(http.StatusOK, w.Code)

	var list api.CombinationsResponse
	s.decode(w, &list)
	s.Require().Len(list.Combinations, combination.ListLimit)
	for i := 1; i < len(list.Combinations); i++ {
		s.Greater(list.Combinations[i-1].ID, list.Combinations[i].ID, "newest first")
	}
}

func (s *IntegrationTestSuite) TestCombinationsAreScopedToTheirOwner() {
	owner := s.SignUp("owner@example.com")
	other := s.SignUp("other@example.com")

	w := s.request(http.MethodPost, "/api/recommendations", lisbon, bearer(owner)...)
	s.Require().Equal(http.StatusOK, w.Code)
	w = s.request(http.MethodPost, "/api/combinations", map[string]bool{"fromSelection": true}, bearer(owner)...)
	s.Require().Equal(http.StatusCreated, w.Code)

	var saved combination.Combination
	s.decode(w, &saved)
	path := fmt.Sprintf("/api/combinations/%d", saved.ID)

	w = s.request(http.MethodPatch, path, map[string]interface{}{"rating": 1}, bearer(other)...)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, path, nil, bearer(other)...)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/api/combinations", nil, bearer(other)...)
	var list api.CombinationsResponse
	s.decode(w, &list)
	s.Empty(list.Combinations)
}
