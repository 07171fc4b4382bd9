package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/combination"
	"sunsip.app/internal/core/weather"
	"sunsip.app/pkg/errors"
)

// SaveCombinationRequest represents the HTTP request for saving a combination.
// With FromSelection set, the caller's current selection is saved and the other fields are ignored.
type SaveCombinationRequest struct {
	FromSelection bool              `json:"fromSelection"`
	CityImageURL  string            `json:"cityImageUrl" binding:"omitempty,url,max=2048"`
	Weather       weather.Snapshot  `json:"weather"`
	Cocktail      cocktail.Cocktail `json:"cocktail"`
}

// RateCombinationRequest represents the HTTP request for rating a combination
type RateCombinationRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,rating"`
	Notes  *string `json:"notes" binding:"omitempty,max=1000"`
}

// CombinationsResponse lists saved combinations, newest first
type CombinationsResponse struct {
	Combinations []*combination.Combination `json:"combinations"`
}

// listCombinations handles GET /api/combinations requests and refreshes the session cache
func (s *HTTPServerAdapter) listCombinations(c *gin.Context) {
	user := currentUser(c)

	items, err := s.combinationUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("List combinations error", "error", err, "user_id", user.ID)
		s.handleError(c, err)
		return
	}

	cached := make([]combination.Combination, 0, len(items))
	for _, item := range items {
		cached = append(cached, *item)
	}
	s.sessions.Get(sessionKey(c)).ReplaceCombinations(cached)

	c.JSON(http.StatusOK, CombinationsResponse{Combinations: items})
}

// saveCombination handles POST /api/combinations requests
func (s *HTTPServerAdapter) saveCombination(c *gin.Context) {
	var req SaveCombinationRequest
	if !s.bindJSON(c, &req) {
		return
	}

	user := currentUser(c)
	state := s.sessions.Get(sessionKey(c))

	request := combination.SaveRequest{
		CityImageURL: req.CityImageURL,
		Weather:      req.Weather,
		Cocktail:     req.Cocktail,
	}
	if req.FromSelection {
		selection := state.Snapshot().Selection
		if selection.Weather == nil || selection.Cocktail == nil {
			s.handleError(c, errors.NewValidationError("no completed selection to save"))
			return
		}
		request = combination.SaveRequest{
			CityImageURL: selection.CityImage,
			Weather:      *selection.Weather,
			Cocktail:     *selection.Cocktail,
		}
	}

	saved, err := s.combinationUseCase.Save(c.Request.Context(), user.ID, request)
	if err != nil {
		slog.Error("Save combination error", "error", err, "user_id", user.ID)
		s.handleError(c, err)
		return
	}

	state.AddCombination(*saved)
	c.JSON(http.StatusCreated, saved)
}

// rateCombination handles PATCH /api/combinations/:id requests
func (s *HTTPServerAdapter) rateCombination(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var req RateCombinationRequest
	if !s.bindJSON(c, &req) {
		return
	}

	user := currentUser(c)
	updated, err := s.combinationUseCase.Rate(c.Request.Context(), user.ID, id, combination.RateRequest{
		Rating: req.Rating,
		Notes:  req.Notes,
	})
	if err != nil {
		slog.Error("Rate combination error", "error", err, "user_id", user.ID, "id", id)
		s.handleError(c, err)
		return
	}

	s.sessions.Get(sessionKey(c)).UpdateCombination(*updated)
	c.JSON(http.StatusOK, updated)
}

// recordCombinationAccess handles POST /api/combinations/:id/access requests
func (s *HTTPServerAdapter) recordCombinationAccess(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	user := currentUser(c)
	updated, err := s.combinationUseCase.RecordAccess(c.Request.Context(), user.ID, id)
	if err != nil {
		slog.Error("Record combination access error", "error", err, "user_id", user.ID, "id", id)
		s.handleError(c, err)
		return
	}

	s.sessions.Get(sessionKey(c)).UpdateCombination(*updated)
	c.JSON(http.StatusOK, updated)
}

// deleteCombination handles DELETE /api/combinations/:id requests
func (s *HTTPServerAdapter) deleteCombination(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	user := currentUser(c)
	if err := s.combinationUseCase.Delete(c.Request.Context(), user.ID, id); err != nil {
		slog.Error("Delete combination error", "error", err, "user_id", user.ID, "id", id)
		s.handleError(c, err)
		return
	}

	s.sessions.Get(sessionKey(c)).RemoveCombination(id)
	c.Status(http.StatusNoContent)
}
