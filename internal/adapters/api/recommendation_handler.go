package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gin-gonic/gin"
	"sunsip.app/internal/core/account"
	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/recommendation"
)

// RecommendationRequest represents the HTTP request for selecting a city
type RecommendationRequest struct {
	City        string  `json:"city" binding:"required,max=120"`
	Country     string  `json:"country" binding:"max=120"`
	CountryCode string  `json:"countryCode" binding:"omitempty,len=2"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
}

// RecommendationResponse carries the selection outcome and what is left of the daily allowance
type RecommendationResponse struct {
	Recommendation *recommendation.Outcome `json:"recommendation"`
	Limit          account.LimitStatus     `json:"limit"`
}

// createRecommendation handles POST /api/recommendations requests
func (s *HTTPServerAdapter) createRecommendation(c *gin.Context) {
	var req RecommendationRequest
	if !s.bindJSON(c, &req) {
		return
	}

	status, err := s.limiter.CheckAndConsume(c.Request.Context(), subject(c))
	writeLimitHeaders(c, status)
	if err != nil {
		slog.Debug("Recommendation refused", "session", sessionKey(c), "error", err)
		s.handleError(c, err)
		return
	}

	outcome, err := s.recommendationUseCase.SelectCity(c.Request.Context(), sessionKey(c), city.CityOption{
		City:        req.City,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		slog.Error("City selection error", "error", err, "city", req.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{Recommendation: outcome, Limit: status})
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessions.Get(sessionKey(c)).Snapshot())
}

// getLimits handles GET /api/limits requests
func (s *HTTPServerAdapter) getLimits(c *gin.Context) {
	status, err := s.limiter.Status(c.Request.Context(), subject(c))
	if err != nil {
		slog.Error("Request limit status error", "error", err)
		s.handleError(c, err)
		return
	}

	writeLimitHeaders(c, status)
	c.JSON(http.StatusOK, status)
}

func writeLimitHeaders(c *gin.Context, status account.LimitStatus) {
	if status.Unlimited || status.Limit == 0 {
		return
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(status.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(status.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(status.ResetsAt.Unix(), 10))
}
