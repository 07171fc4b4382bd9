package api

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	errorspkg "sunsip.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	response := ErrorResponse{Error: appErr.Message, Fields: appErr.Fields}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
	case errorspkg.UnauthorizedError:
		statusCode = http.StatusUnauthorized
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
	case errorspkg.AlreadyExistsError:
		statusCode = http.StatusConflict
	case errorspkg.RateLimitError:
		statusCode = http.StatusTooManyRequests
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		response = ErrorResponse{Error: "External service unavailable"}
	default:
		statusCode = http.StatusInternalServerError
		response = ErrorResponse{Error: "Internal server error"}
	}

	c.JSON(statusCode, response)
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// HealthResponse is the aggregated health report
type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// getHealth handles GET /api/health requests; any unhealthy component turns the response into 503
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for name, component := range results {
		if component.Status == "unhealthy" {
			slog.Warn("Component unhealthy", "component", name, "error", component.Error)
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: results})
}
