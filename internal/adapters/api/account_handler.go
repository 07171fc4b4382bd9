package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"sunsip.app/internal/core/account"
)

// CredentialsRequest represents the HTTP request for signing up or in
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=72"`
}

// SessionResponse describes the signed-in user
type SessionResponse struct {
	User account.User `json:"user"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// signUp handles POST /api/auth/signup requests
func (s *HTTPServerAdapter) signUp(c *gin.Context) {
	var req CredentialsRequest
	if !s.bindJSON(c, &req) {
		return
	}

	result, err := s.accountUseCase.SignUp(c.Request.Context(), account.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Debug("Sign up failed", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// signIn handles POST /api/auth/signin requests
func (s *HTTPServerAdapter) signIn(c *gin.Context) {
	var req CredentialsRequest
	if !s.bindJSON(c, &req) {
		return
	}

	result, err := s.accountUseCase.SignIn(c.Request.Context(), account.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Debug("Sign in failed", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// signOut handles POST /api/auth/signout requests; it succeeds without a session too
func (s *HTTPServerAdapter) signOut(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
		return
	}

	if err := s.accountUseCase.SignOut(c.Request.Context(), currentToken(c)); err != nil {
		slog.Error("Sign out error", "error", err, "user_id", user.ID)
		s.handleError(c, err)
		return
	}

	s.sessions.Remove(sessionKey(c))
	c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
}

// getSession handles GET /api/auth/session requests
func (s *HTTPServerAdapter) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{User: *currentUser(c)})
}
