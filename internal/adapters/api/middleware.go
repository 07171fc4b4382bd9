package api

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sunsip.app/internal/core/account"
	"sunsip.app/pkg/errors"
)

const (
	clientIDHeader    = "X-Client-ID"
	maxClientIDLength = 64

	contextClientID  = "sunsip.client_id"
	contextUser      = "sunsip.user"
	contextToken     = "sunsip.token"
	contextAuthError = "sunsip.auth_error"
)

// identify resolves the caller: an anonymous client id always, and the user when a valid bearer token is sent.
// An invalid token does not block public routes; requireAuth reports it.
func (s *HTTPServerAdapter) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.GetHeader(clientIDHeader))
		if clientID == "" || len(clientID) > maxClientIDLength {
			clientID = uuid.NewString()
		}
		c.Set(contextClientID, clientID)
		c.Header(clientIDHeader, clientID)

		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := s.accountUseCase.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(contextUser, user)
			c.Set(contextToken, token)
		case errors.IsUnauthorizedError(err):
			c.Set(contextAuthError, err)
		default:
			slog.Error("Authentication failed", "error", err)
			s.handleError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// requireAuth rejects requests without an authenticated user
func (s *HTTPServerAdapter) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) != nil {
			c.Next()
			return
		}

		var err error = errors.NewUnauthorizedError("authentication required")
		if authErr, ok := c.Get(contextAuthError); ok {
			if e, ok := authErr.(error); ok {
				err = e
			}
		}
		s.handleError(c, err)
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func currentUser(c *gin.Context) *account.User {
	value, ok := c.Get(contextUser)
	if !ok {
		return nil
	}
	user, _ := value.(*account.User)
	return user
}

func currentToken(c *gin.Context) string {
	return c.GetString(contextToken)
}

func clientID(c *gin.Context) string {
	return c.GetString(contextClientID)
}

// sessionKey picks the state container of the caller: per user when signed in, per client otherwise
func sessionKey(c *gin.Context) string {
	if user := currentUser(c); user != nil {
		return "user:" + user.ID
	}
	return "client:" + clientID(c)
}

// subject is who the daily request limit counts against
func subject(c *gin.Context) account.Subject {
	if user := currentUser(c); user != nil {
		return account.Subject{Key: "user:" + user.ID, IsAdmin: user.IsAdmin}
	}
	return account.Subject{Key: "client:" + clientID(c)}
}
