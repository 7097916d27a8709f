package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/auth"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "examforge_session"

// Context keys set by the session middleware.
const (
	ContextAdminID  = "adminID"
	ContextUsername = "adminUsername"
)

// SessionMiddleware guards the admin write surface behind the session
// cookie.
type SessionMiddleware struct {
	sessions *auth.SessionService
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(sessions *auth.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession aborts with 401 unless the request carries a valid session
// cookie. On success the admin identity is stored on the context.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			code := dto.ErrorCodeInvalidSession
			message := "Invalid session"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredSession
				message = "Session expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(code, message)))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
