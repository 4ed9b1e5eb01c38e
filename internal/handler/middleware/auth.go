package middleware

import (
	"log/slog"
	"net/http"

	"kairo-server/internal/pkg/cookie"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the back-office routes. The session cookie
// carries a signed token; an unsigned or expired value is rejected, not
// merely an absent one.
type AdminAuthMiddleware struct {
	auth usecase.AuthUseCase
}

func NewAdminAuthMiddleware(auth usecase.AuthUseCase) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{auth: auth}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminSession(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			c.Abort()
			return
		}

		if err := m.auth.Verify(token); err != nil {
			slog.Warn("session verification failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalide ou expirée"})
			c.Abort()
			return
		}

		c.Next()
	}
}
