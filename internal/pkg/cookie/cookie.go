package cookie

import (
	"net/http"
	"time"

	"kairo-server/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminSessionCookieName = "admin_session"

func SetAdminSession(c *gin.Context, cfg config.SessionConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AdminSessionCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAdminSession(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AdminSessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAdminSession(c *gin.Context) string {
	token, _ := c.Cookie(AdminSessionCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
