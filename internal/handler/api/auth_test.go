//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"kairo-server/internal/handler/api"
	"kairo-server/internal/handler/middleware"
	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/cookie"
	"kairo-server/internal/pkg/session"
	"kairo-server/internal/usecase"
	"kairo-server/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	sessions := session.NewService(cfg.Session.Secret, cfg.Session.Duration)
	auth := usecase.NewAuthUseCase(cfg, sessions)
	handler := api.NewAuthHandler(auth, cfg)
	adminAuth := middleware.NewAdminAuthMiddleware(auth)

	s.router.POST("/api/auth/login", handler.Login)
	s.router.POST("/api/auth/logout", handler.Logout)
	s.router.GET("/api/auth/verify", handler.Verify)
	s.router.GET("/api/protected", adminAuth.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"

	s.Run("success: sets the session cookie", func() {
		body := map[string]any{"email": "admin@kairo-digital.fr", "password": "admin123"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		c := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
		s.Require().NotNil(c)
		s.NotEmpty(c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 401 on wrong password", func() {
		body := map[string]any{"email": "admin@kairo-digital.fr", "password": "wrong"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Email ou mot de passe incorrect")
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminSessionCookieName))
	})

	s.Run("error: 401 on unknown email", func() {
		body := map[string]any{"email": "autre@kairo-digital.fr", "password": "admin123"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 on malformed body", func() {
		body := map[string]any{"email": "not-an-email"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil)

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	c := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Less(c.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("valid cookie passes", func() {
		login := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "admin@kairo-digital.fr", "password": "admin123"})
		c := httptest.ExtractCookie(login, cookie.AdminSessionCookieName)
		s.Require().NotNil(c)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/auth/verify", nil, []*http.Cookie{c})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("missing cookie fails", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/verify", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session invalide ou expirée")
	})

	s.Run("forged cookie fails", func() {
		forged := &http.Cookie{Name: cookie.AdminSessionCookieName, Value: "forged-token"}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/auth/verify", nil, []*http.Cookie{forged})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestRequireAdmin() {
	s.Run("blocks anonymous requests", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/protected", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentification requise")
	})

	s.Run("lets a logged-in admin through", func() {
		login := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "admin@kairo-digital.fr", "password": "admin123"})
		c := httptest.ExtractCookie(login, cookie.AdminSessionCookieName)
		s.Require().NotNil(c)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/protected", nil, []*http.Cookie{c})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
