package api

import (
	"errors"
	"net/http"

	"kairo-server/internal/handler/dto/request"
	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/cookie"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	session     config.SessionConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		session:     cfg.Session,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	token, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Email ou mot de passe incorrect",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	cookie.SetAdminSession(c, h.session, token, h.session.Duration)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminSession(c, h.session)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	token := cookie.GetAdminSession(c)
	if err := h.authUseCase.Verify(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session invalide ou expirée",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
