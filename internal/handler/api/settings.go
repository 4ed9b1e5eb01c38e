package api

import (
	"net/http"

	"kairo-server/internal/handler/dto/request"
	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUseCase.Get(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	settings, err := h.settingsUseCase.Update(c.Request.Context(), req.ToPatch())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, settings)
}
