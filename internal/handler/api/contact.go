package api

import (
	"errors"
	"net/http"

	"kairo-server/internal/handler/dto/request"
	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	msg, err := h.contactUseCase.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidContact) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message de contact invalide",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusCreated, msg)
}
