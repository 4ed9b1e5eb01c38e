package api

import (
	"errors"
	"net/http"

	"kairo-server/internal/handler/dto/request"
	"kairo-server/internal/handler/dto/response"
	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

func (h *ReservationHandler) Request(c *gin.Context) {
	var req request.RequestReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	reservation, err := h.reservationUseCase.Request(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReservation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Demande de réservation invalide",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusCreated, response.NewReservationView(reservation))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	var req request.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Réservation non trouvée",
		})
		return
	}

	if err := h.reservationUseCase.Cancel(c.Request.Context(), id, req.Token); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Réservation non trouvée",
			})
		case errors.Is(err, usecase.ErrTokenMismatch):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Lien d'annulation invalide",
			})
		case errors.Is(err, usecase.ErrReservationFinalized):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cette réservation est déjà annulée ou terminée",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
