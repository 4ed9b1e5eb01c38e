package api

import (
	"errors"
	"net/http"
	"time"

	"kairo-server/internal/handler/dto/request"
	"kairo-server/internal/handler/dto/response"
	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// GetAvailability returns every collection the booking calendar needs
// for the requested window in a single response.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	start, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre startDate manquant ou invalide",
		})
		return
	}
	end, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre endDate manquant ou invalide",
		})
		return
	}

	data, err := h.bookingUseCase.GetAvailability(c.Request.Context(), start, end)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, response.NewAvailabilityDataResponse(data))
}

func (h *BookingHandler) CreateAvailability(c *gin.Context) {
	var req request.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date invalide",
		})
		return
	}

	availability, err := h.bookingUseCase.CreateAvailability(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur non trouvé",
			})
		case errors.Is(err, usecase.ErrInvalidAvailability):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Disponibilité invalide",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		}
		return
	}

	c.JSON(http.StatusCreated, availability)
}

func (h *BookingHandler) DeleteAvailability(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre id manquant",
		})
		return
	}

	// A malformed id cannot match any row, so it gets the not-found reply.
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Disponibilité non trouvée",
		})
		return
	}

	if err := h.bookingUseCase.DeleteAvailability(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAvailabilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Disponibilité non trouvée",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BookingHandler) CreateExclusion(c *gin.Context) {
	var req request.CreateExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	in, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date invalide",
		})
		return
	}

	exclusion, err := h.bookingUseCase.CreateExclusion(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidExclusion) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Période d'exclusion invalide",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusCreated, exclusion)
}

func (h *BookingHandler) DeleteExclusion(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre id manquant",
		})
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Exclusion non trouvée",
		})
		return
	}

	if err := h.bookingUseCase.DeleteExclusion(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrExclusionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Exclusion non trouvée",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseDateParam accepts both plain dates and full RFC 3339 timestamps,
// since the calendar client sends either depending on the view.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
