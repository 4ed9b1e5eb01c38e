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

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, response.NewUserViews(users))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	u, err := h.userUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cet email est déjà utilisé",
			})
		case errors.Is(err, usecase.ErrInvalidUser), errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Données utilisateur invalides",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		}
		return
	}

	c.JSON(http.StatusCreated, response.NewUserView(u))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant invalide",
		})
		return
	}

	u, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur non trouvé",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, response.NewUserView(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant invalide",
		})
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	u, err := h.userUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur non trouvé",
			})
		case errors.Is(err, usecase.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cet email est déjà utilisé",
			})
		case errors.Is(err, usecase.ErrInvalidUser), errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Données utilisateur invalides",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		}
		return
	}

	c.JSON(http.StatusOK, response.NewUserView(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant invalide",
		})
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Utilisateur non trouvé",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
