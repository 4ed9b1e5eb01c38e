package api

import (
	"errors"
	"net/http"

	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/infra/blob"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	store *blob.LocalStore
}

func NewUploadHandler(store *blob.LocalStore) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Aucun fichier fourni",
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	defer file.Close()

	url, err := h.store.Save(file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		switch {
		case errors.Is(err, blob.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Type de fichier non supporté",
			})
		case errors.Is(err, blob.ErrTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Fichier trop volumineux",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
