package api

import (
	"net/http"

	"kairo-server/internal/handler/httperr"
	"kairo-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
}

func NewContentHandler(contentUseCase usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
	}
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre page manquant",
		})
		return
	}

	doc, err := h.contentUseCase.GetPage(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ReplacePage stores the document wholesale; partial edits are the
// admin client's concern.
func (h *ContentHandler) ReplacePage(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre page manquant",
		})
		return
	}

	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	if err := h.contentUseCase.ReplacePage(c.Request.Context(), page, doc); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ContentHandler) GetSiteSettings(c *gin.Context) {
	doc, err := h.contentUseCase.GetSiteSettings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) MergeSiteSettings(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Format de requête invalide",
		})
		return
	}

	doc, err := h.contentUseCase.MergeSiteSettings(c.Request.Context(), patch)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, doc)
}
