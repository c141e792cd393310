// Package handler provides HTTP handlers for the catalog feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akhileshms120/irblibrary/internal/api"
	"github.com/akhileshms120/irblibrary/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase defines the catalog operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CatalogUsecase interface {
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
}

// CatalogHandler handles HTTP requests for book-name suggestions.
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Suggestions handles GET /books/suggestions?q=&limit=. A blank query
// returns an empty list.
func (h *CatalogHandler) Suggestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	titles, err := h.uc.SuggestTitles(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: titles})
}
