// Package handler provides HTTP handlers for the borrowing feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhileshms120/irblibrary/internal/api"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/transport/http/dto"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/usecase"
)

// BorrowingUsecase defines the borrowing operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type BorrowingUsecase interface {
	Create(ctx context.Context, b *entity.Borrowing) (*entity.Borrowing, error)
	Update(ctx context.Context, id string, b *entity.Borrowing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Borrowing, error)
	SearchByBookName(ctx context.Context, query string) ([]entity.Borrowing, error)
}

// BorrowingHandler handles HTTP requests for borrowing operations.
type BorrowingHandler struct {
	uc BorrowingUsecase
}

// NewBorrowingHandler creates a new BorrowingHandler.
func NewBorrowingHandler(uc BorrowingUsecase) *BorrowingHandler {
	return &BorrowingHandler{uc: uc}
}

// List handles GET /borrowings, returning all records newest first.
func (h *BorrowingHandler) List(c *gin.Context) {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("list borrowings failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.BorrowingListResponse{
		Entries: dto.BorrowingItemsFromEntities(entries),
	})
}

// Search handles GET /borrowings/search?q=. A blank query is rejected; zero
// matches returns an empty list.
func (h *BorrowingHandler) Search(c *gin.Context) {
	entries, err := h.uc.SearchByBookName(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrowingListResponse{
		Entries: dto.BorrowingItemsFromEntities(entries),
	})
}

// Create handles POST /borrowings.
func (h *BorrowingHandler) Create(c *gin.Context) {
	var req dto.BorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create borrowing validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("borrowing recorded", "gl_no", created.GLNo, "book_name", created.BookName)

	item := dto.BorrowingItemFromEntity(created)
	c.JSON(http.StatusCreated, dto.BorrowingMutationResponse{
		Message:   "book borrowing recorded successfully",
		Borrowing: &item,
		Entries:   h.reload(c),
	})
}

// Update handles PUT /borrowings/:id.
func (h *BorrowingHandler) Update(c *gin.Context) {
	var req dto.BorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update borrowing validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	id := c.Param("id")
	if err := h.uc.Update(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("borrowing updated", "id", id)

	c.JSON(http.StatusOK, dto.BorrowingMutationResponse{
		Message: "entry updated successfully",
		Entries: h.reload(c),
	})
}

// Delete handles DELETE /borrowings/:id. Deletion is permanent and
// immediate; there is no soft-delete state.
func (h *BorrowingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("borrowing deleted", "id", id)

	c.JSON(http.StatusOK, dto.BorrowingMutationResponse{
		Message: "entry deleted successfully",
		Entries: h.reload(c),
	})
}

// reload fetches the full collection after a mutation so the response
// carries refreshed state rather than a local patch. Best effort: a reload
// failure is logged but does not fail the mutation that already succeeded.
func (h *BorrowingHandler) reload(c *gin.Context) []dto.BorrowingItem {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Warn("reload after mutation failed", "error", err)
		return []dto.BorrowingItem{}
	}
	return dto.BorrowingItemsFromEntities(entries)
}

// writeError maps usecase and domain errors to HTTP status codes, keeping
// message detail for display.
func (h *BorrowingHandler) writeError(c *gin.Context, err error) {
	switch {
	case domain.IsMissingField(err), errors.Is(err, domain.ErrInvalidDateOrder), errors.Is(err, usecase.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDuplicateLoanNumber):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("borrowing operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}
