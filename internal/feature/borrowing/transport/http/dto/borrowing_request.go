// Package dto defines data transfer objects for the borrowing feature's
// HTTP transport layer.
package dto

import (
	openapitypes "github.com/oapi-codegen/runtime/types"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
)

// BorrowingRequest is the request body for creating or updating a
// borrowing. Dates are calendar dates (YYYY-MM-DD), not timestamps. DueDate
// is optional; when omitted the default loan period is applied.
type BorrowingRequest struct {
	Name      string             `json:"name" binding:"required"`
	Phone     string             `json:"phone" binding:"required"`
	BookName  string             `json:"book_name" binding:"required"`
	GLNo      string             `json:"gl_no" binding:"required"`
	DateTaken openapitypes.Date  `json:"date_taken" binding:"required"`
	DueDate   *openapitypes.Date `json:"due_date"`
}

// ToEntity converts the request into a domain entity.
func (r *BorrowingRequest) ToEntity() *entity.Borrowing {
	b := &entity.Borrowing{
		Name:      r.Name,
		Phone:     r.Phone,
		BookName:  r.BookName,
		GLNo:      r.GLNo,
		DateTaken: r.DateTaken.Time,
	}
	if r.DueDate != nil {
		b.DueDate = r.DueDate.Time
	}
	return b
}
