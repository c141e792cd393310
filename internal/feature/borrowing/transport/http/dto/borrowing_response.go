package dto

import (
	"time"

	openapitypes "github.com/oapi-codegen/runtime/types"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
)

// BorrowingItem is one borrowing in a response. Dates are rendered as
// calendar dates; CreatedAt keeps its full timestamp.
type BorrowingItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	BookName  string            `json:"book_name"`
	GLNo      string            `json:"gl_no"`
	DateTaken openapitypes.Date `json:"date_taken"`
	DueDate   openapitypes.Date `json:"due_date"`
	Overdue   bool              `json:"overdue"`
	CreatedAt time.Time         `json:"created_at"`
}

// BorrowingItemFromEntity converts a domain entity into a response item,
// flagging overdue loans as of now.
func BorrowingItemFromEntity(b *entity.Borrowing) BorrowingItem {
	return BorrowingItem{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		BookName:  b.BookName,
		GLNo:      b.GLNo,
		DateTaken: openapitypes.Date{Time: b.DateTaken},
		DueDate:   openapitypes.Date{Time: b.DueDate},
		Overdue:   entity.IsOverdue(b.DueDate, time.Now()),
		CreatedAt: b.CreatedAt,
	}
}

// BorrowingItemsFromEntities converts a slice of entities.
func BorrowingItemsFromEntities(bs []entity.Borrowing) []BorrowingItem {
	out := make([]BorrowingItem, 0, len(bs))
	for i := range bs {
		out = append(out, BorrowingItemFromEntity(&bs[i]))
	}
	return out
}

// BorrowingListResponse is the body for list and search responses, and is
// embedded in mutation responses so clients always observe the refreshed
// collection after a write.
type BorrowingListResponse struct {
	Entries []BorrowingItem `json:"entries"`
}

// BorrowingMutationResponse is the body for create/update/delete. Entries
// carries the full reloaded collection.
type BorrowingMutationResponse struct {
	Message   string          `json:"message"`
	Borrowing *BorrowingItem  `json:"borrowing,omitempty"`
	Entries   []BorrowingItem `json:"entries"`
}
