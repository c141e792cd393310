package usecase

import (
	"context"
	"strings"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
)

// BorrowingRepository abstracts the persistence layer for borrowing records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type BorrowingRepository interface {
	// Create persists a new borrowing. It returns ErrDuplicateLoanNumber
	// if a record with the same GL number already exists.
	Create(ctx context.Context, b *entity.Borrowing) error

	// Update writes all mutable fields of the borrowing identified by id.
	// It returns ErrNotFound if no such record exists and
	// ErrDuplicateLoanNumber if the new GL number collides.
	Update(ctx context.Context, id string, b *entity.Borrowing) error

	// Delete removes the borrowing identified by id. It returns
	// ErrNotFound if no such record exists.
	Delete(ctx context.Context, id string) error

	// List returns all borrowings ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.Borrowing, error)

	// SearchByBookName returns borrowings whose book name contains the
	// query as a case-insensitive substring, newest first.
	SearchByBookName(ctx context.Context, query string) ([]entity.Borrowing, error)
}

// BorrowingUsecase orchestrates borrowing operations, enforcing domain
// validation before any repository call.
type BorrowingUsecase struct {
	repo BorrowingRepository
}

// NewBorrowingUsecase creates a new BorrowingUsecase with the given repository.
func NewBorrowingUsecase(repo BorrowingRepository) *BorrowingUsecase {
	return &BorrowingUsecase{repo: repo}
}

// Create validates the borrowing and persists it. The returned record
// carries the store-assigned ID and creation timestamp. GL-number
// uniqueness is enforced by the store's unique index; a violation surfaces
// as ErrDuplicateLoanNumber without a second record being written.
func (u *BorrowingUsecase) Create(ctx context.Context, b *entity.Borrowing) (*entity.Borrowing, error) {
	if err := domain.ValidateForCreate(b); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update validates the borrowing and writes all mutable fields to the
// record identified by id. The stored ID and CreatedAt are never touched.
func (u *BorrowingUsecase) Update(ctx context.Context, id string, b *entity.Borrowing) error {
	if err := domain.ValidateForUpdate(b); err != nil {
		return err
	}
	return u.repo.Update(ctx, id, b)
}

// Delete removes the borrowing identified by id. Deletion is permanent;
// deleting an already-removed record returns ErrNotFound.
func (u *BorrowingUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

// List returns all borrowings, newest first.
func (u *BorrowingUsecase) List(ctx context.Context) ([]entity.Borrowing, error) {
	return u.repo.List(ctx)
}

// SearchByBookName returns borrowings matching the query. A blank query is
// rejected with ErrEmptyQuery before any repository call; zero matches is a
// valid, non-error result.
func (u *BorrowingUsecase) SearchByBookName(ctx context.Context, query string) ([]entity.Borrowing, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.repo.SearchByBookName(ctx, query)
}
