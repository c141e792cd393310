// Package adapters provides repository implementations for the borrowing feature.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a unique-constraint
// violation.
const pgUniqueViolation = "23505"

// borrowingPostgres is a PostgreSQL implementation of the
// BorrowingRepository interface using GORM.
type borrowingPostgres struct {
	db *gorm.DB
}

// Compile-time check that borrowingPostgres implements BorrowingRepository.
var _ usecase.BorrowingRepository = (*borrowingPostgres)(nil)

// NewBorrowingRepository creates a new borrowing repository backed by the
// given gorm.DB connection.
func NewBorrowingRepository(db *gorm.DB) *borrowingPostgres {
	return &borrowingPostgres{db: db}
}

// Create inserts a borrowing, assigning a fresh UUID when the caller did
// not provide one. A unique-index violation on gl_no is mapped to
// usecase.ErrDuplicateLoanNumber.
func (r *borrowingPostgres) Create(ctx context.Context, b *entity.Borrowing) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateLoanNumber
		}
		return err
	}
	return nil
}

// Update writes all mutable fields of the record identified by id. The ID
// and CreatedAt columns are never modified.
func (r *borrowingPostgres) Update(ctx context.Context, id string, b *entity.Borrowing) error {
	var existing entity.Borrowing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrNotFound
		}
		return err
	}

	fields := map[string]any{
		"name":       b.Name,
		"phone":      b.Phone,
		"book_name":  b.BookName,
		"gl_no":      b.GLNo,
		"date_taken": b.DateTaken,
		"due_date":   b.DueDate,
	}
	if err := r.db.WithContext(ctx).
		Model(&entity.Borrowing{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateLoanNumber
		}
		return err
	}
	return nil
}

// Delete removes the record identified by id. Deleting a record that is
// already gone returns usecase.ErrNotFound.
func (r *borrowingPostgres) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Borrowing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// List returns all borrowings ordered by creation time, newest first.
func (r *borrowingPostgres) List(ctx context.Context) ([]entity.Borrowing, error) {
	var out []entity.Borrowing
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByBookName returns borrowings whose book name contains the query as
// a case-insensitive substring. lower() LIKE keeps the comparison portable
// across PostgreSQL and the SQLite test database.
func (r *borrowingPostgres) SearchByBookName(ctx context.Context, query string) ([]entity.Borrowing, error) {
	var out []entity.Borrowing
	if err := r.db.WithContext(ctx).
		Where("lower(book_name) LIKE lower(?)", "%"+query+"%").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either the PostgreSQL driver or GORM's translated error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
