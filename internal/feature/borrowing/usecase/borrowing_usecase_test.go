package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain"
	"github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
)

// mockBorrowingRepository is a mock implementation of BorrowingRepository.
type mockBorrowingRepository struct {
	CreateFunc           func(ctx context.Context, b *entity.Borrowing) error
	UpdateFunc           func(ctx context.Context, id string, b *entity.Borrowing) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListFunc             func(ctx context.Context) ([]entity.Borrowing, error)
	SearchByBookNameFunc func(ctx context.Context, query string) ([]entity.Borrowing, error)

	createCalls int
	searchCalls int
}

func (m *mockBorrowingRepository) Create(ctx context.Context, b *entity.Borrowing) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBorrowingRepository) Update(ctx context.Context, id string, b *entity.Borrowing) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, b)
	}
	return nil
}

func (m *mockBorrowingRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBorrowingRepository) List(ctx context.Context) ([]entity.Borrowing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockBorrowingRepository) SearchByBookName(ctx context.Context, query string) ([]entity.Borrowing, error) {
	m.searchCalls++
	if m.SearchByBookNameFunc != nil {
		return m.SearchByBookNameFunc(ctx, query)
	}
	return nil, nil
}

func testBorrowing() *entity.Borrowing {
	return &entity.Borrowing{
		Name:      "Asha Nair",
		Phone:     "9876543210",
		BookName:  "Dune",
		GLNo:      "GL-100",
		DateTaken: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBorrowingUsecase_Create(t *testing.T) {
	t.Run("valid record is persisted with default due date", func(t *testing.T) {
		repo := &mockBorrowingRepository{
			CreateFunc: func(ctx context.Context, b *entity.Borrowing) error {
				b.ID = "assigned-id"
				b.CreatedAt = time.Now()
				return nil
			},
		}
		uc := NewBorrowingUsecase(repo)

		created, err := uc.Create(context.Background(), testBorrowing())

		require.NoError(t, err)
		assert.Equal(t, "assigned-id", created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, "GL-100", created.GLNo, "submitted fields must come back unchanged")
		assert.False(t, created.DueDate.IsZero())
	})

	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		repo := &mockBorrowingRepository{}
		uc := NewBorrowingUsecase(repo)

		b := testBorrowing()
		b.Name = ""
		_, err := uc.Create(context.Background(), b)

		assert.True(t, domain.IsMissingField(err))
		assert.Zero(t, repo.createCalls, "no gateway call may happen on validation failure")
	})

	t.Run("duplicate gl number surfaces unchanged", func(t *testing.T) {
		repo := &mockBorrowingRepository{
			CreateFunc: func(ctx context.Context, b *entity.Borrowing) error {
				return ErrDuplicateLoanNumber
			},
		}
		uc := NewBorrowingUsecase(repo)

		_, err := uc.Create(context.Background(), testBorrowing())

		assert.True(t, errors.Is(err, ErrDuplicateLoanNumber))
	})
}

func TestBorrowingUsecase_Update(t *testing.T) {
	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		called := false
		repo := &mockBorrowingRepository{
			UpdateFunc: func(ctx context.Context, id string, b *entity.Borrowing) error {
				called = true
				return nil
			},
		}
		uc := NewBorrowingUsecase(repo)

		b := testBorrowing()
		b.GLNo = ""
		err := uc.Update(context.Background(), "some-id", b)

		assert.True(t, domain.IsMissingField(err))
		assert.False(t, called)
	})

	t.Run("missing record", func(t *testing.T) {
		repo := &mockBorrowingRepository{
			UpdateFunc: func(ctx context.Context, id string, b *entity.Borrowing) error {
				return ErrNotFound
			},
		}
		uc := NewBorrowingUsecase(repo)

		err := uc.Update(context.Background(), "missing", testBorrowing())

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestBorrowingUsecase_SearchByBookName(t *testing.T) {
	t.Run("blank query is rejected before any repository call", func(t *testing.T) {
		repo := &mockBorrowingRepository{}
		uc := NewBorrowingUsecase(repo)

		for _, q := range []string{"", "   "} {
			_, err := uc.SearchByBookName(context.Background(), q)
			assert.True(t, errors.Is(err, ErrEmptyQuery))
		}
		assert.Zero(t, repo.searchCalls)
	})

	t.Run("query is trimmed and delegated", func(t *testing.T) {
		repo := &mockBorrowingRepository{
			SearchByBookNameFunc: func(ctx context.Context, query string) ([]entity.Borrowing, error) {
				assert.Equal(t, "dune", query)
				return []entity.Borrowing{{BookName: "Dune"}}, nil
			},
		}
		uc := NewBorrowingUsecase(repo)

		out, err := uc.SearchByBookName(context.Background(), "  dune  ")

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Dune", out[0].BookName)
	})

	t.Run("zero matches is not an error", func(t *testing.T) {
		repo := &mockBorrowingRepository{
			SearchByBookNameFunc: func(ctx context.Context, query string) ([]entity.Borrowing, error) {
				return []entity.Borrowing{}, nil
			},
		}
		uc := NewBorrowingUsecase(repo)

		out, err := uc.SearchByBookName(context.Background(), "nothing")

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestBorrowingUsecase_Delete(t *testing.T) {
	repo := &mockBorrowingRepository{
		DeleteFunc: func(ctx context.Context, id string) error {
			if id != "existing" {
				return ErrNotFound
			}
			return nil
		},
	}
	uc := NewBorrowingUsecase(repo)

	assert.NoError(t, uc.Delete(context.Background(), "existing"))
	assert.True(t, errors.Is(uc.Delete(context.Background(), "gone"), ErrNotFound))
}
