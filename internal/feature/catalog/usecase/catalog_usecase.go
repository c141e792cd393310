// Package usecase implements the business logic for catalog suggestions.
package usecase

import (
	"context"
	"strings"
)

// DefaultSuggestionLimit caps how many titles a single suggestion query
// returns when the caller does not ask for a specific limit.
const DefaultSuggestionLimit = 10

// CatalogRepository abstracts the read-only catalog collection.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CatalogRepository interface {
	// SuggestTitles returns up to limit titles containing the query as a
	// case-insensitive substring.
	SuggestTitles(ctx context.Context, query string, limit int) ([]string, error)
}

// CatalogUsecase provides book-name autocomplete suggestions.
type CatalogUsecase struct {
	repo CatalogRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(repo CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

// SuggestTitles returns titles matching the query. A blank query yields an
// empty suggestion list without touching the store. A non-positive limit
// falls back to DefaultSuggestionLimit.
func (u *CatalogUsecase) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	return u.repo.SuggestTitles(ctx, query, limit)
}
