// Package adapters provides repository implementations for the catalog feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/akhileshms120/irblibrary/internal/feature/catalog/domain/entity"
	"github.com/akhileshms120/irblibrary/internal/feature/catalog/usecase"
)

// catalogPostgres is a PostgreSQL implementation of the CatalogRepository
// interface. The catalog table is never written by this system.
type catalogPostgres struct {
	db *gorm.DB
}

var _ usecase.CatalogRepository = (*catalogPostgres)(nil)

// NewCatalogRepository creates a new catalog repository backed by the given
// gorm.DB connection.
func NewCatalogRepository(db *gorm.DB) *catalogPostgres {
	return &catalogPostgres{db: db}
}

// SuggestTitles returns up to limit book names containing the query,
// case-insensitively.
func (r *catalogPostgres) SuggestTitles(ctx context.Context, query string, limit int) ([]string, error) {
	var titles []string
	if err := r.db.WithContext(ctx).
		Model(&entity.CatalogEntry{}).
		Where("lower(name_of_book) LIKE lower(?)", "%"+query+"%").
		Limit(limit).
		Pluck("name_of_book", &titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}
