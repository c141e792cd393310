package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/usecase"
)

// profilePostgres is a PostgreSQL implementation of the ProfileRepository
// interface using GORM.
type profilePostgres struct {
	db *gorm.DB
}

// Compile-time check that profilePostgres implements ProfileRepository.
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfileRepository creates a new profile repository backed by the given
// gorm.DB connection.
func NewProfileRepository(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// Create adds a profile for an identity.
func (r *profilePostgres) Create(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByUserID retrieves the profile for an identity. A missing profile
// maps to usecase.ErrProfileNotFound, which callers treat as "no role
// assigned" rather than a failure.
func (r *profilePostgres) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all profiles, newest first.
func (r *profilePostgres) List(ctx context.Context) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
