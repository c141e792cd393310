// Package di wires implementation choices that depend on what backing
// services are available at startup.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "github.com/akhileshms120/irblibrary/internal/feature/auth/adapters"
	"github.com/akhileshms120/irblibrary/internal/feature/auth/usecase"
	"github.com/akhileshms120/irblibrary/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to PostgreSQL.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionRepository(db)
}
