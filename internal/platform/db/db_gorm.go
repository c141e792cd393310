// Package db opens and migrates the PostgreSQL database.
package db

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "github.com/akhileshms120/irblibrary/internal/feature/auth/adapters"
	authentity "github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
	borrowingentity "github.com/akhileshms120/irblibrary/internal/feature/borrowing/domain/entity"
	catalogentity "github.com/akhileshms120/irblibrary/internal/feature/catalog/domain/entity"
)

// OpenDB connects to PostgreSQL using the DB_* environment variables,
// retrying for up to a minute while the database comes up. TranslateError
// lets adapters match gorm.ErrDuplicatedKey alongside the raw driver error.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// The unique index on borrowings.gl_no comes from the entity tags;
		// it is the only enforcement of loan-number uniqueness.
		if err := db.AutoMigrate(
			&authentity.User{},
			&authentity.Profile{},
			&authadapters.SessionModel{},
			&borrowingentity.Borrowing{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// ProbeConnection runs a cheap query against the borrowings table and logs
// the outcome. A failed probe is reported but does not stop startup; every
// later operation surfaces its own transport errors.
func ProbeConnection(db *gorm.DB) {
	var count int64
	if err := db.Model(&borrowingentity.Borrowing{}).Limit(1).Count(&count).Error; err != nil {
		slog.Warn("database probe failed", "error", err)
		return
	}
	// The catalog table is owned externally and may be absent in dev.
	if err := db.Model(&catalogentity.CatalogEntry{}).Limit(1).Count(&count).Error; err != nil {
		slog.Warn("catalog table unreachable; suggestions will fail", "error", err)
		return
	}
	slog.Info("database connection verified")
}
