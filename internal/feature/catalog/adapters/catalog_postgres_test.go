package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akhileshms120/irblibrary/internal/feature/catalog/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.CatalogEntry{}))

	titles := []entity.CatalogEntry{
		{BookName: "Dune"},
		{BookName: "Dune Messiah"},
		{BookName: "Children of Dune"},
		{BookName: "Hyperion"},
	}
	require.NoError(t, db.Create(&titles).Error)
	return db
}

func TestCatalogPostgres_SuggestTitles(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got, err := repo.SuggestTitles(ctx, "dune", 10)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Dune", "Dune Messiah", "Children of Dune"}, got)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got, err := repo.SuggestTitles(ctx, "dune", 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := repo.SuggestTitles(ctx, "solaris", 10)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
