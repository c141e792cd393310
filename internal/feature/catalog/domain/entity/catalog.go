// Package entity defines the domain models for the catalog feature.
package entity

// CatalogEntry is one title in the library's catalog. The catalog is owned
// by a separate collection and is read-only from this system; it is used
// solely as a source of book-name suggestions.
type CatalogEntry struct {
	ID       uint   `gorm:"primaryKey"`
	BookName string `gorm:"column:name_of_book;size:255;not null"`
}

// TableName returns the table name for GORM.
func (CatalogEntry) TableName() string {
	return "library"
}
