// Package authors provides database operations for author records.
//
// This package implements the AuthorStore interface defined in
// internal/http/stores.go.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetByID(123)
package authors

import (
	"gorm.io/gorm"

	"locallibrary/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every author, sorted by family name.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("family_name ASC, first_name ASC").Find(&authors).Error
	return authors, err
}

// GetByID retrieves a single author.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// GetBooks retrieves the books referencing an author, sorted by title.
func (r *Repository) GetBooks(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Order("title ASC").Find(&books).Error
	return books, err
}

// Create persists a new author.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// Update replaces all writable fields of the author with the given ID.
// Select forces nil dates through so cleared fields are persisted.
func (r *Repository) Update(author *entities.Author) error {
	return r.db.Model(&entities.Author{ID: author.ID}).
		Select("first_name", "family_name", "date_of_birth", "date_of_death").
		Updates(map[string]any{
			"first_name":    author.FirstName,
			"family_name":   author.FamilyName,
			"date_of_birth": author.DateOfBirth,
			"date_of_death": author.DateOfDeath,
		}).Error
}

// Delete removes the author with the given ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}

// Count returns the total number of authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}
