// Package genres provides database operations for genre records.
//
// This package implements the GenreStore interface defined in
// internal/http/stores.go.
package genres

import (
	"errors"

	"gorm.io/gorm"

	"locallibrary/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every genre, sorted by name.
func (r *Repository) GetAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

// GetByID retrieves a single genre.
func (r *Repository) GetByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetByName retrieves a genre by its exact name, or nil when no
// such genre exists. The match is case-sensitive.
func (r *Repository) GetByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("name = ?", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetBooks retrieves the books tagged with a genre, sorted by title.
func (r *Repository) GetBooks(genreID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error
	return books, err
}

// Create persists a new genre.
func (r *Repository) Create(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// Update replaces the name of the genre with the given ID.
func (r *Repository) Update(genre *entities.Genre) error {
	return r.db.Model(&entities.Genre{ID: genre.ID}).
		Update("name", genre.Name).Error
}

// Delete removes the genre with the given ID and its join rows.
func (r *Repository) Delete(id uint) error {
	if err := r.db.Model(&entities.Genre{ID: id}).Association("Books").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&entities.Genre{}, id).Error
}

// Count returns the total number of genres.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Genre{}).Count(&count).Error
	return count, err
}
