// Package books provides database operations for book records.
//
// This package implements the BookStore interface defined in
// internal/http/stores.go.
package books

import (
	"gorm.io/gorm"

	"locallibrary/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every book with its author, sorted by title.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("title ASC").Find(&books).Error
	return books, err
}

// GetByID retrieves a book with its author and genres populated.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.name ASC")
	}).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetInstances retrieves the copies of a book, sorted by imprint.
func (r *Repository) GetInstances(bookID uint) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Where("book_id = ?", bookID).Order("imprint ASC").Find(&instances).Error
	return instances, err
}

// Create persists a new book. Genres listed on the book are linked
// through the join table, not re-created.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Genres.*", "Author").Create(book).Error
}

// Update replaces all writable fields of the book with the given ID
// and swaps the genre set to exactly the one given.
func (r *Repository) Update(book *entities.Book) error {
	err := r.db.Model(&entities.Book{ID: book.ID}).
		Select("title", "author_id", "summary", "isbn").
		Updates(map[string]any{
			"title":     book.Title,
			"author_id": book.AuthorID,
			"summary":   book.Summary,
			"isbn":      book.ISBN,
		}).Error
	if err != nil {
		return err
	}

	// Replace wants full genre records; the form carries ids only.
	ids := make([]uint, 0, len(book.Genres))
	for _, g := range book.Genres {
		ids = append(ids, g.ID)
	}
	var genres []entities.Genre
	if len(ids) > 0 {
		if err := r.db.Find(&genres, ids).Error; err != nil {
			return err
		}
	}
	return r.db.Model(&entities.Book{ID: book.ID}).
		Association("Genres").Replace(genres)
}

// Delete removes the book with the given ID and its join rows.
func (r *Repository) Delete(id uint) error {
	if err := r.db.Model(&entities.Book{ID: id}).Association("Genres").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&entities.Book{}, id).Error
}

// Count returns the total number of books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
