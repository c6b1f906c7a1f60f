// Package instances provides database operations for book copies.
//
// This package implements the BookInstanceStore interface defined in
// internal/http/stores.go.
package instances

import (
	"gorm.io/gorm"

	"locallibrary/internal/entities"
)

// Repository handles all book-instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new instances repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every copy with its book populated.
func (r *Repository) GetAll() ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.Preload("Book").Order("id ASC").Find(&instances).Error
	return instances, err
}

// GetByID retrieves a copy with its book populated.
func (r *Repository) GetByID(id uint) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	if err := r.db.Preload("Book").First(&instance, id).Error; err != nil {
		return nil, err
	}
	return &instance, nil
}

// Create persists a new copy.
func (r *Repository) Create(instance *entities.BookInstance) error {
	return r.db.Omit("Book").Create(instance).Error
}

// Update replaces all writable fields of the copy with the given ID.
func (r *Repository) Update(instance *entities.BookInstance) error {
	return r.db.Model(&entities.BookInstance{ID: instance.ID}).
		Select("book_id", "imprint", "status", "due_back").
		Updates(map[string]any{
			"book_id":  instance.BookID,
			"imprint":  instance.Imprint,
			"status":   instance.Status,
			"due_back": instance.DueBack,
		}).Error
}

// Delete removes the copy with the given ID. Copies have no
// dependents, so deletion is unconditional.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.BookInstance{}, id).Error
}

// Count returns the total number of copies.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).Count(&count).Error
	return count, err
}

// CountAvailable returns the number of copies currently available.
func (r *Repository) CountAvailable() (int64, error) {
	var count int64
	err := r.db.Model(&entities.BookInstance{}).
		Where("status = ?", entities.StatusAvailable).
		Count(&count).Error
	return count, err
}
