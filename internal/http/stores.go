package http

import (
	"locallibrary/internal/entities"
)

// Store interfaces consumed by the controllers. The repositories in
// internal/database implement them.

// AuthorStore provides author persistence operations.
type AuthorStore interface {
	GetAll() ([]entities.Author, error)
	GetByID(id uint) (*entities.Author, error)
	GetBooks(authorID uint) ([]entities.Book, error)
	Create(author *entities.Author) error
	Update(author *entities.Author) error
	Delete(id uint) error
	Count() (int64, error)
}

// GenreStore provides genre persistence operations.
type GenreStore interface {
	GetAll() ([]entities.Genre, error)
	GetByID(id uint) (*entities.Genre, error)
	GetByName(name string) (*entities.Genre, error)
	GetBooks(genreID uint) ([]entities.Book, error)
	Create(genre *entities.Genre) error
	Update(genre *entities.Genre) error
	Delete(id uint) error
	Count() (int64, error)
}

// BookStore provides book persistence operations.
type BookStore interface {
	GetAll() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	GetInstances(bookID uint) ([]entities.BookInstance, error)
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	Delete(id uint) error
	Count() (int64, error)
}

// BookInstanceStore provides book-copy persistence operations.
type BookInstanceStore interface {
	GetAll() ([]entities.BookInstance, error)
	GetByID(id uint) (*entities.BookInstance, error)
	Create(instance *entities.BookInstance) error
	Update(instance *entities.BookInstance) error
	Delete(id uint) error
	Count() (int64, error)
	CountAvailable() (int64, error)
}
