package books

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
)

type fixtures struct {
	author  entities.Author
	fantasy entities.Genre
	scifi   entities.Genre
}

func setupTestDB(t *testing.T) (*database.Database, fixtures) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := fixtures{
		author:  entities.Author{FirstName: "Patrick", FamilyName: "Rothfuss"},
		fantasy: entities.Genre{Name: "Fantasy"},
		scifi:   entities.Genre{Name: "Science Fiction"},
	}
	require.NoError(t, db.DB.Create(&f.author).Error)
	require.NoError(t, db.DB.Create(&f.fantasy).Error)
	require.NoError(t, db.DB.Create(&f.scifi).Error)
	return db, f
}

func TestRepository_CreateLinksGenres(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	book := &entities.Book{
		Title:    "The Name of the Wind",
		AuthorID: f.author.ID,
		Summary:  "A young man grows up to be a legendary wizard.",
		ISBN:     "9780756404741",
		Genres:   []entities.Genre{{ID: f.fantasy.ID}},
	}
	require.NoError(t, repo.Create(book))
	require.NotZero(t, book.ID)

	got, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rothfuss, Patrick", got.Author.Name())
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Fantasy", got.Genres[0].Name)

	// linking must not have re-created the genre
	var genreCount int64
	require.NoError(t, db.DB.Model(&entities.Genre{}).Count(&genreCount).Error)
	assert.Equal(t, int64(2), genreCount)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewRepository(db.DB)

	_, err := repo.GetByID(99999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_GetAllSortedWithAuthors(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	require.NoError(t, repo.Create(&entities.Book{
		Title: "The Wise Man's Fear", AuthorID: f.author.ID, Summary: "s", ISBN: "2",
	}))
	require.NoError(t, repo.Create(&entities.Book{
		Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1",
	}))

	books, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "The Name of the Wind", books[0].Title)
	assert.Equal(t, "Rothfuss", books[0].Author.FamilyName)
}

func TestRepository_UpdateReplacesGenreSet(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	book := &entities.Book{
		Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1",
		Genres: []entities.Genre{{ID: f.fantasy.ID}},
	}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.Update(&entities.Book{
		ID: book.ID, Title: "The Name of the Wind (10th Anniversary)",
		AuthorID: f.author.ID, Summary: "s", ISBN: "1",
		Genres: []entities.Genre{{ID: f.scifi.ID}},
	}))

	got, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Name of the Wind (10th Anniversary)", got.Title)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Science Fiction", got.Genres[0].Name)
}

func TestRepository_UpdateClearsGenres(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	book := &entities.Book{
		Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1",
		Genres: []entities.Genre{{ID: f.fantasy.ID}, {ID: f.scifi.ID}},
	}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.Update(&entities.Book{
		ID: book.ID, Title: book.Title, AuthorID: f.author.ID, Summary: "s", ISBN: "1",
	}))

	got, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestRepository_GetInstancesSorted(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	book := &entities.Book{Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1"}
	require.NoError(t, repo.Create(book))

	for _, imprint := range []string{"Gollancz, 2011", "DAW Books, 2007"} {
		require.NoError(t, db.DB.Create(&entities.BookInstance{
			BookID: book.ID, Imprint: imprint, Status: entities.StatusAvailable,
		}).Error)
	}

	instances, err := repo.GetInstances(book.ID)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, "DAW Books, 2007", instances[0].Imprint)
}

func TestRepository_DeleteClearsJoinRows(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	book := &entities.Book{
		Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1",
		Genres: []entities.Genre{{ID: f.fantasy.ID}},
	}
	require.NoError(t, repo.Create(book))
	require.NoError(t, repo.Delete(book.ID))

	_, err := repo.GetByID(book.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	var joinCount int64
	require.NoError(t, db.DB.Table("book_genres").Count(&joinCount).Error)
	assert.Zero(t, joinCount)
}

func TestRepository_Count(t *testing.T) {
	db, f := setupTestDB(t)
	repo := NewRepository(db.DB)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(&entities.Book{
		Title: "The Name of the Wind", AuthorID: f.author.ID, Summary: "s", ISBN: "1",
	}))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
