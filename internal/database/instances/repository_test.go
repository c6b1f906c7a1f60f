package instances

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/database"
	"locallibrary/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, entities.Book) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	author := entities.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, db.DB.Create(&author).Error)
	book := entities.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "s", ISBN: "1"}
	require.NoError(t, db.DB.Create(&book).Error)
	return db, book
}

func TestRepository_CreateAndGet(t *testing.T) {
	db, book := setupTestDB(t)
	repo := NewRepository(db.DB)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	instance := &entities.BookInstance{
		BookID:  book.ID,
		Imprint: "DAW Books, 2007",
		Status:  entities.StatusLoaned,
		DueBack: &due,
	}
	require.NoError(t, repo.Create(instance))
	require.NotZero(t, instance.ID)

	got, err := repo.GetByID(instance.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Name of the Wind", got.Book.Title)
	assert.Equal(t, entities.StatusLoaned, got.Status)
	require.NotNil(t, got.DueBack)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewRepository(db.DB)

	_, err := repo.GetByID(99999)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_UpdateClearsDueBack(t *testing.T) {
	db, book := setupTestDB(t)
	repo := NewRepository(db.DB)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	instance := &entities.BookInstance{
		BookID: book.ID, Imprint: "DAW Books, 2007",
		Status: entities.StatusLoaned, DueBack: &due,
	}
	require.NoError(t, repo.Create(instance))

	require.NoError(t, repo.Update(&entities.BookInstance{
		ID: instance.ID, BookID: book.ID, Imprint: "DAW Books, 2007",
		Status: entities.StatusAvailable,
	}))

	got, err := repo.GetByID(instance.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusAvailable, got.Status)
	assert.Nil(t, got.DueBack)
}

func TestRepository_Delete(t *testing.T) {
	db, book := setupTestDB(t)
	repo := NewRepository(db.DB)

	instance := &entities.BookInstance{BookID: book.ID, Imprint: "DAW Books, 2007", Status: entities.StatusAvailable}
	require.NoError(t, repo.Create(instance))
	require.NoError(t, repo.Delete(instance.ID))

	_, err := repo.GetByID(instance.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_CountAvailable(t *testing.T) {
	db, book := setupTestDB(t)
	repo := NewRepository(db.DB)

	statuses := []entities.InstanceStatus{
		entities.StatusAvailable,
		entities.StatusAvailable,
		entities.StatusLoaned,
		entities.StatusMaintenance,
	}
	for i, status := range statuses {
		require.NoError(t, repo.Create(&entities.BookInstance{
			BookID: book.ID, Imprint: "Imprint " + string(rune('A'+i)), Status: status,
		}))
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	available, err := repo.CountAvailable()
	require.NoError(t, err)
	assert.Equal(t, int64(2), available)
}
