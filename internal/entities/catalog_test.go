package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorName(t *testing.T) {
	t.Run("formats as family, first", func(t *testing.T) {
		author := Author{FirstName: "Jane", FamilyName: "Austen"}
		assert.Equal(t, "Austen, Jane", author.Name())
	})

	t.Run("empty when first name missing", func(t *testing.T) {
		author := Author{FamilyName: "Austen"}
		assert.Equal(t, "", author.Name())
	})

	t.Run("empty when family name missing", func(t *testing.T) {
		author := Author{FirstName: "Jane"}
		assert.Equal(t, "", author.Name())
	})
}

func TestAuthorLifespan(t *testing.T) {
	t.Run("both dates known", func(t *testing.T) {
		author := Author{DateOfBirth: date(1797, 8, 30), DateOfDeath: date(1851, 2, 1)}
		assert.Equal(t, "Aug 30, 1797 - Feb 1, 1851", author.Lifespan())
	})

	t.Run("death unknown", func(t *testing.T) {
		author := Author{DateOfBirth: date(1973, 6, 6)}
		assert.Equal(t, "Jun 6, 1973 - ", author.Lifespan())
	})

	t.Run("no dates", func(t *testing.T) {
		assert.Equal(t, "", Author{}.Lifespan())
	})
}

func TestAuthorISODates(t *testing.T) {
	author := Author{DateOfBirth: date(1920, 1, 2)}
	assert.Equal(t, "1920-01-02", author.DateOfBirthISO())
	assert.Equal(t, "", author.DateOfDeathISO())
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/catalog/author/3", Author{ID: 3}.URL())
	assert.Equal(t, "/catalog/genre/7", Genre{ID: 7}.URL())
	assert.Equal(t, "/catalog/book/12", Book{ID: 12}.URL())
	assert.Equal(t, "/catalog/bookinstance/9", BookInstance{ID: 9}.URL())
}

func TestIsValidInstanceStatus(t *testing.T) {
	for _, status := range InstanceStatuses {
		assert.True(t, IsValidInstanceStatus(string(status)))
	}
	assert.False(t, IsValidInstanceStatus("Lost"))
	assert.False(t, IsValidInstanceStatus(""))
	assert.False(t, IsValidInstanceStatus("available"))
}

func TestBookInstanceDueBack(t *testing.T) {
	instance := BookInstance{DueBack: date(2024, 3, 15)}
	assert.Equal(t, "Mar 15, 2024", instance.DueBackFormatted())
	assert.Equal(t, "2024-03-15", instance.DueBackISO())

	assert.Equal(t, "", BookInstance{}.DueBackFormatted())
	assert.Equal(t, "", BookInstance{}.DueBackISO())
}
