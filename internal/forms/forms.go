// Package forms holds the form DTOs for the catalog create/update flows.
//
// Each form binds raw POST values, normalizes them (trim, HTML-escape,
// multi-value handling) and validates them with declarative per-field
// rule chains. Validation failures come back as validation.Errors, a
// field-name to message map the views render next to each input.
// The same form type backs both the create and update path of an entity.
package forms

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"locallibrary/internal/entities"
)

// DateLayout is the ISO-8601 date format used by the date inputs.
const DateLayout = "2006-01-02"

// sanitize trims surrounding whitespace and escapes HTML metacharacters.
// Values are stored escaped, so detail pages reflect exactly what was
// accepted at submission time.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// parseDate converts a validated ISO date string, empty meaning unset.
// Callers must validate the field first.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseID converts a validated numeric id field.
func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// FieldErrors extracts the field→message map from a Validate result.
// Returns nil when the input passed.
func FieldErrors(err error) validation.Errors {
	if err == nil {
		return nil
	}
	if errs, ok := err.(validation.Errors); ok {
		return errs
	}
	return validation.Errors{"form": err}
}

// AuthorForm carries the writable fields of an author submission.
type AuthorForm struct {
	FirstName   string `json:"first_name"`
	FamilyName  string `json:"family_name"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
}

// BindAuthorForm builds a normalized author form from POST values.
func BindAuthorForm(values url.Values) AuthorForm {
	return AuthorForm{
		FirstName:   sanitize(values.Get("first_name")),
		FamilyName:  sanitize(values.Get("family_name")),
		DateOfBirth: strings.TrimSpace(values.Get("date_of_birth")),
		DateOfDeath: strings.TrimSpace(values.Get("date_of_death")),
	}
}

func (f AuthorForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name must be specified"),
			validation.Length(1, 100),
		),
		validation.Field(&f.FamilyName,
			validation.Required.Error("Family name must be specified"),
			validation.Length(1, 100),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(DateLayout).Error("Invalid date of birth"),
		),
		validation.Field(&f.DateOfDeath,
			validation.Date(DateLayout).Error("Invalid date of death"),
		),
	)
}

// ToEntity converts the validated form into an author record.
func (f AuthorForm) ToEntity() entities.Author {
	return entities.Author{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: parseDate(f.DateOfBirth),
		DateOfDeath: parseDate(f.DateOfDeath),
	}
}

// FromAuthor pre-fills the form for the update flow.
func FromAuthor(a *entities.Author) AuthorForm {
	return AuthorForm{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirthISO(),
		DateOfDeath: a.DateOfDeathISO(),
	}
}

// GenreForm carries the writable fields of a genre submission.
type GenreForm struct {
	Name string `json:"name"`
}

// BindGenreForm builds a normalized genre form from POST values.
func BindGenreForm(values url.Values) GenreForm {
	return GenreForm{Name: sanitize(values.Get("name"))}
}

func (f GenreForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Genre name required"),
			validation.Length(3, 100).Error("Genre name must contain at least 3 characters"),
		),
	)
}

func (f GenreForm) ToEntity() entities.Genre {
	return entities.Genre{Name: f.Name}
}

// BookForm carries the writable fields of a book submission. GenreIDs
// is normalized at bind time: absent becomes empty, a single value a
// one-element slice, multiple values the slice as given.
type BookForm struct {
	Title    string   `json:"title"`
	AuthorID string   `json:"author"`
	Summary  string   `json:"summary"`
	ISBN     string   `json:"isbn"`
	GenreIDs []string `json:"genre"`
}

// BindBookForm builds a normalized book form from POST values.
func BindBookForm(values url.Values) BookForm {
	genreIDs := values["genre"]
	if genreIDs == nil {
		genreIDs = []string{}
	}
	return BookForm{
		Title:    sanitize(values.Get("title")),
		AuthorID: strings.TrimSpace(values.Get("author")),
		Summary:  sanitize(values.Get("summary")),
		ISBN:     sanitize(values.Get("isbn")),
		GenreIDs: genreIDs,
	}
}

func (f BookForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title,
			validation.Required.Error("Title must not be empty"),
			validation.Length(1, 512),
		),
		validation.Field(&f.AuthorID,
			validation.Required.Error("Author must not be empty"),
			isID.Error("Author must be a valid id"),
		),
		validation.Field(&f.Summary,
			validation.Required.Error("Summary must not be empty"),
		),
		validation.Field(&f.ISBN,
			validation.Required.Error("ISBN must not be empty"),
			validation.Length(1, 20),
		),
		validation.Field(&f.GenreIDs,
			validation.Each(isID.Error("Genre selection must be a valid id")),
		),
	)
}

// ToEntity converts the validated form into a book record. Genres
// carry ids only; the repository links them through the join table.
func (f BookForm) ToEntity() entities.Book {
	genres := make([]entities.Genre, 0, len(f.GenreIDs))
	for _, id := range f.GenreIDs {
		genres = append(genres, entities.Genre{ID: parseID(id)})
	}
	return entities.Book{
		Title:    f.Title,
		AuthorID: parseID(f.AuthorID),
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		Genres:   genres,
	}
}

// HasGenre reports whether the form currently selects a genre id.
// Used to re-check boxes when a form re-renders with errors.
func (f BookForm) HasGenre(id uint) bool {
	for _, g := range f.GenreIDs {
		if parseID(g) == id {
			return true
		}
	}
	return false
}

// FromBook pre-fills the form for the update flow.
func FromBook(b *entities.Book) BookForm {
	genreIDs := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		genreIDs = append(genreIDs, strconv.FormatUint(uint64(g.ID), 10))
	}
	return BookForm{
		Title:    b.Title,
		AuthorID: strconv.FormatUint(uint64(b.AuthorID), 10),
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		GenreIDs: genreIDs,
	}
}

// BookInstanceForm carries the writable fields of a copy submission.
type BookInstanceForm struct {
	BookID  string `json:"book"`
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

// BindBookInstanceForm builds a normalized copy form from POST values.
func BindBookInstanceForm(values url.Values) BookInstanceForm {
	return BookInstanceForm{
		BookID:  strings.TrimSpace(values.Get("book")),
		Imprint: sanitize(values.Get("imprint")),
		Status:  strings.TrimSpace(values.Get("status")),
		DueBack: strings.TrimSpace(values.Get("due_back")),
	}
}

func (f BookInstanceForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.BookID,
			validation.Required.Error("Book must be specified"),
			isID.Error("Book must be a valid id"),
		),
		validation.Field(&f.Imprint,
			validation.Required.Error("Imprint must be specified"),
			validation.Length(1, 256),
		),
		validation.Field(&f.Status,
			validation.Required.Error("Status must be specified"),
			validation.By(validStatus),
		),
		validation.Field(&f.DueBack,
			validation.Date(DateLayout).Error("Invalid date"),
		),
	)
}

func (f BookInstanceForm) ToEntity() entities.BookInstance {
	return entities.BookInstance{
		BookID:  parseID(f.BookID),
		Imprint: f.Imprint,
		Status:  entities.InstanceStatus(f.Status),
		DueBack: parseDate(f.DueBack),
	}
}

// FromBookInstance pre-fills the form for the update flow.
func FromBookInstance(bi *entities.BookInstance) BookInstanceForm {
	return BookInstanceForm{
		BookID:  strconv.FormatUint(uint64(bi.BookID), 10),
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBackISO(),
	}
}

func validStatus(value any) error {
	s, _ := value.(string)
	if !entities.IsValidInstanceStatus(s) {
		return validation.NewError("validation_status", "Invalid status")
	}
	return nil
}

// isID validates an unsigned decimal id string.
var isID = validation.Match(regexp.MustCompile(`^[0-9]+$`))
