package entities

import (
	"fmt"
	"time"
)

// InstanceStatus tracks where a physical copy currently is.
type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses lists every valid status, in display order.
var InstanceStatuses = []InstanceStatus{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

func IsValidInstanceStatus(status string) bool {
	for _, s := range InstanceStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100;not null;check:first_name <> ''" json:"first_name"`
	FamilyName  string     `gorm:"index;size:100;not null;check:family_name <> ''" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Name returns the display name in "Family, First" form.
// Either part missing yields an empty string.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.FamilyName, a.FirstName)
}

func (a Author) URL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// Lifespan renders "Aug 30, 1797 - Feb 1, 1851" style strings, with
// unknown endpoints left blank.
func (a Author) Lifespan() string {
	birth := ""
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format("Jan 2, 2006")
	}
	death := ""
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format("Jan 2, 2006")
	}
	if birth == "" && death == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", birth, death)
}

// DateOfBirthISO formats the birth date for form value attributes.
func (a Author) DateOfBirthISO() string {
	if a.DateOfBirth == nil {
		return ""
	}
	return a.DateOfBirth.Format("2006-01-02")
}

func (a Author) DateOfDeathISO() string {
	if a.DateOfDeath == nil {
		return ""
	}
	return a.DateOfDeath.Format("2006-01-02")
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;check:name <> ''" json:"name"`
	Books     []Book    `gorm:"many2many:book_genres;" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Genre) URL() string {
	return fmt.Sprintf("/catalog/genre/%d", g.ID)
}

type Book struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"index;size:512;not null;check:title <> ''" json:"title"`
	AuthorID  uint           `gorm:"index;not null" json:"author_id"`
	Author    Author         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Summary   string         `gorm:"type:text;not null;check:summary <> ''" json:"summary"`
	ISBN      string         `gorm:"size:20;not null;check:isbn <> ''" json:"isbn"`
	Genres    []Genre        `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Instances []BookInstance `gorm:"foreignKey:BookID" json:"instances,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (b Book) URL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

type BookInstance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BookID    uint           `gorm:"index;not null" json:"book_id"`
	Book      Book           `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Imprint   string         `gorm:"size:256;not null;check:imprint <> ''" json:"imprint"`
	Status    InstanceStatus `gorm:"size:20;default:'Maintenance'" json:"status"`
	DueBack   *time.Time     `json:"due_back,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (bi BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%d", bi.ID)
}

// DueBackFormatted renders the due date for detail pages.
func (bi BookInstance) DueBackFormatted() string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.Format("Jan 2, 2006")
}

// DueBackISO formats the due date for form value attributes.
func (bi BookInstance) DueBackISO() string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.Format("2006-01-02")
}

func (Author) TableName() string {
	return "authors"
}

func (Genre) TableName() string {
	return "genres"
}

func (Book) TableName() string {
	return "books"
}

func (BookInstance) TableName() string {
	return "book_instances"
}
