// Package cli holds the command-line subcommands dispatched from main.
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"locallibrary/internal/config"
	"locallibrary/internal/database"
	"locallibrary/internal/database/authors"
	"locallibrary/internal/database/books"
	"locallibrary/internal/database/genres"
	"locallibrary/internal/database/instances"
	"locallibrary/internal/entities"
)

// SeedCommand populates a catalog database with sample data.
type SeedCommand struct {
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate a catalog database with sample genres, authors, books and copies.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	log.Info().Str("path", cmd.DatabasePath).Msg("Seeding catalog database")

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	genreRecords := seedGenres(genres.NewRepository(db.DB))
	authorRecords := seedAuthors(authors.NewRepository(db.DB))
	bookRecords := seedBooks(books.NewRepository(db.DB), authorRecords, genreRecords)
	seedInstances(instances.NewRepository(db.DB), bookRecords)

	log.Info().Msg("Catalog database seeded")
	return nil
}

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedGenres(repo *genres.Repository) map[string]entities.Genre {
	names := []string{"Fantasy", "Science Fiction", "French Poetry"}

	records := make(map[string]entities.Genre)
	for _, name := range names {
		genre := entities.Genre{Name: name}
		if err := repo.Create(&genre); err != nil {
			log.Error().Err(err).Str("genre", name).Msg("Failed to create genre")
			continue
		}
		records[name] = genre
	}
	return records
}

func seedAuthors(repo *authors.Repository) map[string]entities.Author {
	seed := []entities.Author{
		{FirstName: "Patrick", FamilyName: "Rothfuss", DateOfBirth: date(1973, 6, 6)},
		{FirstName: "Ben", FamilyName: "Bova", DateOfBirth: date(1932, 11, 8), DateOfDeath: date(2020, 11, 29)},
		{FirstName: "Isaac", FamilyName: "Asimov", DateOfBirth: date(1920, 1, 2), DateOfDeath: date(1992, 4, 6)},
		{FirstName: "Bob", FamilyName: "Billings"},
		{FirstName: "Jim", FamilyName: "Jones", DateOfBirth: date(1971, 12, 16)},
	}

	records := make(map[string]entities.Author)
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			log.Error().Err(err).Str("author", seed[i].FamilyName).Msg("Failed to create author")
			continue
		}
		records[seed[i].FamilyName] = seed[i]
	}
	return records
}

func seedBooks(repo *books.Repository, byAuthor map[string]entities.Author, byGenre map[string]entities.Genre) []entities.Book {
	seed := []entities.Book{
		{
			Title:    "The Name of the Wind (The Kingkiller Chronicle, #1)",
			Summary:  "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon.",
			ISBN:     "9781473211896",
			AuthorID: byAuthor["Rothfuss"].ID,
			Genres:   []entities.Genre{byGenre["Fantasy"]},
		},
		{
			Title:    "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
			Summary:  "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile.",
			ISBN:     "9788401352836",
			AuthorID: byAuthor["Rothfuss"].ID,
			Genres:   []entities.Genre{byGenre["Fantasy"]},
		},
		{
			Title:    "Apes and Angels",
			Summary:  "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity. Humans went to the stars in a desperate crusade to save intelligent life wherever they found it.",
			ISBN:     "9780765379528",
			AuthorID: byAuthor["Bova"].ID,
			Genres:   []entities.Genre{byGenre["Science Fiction"]},
		},
		{
			Title:    "Death Wave",
			Summary:  "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.",
			ISBN:     "9780765379504",
			AuthorID: byAuthor["Bova"].ID,
			Genres:   []entities.Genre{byGenre["Science Fiction"]},
		},
		{
			Title:    "Test Book 1",
			Summary:  "Summary of test book 1",
			ISBN:     "ISBN111111",
			AuthorID: byAuthor["Billings"].ID,
			Genres:   []entities.Genre{byGenre["Fantasy"], byGenre["Science Fiction"]},
		},
	}

	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			log.Error().Err(err).Str("book", seed[i].Title).Msg("Failed to create book")
		}
	}
	return seed
}

func seedInstances(repo *instances.Repository, bookRecords []entities.Book) {
	if len(bookRecords) == 0 {
		return
	}
	due := time.Now().AddDate(0, 0, 14)
	seed := []entities.BookInstance{
		{BookID: bookRecords[0].ID, Imprint: "London Gollancz, 2014.", Status: entities.StatusAvailable},
		{BookID: bookRecords[1].ID, Imprint: "Gollancz, 2011.", Status: entities.StatusLoaned, DueBack: &due},
		{BookID: bookRecords[2].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusAvailable},
		{BookID: bookRecords[3].ID, Imprint: "New York Tom Doherty Associates, 2016.", Status: entities.StatusMaintenance},
		{BookID: bookRecords[4].ID, Imprint: "Imprint XXX2", Status: entities.StatusReserved},
	}

	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			log.Error().Err(err).Uint("book_id", seed[i].BookID).Msg("Failed to create book instance")
		}
	}
}
