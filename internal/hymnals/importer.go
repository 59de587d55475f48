package hymnals

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/database/categories"
	"github.com/christinsong/hymnal/internal/entities"
	"github.com/christinsong/hymnal/internal/htmltext"
)

// Importer replaces the hymn table with the contents of a downloaded
// hymnal document.
type Importer struct {
	db *database.Database
}

// NewImporter creates an importer bound to an initialized database.
func NewImporter(db *database.Database) *Importer {
	return &Importer{db: db}
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Run clears all existing hymns and bulk-inserts the document's records in
// one transaction; the search-index triggers keep hymns_fts in sync through
// both the delete and the inserts. Records missing a number, title, or
// content are skipped and counted, as are duplicate numbers.
func (i *Importer) Run(doc *Document) (*Result, error) {
	if doc == nil || len(doc.Hymns) == 0 {
		return nil, fmt.Errorf("hymnal document has no hymns")
	}

	catRepo := categories.NewRepository(i.db.DB)
	cats, err := catRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryIDs := make(map[string]uint, len(cats))
	for _, c := range cats {
		categoryIDs[c.Name] = c.ID
	}
	defaultID := categoryIDs[DefaultCategory]

	result := &Result{}
	seen := make(map[int]bool, len(doc.Hymns))

	err = i.db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM hymns").Error; err != nil {
			return fmt.Errorf("failed to clear existing hymns: %w", err)
		}

		for _, record := range doc.Hymns {
			number := int(record.Number)
			title := strings.TrimSpace(record.Title)
			verses := htmltext.Strip(record.Content)

			if number <= 0 || title == "" || verses == "" {
				log.Warn().Int("number", number).Msg("skipping hymn with incomplete data")
				result.Skipped++
				continue
			}
			if seen[number] {
				log.Warn().Int("number", number).Msg("skipping duplicate hymn number")
				result.Skipped++
				continue
			}
			seen[number] = true

			categoryID, ok := categoryIDs[Categorize(title, verses)]
			if !ok {
				categoryID = defaultID
			}

			hymn := entities.Hymn{
				Number:     number,
				Title:      title,
				Verses:     verses,
				CategoryID: categoryID,
			}
			if err := tx.Create(&hymn).Error; err != nil {
				return fmt.Errorf("failed to insert hymn %d: %w", number, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("hymnal import completed")

	return result, nil
}
