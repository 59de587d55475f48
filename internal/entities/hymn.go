package entities

import (
	"strings"
	"time"
)

// Hymn is a single hymn text. Number is the hymnal number printed in the
// book: globally unique and never reassigned once imported.
type Hymn struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Number             int       `gorm:"uniqueIndex;not null" json:"number"`
	Title              string    `gorm:"index;size:512;not null" json:"title"`
	Verses             string    `gorm:"type:text;not null" json:"verses"` // blank-line separated
	Chorus             string    `gorm:"type:text" json:"chorus,omitempty"`
	CategoryID         uint      `gorm:"index" json:"category_id,omitempty"`
	Author             string    `gorm:"size:256" json:"author,omitempty"`
	Composer           string    `gorm:"size:256" json:"composer,omitempty"`
	Year               int       `json:"year,omitempty"`
	Copyright          string    `gorm:"size:512" json:"copyright,omitempty"`
	ScriptureReference string    `gorm:"size:256" json:"scripture_reference,omitempty"`
	Notes              string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Hymn) TableName() string {
	return "hymns"
}

// VerseList splits Verses on blank lines into individual verses.
func (h Hymn) VerseList() []string {
	var verses []string
	for _, v := range strings.Split(h.Verses, "\n\n") {
		if v = strings.TrimSpace(v); v != "" {
			verses = append(verses, v)
		}
	}
	return verses
}

// FullText returns the verses followed by the chorus, if any.
func (h Hymn) FullText() string {
	if h.Chorus == "" {
		return h.Verses
	}
	return h.Verses + "\n\nChorus:\n" + h.Chorus
}

// Category groups hymns by theme. HymnCount is computed by an aggregation
// join in categories.Repository and is never stored.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"size:512" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	HymnCount int64 `gorm:"->;-:migration" json:"hymn_count"`
}

func (Category) TableName() string {
	return "categories"
}
