package hymnals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_TitleKeyword(t *testing.T) {
	assert.Equal(t, "Worship and Praise", Categorize("Praise to the Lord", ""))
	assert.Equal(t, "Prayer", Categorize("Sweet Hour of Prayer", ""))
	assert.Equal(t, "Salvation", Categorize("Amazing Grace", ""))
}

func TestCategorize_ContentKeyword(t *testing.T) {
	got := Categorize("Untitled", "When peace like a river attendeth my way")
	assert.Equal(t, "Comfort and Peace", got)
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "Heaven", Categorize("HEAVEN IS MY HOME", ""))
}

func TestCategorize_FirstKeywordWins(t *testing.T) {
	// "worship" precedes "prayer" in the keyword table.
	got := Categorize("Worship Through Prayer", "")
	assert.Equal(t, "Worship and Praise", got)
}

func TestCategorize_OnlyScansContentPrefix(t *testing.T) {
	content := strings.Repeat("la ", 300) + "bethlehem"
	assert.Equal(t, DefaultCategory, Categorize("Untitled", content))
}

func TestCategorize_Default(t *testing.T) {
	assert.Equal(t, DefaultCategory, Categorize("Untitled", "no matching theme words here"))
}
