package hymnals

import (
	"strings"
)

// DefaultCategory receives hymns whose text matches no keyword.
const DefaultCategory = "Christian Life"

// contentPrefixLen bounds how much hymn text the keyword scan reads; the
// opening lines carry the theme.
const contentPrefixLen = 500

// categoryKeywords maps free-text keywords to category names in priority
// order; the first keyword found anywhere in the combined title and content
// wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"worship", "Worship and Praise"},
	{"praise", "Worship and Praise"},
	{"adore", "Worship and Praise"},
	{"glory", "Worship and Praise"},
	{"prayer", "Prayer"},
	{"pray", "Prayer"},
	{"faith", "Faith and Trust"},
	{"trust", "Faith and Trust"},
	{"believe", "Faith and Trust"},
	{"love", "Love of God"},
	{"salvation", "Salvation"},
	{"saved", "Salvation"},
	{"grace", "Salvation"},
	{"redeemed", "Salvation"},
	{"coming", "Second Coming"},
	{"return", "Second Coming"},
	{"service", "Service"},
	{"serve", "Service"},
	{"comfort", "Comfort and Peace"},
	{"peace", "Comfort and Peace"},
	{"rest", "Comfort and Peace"},
	{"heaven", "Heaven"},
	{"home", "Heaven"},
	{"eternal", "Heaven"},
	{"christmas", "Christmas"},
	{"bethlehem", "Christmas"},
	{"easter", "Easter"},
	{"cross", "Salvation"},
	{"calvary", "Salvation"},
	{"testimony", "Testimony"},
	{"witness", "Testimony"},
}

// Categorize picks a category name for a hymn from keyword hits in its
// title and the first part of its content. No hit falls back to
// DefaultCategory.
func Categorize(title, content string) string {
	if len(content) > contentPrefixLen {
		content = content[:contentPrefixLen]
	}
	combined := strings.ToLower(title) + " " + strings.ToLower(content)

	for _, kc := range categoryKeywords {
		if strings.Contains(combined, kc.keyword) {
			return kc.category
		}
	}
	return DefaultCategory
}
