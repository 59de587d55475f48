// Package htmltext converts legacy HTML hymn content to plain text. Older
// hymnal exports carried presentation markup (<p>, <br>, inline styles);
// the database stores plain verses separated by blank lines.
package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	trailingSpace  = regexp.MustCompile(` +\n`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	multipleSpaces = regexp.MustCompile(` {2,}`)
)

// blockTags end a line of text; closing one also ends the paragraph.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"li":         true,
	"tr":         true,
	"blockquote": true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
}

// Strip converts an HTML fragment to plain text: <br> becomes a newline,
// block elements become paragraph breaks, entities are unescaped, and every
// other tag is dropped. Plain text passes through with only whitespace
// normalization.
func Strip(s string) string {
	if !strings.Contains(s, "<") {
		return normalize(html.UnescapeString(s))
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	var skipDepth int

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way, keep what was parsed.
			return normalize(b.String())

		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case tag == "br":
				b.WriteByte('\n')
			case tag == "script" || tag == "style":
				skipDepth++
			case blockTags[tag]:
				b.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case tag == "script" || tag == "style":
				if skipDepth > 0 {
					skipDepth--
				}
			case blockTags[tag]:
				b.WriteString("\n\n")
			}
		}
	}
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	s = multipleSpaces.ReplaceAllString(s, " ")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
