package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip_PlainTextPassesThrough(t *testing.T) {
	in := "1. Amazing grace! How sweet the sound\nThat saved a wretch like me!"
	assert.Equal(t, in, Strip(in))
}

func TestStrip_LegacyVerseMarkup(t *testing.T) {
	in := `<div style="font-family: Georgia;">` +
		`<p style="font-weight: bold;">Verse 1:</p>` +
		`<p>Holy, holy, holy! Lord God Almighty!<br>` +
		`Early in the morning our song shall rise to Thee;</p>` +
		`</div>`

	want := "Verse 1:\n\nHoly, holy, holy! Lord God Almighty!\nEarly in the morning our song shall rise to Thee;"
	assert.Equal(t, want, Strip(in))
}

func TestStrip_Entities(t *testing.T) {
	assert.Equal(t, "God's love & grace", Strip("God&#39;s love &amp; grace"))
	assert.Equal(t, "blessèd Trinity", Strip("<p>bless&egrave;d Trinity</p>"))
}

func TestStrip_SelfClosingBreaks(t *testing.T) {
	assert.Equal(t, "line one\nline two", Strip("line one<br/>line two"))
}

func TestStrip_DropsScriptAndStyle(t *testing.T) {
	in := `<style>p { color: red; }</style><p>Take it to the Lord in prayer.</p><script>alert(1)</script>`
	assert.Equal(t, "Take it to the Lord in prayer.", Strip(in))
}

func TestStrip_CollapsesWhitespace(t *testing.T) {
	in := "<p>line   with\tgaps  </p><p></p><p>next paragraph</p>"
	assert.Equal(t, "line with gaps\n\nnext paragraph", Strip(in))
}

func TestStrip_SingleTabsBecomeSpaces(t *testing.T) {
	assert.Equal(t, "tab to space", Strip("tab\tto\tspace"))
	assert.Equal(t, "indented line", Strip("\tindented line"))
}

func TestStrip_Empty(t *testing.T) {
	assert.Equal(t, "", Strip(""))
	assert.Equal(t, "", Strip("<p></p>"))
}
