package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// ToPlaintext renders markdown and strips all markup, returning the text
// content with whitespace collapsed. Used for excerpts and window titles.
func (r *Renderer) ToPlaintext(src string) string {
	return collapse(stripTags(r.ToHTML(src)))
}

// ToPlaintext strips markup using the default renderer.
func ToPlaintext(src string) string {
	return defaultRenderer.ToPlaintext(src)
}

func stripTags(s string) string {
	tz := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tz.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Tag boundaries separate words ("<p>a</p><p>b</p>" is "a b").
			b.WriteByte(' ')
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
