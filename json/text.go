package json

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips tags from an HTML fragment and returns its text
// content with whitespace collapsed.
func PlainText(fragment string) string {
	var sb strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tokenizer.Text())
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// SearchBlob builds the lowercase searchable blob for an entry from its
// derived title, rendered HTML, and tags.
func SearchBlob(title, renderedHTML string, tags []string) string {
	parts := []string{title, PlainText(renderedHTML)}
	parts = append(parts, tags...)
	return strings.ToLower(strings.Join(strings.Fields(strings.Join(parts, " ")), " "))
}
