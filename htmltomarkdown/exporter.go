// Package htmltomarkdown exports the corpus as LLM-oriented markdown
// by converting the rendered entry HTML back to markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/uscon"
)

// Ensure Exporter implements uscon.Exporter at compile time.
var _ uscon.Exporter = (*Exporter)(nil)

// Exporter writes the whole document as a single markdown file: the
// document title as H1, then every entry in position order with its
// derived title as H2 and a repeal note where applicable.
type Exporter struct {
	conv *converter.Converter
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Exporter{conv: conv}
}

// Export renders the corpus to markdown.
func (e *Exporter) Export(c *uscon.Corpus) (string, error) {
	if len(c.Entries) == 0 {
		return "", uscon.Errorf(uscon.EINVALID, "cannot export an empty corpus")
	}

	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(c.Name)
	sb.WriteString("\n")

	for _, entry := range c.Entries {
		sb.WriteString("\n## ")
		sb.WriteString(entry.Title)
		sb.WriteString("\n\n")

		if entry.IsRepealed() {
			sb.WriteString("*Repealed")
			if entry.RepealedBy != "" {
				sb.WriteString(" by " + entry.RepealedBy)
			}
			if entry.RepealedDate != "" {
				sb.WriteString(" on " + entry.RepealedDate)
			}
			sb.WriteString(".*\n\n")
		}

		md, err := e.conv.ConvertString(entry.HTML)
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.TrimSpace(md))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
