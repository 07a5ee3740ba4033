package site

import (
	"sort"
	"strings"

	"github.com/fwojciec/uscon"
)

// Marker delimiters recognized in page templates. Generated content is
// spliced between a section's begin and end markers; the markers stay
// in place so a generated page can be spliced again.
const (
	markerBeginPrefix = "<!-- uscon:begin "
	markerEndPrefix   = "<!-- uscon:end "
	markerSuffix      = " -->"
)

// Well-known splice section names used by the default template.
const (
	SectionTOC     = "toc"
	SectionEntries = "entries"
)

// Ensure Splicer implements uscon.Splicer at compile time.
var _ uscon.Splicer = (*Splicer)(nil)

// Splicer splices generated HTML fragments into a page template via
// textual markers.
type Splicer struct{}

// NewSplicer creates a new Splicer.
func NewSplicer() *Splicer {
	return &Splicer{}
}

// Splice replaces the content between each section's begin/end markers
// with the generated fragment. Sections are applied in name order so
// the output is deterministic. Returns EINVALID if a section's markers
// are missing or out of order.
func (s *Splicer) Splice(page string, sections map[string]string) (string, error) {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		begin := markerBeginPrefix + name + markerSuffix
		end := markerEndPrefix + name + markerSuffix

		beginIdx := strings.Index(page, begin)
		if beginIdx < 0 {
			return "", uscon.Errorf(uscon.EINVALID, "template is missing begin marker for section %q", name)
		}
		contentStart := beginIdx + len(begin)

		// The end marker must follow the begin marker; a stray end
		// marker earlier in the page does not pair with it.
		endOff := strings.Index(page[contentStart:], end)
		if endOff < 0 {
			if strings.Contains(page, end) {
				return "", uscon.Errorf(uscon.EINVALID, "template markers for section %q are out of order", name)
			}
			return "", uscon.Errorf(uscon.EINVALID, "template is missing end marker for section %q", name)
		}
		endIdx := contentStart + endOff

		page = page[:contentStart] + "\n" + sections[name] + "\n" + page[endIdx:]
	}

	return page, nil
}
