package uscon

import (
	"context"
	"strconv"
	"strings"
)

// Part identifies the division of the document an entry belongs to.
type Part string

// Document parts in reading order.
const (
	PartPreamble  Part = "preamble"
	PartArticle   Part = "article"
	PartAmendment Part = "amendment"
)

// Valid returns true if p is a known part.
func (p Part) Valid() bool {
	switch p {
	case PartPreamble, PartArticle, PartAmendment:
		return true
	}
	return false
}

// Entry represents a single normalized unit of the document: the
// preamble, an article clause, or an amendment section. Entries are
// immutable once generated; all derived fields are populated at load
// time by a CorpusLoader.
type Entry struct {
	ID   string `json:"id"`
	Part Part   `json:"part"`

	// Numeric locators. Each is nullable; which ones are set depends
	// on the part (see Validate).
	Article   *int `json:"article,omitempty"`
	Section   *int `json:"section,omitempty"`
	Clause    *int `json:"clause,omitempty"`
	Subclause *int `json:"subclause,omitempty"`
	Amendment *int `json:"amendmentNumber,omitempty"`

	// RepealedBy names the provision that superseded this entry.
	// RepealedDate is kept verbatim for display; its presence is what
	// marks the entry as repealed.
	RepealedBy   string `json:"repealedBy,omitempty"`
	RepealedDate string `json:"repealedDate,omitempty"`

	// Text is the canonical markdown source. HTML is the rendered
	// form produced at load time.
	Text string   `json:"text"`
	HTML string   `json:"html,omitempty"`
	Tags []string `json:"tags,omitempty"`

	// Position defines the total reading order across all entries.
	Position int `json:"position"`

	// Derived at load time.
	Title       string `json:"title,omitempty"`
	Blob        string `json:"blob,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
}

// IsRepealed reports whether the entry has been repealed. Derived from
// the presence of a repeal date.
func (e *Entry) IsRepealed() bool {
	return e.RepealedDate != ""
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entry ID required")
	}
	if !e.Part.Valid() {
		return Errorf(EINVALID, "entry %q has unknown part %q", e.ID, e.Part)
	}
	if strings.TrimSpace(e.Text) == "" {
		return Errorf(EINVALID, "entry %q has no text", e.ID)
	}
	if e.Position < 0 {
		return Errorf(EINVALID, "entry %q has negative position", e.ID)
	}

	switch e.Part {
	case PartPreamble:
		if e.Article != nil || e.Section != nil || e.Clause != nil || e.Subclause != nil || e.Amendment != nil {
			return Errorf(EINVALID, "preamble entry %q must not carry locators", e.ID)
		}
	case PartArticle:
		if e.Article == nil {
			return Errorf(EINVALID, "article entry %q requires an article number", e.ID)
		}
		if e.Amendment != nil {
			return Errorf(EINVALID, "article entry %q must not carry an amendment number", e.ID)
		}
	case PartAmendment:
		if e.Amendment == nil {
			return Errorf(EINVALID, "amendment entry %q requires an amendment number", e.ID)
		}
		if e.Article != nil {
			return Errorf(EINVALID, "amendment entry %q must not carry an article number", e.ID)
		}
	}

	return nil
}

// DeriveTitle returns the human-readable heading for the entry, e.g.
// "Article I, Section 2, Clause 3" or "Amendment XIV, Section 1".
// The entry must be valid.
func (e *Entry) DeriveTitle() string {
	switch e.Part {
	case PartPreamble:
		return "Preamble"
	case PartArticle:
		var sb strings.Builder
		sb.WriteString("Article ")
		sb.WriteString(Roman(*e.Article))
		if e.Section != nil {
			sb.WriteString(", Section ")
			sb.WriteString(strconv.Itoa(*e.Section))
		}
		if e.Clause != nil {
			sb.WriteString(", Clause ")
			sb.WriteString(strconv.Itoa(*e.Clause))
		}
		if e.Subclause != nil {
			sb.WriteString(", Subclause ")
			sb.WriteString(strconv.Itoa(*e.Subclause))
		}
		return sb.String()
	case PartAmendment:
		var sb strings.Builder
		sb.WriteString("Amendment ")
		sb.WriteString(Roman(*e.Amendment))
		if e.Section != nil {
			sb.WriteString(", Section ")
			sb.WriteString(strconv.Itoa(*e.Section))
		}
		return sb.String()
	}
	return ""
}

// romanValues pairs decimal values with their roman numeral symbols in
// descending order.
var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts a positive integer to its roman numeral representation.
// Returns the decimal string for n < 1 so malformed data stays visible
// rather than disappearing.
func Roman(n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}

// EntrySortOrder represents the sort order for entry queries.
type EntrySortOrder string

// EntrySortOrder constants for EntryFilter.
const (
	SortByPosition EntrySortOrder = "position"
	SortByID       EntrySortOrder = "id"
)

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID        *string `json:"id"`
	Part      *Part   `json:"part"`
	Article   *int    `json:"article"`
	Amendment *int    `json:"amendmentNumber"`
	Repealed  *bool   `json:"isRepealed"`

	// Query is matched as a case-insensitive substring against the
	// entry's searchable blob.
	Query string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy EntrySortOrder `json:"sortBy"`
}

// EntryService represents a service for managing generated entries.
type EntryService interface {
	// CreateEntries stores a batch of entries, replacing any previous
	// generation. Entries are immutable once stored.
	CreateEntries(ctx context.Context, entries []*Entry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter in position
	// order unless the filter says otherwise.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// CountEntries returns the number of stored entries.
	CountEntries(ctx context.Context) (int, error)
}
