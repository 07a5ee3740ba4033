package uscon

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterState captures the user-selected search criteria. All active
// criteria are combined with AND. The state round-trips through a URL
// query string so that a filtered view is linkable.
type FilterState struct {
	// Query is matched case-insensitively against the searchable
	// blob; whitespace-separated terms must all match.
	Query string

	// Part restricts matches to one document part. Empty means any.
	Part Part

	// Article and Amendment restrict matches to one numeric locator.
	Article   *int
	Amendment *int

	// Repealed is tri-state: nil matches everything, true matches
	// only repealed entries, false only entries still in force.
	Repealed *bool
}

// IsZero reports whether no criteria are active.
func (f FilterState) IsZero() bool {
	return f.Query == "" && f.Part == "" && f.Article == nil &&
		f.Amendment == nil && f.Repealed == nil
}

// Terms returns the lowercased whitespace-separated query terms.
func (f FilterState) Terms() []string {
	return strings.Fields(strings.ToLower(f.Query))
}

// Match reports whether an index record satisfies all active criteria.
func (f FilterState) Match(rec *IndexRecord) bool {
	if f.Part != "" && rec.Part != f.Part {
		return false
	}
	if f.Article != nil && (rec.Article == nil || *rec.Article != *f.Article) {
		return false
	}
	if f.Amendment != nil && (rec.Amendment == nil || *rec.Amendment != *f.Amendment) {
		return false
	}
	if f.Repealed != nil && rec.Repealed != *f.Repealed {
		return false
	}
	for _, term := range f.Terms() {
		if !strings.Contains(rec.Blob, term) {
			return false
		}
	}
	return true
}

// Query string keys understood by Encode and ParseFilterState.
const (
	queryKeyQuery     = "q"
	queryKeyPart      = "part"
	queryKeyArticle   = "article"
	queryKeyAmendment = "amendment"
	queryKeyRepealed  = "repealed"
)

// Encode mirrors the filter state into URL query values. Zero values
// are omitted so that Encode(ParseFilterState(v)) is canonical.
func (f FilterState) Encode() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set(queryKeyQuery, f.Query)
	}
	if f.Part != "" {
		v.Set(queryKeyPart, string(f.Part))
	}
	if f.Article != nil {
		v.Set(queryKeyArticle, strconv.Itoa(*f.Article))
	}
	if f.Amendment != nil {
		v.Set(queryKeyAmendment, strconv.Itoa(*f.Amendment))
	}
	if f.Repealed != nil {
		v.Set(queryKeyRepealed, strconv.FormatBool(*f.Repealed))
	}
	return v
}

// EncodeQuery returns the canonical query-string form of the state.
func (f FilterState) EncodeQuery() string {
	return f.Encode().Encode()
}

// ParseFilterState reconstructs a FilterState from URL query values.
// Unknown keys are ignored; malformed numeric or boolean values return
// EINVALID.
func ParseFilterState(v url.Values) (FilterState, error) {
	var f FilterState

	f.Query = strings.TrimSpace(v.Get(queryKeyQuery))

	if s := v.Get(queryKeyPart); s != "" {
		p := Part(s)
		if !p.Valid() {
			return FilterState{}, Errorf(EINVALID, "unknown part %q", s)
		}
		f.Part = p
	}

	if s := v.Get(queryKeyArticle); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return FilterState{}, Errorf(EINVALID, "invalid article number %q", s)
		}
		f.Article = &n
	}

	if s := v.Get(queryKeyAmendment); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return FilterState{}, Errorf(EINVALID, "invalid amendment number %q", s)
		}
		f.Amendment = &n
	}

	if s := v.Get(queryKeyRepealed); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return FilterState{}, Errorf(EINVALID, "invalid repealed value %q", s)
		}
		f.Repealed = &b
	}

	return f, nil
}
