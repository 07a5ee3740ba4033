package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/uscon"
)

// Compile-time interface verification.
var _ uscon.EntryService = (*EntryService)(nil)

// EntryService implements uscon.EntryService using SQLite. The table
// holds exactly one generation of entries; CreateEntries replaces the
// previous one wholesale, which is what entry immutability means here.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

const entryColumns = "id, part, article, section, clause, subclause, amendment, repealed_by, repealed_date, text, html, tags, position, title, blob, content_hash"

// CreateEntries stores a batch of entries, replacing any previous
// generation in one transaction.
func (s *EntryService) CreateEntries(ctx context.Context, entries []*uscon.Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return err
	}

	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO entries (`+entryColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, string(e.Part), nullInt(e.Article), nullInt(e.Section), nullInt(e.Clause),
			nullInt(e.Subclause), nullInt(e.Amendment), e.RepealedBy, e.RepealedDate,
			e.Text, e.HTML, strings.Join(e.Tags, "\n"), e.Position, e.Title, e.Blob, e.ContentHash)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*uscon.Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+` FROM entries WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, uscon.Errorf(uscon.ENOTFOUND, "entry %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter.
func (s *EntryService) FindEntries(ctx context.Context, filter uscon.EntryFilter) ([]*uscon.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Part != nil {
		query.WriteString(" AND part = ?")
		args = append(args, string(*filter.Part))
	}
	if filter.Article != nil {
		query.WriteString(" AND article = ?")
		args = append(args, *filter.Article)
	}
	if filter.Amendment != nil {
		query.WriteString(" AND amendment = ?")
		args = append(args, *filter.Amendment)
	}
	if filter.Repealed != nil {
		if *filter.Repealed {
			query.WriteString(" AND repealed_date != ''")
		} else {
			query.WriteString(" AND repealed_date = ''")
		}
	}
	for _, term := range strings.Fields(strings.ToLower(filter.Query)) {
		query.WriteString(` AND blob LIKE '%' || ? || '%' ESCAPE '\'`)
		args = append(args, escapeLike(term))
	}

	switch filter.SortBy {
	case uscon.SortByID:
		query.WriteString(" ORDER BY id ASC")
	default:
		query.WriteString(" ORDER BY position ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*uscon.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CountEntries returns the number of stored entries.
func (s *EntryService) CountEntries(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*uscon.Entry, error) {
	var e uscon.Entry
	var part, tags string
	var article, section, clause, subclause, amendment sql.NullInt64

	if err := row.Scan(&e.ID, &part, &article, &section, &clause, &subclause, &amendment,
		&e.RepealedBy, &e.RepealedDate, &e.Text, &e.HTML, &tags,
		&e.Position, &e.Title, &e.Blob, &e.ContentHash); err != nil {
		return nil, err
	}

	e.Part = uscon.Part(part)
	e.Article = intPtr(article)
	e.Section = intPtr(section)
	e.Clause = intPtr(clause)
	e.Subclause = intPtr(subclause)
	e.Amendment = intPtr(amendment)
	if tags != "" {
		e.Tags = strings.Split(tags, "\n")
	}

	return &e, nil
}

// escapeLike escapes LIKE wildcards so query terms match literally,
// keeping substring semantics identical to the in-memory searcher.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
