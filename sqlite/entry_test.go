package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func boolp(b bool) *bool { return &b }

func partp(p uscon.Part) *uscon.Part { return &p }

func seedEntries() []*uscon.Entry {
	entries := []*uscon.Entry{
		{
			ID: "preamble", Part: uscon.PartPreamble, Position: 0,
			Text: "We the People", Blob: "preamble we the people",
		},
		{
			ID: "article-1-section-1", Part: uscon.PartArticle,
			Article: intp(1), Section: intp(1), Position: 1,
			Text: "All legislative Powers", Tags: []string{"congress", "legislative"},
			Blob: "article i, section 1 all legislative powers congress legislative",
		},
		{
			ID: "amendment-18-section-1", Part: uscon.PartAmendment,
			Amendment: intp(18), Section: intp(1), Position: 2,
			Text: "Intoxicating liquors", RepealedBy: "Amendment XXI", RepealedDate: "1933-12-05",
			Blob: "amendment xviii, section 1 intoxicating liquors prohibition",
		},
	}
	for _, e := range entries {
		e.Title = e.DeriveTitle()
	}
	return entries
}

func TestEntryService_CreateEntries(t *testing.T) {
	t.Parallel()

	t.Run("stores a generation", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntries(ctx, seedEntries()))

		count, err := s.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("replaces the previous generation", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntries(ctx, seedEntries()))
		require.NoError(t, s.CreateEntries(ctx, seedEntries()[:1]))

		count, err := s.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))

		err := s.CreateEntries(context.Background(), []*uscon.Entry{{ID: "", Part: uscon.PartPreamble, Text: "x"}})

		assert.Equal(t, uscon.EINVALID, uscon.ErrorCode(err))
	})
}

func TestEntryService_FindEntryByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()
		require.NoError(t, s.CreateEntries(ctx, seedEntries()))

		e, err := s.FindEntryByID(ctx, "article-1-section-1")

		require.NoError(t, err)
		assert.Equal(t, uscon.PartArticle, e.Part)
		assert.Equal(t, 1, *e.Article)
		assert.Equal(t, 1, *e.Section)
		assert.Nil(t, e.Clause)
		assert.Equal(t, []string{"congress", "legislative"}, e.Tags)
		assert.Equal(t, "Article I, Section 1", e.Title)
	})

	t.Run("returns ENOTFOUND for missing entry", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))

		_, err := s.FindEntryByID(context.Background(), "nope")

		assert.Equal(t, uscon.ENOTFOUND, uscon.ErrorCode(err))
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	newSeeded := func(t *testing.T) (*sqlite.EntryService, context.Context) {
		t.Helper()
		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()
		require.NoError(t, s.CreateEntries(ctx, seedEntries()))
		return s, ctx
	}

	t.Run("returns everything in position order", func(t *testing.T) {
		t.Parallel()

		s, ctx := newSeeded(t)

		entries, err := s.FindEntries(ctx, uscon.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "preamble", entries[0].ID)
		assert.Equal(t, "amendment-18-section-1", entries[2].ID)
	})

	t.Run("filters by part", func(t *testing.T) {
		t.Parallel()

		s, ctx := newSeeded(t)

		entries, err := s.FindEntries(ctx, uscon.EntryFilter{Part: partp(uscon.PartArticle)})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "article-1-section-1", entries[0].ID)
	})

	t.Run("filters by repealed status", func(t *testing.T) {
		t.Parallel()

		s, ctx := newSeeded(t)

		entries, err := s.FindEntries(ctx, uscon.EntryFilter{Repealed: boolp(true)})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "amendment-18-section-1", entries[0].ID)
	})

	t.Run("query terms are ANDed against the blob", func(t *testing.T) {
		t.Parallel()

		s, ctx := newSeeded(t)

		entries, err := s.FindEntries(ctx, uscon.EntryFilter{Query: "legislative congress"})

		require.NoError(t, err)
		require.Len(t, entries, 1)

		entries, err = s.FindEntries(ctx, uscon.EntryFilter{Query: "legislative prohibition"})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("wildcard characters in terms match literally", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()
		entries := []*uscon.Entry{
			{
				ID: "article-1-section-1", Part: uscon.PartArticle,
				Article: intp(1), Position: 0, Text: "x",
				Blob: "turnout was 50% exactly under_score",
			},
			{
				ID: "article-2-section-1", Part: uscon.PartArticle,
				Article: intp(2), Position: 1, Text: "x",
				Blob: "the 50th congress underscore",
			},
		}
		require.NoError(t, s.CreateEntries(ctx, entries))

		// "%" is not a LIKE wildcard here; only the literal match survives.
		found, err := s.FindEntries(ctx, uscon.EntryFilter{Query: "50%"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "article-1-section-1", found[0].ID)

		// Same for "_": it must not match an arbitrary character.
		found, err = s.FindEntries(ctx, uscon.EntryFilter{Query: "under_s"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "article-1-section-1", found[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		s, ctx := newSeeded(t)

		entries, err := s.FindEntries(ctx, uscon.EntryFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "article-1-section-1", entries[0].ID)
	})
}
