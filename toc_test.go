package uscon_test

import (
	"testing"

	"github.com/fwojciec/uscon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	toc := uscon.BuildTOC(testCorpus())

	t.Run("preamble", func(t *testing.T) {
		t.Parallel()

		require.NotNil(t, toc.Preamble)
		assert.Equal(t, "preamble", toc.Preamble.ID)
		assert.Equal(t, "Preamble", toc.Preamble.Title)
	})

	t.Run("groups article entries under one heading", func(t *testing.T) {
		t.Parallel()

		require.Len(t, toc.Articles, 1)
		assert.Equal(t, 1, toc.Articles[0].Number)
		assert.Equal(t, "Article I", toc.Articles[0].Title)
		assert.Equal(t, "article-i", toc.Articles[0].Anchor)
		assert.Len(t, toc.Articles[0].Items, 2)
	})

	t.Run("one group per amendment number", func(t *testing.T) {
		t.Parallel()

		require.Len(t, toc.Amendments, 2)
		assert.Equal(t, 18, toc.Amendments[0].Number)
		assert.Equal(t, "Amendment XVIII", toc.Amendments[0].Title)
		assert.Equal(t, 21, toc.Amendments[1].Number)
	})

	t.Run("marks repealed items", func(t *testing.T) {
		t.Parallel()

		assert.True(t, toc.Amendments[0].Items[0].Repealed)
		assert.False(t, toc.Amendments[1].Items[0].Repealed)
	})

	t.Run("item anchors are entry IDs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "amendment-21-section-1", toc.Amendments[1].Items[0].Anchor)
	})
}

func TestBuildTOCFromIndex(t *testing.T) {
	t.Parallel()

	toc := uscon.BuildTOCFromIndex(uscon.BuildIndex(testCorpus()))

	require.NotNil(t, toc.Preamble)
	assert.Equal(t, "preamble", toc.Preamble.ID)

	require.Len(t, toc.Articles, 1)
	assert.Equal(t, "Article I", toc.Articles[0].Title)

	require.Len(t, toc.Amendments, 2)
	assert.True(t, toc.Amendments[0].Items[0].Repealed)

	// Both derivations see the same corpus, so they must agree.
	assert.Equal(t, uscon.BuildTOC(testCorpus()), toc)
}

func TestBuildTOCFromIndex_MissingLocators(t *testing.T) {
	t.Parallel()

	// Records without their group locator cannot be placed; they are
	// skipped rather than crashing TOC derivation.
	idx := &uscon.Index{Records: []*uscon.IndexRecord{
		{ID: "preamble", Title: "Preamble", Part: uscon.PartPreamble},
		{ID: "article-x", Title: "Article ?", Part: uscon.PartArticle},
		{ID: "amendment-x", Title: "Amendment ?", Part: uscon.PartAmendment},
	}}

	toc := uscon.BuildTOCFromIndex(idx)

	require.NotNil(t, toc.Preamble)
	assert.Empty(t, toc.Articles)
	assert.Empty(t, toc.Amendments)
}

func TestAnchorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Article I", "article-i"},
		{"Amendment XIV, Section 1", "amendment-xiv-section-1"},
		{"We the People (1787)", "we-the-people-1787"},
		{"  spaced   out  ", "spaced-out"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, uscon.Anchorize(tt.title))
		})
	}
}
