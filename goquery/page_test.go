package goquery_test

import (
	"testing"

	"github.com/fwojciec/uscon"
	usgoquery "github.com/fwojciec/uscon/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func boolp(b bool) *bool { return &b }

const testPage = `<html><body>
<section class="entry" id="preamble" data-part="preamble" data-repealed="false">
<h3 class="entry-title"><a href="#preamble">Preamble</a></h3>
<div class="entry-text"><p>We the People of the United States</p></div>
</section>
<section class="entry" id="article-1-section-1" data-part="article" data-article="1" data-section="1" data-repealed="false">
<h3 class="entry-title"><a href="#article-1-section-1">Article I, Section 1</a></h3>
<div class="entry-text"><p>All legislative Powers herein granted</p></div>
<p class="entry-tags"><span class="tag">congress</span></p>
</section>
<section class="entry" id="amendment-18-section-1" data-part="amendment" data-amendment="18" data-section="1" data-repealed="true">
<h3 class="entry-title"><a href="#amendment-18-section-1">Amendment XVIII, Section 1</a></h3>
<div class="entry-text"><p>Intoxicating liquors prohibited</p></div>
</section>
</body></html>`

func TestParsePage(t *testing.T) {
	t.Parallel()

	t.Run("enumerates entry nodes in document order", func(t *testing.T) {
		t.Parallel()

		page, err := usgoquery.ParsePage(testPage)

		require.NoError(t, err)
		entries := page.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "preamble", entries[0].ID)
		assert.Equal(t, uscon.PartArticle, entries[1].Part)
		assert.Equal(t, 1, *entries[1].Article)
		assert.True(t, entries[2].Repealed)
	})

	t.Run("node text becomes the searchable blob", func(t *testing.T) {
		t.Parallel()

		page, err := usgoquery.ParsePage(testPage)

		require.NoError(t, err)
		assert.Contains(t, page.Entries()[1].Blob, "legislative powers")
		assert.Contains(t, page.Entries()[1].Blob, "congress")
	})

	t.Run("page without entries returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := usgoquery.ParsePage("<html><body><p>nothing</p></body></html>")

		assert.Equal(t, uscon.EINVALID, uscon.ErrorCode(err))
	})

	t.Run("malformed locator attribute returns EINVALID", func(t *testing.T) {
		t.Parallel()

		bad := `<section class="entry" id="x" data-part="article" data-article="one"></section>`

		_, err := usgoquery.ParsePage(bad)

		assert.Equal(t, uscon.EINVALID, uscon.ErrorCode(err))
	})
}

func TestPage_Apply(t *testing.T) {
	t.Parallel()

	t.Run("hides non-matching entries", func(t *testing.T) {
		t.Parallel()

		page, err := usgoquery.ParsePage(testPage)
		require.NoError(t, err)

		html, result, err := page.Apply(uscon.FilterState{Query: "legislative"})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, []string{"article-1-section-1"}, result.VisibleIDs)
		assert.ElementsMatch(t, []string{"preamble", "amendment-18-section-1"}, result.HiddenIDs)
		assert.Contains(t, html, `id="preamble" data-part="preamble" data-repealed="false" hidden="hidden"`)
	})

	t.Run("repealed-status filter", func(t *testing.T) {
		t.Parallel()

		page, err := usgoquery.ParsePage(testPage)
		require.NoError(t, err)

		_, result, err := page.Apply(uscon.FilterState{Repealed: boolp(true)})

		require.NoError(t, err)
		assert.Equal(t, []string{"amendment-18-section-1"}, result.VisibleIDs)
	})

	t.Run("clearing the filter restores visibility", func(t *testing.T) {
		t.Parallel()

		page, err := usgoquery.ParsePage(testPage)
		require.NoError(t, err)

		_, _, err = page.Apply(uscon.FilterState{Amendment: intp(18)})
		require.NoError(t, err)

		html, result, err := page.Apply(uscon.FilterState{})

		require.NoError(t, err)
		assert.Len(t, result.VisibleIDs, 3)
		assert.Empty(t, result.HiddenIDs)
		assert.NotContains(t, html, "hidden=")
	})
}
