package site_test

import (
	"testing"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapWriter_WriteSitemap(t *testing.T) {
	t.Parallel()

	w := site.NewSitemapWriter()
	toc := uscon.BuildTOC(testCorpus())

	t.Run("lists the page and part headings", func(t *testing.T) {
		t.Parallel()

		xml, err := w.WriteSitemap("https://example.org", toc)

		require.NoError(t, err)
		assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
		assert.Contains(t, xml, "<loc>https://example.org/</loc>")
		assert.Contains(t, xml, "<loc>https://example.org/#article-i</loc>")
		assert.Contains(t, xml, "<loc>https://example.org/#amendment-xviii</loc>")
	})

	t.Run("trailing slash on base URL is normalized", func(t *testing.T) {
		t.Parallel()

		xml, err := w.WriteSitemap("https://example.org/", toc)

		require.NoError(t, err)
		assert.Contains(t, xml, "<loc>https://example.org/</loc>")
		assert.NotContains(t, xml, "example.org//")
	})

	t.Run("empty base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := w.WriteSitemap("", toc)

		assert.Equal(t, uscon.EINVALID, uscon.ErrorCode(err))
	})
}
