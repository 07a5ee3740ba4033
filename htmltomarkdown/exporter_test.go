package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	e := htmltomarkdown.NewExporter()

	corpus := &uscon.Corpus{
		Name: "Constitution of the United States",
		Entries: []*uscon.Entry{
			{
				ID: "preamble", Part: uscon.PartPreamble, Position: 0,
				Title: "Preamble",
				Text:  "We the People",
				HTML:  "<p>We the <em>People</em> of the United States</p>",
			},
			{
				ID: "amendment-18-section-1", Part: uscon.PartAmendment,
				Amendment: intp(18), Position: 1,
				Title:        "Amendment XVIII, Section 1",
				Text:         "Intoxicating liquors",
				HTML:         "<p>Intoxicating liquors prohibited</p>",
				RepealedBy:   "Amendment XXI",
				RepealedDate: "1933-12-05",
			},
		},
	}

	md, err := e.Export(corpus)
	require.NoError(t, err)

	t.Run("document title as H1", func(t *testing.T) {
		t.Parallel()

		assert.True(t, strings.HasPrefix(md, "# Constitution of the United States\n"))
	})

	t.Run("entry titles as H2 in position order", func(t *testing.T) {
		t.Parallel()

		first := strings.Index(md, "## Preamble")
		second := strings.Index(md, "## Amendment XVIII, Section 1")
		assert.Greater(t, first, 0)
		assert.Greater(t, second, first)
	})

	t.Run("HTML converted back to markdown", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, md, "We the *People* of the United States")
	})

	t.Run("repeal note precedes repealed text", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, md, "*Repealed by Amendment XXI on 1933-12-05.*")
	})

	t.Run("empty corpus returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := e.Export(&uscon.Corpus{Name: "empty"})

		assert.Equal(t, uscon.EINVALID, uscon.ErrorCode(err))
	})
}
