package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/uscon"
	usconhttp "github.com/fwojciec/uscon/http"
	"github.com/fwojciec/uscon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecords() []*uscon.IndexRecord {
	return []*uscon.IndexRecord{
		{
			ID: "amendment-2", Title: "Amendment II", Part: uscon.PartAmendment,
			Amendment: intp(2), Position: 4,
			Blob: "amendment ii a well regulated militia",
		},
	}
}

// testPage is a minimal generated page with two addressable entries.
const testPage = `<html><body>
<section class="entry" id="preamble" data-part="preamble" data-repealed="false"><h3 class="entry-title">Preamble</h3><div class="entry-text"><p>We the People</p></div></section>
<section class="entry" id="amendment-2" data-part="amendment" data-amendment="2" data-repealed="false"><h3 class="entry-title">Amendment II</h3><div class="entry-text"><p>A well regulated Militia</p></div></section>
</body></html>`

func newTestServer(t *testing.T, searcher uscon.Searcher) *usconhttp.Server {
	t.Helper()

	siteDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, uscon.SitePageFile), []byte(testPage), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, uscon.SiteExportFile), []byte("# Constitution"), 0644))

	toc := &uscon.TOC{Preamble: &uscon.TOCItem{ID: "preamble", Title: "Preamble", Anchor: "preamble"}}
	return usconhttp.NewServer(searcher, toc, siteDir, discardLogger())
}

func TestServer_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses filter state from the query string", func(t *testing.T) {
		t.Parallel()

		var gotState uscon.FilterState
		srv := newTestServer(t, &mock.Searcher{
			SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
				gotState = state
				return testRecords(), nil
			},
		})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search?q=militia&part=amendment&amendment=2", nil))

		require.Equal(t, 200, rec.Code)
		assert.Equal(t, "militia", gotState.Query)
		assert.Equal(t, uscon.PartAmendment, gotState.Part)
		assert.Equal(t, 2, *gotState.Amendment)

		var resp usconhttp.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "amendment-2", resp.Matches[0].ID)
		assert.Equal(t, "amendment=2&part=amendment&q=militia", resp.Query)
	})

	t.Run("malformed criteria return 400", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, &mock.Searcher{
			SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
				t.Fatal("searcher must not be called")
				return nil, nil
			},
		})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search?article=one", nil))

		assert.Equal(t, 400, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid article number")
	})

	t.Run("responses are cached by canonical query", func(t *testing.T) {
		t.Parallel()

		calls := 0
		srv := newTestServer(t, &mock.Searcher{
			SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
				calls++
				return testRecords(), nil
			},
		})

		// Same criteria, different key order in the query string.
		for _, target := range []string{
			"/api/search?q=militia&part=amendment",
			"/api/search?part=amendment&q=militia",
		} {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
			require.Equal(t, 200, rec.Code)
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("searcher failure maps to status code", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, &mock.Searcher{
			SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
				return nil, uscon.Errorf(uscon.EUNAVAILABLE, "index not loaded")
			},
		})

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/search?q=x", nil))

		assert.Equal(t, 503, rec.Code)
	})
}

func TestServer_TOC(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mock.Searcher{
		SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/api/toc", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Preamble"`)
}

func TestServer_Page(t *testing.T) {
	t.Parallel()

	noSearch := func() uscon.Searcher {
		return &mock.Searcher{
			SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
				return nil, nil
			},
		}
	}

	t.Run("serves the page untouched without filter state", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, noSearch())

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		require.Equal(t, 200, rec.Code)
		assert.Equal(t, testPage, rec.Body.String())
	})

	t.Run("hides entries outside the filter", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, noSearch())

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/?part=amendment", nil))

		require.Equal(t, 200, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="preamble" data-part="preamble" data-repealed="false" hidden="hidden"`)
		assert.NotContains(t, body, `id="amendment-2" data-part="amendment" data-amendment="2" data-repealed="false" hidden`)
	})

	t.Run("text query filters on entry content", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, noSearch())

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/?q=militia", nil))

		require.Equal(t, 200, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="preamble" data-part="preamble" data-repealed="false" hidden="hidden"`)
	})

	t.Run("malformed filter state returns 400", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, noSearch())

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest("GET", "/?amendment=two", nil))

		assert.Equal(t, 400, rec.Code)
	})
}

func TestServer_Static(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mock.Searcher{
		SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/"+uscon.SiteExportFile, nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "# Constitution", rec.Body.String())
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mock.Searcher{
		SearchFn: func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
