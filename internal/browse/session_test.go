package browse

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/model"
)

type fakeSearcher struct {
	mu       sync.Mutex
	requests []model.PageRequest
	results  []model.SearchResult
	err      error
}

func (f *fakeSearcher) Search(_ context.Context, pr model.PageRequest) ([]model.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, pr)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearcher) last() model.PageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

// fakeFetcher reports one batch with a path per result
type fakeFetcher struct {
	calls int
}

func (f *fakeFetcher) FetchAll(_ context.Context, results []model.SearchResult, cacheDir string, onBatch download.BatchFunc) download.Report {
	f.calls++
	var paths []string
	for _, r := range results {
		paths = append(paths, filepath.Join(cacheDir, filepath.Base(r.ImageURL)))
	}
	if len(paths) > 0 {
		onBatch(paths)
	}
	return download.Report{Attempted: len(results), Downloaded: len(results), Batches: 1}
}

func results(names ...string) []model.SearchResult {
	out := make([]model.SearchResult, len(names))
	for i, n := range names {
		out[i] = model.SearchResult{ImageURL: "https://cdn.example/" + n, Tags: "tag"}
	}
	return out
}

func galleryItems(g *model.Gallery) []string {
	var out []string
	for i := 0; i < g.Len(); i++ {
		out = append(out, g.At(i))
	}
	return out
}

func newTestSession(t *testing.T, s booru.Searcher, f download.Fetcher) *Session {
	t.Helper()
	return NewSession(s, f, Options{CacheDir: t.TempDir(), PageSize: 20})
}

func TestSearchEmptyTag(t *testing.T) {
	searcher := &fakeSearcher{}
	session := newTestSession(t, searcher, &fakeFetcher{})

	for _, tag := range []string{"", "   "} {
		_, err := session.Search(context.Background(), tag)
		assert.ErrorIs(t, err, ErrEmptyTag)
	}
	assert.Empty(t, searcher.requests)
}

func TestSearchResetsPageAndClearsCache(t *testing.T) {
	searcher := &fakeSearcher{results: results("a.jpg", "b.jpg")}
	fetcher := &fakeFetcher{}
	session := newTestSession(t, searcher, fetcher)

	stale := filepath.Join(session.CacheDir(), "old.jpg")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))

	resets := 0
	var added [][]string
	session.SetResetCallback(func() { resets++ })
	session.SetBatchCallback(func(paths []string) { added = append(added, paths) })

	ctx := context.Background()
	_, err := session.NextPage(ctx)
	assert.ErrorIs(t, err, ErrEmptyTag)

	report, err := session.Search(ctx, " cat ")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Downloaded)

	pr := searcher.last()
	assert.Equal(t, "cat", pr.Tag)
	assert.Equal(t, 1, pr.Page)
	assert.Equal(t, 20, pr.PageSize)

	assert.NoFileExists(t, stale)
	assert.Equal(t, 1, resets)
	require.Len(t, added, 1)
	assert.Len(t, added[0], 2)
	assert.Equal(t, 2, session.Gallery().Len())
	assert.Equal(t, pr, session.Current())
}

func TestPaging(t *testing.T) {
	searcher := &fakeSearcher{results: results("a.jpg")}
	session := newTestSession(t, searcher, &fakeFetcher{})
	ctx := context.Background()

	_, err := session.Search(ctx, "cat")
	require.NoError(t, err)

	// previous on page 1 does nothing
	_, err = session.PrevPage(ctx)
	require.NoError(t, err)
	assert.Len(t, searcher.requests, 1)

	_, err = session.NextPage(ctx)
	require.NoError(t, err)
	_, err = session.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, session.Current().Page)

	_, err = session.PrevPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, session.Current().Page)
	assert.Equal(t, "cat", searcher.last().Tag)

	_, err = session.Search(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, 1, session.Current().Page)
}

func TestSetPageSizeKeepsCache(t *testing.T) {
	searcher := &fakeSearcher{results: results("a.jpg", "b.jpg")}
	session := newTestSession(t, searcher, &fakeFetcher{})
	ctx := context.Background()

	// without a tag only the size is stored
	_, err := session.SetPageSize(ctx, 40)
	require.NoError(t, err)
	assert.Empty(t, searcher.requests)
	assert.Equal(t, 40, session.Current().PageSize)

	_, err = session.Search(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, 40, searcher.last().PageSize)
	_, err = session.NextPage(ctx)
	require.NoError(t, err)

	cached := filepath.Join(session.CacheDir(), "keep.jpg")
	require.NoError(t, os.WriteFile(cached, []byte("x"), 0644))

	resets := 0
	session.SetResetCallback(func() { resets++ })

	_, err = session.SetPageSize(ctx, 10)
	require.NoError(t, err)

	pr := searcher.last()
	assert.Equal(t, 10, pr.PageSize)
	assert.Equal(t, 1, pr.Page)
	assert.Equal(t, "cat", pr.Tag)
	assert.FileExists(t, cached)
	assert.Zero(t, resets)
	// same paths merged twice stay unique
	assert.Equal(t, 2, session.Gallery().Len())
}

func TestSetPageSizeSurvivesFailedReload(t *testing.T) {
	searcher := &fakeSearcher{results: results("a.jpg")}
	session := newTestSession(t, searcher, &fakeFetcher{})
	ctx := context.Background()

	_, err := session.Search(ctx, "cat")
	require.NoError(t, err)
	_, err = session.NextPage(ctx)
	require.NoError(t, err)

	searcher.err = &booru.QueryError{Request: model.NewPageRequest("cat", 40, 1), Err: errors.New("offline")}
	_, err = session.SetPageSize(ctx, 40)
	var qerr *booru.QueryError
	require.ErrorAs(t, err, &qerr)

	// tag and page stay, the chosen size sticks
	current := session.Current()
	assert.Equal(t, "cat", current.Tag)
	assert.Equal(t, 2, current.Page)
	assert.Equal(t, 40, current.PageSize)

	searcher.err = nil
	_, err = session.NextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, searcher.last().PageSize)
	assert.Equal(t, 3, searcher.last().Page)

	_, err = session.Search(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, 40, searcher.last().PageSize)
}

func TestQueryErrorLeavesStateUnchanged(t *testing.T) {
	searcher := &fakeSearcher{results: results("a.jpg", "b.jpg")}
	fetcher := &fakeFetcher{}
	session := newTestSession(t, searcher, fetcher)
	ctx := context.Background()

	_, err := session.Search(ctx, "cat")
	require.NoError(t, err)
	before := galleryItems(session.Gallery())
	current := session.Current()

	kept := filepath.Join(session.CacheDir(), "kept.jpg")
	require.NoError(t, os.WriteFile(kept, []byte("x"), 0644))

	searcher.err = &booru.QueryError{Request: model.NewPageRequest("dog", 20, 1), Err: errors.New("boom")}

	_, err = session.Search(ctx, "dog")
	var qerr *booru.QueryError
	require.ErrorAs(t, err, &qerr)

	_, err = session.NextPage(ctx)
	require.ErrorAs(t, err, &qerr)

	assert.Equal(t, before, galleryItems(session.Gallery()))
	assert.Equal(t, current, session.Current())
	assert.FileExists(t, kept)
	assert.Equal(t, 1, fetcher.calls)
}

func TestRestore(t *testing.T) {
	session := newTestSession(t, &fakeSearcher{}, &fakeFetcher{})

	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	require.NoError(t, os.WriteFile(filepath.Join(session.CacheDir(), "one.png"), png, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(session.CacheDir(), "one.txt"), []byte("tags"), 0644))

	var added []string
	session.SetBatchCallback(func(paths []string) { added = append(added, paths...) })

	n, err := session.Restore()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, added, 1)

	n, err = session.Restore()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSessionEndToEnd(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/posts.json" {
			var posts []string
			for i := 0; i < 7; i++ {
				posts = append(posts, fmt.Sprintf(`{"file_url":"%s/img/p%d.jpg","tag_string":"cat t%d"}`, srv.URL, i, i))
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, "[%s]", strings.Join(posts, ","))
			return
		}
		w.Write([]byte("image " + r.URL.Path))
	}))
	defer srv.Close()

	cfg := booru.Config{BaseURL: srv.URL}
	session := NewSession(booru.NewClient(cfg), download.NewPipeline(cfg), Options{CacheDir: t.TempDir(), PageSize: 20})

	var batches []int
	session.SetBatchCallback(func(paths []string) { batches = append(batches, len(paths)) })

	report, err := session.Search(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, 7, report.Downloaded)
	assert.Equal(t, []int{5, 2}, batches)
	assert.Equal(t, 7, session.Gallery().Len())

	entries, err := os.ReadDir(session.CacheDir())
	require.NoError(t, err)
	assert.Len(t, entries, 14)
}
