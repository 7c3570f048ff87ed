package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/browse"
	"github.com/ytget/booru-gallery/internal/config"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/model"
)

type stubSearcher struct{}

func (stubSearcher) Search(context.Context, model.PageRequest) ([]model.SearchResult, error) {
	return nil, nil
}

type stubFetcher struct{}

func (stubFetcher) FetchAll(context.Context, []model.SearchResult, string, download.BatchFunc) download.Report {
	return download.Report{}
}

func newTestRootUI(t *testing.T) (*RootUI, string) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	cacheDir := t.TempDir()
	settings := config.NewSettings(app)
	settings.SetCacheDirectory(cacheDir)

	session := browse.NewSession(stubSearcher{}, stubFetcher{}, browse.Options{CacheDir: cacheDir, PageSize: 20})
	factory := func(booru.Config) (booru.Searcher, download.Fetcher) {
		return stubSearcher{}, stubFetcher{}
	}
	return NewRootUI(window, session, factory, settings, &fakeThumbnailer{}), cacheDir
}

func TestRootUIInitialState(t *testing.T) {
	ui, _ := newTestRootUI(t)

	assert.Equal(t, model.ViewGrid, ui.viewMode)
	assert.False(t, ui.selectedLabel.Visible())
	assert.True(t, ui.prevBtn.Disabled())
	assert.True(t, ui.nextBtn.Disabled())
	assert.Equal(t, "Page 1", ui.pageLabel.Text)
	assert.Equal(t, "20", ui.pageSizeSelect.Selected)
	assert.False(t, ui.backBtn.Visible())
}

func TestRootUIZoom(t *testing.T) {
	ui, cacheDir := newTestRootUI(t)

	image := filepath.Join(cacheDir, "a.jpg")
	require.NoError(t, os.WriteFile(image, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "a.txt"), []byte("cat solo"), 0644))
	ui.session.Gallery().Merge([]string{image})

	ui.galleryView.Toggle(image)
	assert.True(t, ui.selectedLabel.Visible())
	assert.Equal(t, "Selected: 1", ui.selectedLabel.Text)

	other := filepath.Join(cacheDir, "b.jpg")
	ui.session.Gallery().Merge([]string{other})
	ui.galleryView.Toggle(other)
	require.Equal(t, 2, ui.galleryView.Selection().Count())

	// zooming keeps only the zoomed image selected so it can be saved
	ui.onZoom(image)
	assert.Equal(t, model.ViewZoomed, ui.viewMode)
	assert.Equal(t, []string{image}, ui.galleryView.Selection().Paths())
	assert.Equal(t, "Selected: 1", ui.selectedLabel.Text)
	assert.True(t, ui.zoomView.Container().Visible())
	assert.Equal(t, "cat solo", ui.zoomView.caption.Text)
	assert.True(t, ui.backBtn.Visible())
	assert.True(t, ui.saveBtn.Visible())

	ui.onBack()
	assert.Equal(t, model.ViewGrid, ui.viewMode)
	assert.False(t, ui.zoomView.Container().Visible())
	assert.Empty(t, ui.zoomView.Path())
	assert.True(t, ui.saveBtn.Visible())
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onLanguageChange("pt")
	assert.Equal(t, "pt", ui.settings.GetLanguage())
	assert.Equal(t, "Página 1", ui.pageLabel.Text)
	assert.Equal(t, "Pesquisar", ui.searchBtn.Text)
}

func TestRootUIStatusAfterAction(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.setBusy(true)
	ui.setBusy(false)
	ui.handleActionResult(download.Report{}, nil)
	assert.Empty(t, ui.statusLabel.Text)

	_, err := ui.session.Search(context.Background(), "cat")
	require.NoError(t, err)

	ui.setBusy(true)
	assert.Equal(t, "Loading...", ui.statusLabel.Text)
	ui.setBusy(false)
	ui.handleActionResult(download.Report{}, nil)
	assert.Equal(t, "No images found for this tag", ui.statusLabel.Text)

	ui.handleActionResult(download.Report{Attempted: 3, Downloaded: 2, Cached: 1}, nil)
	assert.Equal(t, "2 downloaded, 1 from cache, 0 failed", ui.statusLabel.Text)
}

func TestRootUIBusyUntilLastAction(t *testing.T) {
	ui, _ := newTestRootUI(t)
	_, err := ui.session.Search(context.Background(), "cat")
	require.NoError(t, err)

	ui.setBusy(true)
	ui.setBusy(true)
	ui.setBusy(false)
	assert.True(t, ui.spinner.Visible())
	assert.True(t, ui.nextBtn.Disabled())

	ui.setBusy(false)
	assert.False(t, ui.spinner.Visible())
	assert.False(t, ui.nextBtn.Disabled())

	// extra completions do not go negative
	ui.setBusy(false)
	ui.setBusy(true)
	assert.True(t, ui.nextBtn.Disabled())
}
