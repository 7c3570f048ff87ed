// Package browse holds the gallery browsing state independent of any UI: the
// current tag, page and page size, cache clearing between searches, and the
// displayed collection fed by the download pipeline.
package browse

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
	"github.com/ytget/booru-gallery/internal/platform"
)

// ErrEmptyTag is returned when a search is requested without a tag
var ErrEmptyTag = errors.New("please enter a tag")

// Options configure a Session
type Options struct {
	CacheDir    string
	PageSize    int
	SettleDelay time.Duration // wait after clearing the cache
}

// DefaultOptions returns options with the standard settle delay
func DefaultOptions(cacheDir string, pageSize int) Options {
	return Options{
		CacheDir:    cacheDir,
		PageSize:    pageSize,
		SettleDelay: platform.ClearSettleDelay,
	}
}

// Session runs browse actions one at a time
type Session struct {
	mu sync.Mutex // held for the duration of an action

	searcher booru.Searcher
	fetcher  download.Fetcher
	opts     Options
	gallery  *model.Gallery

	stateMu sync.RWMutex
	current model.PageRequest

	onBatch func(added []string)
	onReset func()
	log     *log.Entry
}

// NewSession creates a session over a searcher and a fetcher
func NewSession(searcher booru.Searcher, fetcher download.Fetcher, opts Options) *Session {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	return &Session{
		searcher: searcher,
		fetcher:  fetcher,
		opts:     opts,
		gallery:  model.NewGallery(),
		current:  model.PageRequest{PageSize: opts.PageSize, Page: 1},
		log:      logging.For("browse"),
	}
}

// SetBatchCallback sets the function receiving newly displayed paths
func (s *Session) SetBatchCallback(callback func(added []string)) {
	s.onBatch = callback
}

// SetResetCallback sets the function called after the gallery was emptied
func (s *Session) SetResetCallback(callback func()) {
	s.onReset = callback
}

// Gallery returns the displayed collection
func (s *Session) Gallery() *model.Gallery {
	return s.gallery
}

// CacheDir returns the cache directory in use
func (s *Session) CacheDir() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.opts.CacheDir
}

// Current returns the last successfully loaded page request
func (s *Session) Current() model.PageRequest {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current
}

// Reconfigure swaps the searcher and fetcher, e.g. after credentials changed.
// It waits for a running action to finish.
func (s *Session) Reconfigure(searcher booru.Searcher, fetcher download.Fetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searcher = searcher
	s.fetcher = fetcher
}

// SetCacheDir changes the cache directory for subsequent actions
func (s *Session) SetCacheDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateMu.Lock()
	s.opts.CacheDir = dir
	s.stateMu.Unlock()
}

// Search starts a new search for tag at page 1, clearing the cache
func (s *Session) Search(ctx context.Context, tag string) (download.Report, error) {
	pr := model.NewPageRequest(tag, s.Current().PageSize, 1)
	if pr.Tag == "" {
		return download.Report{}, ErrEmptyTag
	}
	return s.Fetch(ctx, pr, true)
}

// NextPage loads the following page of the current tag
func (s *Session) NextPage(ctx context.Context) (download.Report, error) {
	cur := s.Current()
	if cur.Tag == "" {
		return download.Report{}, ErrEmptyTag
	}
	return s.Fetch(ctx, cur.Next(), true)
}

// PrevPage loads the previous page. On the first page it does nothing.
func (s *Session) PrevPage(ctx context.Context) (download.Report, error) {
	cur := s.Current()
	if cur.Tag == "" {
		return download.Report{}, ErrEmptyTag
	}
	prev, ok := cur.Prev()
	if !ok {
		return download.Report{}, nil
	}
	return s.Fetch(ctx, prev, true)
}

// SetPageSize changes the page size and reloads page 1 without clearing the
// cache, so images seen before are served from disk. The size is kept even
// when the reload fails. Without a tag only the size is stored.
func (s *Session) SetPageSize(ctx context.Context, size int) (download.Report, error) {
	if size <= 0 {
		return download.Report{}, nil
	}

	s.stateMu.Lock()
	s.current.PageSize = size
	cur := s.current
	s.stateMu.Unlock()

	if cur.Tag == "" {
		return download.Report{}, nil
	}
	return s.Fetch(ctx, model.NewPageRequest(cur.Tag, size, 1), false)
}

// Fetch runs one search and downloads its results. The query runs first; if
// it fails the gallery, the cache and the current tag and page are left
// unchanged.
// With clear set, the cache directory is emptied before downloading.
func (s *Session) Fetch(ctx context.Context, pr model.PageRequest, clear bool) (download.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.log.WithField("request_id", pr.ID)

	results, err := s.searcher.Search(ctx, pr)
	if err != nil {
		logger.WithError(err).Errorf("Search %s failed", pr)
		return download.Report{}, err
	}

	s.stateMu.Lock()
	s.current = pr
	s.stateMu.Unlock()

	if clear {
		s.clearCache(ctx)
	}

	report := s.fetcher.FetchAll(ctx, results, s.opts.CacheDir, func(paths []string) {
		added := s.gallery.Merge(paths)
		if len(added) > 0 && s.onBatch != nil {
			s.onBatch(added)
		}
	})
	logger.Infof("Loaded %s: %d results, gallery has %d images", pr, len(results), s.gallery.Len())
	return report, nil
}

// Restore shows images already present in the cache directory
func (s *Session) Restore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := platform.ScanCachedImages(s.opts.CacheDir)
	if err != nil {
		return 0, err
	}
	added := s.gallery.Merge(paths)
	if len(added) > 0 && s.onBatch != nil {
		s.onBatch(added)
	}
	return len(added), nil
}

func (s *Session) clearCache(ctx context.Context) {
	removed, err := platform.ClearDirectory(s.opts.CacheDir)
	if err != nil {
		s.log.WithError(err).Warnf("Clearing cache %s", s.opts.CacheDir)
	} else {
		s.log.Debugf("Removed %d cached files", removed)
	}

	s.gallery.Reset()
	if s.onReset != nil {
		s.onReset()
	}

	if s.opts.SettleDelay > 0 {
		select {
		case <-time.After(s.opts.SettleDelay):
		case <-ctx.Done():
		}
	}
}
