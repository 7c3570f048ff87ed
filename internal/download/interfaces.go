package download

import (
	"context"

	"github.com/ytget/booru-gallery/internal/model"
)

// BatchFunc receives local image paths that became available, in input order.
type BatchFunc func(paths []string)

// Fetcher defines the interface for the download pipeline.
type Fetcher interface {
	// FetchAll downloads every result into cacheDir. It never fails as a
	// whole; per-item failures are logged and skipped.
	FetchAll(ctx context.Context, results []model.SearchResult, cacheDir string, onBatch BatchFunc) Report
}
