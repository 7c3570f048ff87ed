package download

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/imroc/req"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
	"github.com/ytget/booru-gallery/internal/platform"
)

// BatchSize is the number of new downloads after which a batch is flushed.
// Cache hits ride along in the pending batch but do not count.
const BatchSize = 5

// File permissions for cached files
const (
	FilePermissions = 0644
	tempSuffix      = ".part"
)

// Report summarizes one FetchAll run
type Report struct {
	Attempted  int
	Downloaded int
	Cached     int
	Failed     int
	Batches    int
}

// Pipeline downloads search results sequentially
type Pipeline struct {
	cfg booru.Config
	r   *req.Req
	log *log.Entry
}

// NewPipeline creates a pipeline; empty config fields take defaults
func NewPipeline(cfg booru.Config) *Pipeline {
	cfg = cfg.WithDefaults()
	return &Pipeline{
		cfg: cfg,
		r:   booru.NewRequester(cfg),
		log: logging.For("download"),
	}
}

// FetchAll processes results strictly in order. Each item either hits the
// cache, is downloaded, or fails; failures are logged and skipped. onBatch is
// called after every BatchSize downloads and once more for any remainder.
func (p *Pipeline) FetchAll(ctx context.Context, results []model.SearchResult, cacheDir string, onBatch BatchFunc) Report {
	var report Report
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil
		report.Batches++
		if onBatch != nil {
			onBatch(batch)
		}
	}

	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		p.log.WithError(err).Errorf("Cannot create cache directory %s", cacheDir)
	}

	for _, result := range results {
		report.Attempted++

		imagePath, cached, err := p.fetchOne(ctx, result, cacheDir)
		if err != nil {
			report.Failed++
			p.log.WithField("url", result.ImageURL).Warn(err.Error())
			continue
		}

		pending = append(pending, imagePath)
		if cached {
			report.Cached++
			p.log.WithField("url", result.ImageURL).Tracef("Cache hit %s", imagePath)
			continue
		}

		report.Downloaded++
		if report.Downloaded%BatchSize == 0 {
			flush()
		}
	}
	flush()

	p.log.Infof("Fetched %d results: %d downloaded, %d cached, %d failed",
		report.Attempted, report.Downloaded, report.Cached, report.Failed)
	return report
}

// fetchOne returns the local image path and whether it was already cached
func (p *Pipeline) fetchOne(ctx context.Context, result model.SearchResult, cacheDir string) (string, bool, error) {
	imagePath, tagPath, err := CachePaths(cacheDir, result.ImageURL)
	if err != nil {
		return "", false, &DownloadError{URL: result.ImageURL, Err: err}
	}

	if _, err := os.Stat(imagePath); err == nil {
		return imagePath, true, nil
	}

	data, err := p.get(ctx, result.ImageURL)
	if err != nil {
		return "", false, &DownloadError{URL: result.ImageURL, Err: err}
	}

	if err := writeFileAtomic(imagePath, data); err != nil {
		return "", false, &DownloadError{URL: result.ImageURL, Err: errors.Wrap(err, "write image")}
	}
	if err := os.WriteFile(tagPath, []byte(result.Tags), FilePermissions); err != nil {
		return "", false, &DownloadError{URL: result.ImageURL, Err: errors.Wrap(err, "write tags")}
	}

	p.log.WithField("url", result.ImageURL).Debugf("Saved %s (%d bytes)", filepath.Base(imagePath), len(data))
	return imagePath, false, nil
}

func (p *Pipeline) get(ctx context.Context, imageURL string) ([]byte, error) {
	header := req.Header{
		"User-Agent": p.cfg.UserAgent,
		"Referer":    p.cfg.Referer,
	}
	resp, err := p.r.Get(imageURL, header, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	data, err := resp.ToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	status := resp.Response().StatusCode
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, errors.Errorf("unexpected status %d", status)
	}
	return data, nil
}

// writeFileAtomic writes through a temporary file so that an interrupted
// write never leaves a file that later counts as a cache hit.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, FilePermissions); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
