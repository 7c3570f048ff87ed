// Package thumbnail decodes cached images into small previews for the grid
// and keeps recently used previews in memory.
package thumbnail

import (
	"image"
	"sync"
	"time"

	"github.com/apibillme/cache"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/platform"
)

// Thumbnail defaults
const (
	DefaultSize     = 160
	DefaultCapacity = 512
	DefaultTTL      = 30 * time.Minute
)

// Service renders and caches thumbnails
type Service struct {
	size     int
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	cache cache.Cache
	log   *log.Entry
}

// NewService creates a thumbnail service producing previews that fit in a
// size x size box
func NewService(size int) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{
		size:     size,
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		cache:    cache.New(DefaultCapacity, cache.WithTTL(DefaultTTL)),
		log:      logging.For("thumbnail"),
	}
}

// Thumbnail returns the preview for path
func (s *Service) Thumbnail(path string) (image.Image, error) {
	s.mu.Lock()
	cached, ok := s.cache.Get(path)
	s.mu.Unlock()
	if ok {
		if img, isImg := cached.(image.Image); isImg && img != nil {
			return img, nil
		}
	}

	if !platform.IsImageFile(path) {
		return nil, errors.Errorf("not an image: %s", path)
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	thumb := imaging.Fit(src, s.size, s.size, imaging.Lanczos)

	s.mu.Lock()
	s.cache.Set(path, image.Image(thumb))
	s.mu.Unlock()

	s.log.Tracef("Rendered thumbnail for %s", path)
	return thumb, nil
}

// Purge drops every cached preview
func (s *Service) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = cache.New(s.capacity, cache.WithTTL(s.ttl))
}
