package thumbnail

import "image"

// Thumbnailer defines the interface for the thumbnail service.
type Thumbnailer interface {
	// Thumbnail returns a downscaled image for path, decoding it on first use.
	Thumbnail(path string) (image.Image, error)
	// Purge drops every cached thumbnail.
	Purge()
}
