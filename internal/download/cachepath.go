package download

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// TagFileExt is the extension of the tag sidecar written next to each image
const TagFileExt = ".txt"

// CachePaths derives where an image and its tag file live inside cacheDir.
// The name is the base name of the URL path; query and fragment are ignored.
func CachePaths(cacheDir, imageURL string) (imagePath, tagPath string, err error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", "", errors.Wrap(err, "parse image url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", "", errors.New("image url has no host")
	}

	base := path.Base(u.Path)
	ext := path.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" || name == "." || name == "/" {
		return "", "", errors.Errorf("image url %q has no file name", imageURL)
	}
	if ext == TagFileExt {
		return "", "", errors.Errorf("image url %q collides with tag files", imageURL)
	}

	imagePath = filepath.Join(cacheDir, name+ext)
	tagPath = filepath.Join(cacheDir, name+TagFileExt)
	return imagePath, tagPath, nil
}

// TagPathFor returns the tag sidecar path of a cached image
func TagPathFor(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + TagFileExt
}

// ReadTags returns the tag string stored next to a cached image. A missing
// sidecar yields an empty string.
func ReadTags(imagePath string) (string, error) {
	data, err := os.ReadFile(TagPathFor(imagePath))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read tags")
	}
	return strings.TrimSpace(string(data)), nil
}
