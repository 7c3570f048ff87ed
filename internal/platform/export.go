package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// maxNameAttempts bounds the search for a free file name in the destination
const maxNameAttempts = 10000

// ExportResult lists what ExportFiles did
type ExportResult struct {
	Copied  []string // destination paths
	Skipped []string // source paths that no longer exist
}

// ExportFiles copies each source file into destDir. An existing file with the
// same name is never overwritten; the copy is renamed "name (2).ext",
// "name (3).ext" and so on. Missing sources are skipped.
func ExportFiles(sources []string, destDir string) (ExportResult, error) {
	var result ExportResult

	if err := CreateDirectoryIfNotExists(destDir); err != nil {
		return result, errors.Wrapf(err, "create export directory %s", destDir)
	}

	for _, src := range sources {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			result.Skipped = append(result.Skipped, src)
			continue
		}

		dst, err := UniquePath(destDir, filepath.Base(src))
		if err != nil {
			return result, err
		}
		if err := copyFile(src, dst); err != nil {
			return result, errors.Wrapf(err, "copy %s", filepath.Base(src))
		}
		result.Copied = append(result.Copied, dst)
	}
	return result, nil
}

// UniquePath returns a path in dir for name that does not exist yet
func UniquePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; i < maxNameAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", errors.Errorf("no free file name for %s in %s", name, dir)
}

// copyFile copies src to dst, failing if dst already exists
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
