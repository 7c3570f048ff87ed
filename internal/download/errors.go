package download

import "fmt"

// DownloadError describes a single result that could not be fetched or
// stored. It is logged only; the pipeline moves on to the next result.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
