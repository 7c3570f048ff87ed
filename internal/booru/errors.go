package booru

import (
	"fmt"

	"github.com/ytget/booru-gallery/internal/model"
)

// QueryError is returned when a search could not be completed. The gallery
// keeps its previous state when this happens.
type QueryError struct {
	Request    model.PageRequest
	StatusCode int // zero when no response was received
	Err        error
}

func (e *QueryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search %s: status %d: %v", e.Request, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search %s: %v", e.Request, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
