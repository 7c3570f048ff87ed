package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SearchResult is a single post returned by the search endpoint.
type SearchResult struct {
	ImageURL string
	Tags     string // raw tag string as returned by the API
}

// PageRequest describes one page of a tag search.
type PageRequest struct {
	ID       string // correlation id for logs
	Tag      string
	PageSize int
	Page     int // 1-based
}

// NewPageRequest creates a page request with a fresh correlation id
func NewPageRequest(tag string, pageSize, page int) PageRequest {
	return PageRequest{
		ID:       uuid.NewString(),
		Tag:      strings.TrimSpace(tag),
		PageSize: pageSize,
		Page:     page,
	}
}

// Validate checks that the request can be sent
func (pr PageRequest) Validate() error {
	if pr.Tag == "" {
		return fmt.Errorf("tag is empty")
	}
	if pr.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", pr.PageSize)
	}
	if pr.Page <= 0 {
		return fmt.Errorf("page must be positive, got %d", pr.Page)
	}
	return nil
}

// Next returns the request for the following page
func (pr PageRequest) Next() PageRequest {
	return NewPageRequest(pr.Tag, pr.PageSize, pr.Page+1)
}

// Prev returns the request for the previous page. The first page has no
// predecessor; ok is false in that case.
func (pr PageRequest) Prev() (PageRequest, bool) {
	if pr.Page <= 1 {
		return pr, false
	}
	return NewPageRequest(pr.Tag, pr.PageSize, pr.Page-1), true
}

// String returns a compact representation for logs
func (pr PageRequest) String() string {
	return fmt.Sprintf("tags=%q limit=%d page=%d", pr.Tag, pr.PageSize, pr.Page)
}
