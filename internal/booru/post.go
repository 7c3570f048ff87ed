package booru

import (
	"github.com/ytget/booru-gallery/internal/model"
)

// Post is the subset of a Danbooru post object the gallery needs.
// Pointers distinguish a missing field from an empty one.
type Post struct {
	ID        int     `json:"id"`
	FileURL   *string `json:"file_url"`
	TagString *string `json:"tag_string"`
}

// ToResults converts posts into search results, skipping posts without a
// file URL. At most limit results are returned when limit is positive.
func ToResults(posts []Post, limit int) []model.SearchResult {
	results := make([]model.SearchResult, 0, len(posts))
	for _, p := range posts {
		if p.FileURL == nil || *p.FileURL == "" {
			continue
		}
		tags := ""
		if p.TagString != nil {
			tags = *p.TagString
		}
		results = append(results, model.SearchResult{ImageURL: *p.FileURL, Tags: tags})
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}
