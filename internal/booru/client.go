package booru

import (
	"context"
	"net/http"
	"strconv"

	"github.com/imroc/req"
	"github.com/pkg/errors"

	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
)

// Searcher runs tag searches against an image board.
type Searcher interface {
	Search(ctx context.Context, pr model.PageRequest) ([]model.SearchResult, error)
}

// Client is the Searcher for Danbooru-compatible APIs
type Client struct {
	cfg Config
	r   *req.Req
}

// NewClient creates a client from cfg; empty fields take defaults
func NewClient(cfg Config) *Client {
	cfg = cfg.WithDefaults()
	return &Client{cfg: cfg, r: NewRequester(cfg)}
}

// Config returns the effective configuration
func (c *Client) Config() Config {
	return c.cfg
}

// Search fetches one page of posts for a tag. Any failure is returned as a
// *QueryError and no partial results are returned.
func (c *Client) Search(ctx context.Context, pr model.PageRequest) ([]model.SearchResult, error) {
	logger := logging.For("booru").WithField("request_id", pr.ID)

	if err := pr.Validate(); err != nil {
		return nil, &QueryError{Request: pr, Err: err}
	}

	header := req.Header{
		"User-Agent": c.cfg.UserAgent,
		"Accept":     "application/json",
	}
	if auth := c.cfg.AuthorizationHeader(); auth != "" {
		header["Authorization"] = auth
	}
	query := req.QueryParam{
		"tags":  pr.Tag,
		"limit": strconv.Itoa(pr.PageSize),
		"page":  strconv.Itoa(pr.Page),
	}

	logger.Debugf("Searching %s %s", c.cfg.SearchEndpoint(), pr)
	resp, err := c.r.Get(c.cfg.SearchEndpoint(), header, query, ctx)
	if err != nil {
		return nil, &QueryError{Request: pr, Err: errors.Wrap(err, "request failed")}
	}

	status := resp.Response().StatusCode
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		_, _ = resp.ToBytes()
		return nil, &QueryError{Request: pr, StatusCode: status, Err: errors.Errorf("unexpected status %s", http.StatusText(status))}
	}

	var posts []Post
	if err := resp.ToJSON(&posts); err != nil {
		return nil, &QueryError{Request: pr, StatusCode: status, Err: errors.Wrap(err, "decode posts")}
	}

	results := ToResults(posts, pr.PageSize)
	logger.Infof("Search %s returned %d posts, %d with files", pr, len(posts), len(results))
	return results, nil
}
