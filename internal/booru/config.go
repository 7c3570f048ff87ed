package booru

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/imroc/req"
)

// Defaults for the public Danbooru mirrors
const (
	DefaultBaseURL    = "https://safebooru.donmai.us"
	DefaultSearchPath = "/posts.json"
	DefaultReferer    = "https://danbooru.donmai.us"
	DefaultUserAgent  = "booru-gallery/1.0 (+https://github.com/ytget/booru-gallery)"
)

// Config holds everything needed to talk to an image board.
type Config struct {
	BaseURL    string
	SearchPath string
	Username   string
	APIKey     string
	UserAgent  string
	Referer    string        // sent with image downloads
	Timeout    time.Duration // zero means transport default
}

// DefaultConfig returns a Config for the public Safebooru mirror without credentials
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		SearchPath: DefaultSearchPath,
		UserAgent:  DefaultUserAgent,
		Referer:    DefaultReferer,
	}
}

// WithDefaults fills empty fields from DefaultConfig
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.SearchPath == "" {
		c.SearchPath = def.SearchPath
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Referer == "" {
		c.Referer = def.Referer
	}
	return c
}

// SearchEndpoint returns the absolute search URL without query
func (c Config) SearchEndpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.SearchPath, "/")
}

// HasCredentials reports whether basic auth will be attached
func (c Config) HasCredentials() bool {
	return c.Username != ""
}

// AuthorizationHeader returns the basic auth header value, or "" without credentials
func (c Config) AuthorizationHeader() string {
	if !c.HasCredentials() {
		return ""
	}
	token := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.APIKey))
	return "Basic " + token
}

// NewRequester builds the HTTP requester shared by search and downloads
func NewRequester(c Config) *req.Req {
	r := req.New()
	r.SetClient(&http.Client{Timeout: c.Timeout})
	return r
}
