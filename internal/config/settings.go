package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL   = "base_url"
	KeyUsername  = "username"
	KeyAPIKey    = "api_key"
	KeyUserAgent = "user_agent"
	KeyReferer   = "referer"
	KeyPageSize  = "images_per_page"
	KeyCacheDir  = "cache_directory"
	KeyLanguage  = "app_language"
	KeyLogLevel  = "log_level"
)

// Default values
const (
	DefaultPageSize = 20
	DefaultLanguage = "system"
	DefaultLogLevel = 0
	MinPageSize     = 1
	MaxPageSize     = 200 // Danbooru caps limit at 200
)

// PageSizeOptions are offered in the images-per-page selector
var PageSizeOptions = []int{10, 20, 40, 60, 100}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseURL returns the image board origin used for searches
func (s *Settings) GetBaseURL() string {
	url := s.app.Preferences().String(KeyBaseURL)
	if url == "" {
		s.SetBaseURL(booru.DefaultBaseURL)
		return booru.DefaultBaseURL
	}
	return url
}

// SetBaseURL sets the image board origin; empty resets to the default
func (s *Settings) SetBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = booru.DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyBaseURL, url)
}

// GetUsername returns the API login name
func (s *Settings) GetUsername() string {
	return s.app.Preferences().String(KeyUsername)
}

// SetUsername sets the API login name
func (s *Settings) SetUsername(name string) {
	s.app.Preferences().SetString(KeyUsername, strings.TrimSpace(name))
}

// GetAPIKey returns the API key
func (s *Settings) GetAPIKey() string {
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey sets the API key
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, strings.TrimSpace(key))
}

// GetUserAgent returns the identifying user agent
func (s *Settings) GetUserAgent() string {
	return s.app.Preferences().StringWithFallback(KeyUserAgent, booru.DefaultUserAgent)
}

// SetUserAgent sets the user agent
func (s *Settings) SetUserAgent(ua string) {
	s.app.Preferences().SetString(KeyUserAgent, ua)
}

// GetReferer returns the referer sent with image downloads
func (s *Settings) GetReferer() string {
	return s.app.Preferences().StringWithFallback(KeyReferer, booru.DefaultReferer)
}

// SetReferer sets the download referer
func (s *Settings) SetReferer(referer string) {
	s.app.Preferences().SetString(KeyReferer, referer)
}

// GetPageSize returns the number of images requested per page
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the number of images per page
func (s *Settings) SetPageSize(size int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetCacheDirectory returns the directory downloaded images are cached in
func (s *Settings) GetCacheDirectory() string {
	dir := s.app.Preferences().String(KeyCacheDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultCacheDir()
		if err != nil {
			defaultDir = filepath.Join("/tmp", platform.AppDirName)
		}
		s.SetCacheDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetCacheDirectory sets the cache directory
func (s *Settings) SetCacheDirectory(dir string) {
	s.app.Preferences().SetString(KeyCacheDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the logging verbosity (0 info, 1 debug, 2 trace)
func (s *Settings) GetLogLevel() int {
	return s.app.Preferences().IntWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the logging verbosity
func (s *Settings) SetLogLevel(level int) {
	if level < 0 {
		level = 0
	}
	s.app.Preferences().SetInt(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ClientConfig builds the image board client configuration from settings
func (s *Settings) ClientConfig() booru.Config {
	return booru.Config{
		BaseURL:    s.GetBaseURL(),
		SearchPath: booru.DefaultSearchPath,
		Username:   s.GetUsername(),
		APIKey:     s.GetAPIKey(),
		UserAgent:  s.GetUserAgent(),
		Referer:    s.GetReferer(),
	}
}
