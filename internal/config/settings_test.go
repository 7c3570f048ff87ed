package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/booru-gallery/internal/booru"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBaseURL(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetBaseURL(); got != booru.DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", booru.DefaultBaseURL, got)
	}

	settings.SetBaseURL(" https://danbooru.donmai.us/ ")
	if got := settings.GetBaseURL(); got != "https://danbooru.donmai.us" {
		t.Errorf("Expected trimmed base URL, got %s", got)
	}

	settings.SetBaseURL("")
	if got := settings.GetBaseURL(); got != booru.DefaultBaseURL {
		t.Errorf("Empty base URL should reset to default, got %s", got)
	}
}

func TestCacheDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if dir := settings.GetCacheDirectory(); dir == "" {
		t.Error("Cache directory should not be empty")
	}

	customDir := "/custom/cache"
	settings.SetCacheDirectory(customDir)
	if got := settings.GetCacheDirectory(); got != customDir {
		t.Errorf("Expected cache directory %s, got %s", customDir, got)
	}
}

func TestPageSize(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetPageSize(); got != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, got)
	}

	settings.SetPageSize(60)
	if got := settings.GetPageSize(); got != 60 {
		t.Errorf("Expected page size 60, got %d", got)
	}

	settings.SetPageSize(0)
	if settings.GetPageSize() != MinPageSize {
		t.Errorf("Page size should be clamped to minimum %d", MinPageSize)
	}

	settings.SetPageSize(1000)
	if settings.GetPageSize() != MaxPageSize {
		t.Errorf("Page size should be clamped to maximum %d", MaxPageSize)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestLogLevel(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("Expected default log level %d, got %d", DefaultLogLevel, got)
	}
	settings.SetLogLevel(-4)
	if got := settings.GetLogLevel(); got != 0 {
		t.Errorf("Negative log level should clamp to 0, got %d", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	options := NewSettings(test.NewApp()).GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestClientConfig(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetUsername("alice")
	settings.SetAPIKey(" key ")

	cfg := settings.ClientConfig()
	if cfg.Username != "alice" || cfg.APIKey != "key" {
		t.Errorf("Unexpected credentials in client config: %+v", cfg)
	}
	if cfg.UserAgent != booru.DefaultUserAgent {
		t.Errorf("Expected default user agent, got %s", cfg.UserAgent)
	}
	if cfg.Referer != booru.DefaultReferer {
		t.Errorf("Expected default referer, got %s", cfg.Referer)
	}
	if cfg.SearchEndpoint() != booru.DefaultBaseURL+booru.DefaultSearchPath {
		t.Errorf("Unexpected search endpoint %s", cfg.SearchEndpoint())
	}
}
