package booru

import "testing"

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Username: "bob"}.WithDefaults()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected BaseURL %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected UserAgent %s, got %s", DefaultUserAgent, cfg.UserAgent)
	}
	if cfg.Referer != DefaultReferer {
		t.Errorf("Expected Referer %s, got %s", DefaultReferer, cfg.Referer)
	}
	if cfg.Username != "bob" {
		t.Errorf("WithDefaults must keep explicit fields, got username %s", cfg.Username)
	}
}

func TestConfig_SearchEndpoint(t *testing.T) {
	tests := []struct {
		base     string
		path     string
		expected string
	}{
		{"https://danbooru.donmai.us", "/posts.json", "https://danbooru.donmai.us/posts.json"},
		{"https://danbooru.donmai.us/", "/posts.json", "https://danbooru.donmai.us/posts.json"},
		{"http://localhost:3000", "posts.json", "http://localhost:3000/posts.json"},
	}

	for _, test := range tests {
		cfg := Config{BaseURL: test.base, SearchPath: test.path}
		if got := cfg.SearchEndpoint(); got != test.expected {
			t.Errorf("SearchEndpoint(%s, %s) = %s, expected %s", test.base, test.path, got, test.expected)
		}
	}
}

func TestConfig_AuthorizationHeader(t *testing.T) {
	if got := (Config{}).AuthorizationHeader(); got != "" {
		t.Errorf("Expected no header without credentials, got %q", got)
	}

	// base64("user:key") == "dXNlcjprZXk="
	cfg := Config{Username: "user", APIKey: "key"}
	if got := cfg.AuthorizationHeader(); got != "Basic dXNlcjprZXk=" {
		t.Errorf("Unexpected header %q", got)
	}
}
