package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ytget/booru-gallery/internal/booru"
)

// Environment variables read by LoadEnv
const (
	EnvUsername = "BOORU_USERNAME"
	EnvAPIKey   = "BOORU_API_KEY"
	EnvBaseURL  = "BOORU_BASE_URL"
)

// Env holds values found in the process environment or a .env file
type Env struct {
	Username string
	APIKey   string
	BaseURL  string
}

// LoadEnv reads credentials from path (if it exists) and the process
// environment. Process variables win over the file.
func LoadEnv(path string) (Env, error) {
	values := map[string]string{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			fileValues, err := godotenv.Read(path)
			if err != nil {
				return Env{}, errors.Wrapf(err, "read %s", path)
			}
			values = fileValues
		}
	}

	pick := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return values[key]
	}

	return Env{
		Username: pick(EnvUsername),
		APIKey:   pick(EnvAPIKey),
		BaseURL:  pick(EnvBaseURL),
	}, nil
}

// Apply fills cfg fields that are still empty
func (e Env) Apply(cfg booru.Config) booru.Config {
	if cfg.Username == "" {
		cfg.Username = e.Username
	}
	if cfg.APIKey == "" {
		cfg.APIKey = e.APIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = e.BaseURL
	}
	return cfg
}

// Seed stores env credentials into preferences that are not set yet
func (s *Settings) Seed(e Env) {
	if s.GetUsername() == "" && e.Username != "" {
		s.SetUsername(e.Username)
	}
	if s.GetAPIKey() == "" && e.APIKey != "" {
		s.SetAPIKey(e.APIKey)
	}
	if s.app.Preferences().String(KeyBaseURL) == "" && e.BaseURL != "" {
		s.SetBaseURL(e.BaseURL)
	}
}
