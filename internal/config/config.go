// Package config loads settings from a .env file and the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// APIKeyStorageKey is the persisted-store entry holding the credential.
const APIKeyStorageKey = "apiKey"

type Config struct {
	// APIKey is the OMDb credential. Empty means searches are disabled
	// until one is found in the persisted store.
	APIKey string

	// APIBaseURL points at the collaborator API, overridable for tests.
	APIBaseURL string

	// DataDir holds the persisted key-value entries.
	DataDir string

	// Debug enables logging to a file (a TUI owns the terminal).
	Debug bool
}

// Load reads .env if present, then the environment. Missing values
// get usable defaults; a missing user config dir leaves DataDir empty
// and the caller falls back to in-memory storage.
func Load() Config {
	_ = godotenv.Load()

	dataDir := os.Getenv("CINEBUSCA_DATA_DIR")
	if dataDir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dataDir = filepath.Join(base, "cinebusca")
		}
	}

	return Config{
		APIKey:     os.Getenv("OMDB_API_KEY"),
		APIBaseURL: getEnv("CINEBUSCA_API_URL", "https://www.omdbapi.com/"),
		DataDir:    dataDir,
		Debug:      os.Getenv("DEBUG") != "",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
