package config

import "os"

// Config holds the non-database environment configuration. Database
// credentials are read by db.InitDB directly.
type Config struct {
	// Auth
	JWTSecret string

	// Object storage
	StorageBucket          string
	StorageCredentialsFile string
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		JWTSecret:              getEnv("JWT_SECRET_KEY", "change-me-in-production"),
		StorageBucket:          getEnv("STORAGE_BUCKET", "hotel-carbon-bills"),
		StorageCredentialsFile: getEnv("STORAGE_CREDENTIALS_FILE", "storageServiceAccountKey.json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
