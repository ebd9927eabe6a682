package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	DBFile      string
	LeadsFile   string

	MediaEndpoint  string
	MediaAccessKey string
	MediaSecretKey string
	MediaBucket    string
	MediaUseSSL    bool
	MediaPublicURL string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "3000"),
		DatabaseURL:    getenv("DATABASE_URL", ""),
		DBFile:         getenv("DB_FILE", "db.json"),
		LeadsFile:      getenv("LEADS_FILE", "sell_requests.csv"),
		MediaEndpoint:  getenv("MEDIA_ENDPOINT", "minio:9000"),
		MediaAccessKey: getenv("MEDIA_ACCESS_KEY", ""),
		MediaSecretKey: getenv("MEDIA_SECRET_KEY", ""),
		MediaBucket:    getenv("MEDIA_BUCKET", "vehicle-images"),
		MediaUseSSL:    getenv("MEDIA_USE_SSL", "false") == "true",
		MediaPublicURL: getenv("MEDIA_PUBLIC_URL", ""),
	}
}

// HasMediaCredentials reports whether the media host is configured. Without
// credentials only the upload route degrades; everything else still works.
func (c *Config) HasMediaCredentials() bool {
	return c.MediaAccessKey != "" && c.MediaSecretKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
