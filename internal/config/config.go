// Package config loads immutable settings from the process environment.
package config

import "os"

// Environment variables recognized by Load.
const (
	EnvBaseURL      = "SHARE_API_BASE_URL"
	EnvDownloadDir  = "SHARE_API_DOWNLOAD_DIR"
	EnvAuthUser     = "SHARE_API_AUTH_USER"
	EnvAuthPassword = "SHARE_API_AUTH_PASSWORD"
	EnvProjectID    = "SHARE_API_PROJECT_ID"
)

// DefaultDownloadDir is used when neither a tool argument nor
// SHARE_API_DOWNLOAD_DIR provides a download directory.
const DefaultDownloadDir = "./downloads"

// Settings holds the share API configuration. Values are fixed at load
// time; callers construct a fresh Settings per tool invocation rather
// than mutating one.
type Settings struct {
	BaseURL      string
	DownloadDir  string
	AuthUser     string
	AuthPassword string
	ProjectID    string
}

// Load builds Settings from environment variables. It never fails:
// unset variables resolve to documented defaults or empty strings.
func Load() Settings {
	downloadDir := os.Getenv(EnvDownloadDir)
	if downloadDir == "" {
		downloadDir = DefaultDownloadDir
	}
	return Settings{
		BaseURL:      os.Getenv(EnvBaseURL),
		DownloadDir:  downloadDir,
		AuthUser:     os.Getenv(EnvAuthUser),
		AuthPassword: os.Getenv(EnvAuthPassword),
		ProjectID:    os.Getenv(EnvProjectID),
	}
}

// HasAuth reports whether basic-auth credentials are configured.
// One credential without its counterpart counts as no auth.
func (s Settings) HasAuth() bool {
	return s.AuthUser != "" && s.AuthPassword != ""
}
