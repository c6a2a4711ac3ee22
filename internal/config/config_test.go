package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvDownloadDir, EnvAuthUser, EnvAuthPassword, EnvProjectID} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s := Load()
	if s.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", s.BaseURL)
	}
	if s.DownloadDir != DefaultDownloadDir {
		t.Errorf("DownloadDir = %q, want %q", s.DownloadDir, DefaultDownloadDir)
	}
	if s.AuthUser != "" || s.AuthPassword != "" {
		t.Errorf("auth = %q/%q, want empty", s.AuthUser, s.AuthPassword)
	}
	if s.ProjectID != "" {
		t.Errorf("ProjectID = %q, want empty", s.ProjectID)
	}
}

func TestLoad_AllSet(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "http://host/share")
	t.Setenv(EnvDownloadDir, "/tmp/dl")
	t.Setenv(EnvAuthUser, "alice")
	t.Setenv(EnvAuthPassword, "secret")
	t.Setenv(EnvProjectID, "7")

	s := Load()
	if s.BaseURL != "http://host/share" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.DownloadDir != "/tmp/dl" {
		t.Errorf("DownloadDir = %q", s.DownloadDir)
	}
	if s.AuthUser != "alice" || s.AuthPassword != "secret" {
		t.Errorf("auth = %q/%q", s.AuthUser, s.AuthPassword)
	}
	if s.ProjectID != "7" {
		t.Errorf("ProjectID = %q", s.ProjectID)
	}
}

func TestHasAuth(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		want     bool
	}{
		{"both set", "alice", "secret", true},
		{"neither set", "", "", false},
		{"user only", "alice", "", false},
		{"password only", "", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{AuthUser: tt.user, AuthPassword: tt.password}
			if got := s.HasAuth(); got != tt.want {
				t.Errorf("HasAuth() = %v, want %v", got, tt.want)
			}
		})
	}
}
