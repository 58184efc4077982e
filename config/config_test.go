package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes the working directory for the test and restores it on
// cleanup. Stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", `
server_url: "https://blog.example.com"
prefetch_count: 8
logging:
  level: debug
  format: json
`)

	s, err := Load(LoaderOptions{ConfigFile: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if s.ServerURL != "https://blog.example.com" {
		t.Errorf("ServerURL = %q", s.ServerURL)
	}
	if s.PrefetchCount != 8 {
		t.Errorf("PrefetchCount = %d", s.PrefetchCount)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("Logging = %+v", s.Logging)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// Run from an empty directory so no config.yml is found.
	chdir(t, t.TempDir())

	s, err := Load(LoaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.ServerURL != "" {
		t.Errorf("ServerURL = %q, want empty", s.ServerURL)
	}
	if s.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", s.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", `server_url: "https://file.example.com"`)
	t.Setenv("FEOBLOG_SERVER_URL", "https://env.example.com")

	s, err := Load(LoaderOptions{ConfigFile: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if s.ServerURL != "https://env.example.com" {
		t.Errorf("ServerURL = %q, want env value", s.ServerURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "FEOBLOG_PREFETCH_COUNT=3\n")
	// godotenv sets real process env and does not restore it.
	t.Cleanup(func() { os.Unsetenv("FEOBLOG_PREFETCH_COUNT") })

	s, err := Load(LoaderOptions{EnvFile: envFile})
	if err != nil {
		t.Fatal(err)
	}
	if s.PrefetchCount != 3 {
		t.Errorf("PrefetchCount = %d, want 3", s.PrefetchCount)
	}
}

func TestLoad_RejectsBadServerURL(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", `server_url: "https://example.com/path"`)

	_, err := Load(LoaderOptions{ConfigFile: cfg})
	if err == nil {
		t.Fatal("expected error for server URL with a path")
	}
	if !strings.Contains(err.Error(), "server_url") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestLoad_RejectsBadPrefetchCount(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yml", `prefetch_count: -1`)

	_, err := Load(LoaderOptions{ConfigFile: cfg})
	if err == nil {
		t.Fatal("expected error for negative prefetch count")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(LoaderOptions{ConfigFile: "/does/not/exist.yml"})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
