// ABOUTME: Tests for gymtrack configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, backend selection, and path expansion.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/gymtrack/internal/session"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"GYMTRACK_BACKEND", "GYMTRACK_DATA_DIR", "GYMTRACK_LOG_LEVEL", "GYMTRACK_CHARM_HOST"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "badger"}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg-data/gymtrack" {
		t.Errorf("GetDataDir() = %q, want /tmp/xdg-data/gymtrack", got)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/gym-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "gym-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/gym", filepath.Join(home, "data/gym")},
		{"data/gym", "data/gym"},
		{"~bob/gym", "~bob/gym"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	setConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" || cfg.Profile != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
	if cfg.Session().IsAuthenticated() {
		t.Error("empty config must not be signed in")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := setConfigHome(t)

	cfg := &Config{
		Backend: "badger",
		DataDir: "/tmp/gym-data",
		Profile: &session.User{ID: "u1", Name: "Sam", Preferences: session.Preferences{WeekStartsOn: 0}},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "gymtrack", "config.json")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != "badger" || loaded.DataDir != "/tmp/gym-data" {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.Session().IsAuthenticated() {
		t.Fatal("expected saved profile to sign in")
	}
	if loaded.Session().Preferences().WeekStartsOn != 0 {
		t.Error("expected Sunday week start to survive the round trip")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	setConfigHome(t)
	if err := (&Config{Backend: "sqlite", LogLevel: "info"}).Save(); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GYMTRACK_BACKEND", "memory")
	t.Setenv("GYMTRACK_DATA_DIR", "/tmp/env-dir")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Backend)
	}
	if cfg.DataDir != "/tmp/env-dir" {
		t.Errorf("DataDir = %q, want /tmp/env-dir", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info from file", cfg.LogLevel)
	}

	file, err := LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if file.Backend != "sqlite" {
		t.Errorf("LoadFile() Backend = %q, want sqlite", file.Backend)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := setConfigHome(t)

	configDir := filepath.Join(dir, "gymtrack")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestOpenBackend(t *testing.T) {
	tests := []struct {
		backend string
		check   string
	}{
		{"sqlite", "gymtrack.db"},
		{"badger", "badger"},
		{"memory", ""},
		{"", "gymtrack.db"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			dir := t.TempDir()
			cfg := &Config{Backend: tt.backend, DataDir: dir}

			b, err := cfg.OpenBackend()
			if err != nil {
				t.Fatalf("OpenBackend() failed: %v", err)
			}
			defer b.Close()

			if tt.check != "" {
				if _, err := os.Stat(filepath.Join(dir, tt.check)); err != nil {
					t.Errorf("expected %s to be created: %v", tt.check, err)
				}
			}
		})
	}
}

func TestOpenBackendInvalid(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: "/tmp"}
	if _, err := cfg.OpenBackend(); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := (&Config{}).NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("default level should be warn, got %q", out)
	}

	if _, err := (&Config{LogLevel: "loud"}).NewLogger(&buf); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
