// ABOUTME: Tests for demo settings loading and per-field fallback
// ABOUTME: Uses t.TempDir for file fixtures

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devobs/waiting-indicator/pkg/waiting"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileIsDefaults(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s.FadeDuration() != waiting.DefaultDuration {
		t.Errorf("FadeDuration = %v, want library default", s.FadeDuration())
	}
	if !s.DisplayChild() {
		t.Error("DisplayChild should default to true")
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "fade_millis: 120\n")
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.FadeDuration() != 120*time.Millisecond {
		t.Errorf("FadeDuration = %v, want 120ms", s.FadeDuration())
	}
	// Unset fields keep their defaults.
	if !s.DisplayChild() {
		t.Error("unset show_child should stay true")
	}
}

func TestLoad_ExplicitFalse(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "show_child: false\ntheme: light\ndebug: true\n")
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.DisplayChild() {
		t.Error("explicit false must not be treated as unset")
	}
	if s.Theme != "light" || !s.Debug {
		t.Errorf("theme/debug not parsed: %+v", s)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "fade_millis: [nope\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}
