// ABOUTME: YAML settings for the demo binary; unset fields fall back per-field
// ABOUTME: A missing settings file is the defaults, not an error

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devobs/waiting-indicator/pkg/waiting"
)

// Settings are the demo's tunables. Pointer fields distinguish "unset"
// from an explicit zero, mirroring how overlay options resolve.
type Settings struct {
	// FadeMillis is the overlay fade duration in milliseconds.
	FadeMillis *int `yaml:"fade_millis"`

	// ShowChild keeps content visible beneath the indicator.
	ShowChild *bool `yaml:"show_child"`

	// Theme selects a built-in theme by name.
	Theme string `yaml:"theme"`

	// Debug enables debug logging on stderr.
	Debug bool `yaml:"debug"`
}

// Load reads settings from path. A missing file yields zero Settings and
// no error; malformed YAML is an error.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// FadeDuration resolves the fade duration, falling back to the library
// default.
func (s Settings) FadeDuration() time.Duration {
	if s.FadeMillis != nil {
		return time.Duration(*s.FadeMillis) * time.Millisecond
	}
	return waiting.DefaultDuration
}

// DisplayChild resolves the child-visibility flag, default true.
func (s Settings) DisplayChild() bool {
	if s.ShowChild != nil {
		return *s.ShowChild
	}
	return true
}
