package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Confirmation modes a preset can ask for.
const (
	ModeAsync = "async" // default confirmer, resolves immediately
	ModeSync  = "sync"  // unconditional commit via a sync handler
	ModeSlow  = "slow"  // async confirmer that answers after a delay
	ModeVeto  = "veto"  // async confirmer that always answers false
)

const defaultConfigPath = "~/.config/flick/config.toml"

// Switch describes one switch preset in the gallery.
type Switch struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`

	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Value  bool    `toml:"value"`

	CircleColorActive   string `toml:"circle_color_active"`
	CircleColorInactive string `toml:"circle_color_inactive"`
	BackgroundActive    string `toml:"background_active"`
	BackgroundInactive  string `toml:"background_inactive"`

	Mode           string `toml:"mode"`
	ConfirmDelayMS int    `toml:"confirm_delay_ms"`
	Spring         bool   `toml:"spring"`
	Disabled       bool   `toml:"disabled"`
	Controlled     bool   `toml:"controlled"`
}

// Config is the gallery line-up.
type Config struct {
	Switches []Switch
}

// Load locates and parses the gallery config, falling back to the built-in
// line-up when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{Switches: DefaultSwitches()}, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Switches []Switch `toml:"switch"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(raw.Switches) == 0 {
		return Config{Switches: DefaultSwitches()}, nil
	}

	for i := range raw.Switches {
		normalize(&raw.Switches[i], i)
	}
	return Config{Switches: raw.Switches}, nil
}

func normalize(sw *Switch, index int) {
	sw.ID = strings.TrimSpace(sw.ID)
	if sw.ID == "" {
		sw.ID = fmt.Sprintf("switch-%d", index+1)
	}
	if strings.TrimSpace(sw.Label) == "" {
		sw.Label = sw.ID
	}
	switch strings.TrimSpace(strings.ToLower(sw.Mode)) {
	case ModeSync:
		sw.Mode = ModeSync
	case ModeSlow:
		sw.Mode = ModeSlow
	case ModeVeto:
		sw.Mode = ModeVeto
	default:
		sw.Mode = ModeAsync
	}
	if sw.Mode == ModeSlow && sw.ConfirmDelayMS <= 0 {
		sw.ConfirmDelayMS = 1500
	}
}

// DefaultSwitches returns the built-in gallery line-up, one preset per
// confirmation and animation variant.
func DefaultSwitches() []Switch {
	return []Switch{
		{ID: "plain", Label: "Plain", Mode: ModeAsync},
		{ID: "sync", Label: "Unconditional", Mode: ModeSync, Value: true},
		{ID: "slow", Label: "Slow confirm", Mode: ModeSlow, ConfirmDelayMS: 1500},
		{ID: "veto", Label: "Always vetoed", Mode: ModeVeto},
		{ID: "spring", Label: "Springy", Mode: ModeAsync, Spring: true},
		{ID: "remote", Label: "Remote controlled", Mode: ModeAsync, Controlled: true},
		{ID: "disabled", Label: "Disabled", Mode: ModeAsync, Disabled: true},
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
