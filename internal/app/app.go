package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/flicktui/flick/internal/config"
	"github.com/flicktui/flick/internal/journal"
	"github.com/flicktui/flick/internal/prefs"
	"github.com/flicktui/flick/internal/ui"
)

const defaultRemoteInterval = 5 * time.Second

// Options configure the flick application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/flick/prefs.toml
	RemoteEvery int    // seconds between remote flips; zero uses default
}

// Run boots the flick gallery until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	store := journal.NewStore(0)

	zone.NewGlobal()

	model := ui.New(ui.Options{
		Context:   ctx,
		Config:    cfg,
		Journal:   store,
		PrefsPath: prefsPath,
		Prefs:     userPrefs,
	})

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	interval := defaultRemoteInterval
	if opts.RemoteEvery > 0 {
		interval = time.Duration(opts.RemoteEvery) * time.Second
	}
	if hasControlled(cfg) {
		StartRemote(ctx, program, interval)
	}

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func hasControlled(cfg config.Config) bool {
	for _, sw := range cfg.Switches {
		if sw.Controlled {
			return true
		}
	}
	return false
}
