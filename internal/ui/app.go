package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flicktui/flick/internal/config"
	"github.com/flicktui/flick/internal/journal"
	"github.com/flicktui/flick/internal/prefs"
	"github.com/flicktui/flick/toggle"
)

// RemoteFlipMsg flips the external value pushed at every controlled switch.
// Sent by the background remote controller and by the FlipRemote key.
type RemoteFlipMsg struct{}

// Options configures the gallery UI.
type Options struct {
	Context   context.Context
	Config    config.Config
	Journal   *journal.Store
	ThemeName string
	PrefsPath string
	Prefs     prefs.Prefs
}

// item pairs a preset with its live switch component.
type item struct {
	preset config.Switch
	sw     toggle.Model
}

// Model is the root gallery state for Bubble Tea.
type Model struct {
	ctx       context.Context
	journal   *journal.Store
	prefsPath string

	theme Theme
	keys  keyMap
	help  help.Model
	spin  spinner.Model

	items    []item
	selected int

	remoteValue bool
	showJournal bool

	width  int
	height int
	ready  bool
}

// New creates the gallery model from the configured line-up.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}

	store := opts.Journal
	if store == nil {
		store = journal.NewStore(0)
	}

	items := make([]item, 0, len(opts.Config.Switches))
	remoteValue := false
	for _, p := range opts.Config.Switches {
		items = append(items, item{preset: p, sw: buildSwitch(p, store)})
		if p.Controlled {
			remoteValue = p.Value
		}
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	return Model{
		ctx:         ctx,
		journal:     store,
		prefsPath:   opts.PrefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spin:        sp,
		items:       items,
		remoteValue: remoteValue,
		showJournal: opts.Prefs.ShowJournal,
	}
}

// buildSwitch wires a preset's confirmation mode into a switch component.
// Commits are journaled from the change callback on the update loop; vetoes
// are journaled by the collaborator itself, which may run on its own
// goroutine.
func buildSwitch(p config.Switch, jl *journal.Store) toggle.Model {
	cfg := toggle.Config{
		Width:               p.Width,
		Height:              p.Height,
		Value:               p.Value,
		Disabled:            p.Disabled,
		CircleColorActive:   p.CircleColorActive,
		CircleColorInactive: p.CircleColorInactive,
		BackgroundActive:    p.BackgroundActive,
		BackgroundInactive:  p.BackgroundInactive,
		SpringSlide:         p.Spring,
	}

	recordCommit := func(v bool) {
		jl.Append(journal.Entry{Switch: p.ID, Kind: journal.KindCommit, Value: v})
	}

	switch p.Mode {
	case config.ModeSync:
		cfg.OnSyncPress = recordCommit
	case config.ModeSlow:
		delay := time.Duration(p.ConfirmDelayMS) * time.Millisecond
		cfg.OnAsyncPress = func(_ bool, respond func(bool)) {
			time.AfterFunc(delay, func() { respond(true) })
		}
		cfg.OnChange = recordCommit
	case config.ModeVeto:
		cfg.OnAsyncPress = func(next bool, respond func(bool)) {
			jl.Append(journal.Entry{Switch: p.ID, Kind: journal.KindVeto, Value: next})
			respond(false)
		}
	default:
		cfg.OnChange = recordCommit
	}

	return toggle.New(p.ID, cfg)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case RemoteFlipMsg:
		return m.flipRemote()
	}

	// Mouse, frame, and confirm messages route to every switch; each one
	// filters on its own ID or zone.
	return m.routeToSwitches(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Press):
		if len(m.items) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.items[m.selected].sw, cmd = m.items[m.selected].sw.Press()
		return m, cmd

	case key.Matches(msg, m.keys.FlipRemote):
		return m, func() tea.Msg { return RemoteFlipMsg{} }

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleJournal):
		m.showJournal = !m.showJournal
		m.savePrefs()
		return m, nil
	}
	return m, nil
}

// flipRemote pushes a new external value at every controlled switch. A
// forced override is journaled; a no-op reconcile (value unchanged or
// already matching) is not.
func (m Model) flipRemote() (tea.Model, tea.Cmd) {
	m.remoteValue = !m.remoteValue
	var cmds []tea.Cmd
	for i := range m.items {
		if !m.items[i].preset.Controlled {
			continue
		}
		var cmd tea.Cmd
		m.items[i].sw, cmd = m.items[i].sw.SetValue(m.remoteValue)
		if cmd != nil {
			m.journal.Append(journal.Entry{
				Switch: m.items[i].preset.ID,
				Kind:   journal.KindOverride,
				Value:  m.remoteValue,
			})
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) routeToSwitches(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.items {
		var cmd tea.Cmd
		m.items[i].sw, cmd = m.items[i].sw.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:       m.theme.Name,
		ShowJournal: m.showJournal,
	})
}

// confirmsPending reports whether any switch is waiting on a verdict.
func (m Model) confirmsPending() bool {
	for i := range m.items {
		if m.items[i].sw.ConfirmPending() {
			return true
		}
	}
	return false
}

// labelWidth is the rendered width of the label column.
func (m Model) labelWidth() int {
	w := 0
	for i := range m.items {
		if lw := lipgloss.Width(m.items[i].preset.Label); lw > w {
			w = lw
		}
	}
	return w + 2
}
