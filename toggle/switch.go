package toggle

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/flicktui/flick/anim"
)

// FrameMsg advances a switch's animations by one frame. Each switch filters
// on ID so several can share one program.
type FrameMsg struct {
	ID   string
	Time time.Time
}

// pendingCommit is a confirmed value change waiting for the track slide to
// finish. notify distinguishes gesture commits (callback fires) from
// reconciler overrides (silent).
type pendingCommit struct {
	value  bool
	notify bool
}

// Model is a drag-to-toggle switch component for Bubble Tea.
//
// The committed value only ever changes in two places: when a confirmed
// commit's track slide completes, or when SetValue applies an external
// override. Mid-animation the track driver is in transit and carries no
// logical meaning.
type Model struct {
	id  string
	cfg Config

	machine Machine
	palette palette

	handle anim.Value // handle extent pulse
	track  anim.Value // horizontal position and color blend driver

	pending *pendingCommit
	gen     uint64 // gesture generation; stale confirm verdicts are dropped
	waiting bool   // confirm verdict outstanding

	pressed bool
	pressX  int

	lastExternal *bool

	ticking bool

	// Seams for tests; production uses the zone manager and wall clock.
	now func() time.Time
	hit func(msg tea.MouseMsg) bool
}

// New returns a switch identified by id, which doubles as its bubblezone
// mark. Zero-valued Config fields fall back to defaults.
func New(id string, cfg Config) Model {
	cfg.applyDefaults()
	m := Model{
		id:      id,
		cfg:     cfg,
		machine: NewMachine(cfg.Value, cfg.Disabled),
		palette: newPalette(cfg),
		now:     time.Now,
	}
	m.hit = func(msg tea.MouseMsg) bool {
		return zone.Get(m.id).InBounds(msg)
	}
	m.handle = anim.NewTween(cfg.handleSize(), pulseDuration, anim.Linear)
	rest := m.trackTarget(cfg.Value)
	if cfg.SpringSlide {
		m.track = anim.NewSpring(rest, 60, springFrequency, springDamping)
	} else {
		m.track = anim.NewTween(rest, slideDuration, anim.Linear)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ConfirmResultMsg:
		if msg.ID != m.id || msg.Gen != m.gen {
			return m, nil
		}
		m.waiting = false
		if !msg.OK {
			// Veto: no value mutation, track stays put.
			return m, nil
		}
		m.beginSlide(msg.Next, true)
		cmd := m.startFrames()
		return m, cmd

	case FrameMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleFrame(msg.Time)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.hit(msg) {
			return m, nil
		}
		m.pressed = true
		m.pressX = msg.X
		effects := m.machine.Grant()
		return m.applyEffects(effects)

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		dx := float64(msg.X-m.pressX) * m.cfg.unitsPerCell()
		m.machine.Move(dx)
		return m, nil

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		effects := m.machine.Release()
		return m.applyEffects(effects)
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (Model, tea.Cmd) {
	m.handle.Step(now)
	m.track.Step(now)

	if m.pending != nil && m.track.Settled() {
		m.finalize()
	}

	if m.handle.Settled() && m.track.Settled() {
		m.ticking = false
		return m, nil
	}
	return m, m.frameCmd()
}

func (m Model) applyEffects(effects []Effect) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff {
		case EffectPulseGrow:
			// A new gesture supersedes any verdict still in flight.
			m.gen++
			m.waiting = false
			m.handle.Retarget(m.cfg.handleSize()*pulseFactor, m.now())
			cmds = append(cmds, m.startFrames())
		case EffectPulseShrink:
			m.handle.Retarget(m.cfg.handleSize(), m.now())
			cmds = append(cmds, m.startFrames())
		case EffectRequestCommit:
			cmds = append(cmds, m.requestCommit())
		}
	}
	return m, tea.Batch(cmds...)
}

// requestCommit runs the confirmation gate for the flipped value. A
// synchronous handler makes the commit unconditional; otherwise the
// asynchronous collaborator (or the immediate default) decides.
func (m *Model) requestCommit() tea.Cmd {
	next := !m.machine.Value()
	if m.cfg.OnSyncPress != nil {
		m.beginSlide(next, true)
		return m.startFrames()
	}
	confirm := m.cfg.OnAsyncPress
	if confirm == nil {
		confirm = defaultConfirm
	}
	m.waiting = true
	return confirmCmd(m.id, m.gen, next, confirm)
}

// beginSlide starts the track animation toward the rest position for v. The
// value itself is only committed once the slide settles. Starting a slide
// also supersedes any verdict still in flight, so an external override
// cannot be undone by a late confirmation.
func (m *Model) beginSlide(v, notify bool) {
	m.gen++
	m.waiting = false
	m.pending = &pendingCommit{value: v, notify: notify}
	m.track.Retarget(m.trackTarget(v), m.now())
}

// finalize commits the pending value now that the track is at rest.
func (m *Model) finalize() {
	p := *m.pending
	m.pending = nil
	m.machine.Commit(p.value)
	// Already at target; the snap pins the logical sign with no visible jump.
	m.track.SnapTo(m.trackTarget(p.value))
	if p.notify {
		m.notifyChange(p.value)
	}
}

func (m *Model) notifyChange(v bool) {
	if m.cfg.OnSyncPress != nil {
		m.cfg.OnSyncPress(v)
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(v)
	}
}

// trackTarget returns the driver rest position for a value. Negative is on.
func (m Model) trackTarget(on bool) float64 {
	if on {
		return -m.cfg.offset()
	}
	return m.cfg.offset()
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// SetValue applies an externally controlled value. It fires the direct
// commit pathway (track slide, then commit) only when the external value
// genuinely changed since the last SetValue and differs from the internal
// value; a gesture-driven internal change echoing back is never overridden.
// No confirmation collaborator and no change callback are involved.
func (m Model) SetValue(v bool) (Model, tea.Cmd) {
	force := reconcile(m.lastExternal, v, m.machine.Value())
	ext := v
	m.lastExternal = &ext
	if !force {
		return m, nil
	}
	m.beginSlide(v, false)
	cmd := m.startFrames()
	return m, cmd
}

// Press performs a programmatic tap: a grant immediately followed by a
// release, running the full commit pipeline. Used for keyboard activation.
func (m Model) Press() (Model, tea.Cmd) {
	grantEffects := m.machine.Grant()
	m, grantCmd := m.applyEffects(grantEffects)
	releaseEffects := m.machine.Release()
	m, releaseCmd := m.applyEffects(releaseEffects)
	return m, tea.Batch(grantCmd, releaseCmd)
}

// SetDisabled toggles gesture handling at runtime.
func (m Model) SetDisabled(disabled bool) Model {
	m.cfg.Disabled = disabled
	m.machine.SetDisabled(disabled)
	return m
}

// ID returns the switch's identifier and bubblezone mark.
func (m Model) ID() string { return m.id }

// Value returns the committed logical state.
func (m Model) Value() bool { return m.machine.Value() }

// Alignment returns the handle's resting side for the committed value.
func (m Model) Alignment() Alignment { return m.machine.Alignment() }

// Dragging reports whether a drag gesture is in progress.
func (m Model) Dragging() bool { return m.machine.Dragging() }

// ConfirmPending reports whether a confirmation verdict is outstanding.
func (m Model) ConfirmPending() bool { return m.waiting }

// Animating reports whether any animation frames are scheduled.
func (m Model) Animating() bool { return m.ticking }

// View renders the switch as a single track row and marks it as a mouse
// zone. Geometry is scaled from track units to terminal cells; the handle
// widens while the pulse is above its resting size.
func (m Model) View() string {
	cells := m.cfg.trackCells()
	driver := m.track.Current()
	circle, trackCol := m.palette.at(driver, m.cfg.offset())

	handleCells := 1
	if m.handle.Current() > m.cfg.handleSize()*1.1 {
		handleCells = 2
	}
	if handleCells > cells {
		handleCells = cells
	}

	off := m.cfg.offset()
	pos := 0.5
	if off > 0 {
		pos = (off - driver) / (2 * off)
	}
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	col := int(math.Round(pos * float64(cells-handleCells)))

	trackStyle := m.cfg.TrackStyle.Background(lipgloss.Color(trackCol.Hex()))
	handleStyle := m.cfg.HandleStyle.Background(lipgloss.Color(circle.Hex()))
	if m.cfg.Disabled {
		trackStyle = trackStyle.Faint(true)
		handleStyle = handleStyle.Faint(true)
	}

	var b strings.Builder
	b.WriteString(trackStyle.Render(strings.Repeat(" ", col)))
	b.WriteString(handleStyle.Render(strings.Repeat(" ", handleCells)))
	b.WriteString(trackStyle.Render(strings.Repeat(" ", cells-col-handleCells)))
	return zone.Mark(m.id, b.String())
}
