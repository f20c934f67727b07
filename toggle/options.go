package toggle

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Defaults for the switch geometry and palette.
const (
	DefaultWidth  = 40.0
	DefaultHeight = 21.0

	defaultCircleActive   = "#ffffff"
	defaultCircleInactive = "#ffffff"
	defaultTrackActive    = "#43d551"
	defaultTrackInactive  = "#dddddd"

	pulseFactor   = 1.2
	pulseDuration = 200 * time.Millisecond
	slideDuration = 200 * time.Millisecond
	frameInterval = time.Second / 60

	minTrackCells     = 6
	trackUnitsPerCell = 5.0

	springFrequency = 7.5
	springDamping   = 0.8
)

// ConfirmFunc is the asynchronous confirmation collaborator. It receives the
// value the switch wants to commit to and a respond function it must
// eventually invoke exactly once: respond(true) finalizes the commit,
// respond(false) vetoes it. Additional invocations are ignored.
//
// A collaborator that never responds leaves the switch visually parked for
// that gesture; there is no timeout. Always responding is a caller
// obligation.
type ConfirmFunc func(next bool, respond func(ok bool))

// Config configures a switch. The zero value is not usable directly; New
// fills unset fields with defaults.
type Config struct {
	// Width and Height are the track box dimensions in track units. The
	// slide range and handle size derive from them: a drag travels
	// Width-Height+1 units each side of center, and the handle rests at
	// Height-2 units wide.
	Width  float64
	Height float64

	// Value is the initial committed state.
	Value bool

	// Disabled suppresses all gesture handling.
	Disabled bool

	// Handle and track colors at each logical extreme, hex encoded.
	// Positions in between blend the two.
	CircleColorActive   string
	CircleColorInactive string
	BackgroundActive    string
	BackgroundInactive  string

	// OnChange is invoked with the new value after a gesture commit
	// finalizes. Not invoked for reconciler overrides via SetValue.
	OnChange func(value bool)

	// OnAsyncPress gates gesture commits. When nil, commits are confirmed
	// immediately.
	OnAsyncPress ConfirmFunc

	// OnSyncPress, when set, makes commits unconditional: OnAsyncPress is
	// never consulted and OnSyncPress is invoked with the new value once
	// the commit finalizes, in place of OnChange.
	OnSyncPress func(value bool)

	// SpringSlide animates the track with a damped spring instead of the
	// default fixed-duration tween.
	SpringSlide bool

	// CircleBorderWidth, when non-zero, shrinks the handle's resting
	// travel by one unit per side so a bordered handle stays visually
	// centered inside the track.
	CircleBorderWidth float64

	// TrackStyle and HandleStyle are passthrough render overrides; the
	// switch layers its computed colors on top of them.
	TrackStyle  lipgloss.Style
	HandleStyle lipgloss.Style
}

func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Height >= c.Width {
		// Keep a positive slide range for degenerate geometry.
		c.Height = c.Width - 1
	}
	if c.CircleColorActive == "" {
		c.CircleColorActive = defaultCircleActive
	}
	if c.CircleColorInactive == "" {
		c.CircleColorInactive = defaultCircleInactive
	}
	if c.BackgroundActive == "" {
		c.BackgroundActive = defaultTrackActive
	}
	if c.BackgroundInactive == "" {
		c.BackgroundInactive = defaultTrackInactive
	}
}

// offset is the track driver magnitude at either rest position.
func (c Config) offset() float64 {
	off := c.Width - c.Height + 1
	if c.CircleBorderWidth > 0 {
		off--
	}
	if off < 1 {
		off = 1
	}
	return off
}

// handleSize is the handle's resting width in track units.
func (c Config) handleSize() float64 {
	size := c.Height - 2
	if size < 1 {
		size = 1
	}
	return size
}

// trackCells is the rendered track width in terminal cells.
func (c Config) trackCells() int {
	cells := int(c.Width / trackUnitsPerCell)
	if cells < minTrackCells {
		cells = minTrackCells
	}
	return cells
}

// unitsPerCell converts a mouse column delta into track units.
func (c Config) unitsPerCell() float64 {
	return c.Width / float64(c.trackCells())
}

// palette holds the parsed endpoint colors so rendering never re-parses hex
// strings per frame.
type palette struct {
	circleOn  colorful.Color
	circleOff colorful.Color
	trackOn   colorful.Color
	trackOff  colorful.Color
}

func newPalette(c Config) palette {
	return palette{
		circleOn:  mustHex(c.CircleColorActive, defaultCircleActive),
		circleOff: mustHex(c.CircleColorInactive, defaultCircleInactive),
		trackOn:   mustHex(c.BackgroundActive, defaultTrackActive),
		trackOff:  mustHex(c.BackgroundInactive, defaultTrackInactive),
	}
}

func mustHex(hex, fallback string) colorful.Color {
	col, err := colorful.Hex(hex)
	if err != nil {
		col, _ = colorful.Hex(fallback)
	}
	return col
}

// at returns the handle and track colors for a track driver position.
// Blending runs in RGB space between the inactive and active endpoints; the
// driver is normalized so -offset (on) maps to 1 and +offset (off) maps to 0.
func (p palette) at(driver, offset float64) (circle, track colorful.Color) {
	t := 0.5
	if offset > 0 {
		t = (offset - driver) / (2 * offset)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.circleOff.BlendRgb(p.circleOn, t), p.trackOff.BlendRgb(p.trackOn, t)
}
