package toggle

// DeadZone is the horizontal displacement, in track units, a drag may travel
// toward the handle's resting side before the gesture stops being eligible to
// commit. Eligibility is recomputed on every move, so dragging back inside
// the dead-zone before release restores it.
const DeadZone = 10.0

// Alignment is the handle's resting side. It always tracks the committed
// value: a switch that is on rests trailing.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignTrailing
)

func (a Alignment) String() string {
	if a == AlignTrailing {
		return "trailing"
	}
	return "leading"
}

func alignmentFor(on bool) Alignment {
	if on {
		return AlignTrailing
	}
	return AlignLeading
}

// Effect is an action a Machine transition asks its owner to perform.
// Transitions return effects instead of performing animation or I/O so the
// transition table stays pure and testable.
type Effect int

const (
	// EffectPulseGrow starts the handle pulse animation.
	EffectPulseGrow Effect = iota
	// EffectPulseShrink returns the handle to its resting size.
	EffectPulseShrink
	// EffectRequestCommit asks the owner to run the confirm-then-commit
	// pipeline for the flipped value.
	EffectRequestCommit
)

type phase int

const (
	phaseIdle phase = iota
	phaseDragging
)

// Machine is the gesture state machine. It owns the committed value, the
// per-gesture commit eligibility flag, and nothing else; animations and
// confirmation are the owner's concern, driven by the returned effects.
type Machine struct {
	value      bool
	toggleable bool
	disabled   bool
	phase      phase
}

// NewMachine returns a machine resting at value.
func NewMachine(value, disabled bool) Machine {
	return Machine{value: value, disabled: disabled}
}

// Grant begins a drag gesture. A grant while already dragging resets commit
// eligibility, which makes duplicate grants harmless.
func (m *Machine) Grant() []Effect {
	if m.disabled {
		return nil
	}
	m.phase = phaseDragging
	m.toggleable = true
	return []Effect{EffectPulseGrow}
}

// Move recomputes commit eligibility from the cumulative horizontal
// displacement dx. The predicate is direction-aware: dragging more than
// DeadZone units toward the side the handle already rests on cancels
// eligibility, while any drag toward the opposite side keeps it.
func (m *Machine) Move(dx float64) {
	if m.disabled || m.phase != phaseDragging {
		return
	}
	if m.value {
		m.toggleable = dx < DeadZone
	} else {
		m.toggleable = dx > -DeadZone
	}
}

// Release ends the gesture. An eligible release requests a commit; an
// ineligible one only asks for the handle to shrink back.
func (m *Machine) Release() []Effect {
	if m.disabled || m.phase != phaseDragging {
		return nil
	}
	m.phase = phaseIdle
	if m.toggleable {
		return []Effect{EffectPulseShrink, EffectRequestCommit}
	}
	return []Effect{EffectPulseShrink}
}

// Commit records a finalized value change. Called by the owner once the
// commit animation completes, or directly on a reconciler override.
func (m *Machine) Commit(value bool) {
	m.value = value
}

// Value returns the committed logical state.
func (m *Machine) Value() bool { return m.value }

// Alignment returns the handle's resting side for the committed value.
func (m *Machine) Alignment() Alignment { return alignmentFor(m.value) }

// Dragging reports whether a gesture is in progress.
func (m *Machine) Dragging() bool { return m.phase == phaseDragging }

// SetDisabled toggles gesture handling. Disabling mid-gesture drops all
// further events for that gesture.
func (m *Machine) SetDisabled(disabled bool) { m.disabled = disabled }

// Disabled reports whether gesture handling is suppressed.
func (m *Machine) Disabled() bool { return m.disabled }
