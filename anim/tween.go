package anim

import "time"

// Easing maps normalized elapsed time in [0, 1] to normalized progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut accelerates through the first half and decelerates through the
// second (smoothstep).
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// Value is an animated scalar advanced one frame at a time by its owner.
type Value interface {
	// Retarget starts (or supersedes) an animation toward target.
	Retarget(target float64, now time.Time)
	// Step advances the value to the given frame time.
	Step(now time.Time)
	// Current returns the value as of the last Step (or construction).
	Current() float64
	// Target returns the value the driver is heading toward.
	Target() float64
	// Settled reports whether the driver has reached its target.
	Settled() bool
	// SnapTo forces the value immediately, cancelling any animation.
	SnapTo(v float64)
}

// Tween interpolates between a start and target value over a fixed duration.
type Tween struct {
	duration time.Duration
	easing   Easing

	from    float64
	to      float64
	current float64
	start   time.Time
	active  bool
}

// NewTween returns a tween resting at initial.
func NewTween(initial float64, duration time.Duration, easing Easing) *Tween {
	if duration <= 0 {
		duration = time.Millisecond
	}
	if easing == nil {
		easing = Linear
	}
	return &Tween{
		duration: duration,
		easing:   easing,
		from:     initial,
		to:       initial,
		current:  initial,
	}
}

// Retarget starts animating from the current value toward target.
func (t *Tween) Retarget(target float64, now time.Time) {
	t.from = t.current
	t.to = target
	t.start = now
	t.active = t.from != t.to
}

// Step advances the tween to the frame time now.
func (t *Tween) Step(now time.Time) {
	if !t.active {
		return
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.duration {
		t.current = t.to
		t.active = false
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	frac := t.easing(float64(elapsed) / float64(t.duration))
	t.current = t.from + (t.to-t.from)*frac
}

// Current returns the value as of the last Step.
func (t *Tween) Current() float64 { return t.current }

// Target returns the destination value.
func (t *Tween) Target() float64 { return t.to }

// Settled reports whether the tween has reached its target.
func (t *Tween) Settled() bool { return !t.active }

// SnapTo jumps to v and stops any in-flight animation.
func (t *Tween) SnapTo(v float64) {
	t.from = v
	t.to = v
	t.current = v
	t.active = false
}
