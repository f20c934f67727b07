package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring settle tolerances. The spring is considered at rest when both the
// positional error and the velocity fall below these.
const (
	springPosEpsilon = 0.05
	springVelEpsilon = 0.05
)

// Spring is a damped-spring animated value. Unlike Tween it carries momentum,
// so retargeting mid-flight produces a natural overshoot-and-settle motion.
type Spring struct {
	spring harmonica.Spring

	target   float64
	pos      float64
	vel      float64
	last     time.Time
	interval time.Duration
	settled  bool
}

// NewSpring returns a spring resting at initial. fps is the frame rate the
// owner intends to Step at; frequency and damping follow harmonica's
// conventions (angular frequency, damping ratio).
func NewSpring(initial float64, fps int, frequency, damping float64) *Spring {
	if fps <= 0 {
		fps = 60
	}
	return &Spring{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		target:   initial,
		pos:      initial,
		interval: time.Second / time.Duration(fps),
		settled:  true,
	}
}

// Retarget points the spring at a new equilibrium, preserving velocity.
func (s *Spring) Retarget(target float64, now time.Time) {
	s.target = target
	s.last = now
	s.settled = s.atRest()
}

// Step advances the spring. Harmonica integrates at a fixed timestep, so a
// frame that arrives late is treated as a single step rather than replayed.
func (s *Spring) Step(now time.Time) {
	if s.settled {
		return
	}
	if !s.last.IsZero() && now.Sub(s.last) < s.interval/2 {
		return
	}
	s.last = now
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.atRest() {
		s.pos = s.target
		s.vel = 0
		s.settled = true
	}
}

// Current returns the spring position as of the last Step.
func (s *Spring) Current() float64 { return s.pos }

// Target returns the spring equilibrium.
func (s *Spring) Target() float64 { return s.target }

// Settled reports whether the spring has come to rest at its target.
func (s *Spring) Settled() bool { return s.settled }

// SnapTo moves the spring to v at rest.
func (s *Spring) SnapTo(v float64) {
	s.target = v
	s.pos = v
	s.vel = 0
	s.settled = true
}

func (s *Spring) atRest() bool {
	return math.Abs(s.pos-s.target) < springPosEpsilon && math.Abs(s.vel) < springVelEpsilon
}
