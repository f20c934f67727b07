// Package anim provides the animated scalar values that drive flick's
// switch rendering.
//
// # Overview
//
// An animated value is advanced cooperatively: the owner calls Step once per
// frame (typically from a Bubble Tea tick) and reads Current afterwards. There
// is no internal goroutine and no wall-clock dependency beyond the timestamps
// the caller passes in, which keeps every driver deterministic under test.
//
// Two drivers are provided:
//
//   - Tween: time-based interpolation from the value at retarget time to a
//     target, over a fixed duration, shaped by an easing function.
//   - Spring: a harmonica-backed damped spring that chases its target with
//     momentum. Used for the optional springy slide mode.
//
// Both satisfy the Value interface. Completion is observed by polling Settled
// after a Step; a driver reports settled exactly once per retarget in the
// sense that Settled stays true until the next Retarget, so owners should
// detect the rising edge themselves.
//
// # Retargeting
//
// Calling Retarget while an animation is in flight simply supersedes the
// current trajectory: the driver continues from its current value toward the
// new target. Nothing is retried or replayed.
package anim
