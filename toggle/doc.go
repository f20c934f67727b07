// Package toggle implements a draggable, animated on/off switch component
// for Bubble Tea.
//
// # Overview
//
// A switch interprets a mouse drag as either a discrete toggle commit or a
// cancelled drag, drives two animated values (the handle's width pulse and
// the track position/color driver) so the visuals always land on the logical
// state, and reconciles externally imposed values with gesture-driven ones.
//
// # Architecture
//
// The component splits into small, separately testable parts:
//
//   - machine.go: the gesture state machine. Pure transitions from
//     grant/move/release events to next state plus a list of effects.
//   - switch.go: the Bubble Tea model. Executes effects by retargeting the
//     anim drivers, runs the confirmation gate, and finalizes commits when
//     the track slide settles.
//   - confirm.go: the confirmation pathway. Every commit goes through the
//     deferred path; a synchronous handler and the default confirmer are
//     just collaborators that answer immediately.
//   - reconcile.go: the controlled/uncontrolled reconciler, a pure function
//     over (previous external, external, internal).
//
// # Gesture semantics
//
// A grant always re-arms commit eligibility. Each move recomputes it with a
// direction-aware dead-zone: dragging more than ten track units toward the
// side the handle already rests on cancels the commit, so a user can bail
// out of a toggle by pulling back. Release either requests a commit or just
// shrinks the handle. All events are dropped while the switch is disabled.
//
// # Commit pipeline
//
// On an eligible release the handle shrink and the confirmation gate run in
// parallel. Once confirmed, the track slides to the opposite rest position;
// only when that slide settles does the committed value (and its alignment)
// change and the caller's callback fire. A vetoed or unanswered confirmation
// mutates nothing.
//
// There is deliberately no confirmation timeout: a collaborator that never
// responds leaves that gesture parked forever. Responding exactly once is
// part of the collaborator contract. A new gesture started while a verdict
// is outstanding supersedes it; the stale verdict is dropped when it
// arrives (last write wins, tracked by a gesture generation counter).
//
// # Controlled use
//
// Callers that own the value push it in with SetValue. The reconciler
// compares against the previous external value only, so an internal change
// echoing back never re-triggers an animation, and pushing the same value
// twice is a no-op.
package toggle
