// Package ui implements the flick gallery: a Bubble Tea front end that
// hosts one switch per configured preset.
//
// # Overview
//
// The gallery is a thin shell around the toggle components. It routes every
// mouse, animation-frame, and confirmation message to all switches (each one
// filters on its own zone or ID), drives keyboard activation for the
// selected row, and paints an event journal underneath the line-up.
//
// # Message routing
//
//	┌────────────────────────────────────────────┐
//	│ Model.Update                               │
//	│  ├─> key bindings   selection, tap, theme  │
//	│  ├─> RemoteFlipMsg  SetValue on controlled │
//	│  └─> everything else → each toggle.Model   │
//	│       (MouseMsg, FrameMsg, ConfirmResult)  │
//	└────────────────────────────────────────────┘
//
// The remote controller goroutine (internal/app) and the r key both send
// RemoteFlipMsg; the gallery owns the external value and pushes it at every
// controlled switch, exercising the reconciler. Overrides that actually
// force a change are journaled; re-applied unchanged values are not.
//
// # Themes
//
// Themes restyle the chrome only. Switch colors belong to the presets, so
// cycling themes mid-drag never desynchronizes the track color blend.
package ui
