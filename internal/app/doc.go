// Package app provides the orchestration layer for the flick gallery.
//
// # Overview
//
// This package wires together configuration, preferences, the event journal,
// and the UI into the running application. It is the composition root: all
// dependencies are constructed here and handed to the gallery model.
//
// # Startup sequence
//
//  1. Load the gallery line-up from ~/.config/flick/config.toml
//  2. Load user preferences (theme, journal visibility)
//  3. Create the shared journal store
//  4. Initialize the global mouse-zone manager
//  5. Launch the remote-controller goroutine when a controlled preset exists
//  6. Start the TUI and block until the user quits or the context cancels
//
// # Remote controller
//
// The background goroutine in remote.go stands in for an external system
// that owns a switch's value: at a fixed cadence it asks the gallery to flip
// the external value of every controlled switch, which exercises the
// component's reconciler exactly the way a real controlling caller would.
// It is the only goroutine the app starts; everything else is event-driven
// inside Bubble Tea's loop.
//
// # Error handling
//
// A malformed config file is fatal (better to fail at startup than run a
// gallery that silently dropped presets). A missing config or prefs file is
// not: both fall back to built-in defaults.
package app
