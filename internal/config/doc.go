// Package config loads the gallery line-up from ~/.config/flick/config.toml.
//
// # Overview
//
// A config file lists switch presets as [[switch]] tables: geometry, colors,
// initial value, and the confirmation mode to wire up (async, sync, slow, or
// veto). A missing file is not an error; the built-in line-up showcases one
// preset per variant. Unknown modes degrade to async rather than failing, so
// a hand-edited file keeps working.
//
// Example:
//
//	[[switch]]
//	id = "wifi"
//	label = "Wi-Fi"
//	mode = "slow"
//	confirm_delay_ms = 800
//	background_active = "#43d551"
package config
