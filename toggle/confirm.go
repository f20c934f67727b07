package toggle

import tea "github.com/charmbracelet/bubbletea"

// ConfirmResultMsg carries a confirmation collaborator's verdict back into
// the switch's update loop. Gen ties the verdict to the gesture that asked
// for it; a verdict from a superseded gesture is dropped.
type ConfirmResultMsg struct {
	ID   string
	Gen  uint64
	Next bool
	OK   bool
}

// confirmCmd runs the collaborator off the update loop and delivers its
// verdict as a message. The buffered channel plus non-blocking send makes a
// collaborator that calls respond more than once harmless: only the first
// verdict counts. A collaborator that never calls respond blocks this
// command's goroutine forever, which is the documented cost of breaking the
// contract.
func confirmCmd(id string, gen uint64, next bool, confirm ConfirmFunc) tea.Cmd {
	return func() tea.Msg {
		verdict := make(chan bool, 1)
		confirm(next, func(ok bool) {
			select {
			case verdict <- ok:
			default:
			}
		})
		return ConfirmResultMsg{ID: id, Gen: gen, Next: next, OK: <-verdict}
	}
}

// defaultConfirm resolves every commit immediately. Used when no
// asynchronous collaborator is configured.
func defaultConfirm(_ bool, respond func(bool)) {
	respond(true)
}
