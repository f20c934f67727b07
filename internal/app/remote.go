package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flicktui/flick/internal/ui"
)

// sender is the part of *tea.Program the remote controller needs.
type sender interface {
	Send(msg tea.Msg)
}

// StartRemote launches a background goroutine that periodically flips the
// external value of every controlled switch, standing in for a real
// controlling system. It returns immediately and stops when ctx is
// cancelled.
func StartRemote(ctx context.Context, p sender, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRemoteInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Send(ui.RemoteFlipMsg{})
			}
		}
	}()
}
