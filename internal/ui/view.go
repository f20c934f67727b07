package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/flicktui/flick/internal/config"
	"github.com/flicktui/flick/internal/journal"
)

const journalRows = 8

// View implements tea.Model. The final output passes through zone.Scan so
// the switches' mouse zones stay registered.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("flick — switch gallery"))
	b.WriteString("\n\n")

	labelW := m.labelWidth()
	for i := range m.items {
		b.WriteString(m.renderItem(styles, i, labelW))
		b.WriteString("\n")
	}

	if m.showJournal {
		b.WriteString("\n")
		b.WriteString(m.renderJournal(styles))
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))

	return zone.Scan(b.String())
}

func (m Model) renderItem(styles Styles, i, labelW int) string {
	it := m.items[i]

	labelStyle := styles.Label
	if i == m.selected {
		labelStyle = styles.LabelSelected
	}
	label := labelStyle.Width(labelW).Render(it.preset.Label)

	badge := styles.OffBadge.Render("off")
	if it.sw.Value() {
		badge = styles.OnBadge.Render("on ")
	}

	status := m.renderStatus(styles, it)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		label, " ", it.sw.View(), "  ", badge, "  ", status)
}

func (m Model) renderStatus(styles Styles, it item) string {
	switch {
	case it.preset.Disabled:
		return styles.FaintText.Render("disabled")
	case it.sw.ConfirmPending():
		return styles.PendingText.Render(m.spin.View() + " confirming…")
	case it.preset.Mode == config.ModeVeto:
		return styles.VetoText.Render(it.preset.Mode)
	case it.preset.Controlled:
		return styles.MutedText.Render(fmt.Sprintf("remote=%v", m.remoteValue))
	default:
		return styles.MutedText.Render(it.preset.Mode)
	}
}

func (m Model) renderJournal(styles Styles) string {
	entries := m.journal.Snapshot()
	if len(entries) > journalRows {
		entries = entries[len(entries)-journalRows:]
	}

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("events"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(styles.FaintText.Render("  (none yet)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %-10s %-8s value=%v",
			e.Time.Format("15:04:05"), e.Switch, e.Kind, e.Value)
		switch e.Kind {
		case journal.KindVeto:
			b.WriteString(styles.VetoText.Render(line))
		case journal.KindOverride:
			b.WriteString(styles.PendingText.Render(line))
		default:
			b.WriteString(styles.FaintText.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
