package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// ReplayTable renders a static listing of stored replays.
func ReplayTable(replays []storage.Replay) string {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "End", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Flaps", Width: 6},
		{Title: "Recorded", Width: 17},
	}

	rows := make([]table.Row, 0, len(replays))
	for _, r := range replays {
		recorded := "-"
		if !r.CreatedAt.IsZero() {
			recorded = r.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.Seed, 10),
			r.EndReason,
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Flaps),
			recorded,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header line plus its bottom border.
	t.SetHeight(len(rows) + 2)

	return t.View()
}
