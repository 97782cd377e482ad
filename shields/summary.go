package shields

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF"))

	summaryProbeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	summaryHoleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A3E635"))

	summaryEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	summaryNoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#AAAAAA")).
				Italic(true)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// Summary renders the current probe -> hole table as a styled terminal block.
func Summary(rec *InsertionRecord, a *Assignments) string {
	title := summaryTitleStyle.Render(
		fmt.Sprintf("Shield %s — %s (day %d)", rec.ShieldName, rec.Session, rec.ExperimentDay))

	var rows []string
	for _, probe := range a.Probes() {
		hole := a.Hole(probe)
		var holeCell string
		if hole == "" {
			holeCell = summaryEmptyStyle.Render("-")
		} else {
			holeCell = summaryHoleStyle.Render(hole)
		}
		row := fmt.Sprintf("%s  %s", summaryProbeStyle.Render("probe "+probe), holeCell)
		if note := rec.Notes[probe]; note != "" {
			row += "  " + summaryNoteStyle.Render(note)
		}
		rows = append(rows, row)
	}

	body := strings.Join(rows, "\n")
	return summaryBoxStyle.Render(title + "\n" + body)
}
