package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hustle/internal/model"
)

// Palette
var (
	ColorText    = lipgloss.Color("#FFFCF0")
	ColorMuted   = lipgloss.Color("#6F6E69")
	ColorBorder  = lipgloss.Color("#282726")
	ColorAccent  = lipgloss.Color("#D14D8F")
	ColorGreen   = lipgloss.Color("#879A39")
	ColorRed     = lipgloss.Color("#D14D41")
	ColorOrange  = lipgloss.Color("#DA702C")
	ColorYellow  = lipgloss.Color("#D0A215")
	ColorBlue    = lipgloss.Color("#4385BE")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// priorityColor maps an insight/opportunity priority to its display color.
func priorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityCritical:
		return ColorRed
	case model.PriorityHigh:
		return ColorOrange
	case model.PriorityMedium:
		return ColorYellow
	}
	return ColorBlue
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Table is a simple two-plus column text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders the table with a header rule. A row of ["---"]
// inserts a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func() {
		b.WriteString("  ")
		for i, w := range widths {
			b.WriteString(mutedStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(mutedStyle.Render("┼"))
			}
		}
		b.WriteString("\n")
	}

	if len(t.Headers) > 0 {
		b.WriteString("  ")
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(mutedStyle.Render("│"))
			}
		}
		b.WriteString("\n")
		rule()
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule()
			continue
		}
		b.WriteString("  ")
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell)))
			} else {
				b.WriteString(valueStyle.Render(fmt.Sprintf(" %*s ", widths[i], cell)))
			}
			if i < numCols-1 {
				b.WriteString(mutedStyle.Render("│"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderInsight renders one insight as a bordered card colored by
// priority.
func RenderInsight(in model.Insight) string {
	color := priorityColor(in.Priority)

	badge := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(strings.ToUpper(string(in.Priority)))

	header := fmt.Sprintf("%s  %s", badge, titleStyle.Render(in.Title))
	body := valueStyle.Render(in.Message)
	footer := mutedStyle.Render(fmt.Sprintf("%s · generated %s",
		in.Type, in.GeneratedAt.Format("Jan 2 15:04")))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(70)

	return card.Render(header + "\n" + body + "\n" + footer)
}

// RenderHabitBar renders a habit's weekly completion as a progress bar.
func RenderHabitBar(name string, percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("  %-20s [%s] %3d%%", name, mutedStyle.Render(bar), percent)
}
