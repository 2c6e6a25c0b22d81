package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/playbill/playbill/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	nameStyle     = lipgloss.NewStyle().Foreground(fg)
	amountStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	creditStyle   = lipgloss.NewStyle().Bold(true).Foreground(success)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// Terminal renders a styled statement for an interactive terminal. Colors are
// dropped automatically when the output is not a TTY.
func Terminal(data domain.StatementData) string {
	var b strings.Builder

	title := headerStyle.Render("Statement")
	subtitle := dimStyle.Render(data.Customer)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	if len(data.Performances) == 0 {
		b.WriteString("  " + dimStyle.Render("No performances booked.") + "\n")
	}
	for _, perf := range data.Performances {
		name := nameStyle.Render(padRight(perf.Play.Name, 28))
		seats := dimStyle.Render(padLeft(fmt.Sprintf("%d seats", perf.Audience), 10))
		price := amountStyle.Render(padLeft(domain.FormatUSD(perf.Price), 14))
		fmt.Fprintf(&b, "  %s %s %s\n", name, seats, price)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s\n",
		nameStyle.Render(padRight("Amount owed", 39)),
		amountStyle.Render(padLeft(domain.FormatUSD(data.TotalPrice), 14)))
	fmt.Fprintf(&b, "  %s %s\n",
		nameStyle.Render(padRight("Credits earned", 39)),
		creditStyle.Render(padLeft(fmt.Sprintf("%d", data.TotalCredits), 14)))

	return b.String()
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
