package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/playbill/playbill/internal/domain"
)

// HTML renders the statement as a heading, a table of performances and the
// two totals paragraphs.
func HTML(data domain.StatementData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>Statement for %s</h1>\n", html.EscapeString(data.Customer))
	b.WriteString("<table>\n")
	b.WriteString("<tr><th>play</th><th>seats</th><th>cost</th></tr>\n")
	for _, perf := range data.Performances {
		fmt.Fprintf(&b, " <tr><td>%s</td><td>%d</td><td>%s</td></tr>\n",
			html.EscapeString(perf.Play.Name), perf.Audience, domain.FormatUSD(perf.Price))
	}
	b.WriteString("</table>\n")
	fmt.Fprintf(&b, "<p>Amount owed is <em>%s</em></p>\n", domain.FormatUSD(data.TotalPrice))
	fmt.Fprintf(&b, "<p>You earned <em>%d</em> credits</p>\n", data.TotalCredits)

	return b.String()
}
