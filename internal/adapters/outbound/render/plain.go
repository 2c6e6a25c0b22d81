package render

import (
	"fmt"
	"strings"

	"github.com/playbill/playbill/internal/domain"
)

// PlainText renders the classic statement layout.
func PlainText(data domain.StatementData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement for %s\n", data.Customer)
	for _, perf := range data.Performances {
		fmt.Fprintf(&b, " %s: %s (%d seats)\n", perf.Play.Name, domain.FormatUSD(perf.Price), perf.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", domain.FormatUSD(data.TotalPrice))
	fmt.Fprintf(&b, "You earned %d credits\n", data.TotalCredits)

	return b.String()
}
