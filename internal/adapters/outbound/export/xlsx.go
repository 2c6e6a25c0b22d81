package export

import (
	"bytes"
	"fmt"

	"github.com/playbill/playbill/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "summary"
	performancesSheet = "performances"
)

// XLSX renders a workbook with a summary sheet and one row per performance.
// Amounts are written in cents alongside their formatted value.
func XLSX(data domain.StatementData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(performancesSheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Customer", data.Customer},
		{"Total (cents)", data.TotalPrice},
		{"Total", domain.FormatUSD(data.TotalPrice)},
		{"Credits", data.TotalCredits},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}

	header := []any{"Play", "Genre", "Seats", "Price (cents)", "Price", "Credits"}
	if err := f.SetSheetRow(performancesSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, perf := range data.Performances {
		row := []any{perf.Play.Name, perf.Play.Genre, perf.Audience, perf.Price, domain.FormatUSD(perf.Price), perf.Credits}
		if err := f.SetSheetRow(performancesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
