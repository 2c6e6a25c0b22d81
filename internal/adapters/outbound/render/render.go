// Package render formats StatementData for people and machines. Renderers
// only format the numbers they are given; they never price anything and
// never see the catalog, so every format carries the same amounts.
package render

import (
	"fmt"

	"github.com/playbill/playbill/internal/domain"
)

// Format selects a statement layout.
type Format string

const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatTerminal Format = "tui"
	FormatJSON     Format = "json"
)

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatHTML, FormatTerminal, FormatJSON:
		return f, nil
	case "plain", "txt":
		return FormatText, nil
	case "markup":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: text, html, tui, json)", s)
	}
}

// Render formats data in the given format.
func Render(data domain.StatementData, format Format) (string, error) {
	switch format {
	case FormatText:
		return PlainText(data), nil
	case FormatHTML:
		return HTML(data), nil
	case FormatTerminal:
		return Terminal(data), nil
	case FormatJSON:
		return JSON(data)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
