// Package export produces statement documents (PDF, XLSX) from the same
// StatementData the text renderers consume.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/playbill/playbill/internal/domain"
)

// Kind selects a document type.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindXLSX Kind = "xlsx"
)

// ParseKind converts a flag value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindPDF, KindXLSX:
		return k, nil
	default:
		return "", fmt.Errorf("unknown export kind %q (valid: pdf, xlsx)", s)
	}
}

// Export builds the document bytes for data.
func Export(data domain.StatementData, kind Kind) ([]byte, error) {
	switch kind {
	case KindPDF:
		return PDF(data)
	case KindXLSX:
		return XLSX(data)
	default:
		return nil, fmt.Errorf("unknown export kind %q", kind)
	}
}

// FileName returns a file name for the customer's statement, e.g.
// "BigCo" -> "bigco.pdf".
func FileName(customer string, kind Kind) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(customer) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "statement"
	}
	return slug + "." + string(kind)
}
