package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playbill/playbill/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileSource implements domain.SourceLoader for JSON and YAML files.
type FileSource struct{}

var _ domain.SourceLoader = (*FileSource)(nil)

// New creates a FileSource.
func New() *FileSource { return &FileSource{} }

type playRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type performanceRecord struct {
	PlayID    string `json:"playID"  yaml:"playID"`
	PlayIDAlt string `json:"play_id" yaml:"play_id"`
	Audience  int    `json:"audience" yaml:"audience"`
}

type invoiceRecord struct {
	Customer     string              `json:"customer"     yaml:"customer"`
	Performances []performanceRecord `json:"performances" yaml:"performances"`
}

// LoadCatalog reads a play-id -> play mapping.
func (s *FileSource) LoadCatalog(path string) (domain.Catalog, error) {
	var records map[string]playRecord
	if err := decodeFile(path, &records); err != nil {
		return nil, err
	}

	catalog := make(domain.Catalog, len(records))
	for id, r := range records {
		catalog[id] = domain.Play{Name: r.Name, Genre: r.Type}
	}
	return catalog, nil
}

// LoadInvoices reads a list of invoices. Negative audiences are rejected.
func (s *FileSource) LoadInvoices(path string) ([]domain.Invoice, error) {
	var records []invoiceRecord
	if err := decodeFile(path, &records); err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(records))
	for i, r := range records {
		inv := domain.Invoice{
			Customer:     r.Customer,
			Performances: make([]domain.Performance, 0, len(r.Performances)),
		}
		for j, p := range r.Performances {
			if p.Audience < 0 {
				return nil, fmt.Errorf("%s: invoice %d performance %d: negative audience %d", path, i, j, p.Audience)
			}
			id := p.PlayID
			if id == "" {
				id = p.PlayIDAlt
			}
			inv.Performances = append(inv.Performances, domain.Performance{PlayID: id, Audience: p.Audience})
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported file type %q for %s (want .json, .yaml or .yml)", ext, path)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
