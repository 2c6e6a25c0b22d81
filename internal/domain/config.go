package domain

import "fmt"

// ErrorPolicy decides what a batch run does when one invoice fails.
type ErrorPolicy string

const (
	// ErrorPolicyHalt stops the batch at the first failing invoice.
	ErrorPolicyHalt ErrorPolicy = "halt"
	// ErrorPolicySkip reports the failing invoice and continues with the rest.
	ErrorPolicySkip ErrorPolicy = "skip"
)

// ValidFormats enumerates the statement output formats.
var ValidFormats = []string{"text", "html", "tui", "json"}

// ProjectConfig holds settings loaded from .playbill.yaml.
type ProjectConfig struct {
	Format    string      `yaml:"format"     json:"format,omitempty"`
	OnError   ErrorPolicy `yaml:"on_error"   json:"on_error,omitempty"`
	Parallel  bool        `yaml:"parallel"   json:"parallel,omitempty"`
	Plays     string      `yaml:"plays"      json:"plays,omitempty"`
	Invoices  string      `yaml:"invoices"   json:"invoices,omitempty"`
	ExportDir string      `yaml:"export_dir" json:"export_dir,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Format:    "text",
		OnError:   ErrorPolicyHalt,
		Plays:     "plays.json",
		Invoices:  "invoices.json",
		ExportDir: ".",
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Format != "" && !isValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q (valid: text, html, tui, json)", c.Format)
	}

	switch c.OnError {
	case "", ErrorPolicyHalt, ErrorPolicySkip:
	default:
		return fmt.Errorf("unknown on_error %q (valid: halt, skip)", c.OnError)
	}

	return nil
}

func isValidFormat(f string) bool {
	for _, v := range ValidFormats {
		if v == f {
			return true
		}
	}
	return false
}
