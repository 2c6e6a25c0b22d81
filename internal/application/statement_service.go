package application

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/playbill/playbill/internal/domain"
	"github.com/playbill/playbill/internal/domain/statement"
)

// StatementService is the caller side of the statement core: it loads the
// inputs, computes one statement per invoice and applies the batch error
// policy. The core never logs; this service does.
type StatementService struct {
	source       domain.SourceLoader
	configLoader domain.ConfigLoader
	resolver     statement.Resolver
	logger       *zap.Logger
}

func NewStatementService(
	source domain.SourceLoader,
	configLoader domain.ConfigLoader,
	resolver statement.Resolver,
	logger *zap.Logger,
) *StatementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatementService{
		source:       source,
		configLoader: configLoader,
		resolver:     resolver,
		logger:       logger,
	}
}

// Request describes one run. Empty fields fall back to the project config.
type Request struct {
	Dir        string
	Plays      string
	Invoices   string
	Customer   string
	SkipErrors bool
	Parallel   bool
}

// Report is the outcome of Run.
type Report struct {
	Config  domain.ProjectConfig
	Plays   string
	Results []Result
}

// Run loads the config and inputs for req and computes every matching
// invoice under the configured error policy.
func (s *StatementService) Run(req Request) (*Report, error) {
	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	// Flag paths are taken as given; config paths are relative to dir.
	playsPath, invoicesPath := resolvePath(dir, cfg.Plays), resolvePath(dir, cfg.Invoices)
	if req.Plays != "" {
		playsPath = req.Plays
	}
	if req.Invoices != "" {
		invoicesPath = req.Invoices
	}
	if req.SkipErrors {
		cfg.OnError = domain.ErrorPolicySkip
	}
	if req.Parallel {
		cfg.Parallel = true
	}

	catalog, invoices, err := s.Load(playsPath, invoicesPath)
	if err != nil {
		return nil, err
	}

	if req.Customer != "" {
		invoices = filterCustomer(invoices, req.Customer)
		if len(invoices) == 0 {
			return nil, fmt.Errorf("no invoice for customer %q", req.Customer)
		}
	}

	results, err := s.Statements(invoices, catalog, Options{OnError: cfg.OnError, Parallel: cfg.Parallel})
	if err != nil {
		return nil, err
	}
	return &Report{Config: cfg, Plays: playsPath, Results: results}, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func filterCustomer(invoices []domain.Invoice, customer string) []domain.Invoice {
	var out []domain.Invoice
	for _, inv := range invoices {
		if strings.EqualFold(inv.Customer, customer) {
			out = append(out, inv)
		}
	}
	return out
}

// Options control a batch run.
type Options struct {
	OnError  domain.ErrorPolicy
	Parallel bool
}

// Result is the outcome for one invoice. Exactly one of Data and Err is
// meaningful.
type Result struct {
	Invoice domain.Invoice
	Data    domain.StatementData
	Err     error
}

func (r Result) OK() bool { return r.Err == nil }

// Load reads the catalog and the invoices.
func (s *StatementService) Load(playsPath, invoicesPath string) (domain.Catalog, []domain.Invoice, error) {
	catalog, err := s.source.LoadCatalog(playsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	invoices, err := s.source.LoadInvoices(invoicesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading invoices: %w", err)
	}
	s.logger.Debug("inputs loaded",
		zap.String("plays", playsPath),
		zap.Int("plays_count", len(catalog)),
		zap.String("invoices", invoicesPath),
		zap.Int("invoice_count", len(invoices)),
	)
	return catalog, invoices, nil
}

// Statements computes a statement for every invoice. Invoices share nothing
// but the read-only catalog, so with opts.Parallel each runs in its own
// goroutine; results keep the input order either way.
//
// Under ErrorPolicyHalt the first failing invoice (in input order) is
// returned as *domain.InvoiceError and no results are returned. Under
// ErrorPolicySkip failures are recorded on their Result and logged.
func (s *StatementService) Statements(invoices []domain.Invoice, catalog domain.Catalog, opts Options) ([]Result, error) {
	calc := statement.NewCalculator(catalog, s.resolver)
	results := make([]Result, len(invoices))

	compute := func(i int) {
		data, err := calc.Compute(invoices[i])
		if err != nil {
			err = &domain.InvoiceError{Index: i, Customer: invoices[i].Customer, Err: err}
		}
		results[i] = Result{Invoice: invoices[i], Data: data, Err: err}
	}

	if opts.Parallel {
		var wg sync.WaitGroup
		for i := range invoices {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				compute(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range invoices {
			compute(i)
			if results[i].Err != nil && opts.OnError != domain.ErrorPolicySkip {
				break
			}
		}
	}

	for _, r := range results {
		if r.Err == nil {
			s.logger.Debug("statement computed",
				zap.String("customer", r.Data.Customer),
				zap.Int("performances", len(r.Data.Performances)),
				zap.Int64("total_price", r.Data.TotalPrice),
				zap.Int64("total_credits", r.Data.TotalCredits),
			)
			continue
		}
		if opts.OnError != domain.ErrorPolicySkip {
			return nil, r.Err
		}
		s.logger.Warn("skipping invoice",
			zap.String("customer", r.Invoice.Customer),
			zap.Bool("input_error", domain.IsInputError(r.Err)),
			zap.Error(r.Err),
		)
	}

	return results, nil
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// FirstInputError returns the first failure caused by bad input data.
func FirstInputError(results []Result) error {
	for _, r := range results {
		if r.Err != nil && domain.IsInputError(r.Err) {
			var ie *domain.InvoiceError
			if errors.As(r.Err, &ie) {
				return ie
			}
			return r.Err
		}
	}
	return nil
}
