package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playbill/playbill/internal/adapters/outbound/config"
	"github.com/playbill/playbill/internal/adapters/outbound/export"
	"github.com/playbill/playbill/internal/adapters/outbound/gitinfo"
	"github.com/playbill/playbill/internal/adapters/outbound/render"
	"github.com/playbill/playbill/internal/adapters/outbound/source"
	"github.com/playbill/playbill/internal/application"
	"github.com/playbill/playbill/internal/domain/pricing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type statementsJSON struct {
	CatalogRevision string                 `json:"catalog_revision,omitempty"`
	Statements      []render.StatementView `json:"statements"`
	Skipped         []skippedJSON          `json:"skipped,omitempty"`
}

type skippedJSON struct {
	Index    int    `json:"index"`
	Customer string `json:"customer"`
	Error    string `json:"error"`
}

func newStatementCmd() *cobra.Command {
	var (
		plays      string
		invoices   string
		format     string
		customer   string
		exportKind string
		outDir     string
		skipErrors bool
		parallel   bool
	)

	cmd := &cobra.Command{
		Use:   "statement [dir]",
		Short: "Render billing statements for invoices",
		Long: "Price every performance on each invoice and print one statement per customer.\n" +
			"Defaults come from .playbill.yaml in dir (or the current directory).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			logger := newLogger(cmd)
			defer func() { _ = logger.Sync() }()

			svc := application.NewStatementService(
				source.New(),
				config.New(),
				pricing.DefaultRegistry(),
				logger,
			)

			report, err := svc.Run(application.Request{
				Dir:        dir,
				Plays:      plays,
				Invoices:   invoices,
				Customer:   customer,
				SkipErrors: skipErrors,
				Parallel:   parallel,
			})
			if err != nil {
				return fmt.Errorf("statement failed: %w", err)
			}

			if exportKind != "" {
				kind, err := export.ParseKind(exportKind)
				if err != nil {
					return err
				}
				target := outDir
				if target == "" {
					target = filepath.Join(dir, report.Config.ExportDir)
				}
				return writeExports(cmd, logger, report, kind, target)
			}

			f := report.Config.Format
			if format != "" {
				f = format
			}
			rf, err := render.ParseFormat(f)
			if err != nil {
				return err
			}

			if rf == render.FormatJSON {
				return renderStatementsJSON(cmd, report)
			}
			return renderStatements(cmd, report, rf)
		},
	}

	cmd.Flags().StringVar(&plays, "plays", "", "Play catalog file (.json, .yaml)")
	cmd.Flags().StringVar(&invoices, "invoices", "", "Invoices file (.json, .yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, html, tui, json")
	cmd.Flags().StringVar(&customer, "customer", "", "Only the invoices of this customer")
	cmd.Flags().BoolVar(&skipErrors, "skip-errors", false, "Skip invoices that cannot be priced instead of failing")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Compute invoices concurrently")
	cmd.Flags().StringVar(&exportKind, "export", "", "Write documents instead of printing: pdf, xlsx")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for exported documents")

	return cmd
}

func renderStatements(cmd *cobra.Command, report *application.Report, format render.Format) error {
	var blocks []string
	for _, r := range report.Results {
		if !r.OK() {
			continue
		}
		out, err := render.Render(r.Data, format)
		if err != nil {
			return err
		}
		blocks = append(blocks, out)
	}
	fmt.Fprint(cmd.OutOrStdout(), strings.Join(blocks, "\n"))
	return nil
}

func renderStatementsJSON(cmd *cobra.Command, report *application.Report) error {
	out := statementsJSON{Statements: []render.StatementView{}}

	gi := gitinfo.New()
	if gi.IsGitRepo(report.Plays) {
		if hash, err := gi.CommitHash(report.Plays); err == nil {
			out.CatalogRevision = hash
		}
	}

	for i, r := range report.Results {
		if !r.OK() {
			out.Skipped = append(out.Skipped, skippedJSON{Index: i, Customer: r.Invoice.Customer, Error: r.Err.Error()})
			continue
		}
		out.Statements = append(out.Statements, render.View(r.Data))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeExports(cmd *cobra.Command, logger *zap.Logger, report *application.Report, kind export.Kind, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	used := make(map[string]int)
	for _, r := range report.Results {
		if !r.OK() {
			continue
		}
		data, err := export.Export(r.Data, kind)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", r.Data.Customer, err)
		}

		name := export.FileName(r.Data.Customer, kind)
		used[name]++
		if n := used[name]; n > 1 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("statement exported", zap.String("customer", r.Data.Customer), zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
