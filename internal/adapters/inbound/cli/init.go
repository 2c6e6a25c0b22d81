package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/playbill/playbill/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".playbill.yaml"

func newInitCmd() *cobra.Command {
	var (
		format  string
		onError string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .playbill.yaml configuration file",
		Long:  "Create a .playbill.yaml with the default input paths, output format and error policy.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.Format = format
			cfg.OnError = domain.ErrorPolicy(onError)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Default output format (text, html, tui, json)")
	cmd.Flags().StringVar(&onError, "on-error", string(domain.ErrorPolicyHalt), "Batch error policy (halt, skip)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .playbill.yaml")

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) string {
	return fmt.Sprintf(`# playbill configuration

plays: %s
invoices: %s

# text, html, tui or json
format: %s

# halt stops at the first invoice that cannot be priced; skip reports it and continues
on_error: %s
parallel: %t

# where --export writes pdf/xlsx statements
export_dir: %s
`, cfg.Plays, cfg.Invoices, cfg.Format, cfg.OnError, cfg.Parallel, cfg.ExportDir)
}
