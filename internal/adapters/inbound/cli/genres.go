package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/playbill/playbill/internal/domain"
	"github.com/playbill/playbill/internal/domain/pricing"
	"github.com/spf13/cobra"
)

type genreJSON struct {
	Genre     string `json:"genre"`
	Label     string `json:"label"`
	BasePrice int64  `json:"base_price"`
}

func newGenresCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genres that can be priced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := pricing.DefaultRegistry()

			var genres []genreJSON
			for _, g := range registry.Genres() {
				s, err := registry.Resolve(g)
				if err != nil {
					return err
				}
				genres = append(genres, genreJSON{Genre: g, Label: genreLabel(g), BasePrice: s.Price(0)})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(genres)
			}
			for _, g := range genres {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-20s from %s\n", g.Genre, g.Label, domain.FormatUSD(g.BasePrice))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output genres as JSON")
	return cmd
}

// genreLabel turns a genre tag into a display label:
// "tragedy" -> "Tragedy", "historyPlay" -> "History Play", "tragi_comedy" -> "Tragi Comedy".
func genreLabel(genre string) string {
	var words []string
	for _, part := range strings.FieldsFunc(genre, func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		for _, w := range camelcase.Split(part) {
			if w == "" {
				continue
			}
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			words = append(words, string(r))
		}
	}
	return strings.Join(words, " ")
}
