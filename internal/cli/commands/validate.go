package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/johannschopplich/go-kql/internal/cli/ui"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <query>...",
		Short: "Validate query strings against the grammar",
		Long: `Validate one or more query strings. Custom models from kql.yml extend
the default model set. The exit status is non-zero when any query is
invalid.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, parser, err := loadSetup()
			if err != nil {
				return err
			}
			opts := renderOptions(cfg)

			type result struct {
				Query string `json:"query"`
				Valid bool   `json:"valid"`
				Error string `json:"error,omitempty"`

				parseErr error
			}

			invalid := 0
			results := make([]result, 0, len(args))
			for _, input := range args {
				if _, err := parser.Parse(input); err != nil {
					invalid++
					results = append(results, result{Query: input, Error: err.Error(), parseErr: err})
				} else {
					results = append(results, result{Query: input, Valid: true})
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				okColor := color.New(color.FgGreen, color.Bold)
				if opts.NoColor {
					okColor.DisableColor()
				}
				for _, res := range results {
					if res.Valid {
						okColor.Fprint(cmd.OutOrStdout(), "ok")
						fmt.Fprintf(cmd.OutOrStdout(), " %s\n", res.Query)
						continue
					}
					ui.RenderParseError(cmd.OutOrStdout(), res.Query, res.parseErr, opts)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d queries invalid", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results as JSON")

	return cmd
}
