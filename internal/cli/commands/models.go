package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/johannschopplich/go-kql/query"
	"github.com/spf13/cobra"
)

// NewModelsCommand creates the models command
func NewModelsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:           "models",
		Short:         "List the model names queries may start with",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, parser, err := loadSetup()
			if err != nil {
				return err
			}
			opts := renderOptions(cfg)

			defaults := make(map[string]bool)
			for _, m := range query.DefaultModels() {
				defaults[m] = true
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(parser.Models())
			}

			customColor := color.New(color.FgCyan)
			if opts.NoColor {
				customColor.DisableColor()
			}
			for _, m := range parser.Models() {
				if defaults[m] {
					fmt.Fprintln(cmd.OutOrStdout(), m)
					continue
				}
				customColor.Fprint(cmd.OutOrStdout(), m)
				fmt.Fprintln(cmd.OutOrStdout(), " (custom)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the model list as JSON")

	return cmd
}
