package commands

import (
	"encoding/json"

	"github.com/johannschopplich/go-kql/internal/cli/ui"
	"github.com/johannschopplich/go-kql/query"
	"github.com/spf13/cobra"
)

// parsedSegment is the JSON shape of one chain segment
type parsedSegment struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Params string `json:"params,omitempty"`
}

// parsedQuery is the JSON shape of a decomposed query
type parsedQuery struct {
	Model string          `json:"model"`
	Chain []parsedSegment `json:"chain"`
}

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <query>",
		Short:         "Decompose a query into its model and segment chain",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, parser, err := loadSetup()
			if err != nil {
				return err
			}
			opts := renderOptions(cfg)

			q, err := parser.Parse(args[0])
			if err != nil {
				ui.RenderParseError(cmd.OutOrStdout(), args[0], err, opts)
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toParsedQuery(q))
			}

			ui.RenderQuery(cmd.OutOrStdout(), q, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the decomposition as JSON")

	return cmd
}

// toParsedQuery converts a query into its JSON output shape
func toParsedQuery(q *query.Query) parsedQuery {
	out := parsedQuery{Model: q.Model, Chain: make([]parsedSegment, 0, len(q.Chain))}
	for _, seg := range q.Chain {
		out.Chain = append(out.Chain, parsedSegment{
			Kind:   seg.Kind.String(),
			Name:   seg.Name,
			Params: seg.Params,
		})
	}
	return out
}
