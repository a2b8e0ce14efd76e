package commands

import (
	"github.com/johannschopplich/go-kql/internal/cli/config"
	"github.com/johannschopplich/go-kql/internal/cli/ui"
	"github.com/johannschopplich/go-kql/query"
)

// loadSetup loads the tool config and builds the parser it describes
func loadSetup() (*config.Config, *query.Parser, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	parser := query.NewWithConfig(query.Config{
		CustomModels: cfg.Models,
		Lenient:      cfg.Lenient,
	})
	return cfg, parser, nil
}

// renderOptions maps the configured color mode to rendering options.
// "auto" defers to the color package's own terminal detection.
func renderOptions(cfg *config.Config) ui.Options {
	return ui.Options{NoColor: cfg.Output.Color == "never"}
}
