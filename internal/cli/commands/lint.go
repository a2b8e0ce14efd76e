package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	kql "github.com/johannschopplich/go-kql"
	"github.com/johannschopplich/go-kql/internal/cli/ui"
	"github.com/johannschopplich/go-kql/internal/watch"
	"github.com/johannschopplich/go-kql/query"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewLintCommand creates the lint command
func NewLintCommand() *cobra.Command {
	var (
		asJSON    bool
		watchMode bool
	)

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Validate KQL request documents",
		Long: `Lint request documents (JSON or YAML): the query must parse, string
selections are checked as sub-queries, nested requests are validated
recursively. With --watch the documents are re-linted on every change.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, parser, err := loadSetup()
			if err != nil {
				return err
			}
			opts := renderOptions(cfg)

			if !watchMode {
				return lintFiles(cmd, parser, args, asJSON, opts)
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			// Initial pass; failures keep the watcher running.
			if err := lintFiles(cmd, parser, args, asJSON, opts); err != nil {
				logger.Warn("lint failed", zap.Error(err))
			}

			watcher, err := watch.NewFileWatcher(
				[]string{"*.json", "*.yml", "*.yaml"},
				logger,
				func(changed []string) error {
					return lintFiles(cmd, parser, args, asJSON, opts)
				},
			)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			for _, path := range args {
				if err := watcher.Add(path); err != nil {
					return err
				}
			}
			watcher.Start()
			logger.Info("watching for changes", zap.Strings("files", args))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output diagnostics as JSON")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-lint when documents change")

	return cmd
}

// fileDiagnostics pairs a document with its findings for JSON output
type fileDiagnostics struct {
	File        string           `json:"file"`
	Diagnostics []kql.Diagnostic `json:"diagnostics"`
}

// lintFiles lints each document and renders the findings
func lintFiles(cmd *cobra.Command, parser *query.Parser, paths []string, asJSON bool, opts ui.Options) error {
	results := make([]fileDiagnostics, 0, len(paths))
	errors := 0

	for _, path := range paths {
		req, err := kql.LoadRequest(path)
		if err != nil {
			errors++
			results = append(results, fileDiagnostics{
				File: path,
				Diagnostics: []kql.Diagnostic{
					{Severity: kql.SeverityError, Path: "", Message: err.Error()},
				},
			})
			continue
		}

		diags := req.Validate(parser)
		if kql.HasErrors(diags) {
			errors++
		}
		results = append(results, fileDiagnostics{File: path, Diagnostics: diags})
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
			if len(res.Diagnostics) == 0 {
				okColor.Fprint(cmd.OutOrStdout(), "ok")
				fmt.Fprintf(cmd.OutOrStdout(), " %s\n", res.File)
				continue
			}
			ui.RenderDiagnostics(cmd.OutOrStdout(), res.File, res.Diagnostics, opts)
		}
	}

	if errors > 0 {
		return fmt.Errorf("%d of %d documents have errors", errors, len(paths))
	}
	return nil
}
