package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initAnswers collects the interactive configuration choices
type initAnswers struct {
	Models  string
	Lenient bool
	DataDir string
	Format  string
	Color   string
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Create a kql.yml configuration interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			const configFile = "kql.yml"

			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
			}

			questions := []*survey.Question{
				{
					Name: "models",
					Prompt: &survey.Input{
						Message: "Custom model names (comma-separated, empty for none):",
					},
				},
				{
					Name: "lenient",
					Prompt: &survey.Confirm{
						Message: "Use the lenient compatibility grammar?",
						Default: false,
					},
				},
				{
					Name: "datadir",
					Prompt: &survey.Input{
						Message: "Fixture data directory for `kql run`:",
						Default: ".",
					},
				},
				{
					Name: "format",
					Prompt: &survey.Select{
						Message: "Default output format:",
						Options: []string{"text", "json"},
						Default: "text",
					},
				},
				{
					Name: "color",
					Prompt: &survey.Select{
						Message: "Color output:",
						Options: []string{"auto", "always", "never"},
						Default: "auto",
					},
				},
			}

			var answers initAnswers
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			var models []string
			for _, m := range strings.Split(answers.Models, ",") {
				if m = strings.TrimSpace(m); m != "" {
					models = append(models, m)
				}
			}

			doc := map[string]any{
				"lenient": answers.Lenient,
				"data":    map[string]any{"dir": answers.DataDir},
				"output": map[string]any{
					"format": answers.Format,
					"color":  answers.Color,
				},
			}
			if len(models) > 0 {
				doc["models"] = models
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			if err := os.WriteFile(configFile, out, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configFile, err)
			}

			successColor := color.New(color.FgGreen, color.Bold)
			successColor.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing kql.yml")

	return cmd
}
