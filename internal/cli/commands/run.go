package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johannschopplich/go-kql/query"
	"github.com/johannschopplich/go-kql/resolve"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "run <query>",
		Short: "Run a query against local fixture data",
		Long: `Evaluate a query against fixture data and print the result as JSON.

--data accepts a single file or a directory. Each file contributes one
model: the file's base name becomes the model name and its decoded
content the model's data. site.yml next to page.json yields the models
"site" and "page".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The fixture data decides the model set, so only the
			// config half of the setup is useful here.
			cfg, _, err := loadSetup()
			if err != nil {
				return err
			}

			if dataPath == "" {
				dataPath = cfg.Data.Dir
			}
			data, err := loadFixtures(dataPath)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return fmt.Errorf("no fixture data found in %s", dataPath)
			}

			resolver := resolve.New(data)

			// Models present in the data are queryable even when they
			// are not configured, so extend the parser for this run.
			models := append([]string{}, cfg.Models...)
			models = append(models, resolver.Models()...)
			parser := query.NewWithConfig(query.Config{
				CustomModels: models,
				Lenient:      cfg.Lenient,
			})

			q, err := parser.Parse(args[0])
			if err != nil {
				return err
			}

			result, err := resolver.Resolve(q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Fixture file or directory (defaults to data.dir from kql.yml)")

	return cmd
}

// loadFixtures reads fixture data from a file or directory. The base
// name of each file, without extension, names the model it provides.
func loadFixtures(path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture data: %w", err)
	}

	data := make(map[string]any)

	if !info.IsDir() {
		model, value, err := loadFixtureFile(path)
		if err != nil {
			return nil, err
		}
		data[model] = value
		return data, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yml", ".yaml":
		default:
			continue
		}
		model, value, err := loadFixtureFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		data[model] = value
	}

	return data, nil
}

// loadFixtureFile decodes one fixture file into its model name and value
func loadFixtureFile(path string) (string, any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var value any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", nil, fmt.Errorf("%s: invalid JSON: %w", path, err)
		}
	case ".yml", ".yaml":
		var tree any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return "", nil, fmt.Errorf("%s: invalid YAML: %w", path, err)
		}
		// Normalize through JSON so the resolver sees the same value
		// types for both formats.
		jsonData, err := json.Marshal(tree)
		if err != nil {
			return "", nil, fmt.Errorf("%s: not JSON-compatible: %w", path, err)
		}
		if err := json.Unmarshal(jsonData, &value); err != nil {
			return "", nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return "", nil, fmt.Errorf("%s: unsupported fixture extension", path)
	}

	return name, value, nil
}
