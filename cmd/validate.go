package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/nrhelper/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card dataset",
	Long: `Validate checks that a JSON card dump can be loaded and reports records
that will be excluded or shown oddly: unrecognized rarities, missing or
duplicate names, banlist codes outside 0-2 and unclassifiable frame types.

Without a path the dataset selected by --dataset or the config is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var datasetPath string
		if len(args) == 1 {
			datasetPath = args[0]
		} else {
			path, err := resolveDataset()
			if err != nil {
				return err
			}
			datasetPath = path
		}

		if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
			return fmt.Errorf("dataset not found: %s", datasetPath)
		}

		v := validator.NewValidator(datasetPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")
		fmt.Fprintf(out, "%d cards kept, %d excluded\n", results.Kept, results.Excluded)

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Dataset '%s' is valid.\n", datasetPath)
		} else {
			fmt.Fprintf(out, "❌ Dataset '%s' has %d validation errors:\n", datasetPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
