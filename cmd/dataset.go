package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/catalog"
	"github.com/arcanaland/nrhelper/internal/config"
)

// datasetCmd represents the dataset command group
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage card datasets in your dataset library",
	Long:  `Commands for managing card datasets in your dataset library.`,
}

// datasetListCmd represents the dataset ls command
var datasetListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available datasets in your dataset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDatasetLibraryPath()

		// Check if dataset library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Dataset library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'nrhelper dataset init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading dataset library: %w", err)
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No datasets found in your dataset library.")
			fmt.Fprintln(out, "You can add datasets by copying them to:", libraryPath)
			return nil
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}

			cat, err := catalog.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid dataset, skip
				logger.Debug("skipping dataset", zap.String("name", entry.Name()), zap.Error(err))
				continue
			}

			if entry.Name() == cfg.DefaultDataset {
				fmt.Fprintf(out, "* %s (%d cards) [DEFAULT]\n", entry.Name(), cat.Len())
			} else {
				fmt.Fprintf(out, "  %s (%d cards)\n", entry.Name(), cat.Len())
			}
		}
		return nil
	},
}

// datasetSetDefaultCmd represents the dataset set-default command
var datasetSetDefaultCmd = &cobra.Command{
	Use:   "set-default [dataset_name]",
	Short: "Set the default dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.GetDatasetPath(name)
		if err != nil {
			return err
		}

		// Try to load the dataset to make sure it's valid
		if _, err := catalog.Load(path); err != nil {
			return fmt.Errorf("not a valid dataset: %w", err)
		}

		if err := config.SetDefaultDataset(name); err != nil {
			return fmt.Errorf("error setting default dataset: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default dataset set to: %s\n", name)
		return nil
	},
}

// datasetInitCmd represents the dataset init command
var datasetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the dataset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDatasetLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating dataset library: %w", err)
		}

		fmt.Fprintln(out, "Dataset library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add datasets by copying them to this directory.")
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetSetDefaultCmd)
	datasetCmd.AddCommand(datasetInitCmd)
}
