package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/catalog"
	"github.com/arcanaland/nrhelper/internal/config"
	"github.com/arcanaland/nrhelper/internal/logging"
)

var (
	version = "0.1.0-dev"

	datasetFlag string

	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nrhelper",
	Short: "Browse, filter and sort the NR card list",
	Long: `nrhelper loads a static dump of card records and shows them filtered by
archetype, card type and name, sorted by banlist status, rarity and type.

Datasets are looked up in your dataset library (XDG_DATA_HOME/nrhelper/datasets)
or as a relative path. Without --dataset the default from your config is used.`,
	SilenceUsage: true,
	Version:      version,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		level, asJSON := logOptions(cmd, cfg)

		// The interactive browser owns the terminal
		if cmd.Name() == "browse" {
			logger = zap.NewNop()
			return nil
		}

		logger, err = logging.New(level, asJSON)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", "", "dataset from your library or a path to a JSON card dump")
	RootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON")

	RootCmd.AddCommand(validateCmd)
}

// logOptions returns the log settings, letting explicitly set flags override the config
func logOptions(cmd *cobra.Command, cfg *config.Config) (level string, asJSON bool) {
	level, asJSON = cfg.LogLevel, cfg.LogJSON
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-json") {
		asJSON, _ = cmd.Flags().GetBool("log-json")
	}
	return level, asJSON
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolveDataset returns the path of the dataset selected by flag or config
func resolveDataset() (string, error) {
	name := datasetFlag
	if name == "" {
		if cfg == nil {
			return "", fmt.Errorf("no dataset specified")
		}
		name = cfg.DefaultDataset
	}

	path, err := config.GetDatasetPath(name)
	if err != nil {
		return "", fmt.Errorf("error resolving dataset: %w", err)
	}
	return path, nil
}

// loadCatalog loads the working dataset selected by flag or config
func loadCatalog() (*catalog.Catalog, error) {
	path, err := resolveDataset()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("cards", cat.Len()),
		zap.Int("excluded", cat.Excluded()),
	)
	return cat, nil
}

// defaultDirection returns the configured sort direction
func defaultDirection() catalog.Direction {
	if cfg == nil {
		return catalog.Descending
	}
	dir, err := catalog.ParseDirection(cfg.Sort)
	if err != nil {
		logger.Warn("invalid sort in config, using desc", zap.String("sort", cfg.Sort))
		return catalog.Descending
	}
	return dir
}
