package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/nrhelper/internal/catalog"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the archetypes present in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		for _, a := range catalog.Facet(cat.Records()) {
			fmt.Fprintln(cmd.OutOrStdout(), a)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(archetypesCmd)
}
