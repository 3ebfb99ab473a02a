package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/catalog"
	"github.com/arcanaland/nrhelper/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards matching the given filters",
	Long: `List prints the filtered and sorted card list once and exits.

Cards are ordered by banlist status (most restricted first), then rarity
(rare first unless --asc is given), then card type.

Examples:
  nrhelper list --type spell
  nrhelper list --archetype "Sky Striker" --asc
  nrhelper list --search ash --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputsFromFlags(cmd)
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		view := catalog.ComputeView(cat.Records(), in)
		out := cmd.OutOrStdout()

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(view)
		case "text", "":
			width, _ := cmd.Flags().GetInt("width")
			links, _ := cmd.Flags().GetBool("links")
			render.Summary(out, len(view.Cards), cat.Len(), len(view.Archetypes))
			render.Grid(out, view.Cards, render.GridOptions{Width: width, Links: links})
			return nil
		default:
			return fmt.Errorf("unknown format: %s (expected text, json or yaml)", format)
		}
	},
}

// inputsFromFlags builds view inputs from the filter flags shared by list and browse
func inputsFromFlags(cmd *cobra.Command) (catalog.Inputs, error) {
	in := catalog.DefaultInputs()
	in.Direction = defaultDirection()

	in.Archetype, _ = cmd.Flags().GetString("archetype")
	in.Search, _ = cmd.Flags().GetString("search")

	typeFlag, _ := cmd.Flags().GetString("type")
	category, err := card.ParseCategory(typeFlag)
	if err != nil {
		return in, err
	}
	in.Category = category

	if asc, _ := cmd.Flags().GetBool("asc"); asc {
		in.Direction = catalog.Ascending
	}
	if desc, _ := cmd.Flags().GetBool("desc"); desc {
		in.Direction = catalog.Descending
	}
	in.Staples, _ = cmd.Flags().GetBool("staples")

	return in, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("archetype", "a", "", "only show cards of this archetype")
	cmd.Flags().StringP("type", "t", "all", "only show cards of this type (normal, effect, ritual, fusion, synchro, xyz, spell, trap)")
	cmd.Flags().StringP("search", "s", "", "only show cards whose name contains this text")
	cmd.Flags().Bool("asc", false, "sort common before rare")
	cmd.Flags().Bool("desc", false, "sort rare before common")
	cmd.Flags().Bool("staples", false, "show staples only (not yet filtering)")
	cmd.MarkFlagsMutuallyExclusive("asc", "desc")
}

func init() {
	RootCmd.AddCommand(listCmd)

	addFilterFlags(listCmd)
	listCmd.Flags().StringP("format", "f", "text", "output format (text, json, yaml)")
	listCmd.Flags().IntP("width", "w", 0, "grid width in columns (default: terminal width)")
	listCmd.Flags().Bool("links", false, "print detail links under each row")
}
