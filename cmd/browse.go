package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/nrhelper/internal/controller"
	"github.com/arcanaland/nrhelper/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the card list interactively",
	Long: `Browse opens an interactive view of the card list. The list is recomputed
every time the search text, archetype, type, sort direction or staples toggle
changes. Filter flags set the starting state.`,
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

		ctl := controller.New(cat, logger)
		ctl.SetInputs(in)

		p := tea.NewProgram(tui.New(ctl, cat.Len()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running browser: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
	addFilterFlags(browseCmd)
}
