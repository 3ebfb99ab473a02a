package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/nrhelper/internal/config"
	"github.com/arcanaland/nrhelper/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display a card with ANSI art",
	Long: `Show displays a single card from the working dataset next to ANSI art
generated from a local copy of its image.

Images are looked up in the configured image_dir as <card id>.png/.jpg/.gif
or by the file name of the card's image URL. Converted art is cached under
XDG_CACHE_HOME/nrhelper/ansi_cache. Cards without a local image get a
placeholder frame.

Examples:
  nrhelper show "Pot of Greed"
  nrhelper show --images ~/cards ash blossom & joyous spring`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		rec, ok := cat.Find(name)
		if !ok {
			return fmt.Errorf("card not found: %s", name)
		}

		imageDir, _ := cmd.Flags().GetString("images")
		if imageDir == "" {
			imageDir = cfg.ImageDir
		}

		art, err := render.CardArt(imageDir, config.GetCacheDir(), rec)
		if err != nil {
			logger.Warn("falling back to placeholder art", zap.String("card", rec.Name), zap.Error(err))
			art = render.Placeholder(render.ArtWidth, render.ArtHeight)
		}

		render.Card(cmd.OutOrStdout(), rec, art, render.TerminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("images", "", "directory holding local card images (default from config)")
}
