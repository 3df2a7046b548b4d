package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modebar/internal/preset"
)

func newPresetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Browse the preset catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := preset.Default()
			if err != nil {
				return err
			}
			for _, p := range cat.All() {
				writePreset(cmd, p)
			}
			return nil
		},
	})

	var limit int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search presets by name, id or term (typos tolerated)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := preset.Default()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			matches := cat.Search(query, limit)
			app.logger.Debug("preset search", "query", query, "hits", len(matches))
			if len(matches) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no presets match %q\n", query)
				return err
			}
			for _, m := range matches {
				writePreset(cmd, m.Preset)
			}
			return nil
		},
	}
	search.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	cmd.AddCommand(search)

	return cmd
}

func writePreset(cmd *cobra.Command, p *preset.Preset) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-18s %s\n", p.ID, p.Name(), strings.Join(p.Geometry, ","))
}
