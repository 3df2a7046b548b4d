package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"modebar/internal/prefs"
	"modebar/internal/preset"
)

func newFavoritesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the presets pinned to the toolbar",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite presets in toolbar order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), app, func(ctx context.Context, st *prefs.Store, cat *preset.Catalog) error {
				favs, err := st.List(ctx)
				if err != nil {
					return err
				}
				if len(favs) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "no favorites")
					return err
				}
				for _, f := range favs {
					name := "(missing preset)"
					if p, ok := cat.Lookup(f.PresetID); ok {
						name = p.Name()
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-7s %s\n", f.PresetID, f.Geom, name)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <preset-id> <geometry>",
		Short: "Pin a preset to the toolbar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), app, func(ctx context.Context, st *prefs.Store, cat *preset.Catalog) error {
				f := preset.Favorite{PresetID: args[0], Geom: args[1]}
				p, ok := cat.Lookup(f.PresetID)
				if !ok {
					return fmt.Errorf("unknown preset %q", f.PresetID)
				}
				if !p.Supports(f.Geom) {
					return fmt.Errorf("preset %q cannot be added as %s", f.PresetID, f.Geom)
				}
				added, err := st.Add(ctx, f)
				if err != nil {
					return err
				}
				msg := "added"
				if !added {
					msg = "already a favorite:"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", msg, p.Name(), f.Geom)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <preset-id> <geometry>",
		Short: "Unpin a preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), app, func(ctx context.Context, st *prefs.Store, _ *preset.Catalog) error {
				f := preset.Favorite{PresetID: args[0], Geom: args[1]}
				removed, err := st.Remove(ctx, f)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("%s (%s) is not a favorite", f.PresetID, f.Geom)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%s)\n", f.PresetID, f.Geom)
				return err
			})
		},
	})

	return cmd
}

func withStore(ctx context.Context, app *App, fn func(context.Context, *prefs.Store, *preset.Catalog) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := preset.Default()
	if err != nil {
		return err
	}
	st, err := app.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(ctx, st, cat)
}
