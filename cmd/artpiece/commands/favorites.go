package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"artpiece/internal/domain"
)

// list: print catalog titles with a favorite marker and the available action.
func listCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List art pieces from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := o.wire.Favorites.Load(ctx); err != nil {
				return err
			}
			titles, err := o.wire.Catalog.Titles(ctx)
			if err != nil {
				// Already logged by the catalog service.
				cmd.SilenceErrors = true
				return err
			}
			if len(titles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No art pieces.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, id := range titles {
				marker, action := " ", "Favorite"
				if o.wire.Favorites.IsFavorite(id) {
					marker, action = "*", "Unfavorite"
				}
				fmt.Fprintf(tw, "[%s] %s\t%s\n", marker, id, action)
			}
			return tw.Flush()
		},
	}
}

// favorite <title>: toggle the flag after an authentication challenge.
func favoriteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <title>",
		Short: "Toggle the favorite flag of an art piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := o.wire.Favorites.Load(ctx); err != nil {
				return err
			}
			if _, err := o.wire.Favorites.Toggle(ctx, domain.ItemID(args[0])); err != nil {
				// The workflow already notified the user.
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}
}

// favorites: print the saved set.
func favoritesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "Print saved favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.wire.Favorites.Load(cmd.Context()); err != nil {
				return err
			}
			ids := o.wire.Favorites.Snapshot().Favorites()
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
