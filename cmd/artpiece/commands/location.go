package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"artpiece/internal/domain"
)

// mapsSearchURL is the map link printed by view.
const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// location: print the current position as JSON.
func locationCmd(o *rootOptions) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Print the current position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if reset {
				if err := o.wire.Location.ResetPermission(ctx); err != nil {
					return err
				}
			}
			pos, err := o.wire.Location.Current(ctx)
			if errors.Is(err, domain.ErrPermissionDenied) {
				fmt.Fprintln(cmd.OutOrStdout(), "Permission to access location was denied")
				cmd.SilenceErrors = true
				return err
			}
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(pos, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset-permission", false, "forget the stored answer and ask again")
	return cmd
}

// view <title>: print a map search link for the piece.
func viewCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view <title>",
		Short: "Print a map link for an art piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], MapLink(domain.ItemID(args[0])))
			return nil
		},
	}
}

// MapLink returns a map search URL for id.
func MapLink(id domain.ItemID) string {
	return mapsSearchURL + url.QueryEscape(id.String())
}
