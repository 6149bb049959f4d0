package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront/internal/app/collections"
	"github.com/light-bringer/storefront/internal/services"
)

// NewListCommand creates the command group for one membership collection
// (favorites, wishlist or saved). The three collections share one algebra, so
// they share one command implementation.
func NewListCommand(rootOpts *RootOptions, name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Manage " + short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "List the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()
			renderCollection(cmd.OutOrStdout(), name, collectionByName(session, name).Items())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			ctx := cmd.Context()
			session, err := newSession(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			col := collectionByName(session, name)
			if col.Contains(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "product %d already in %s\n", id, name)
				return nil
			}
			p, err := session.Gateway.FetchByID(ctx, id)
			if err != nil {
				return err
			}
			col.Toggle(p, true)
			fmt.Fprintf(cmd.OutOrStdout(), "added %q to %s (%d items)\n", p.Name, name, col.Len())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			session, err := newSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			col := collectionByName(session, name)
			if col.Remove(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "removed product %d from %s (%d items)\n", id, name, col.Len())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "product %d not in %s\n", id, name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			collectionByName(session, name).Clear()
			fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", name)
			return nil
		},
	})

	return cmd
}

func collectionByName(s *services.ServiceOptions, name string) *collections.Collection {
	switch name {
	case collections.KeyWishlist:
		return s.Wishlist
	case collections.KeySaved:
		return s.Saved
	default:
		return s.Favorites
	}
}
