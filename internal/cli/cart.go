package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront/internal/services"
)

// NewCartCommand creates the cart command group. The cart is session-only by
// design and never persisted, so every invocation starts empty; the --with
// flag seeds the cart (repeat an id to raise its quantity) so any operation
// can be exercised end to end within one invocation.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	var with []int

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Work with the shopping cart (session-only, never persisted)",
	}
	cmd.PersistentFlags().IntSliceVar(&with, "with", nil, "product ids to seed the session cart with (repeatable)")

	seed := func(cmd *cobra.Command, session *services.ServiceOptions) error {
		for _, id := range with {
			if session.Cart.Quantity(id) > 0 {
				session.Cart.Increment(id)
				continue
			}
			p, err := session.Gateway.FetchByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			session.Cart.Add(p)
		}
		return nil
	}

	// run wraps one cart operation: build the session, seed the cart, apply
	// the operation to each id argument, then print the resulting cart.
	run := func(apply func(cmd *cobra.Command, session *services.ServiceOptions, id int) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := seed(cmd, session); err != nil {
				return err
			}
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid product id %q", arg)
				}
				if err := apply(cmd, session, id); err != nil {
					return err
				}
			}
			renderCart(cmd.OutOrStdout(), session.Cart.Snapshot())
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the cart",
		Args:  cobra.NoArgs,
		RunE: run(func(*cobra.Command, *services.ServiceOptions, int) error {
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id> [product-id...]",
		Short: "Add products to the cart (repeat an id to raise its quantity)",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, session *services.ServiceOptions, id int) error {
			// A repeated id increments the existing pair rather than
			// re-fetching into a duplicate.
			if session.Cart.Quantity(id) > 0 {
				session.Cart.Increment(id)
				return nil
			}
			p, err := session.Gateway.FetchByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			session.Cart.Add(p)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "inc <product-id> [product-id...]",
		Short: "Raise the quantity of products already in the cart",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(_ *cobra.Command, session *services.ServiceOptions, id int) error {
			session.Cart.Increment(id)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dec <product-id> [product-id...]",
		Short: "Lower the quantity of products in the cart (a pair at quantity 1 is removed)",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(_ *cobra.Command, session *services.ServiceOptions, id int) error {
			session.Cart.Decrement(id)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <product-id> [product-id...]",
		Short: "Remove products from the cart regardless of quantity",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(_ *cobra.Command, session *services.ServiceOptions, id int) error {
			session.Cart.Remove(id)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := newSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := seed(cmd, session); err != nil {
				return err
			}
			session.Cart.Clear()
			renderCart(cmd.OutOrStdout(), session.Cart.Snapshot())
			return nil
		},
	})

	return cmd
}
