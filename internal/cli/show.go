package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command for a single product.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product in full",
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

			p, err := session.Gateway.FetchByID(ctx, id)
			if err != nil {
				return err
			}
			renderProduct(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := newSession(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			cats, err := session.Gateway.FetchCategories(ctx)
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no categories")
				return nil
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
