package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// NewAdminCommand creates the admin command group for catalog mutations.
// These hit the remote catalog's write surface and are not part of the
// synchronization core.
func NewAdminCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative catalog mutations (create, update, delete)",
	}

	var (
		name     string
		category string
		brand    string
		price    float64
		stock    int
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || category == "" {
				return fmt.Errorf("--name and --category are required")
			}
			ctx := cmd.Context()
			session, err := newSession(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			created, err := session.Gateway.CreateProduct(ctx, domain.Product{
				Name:     name,
				Category: category,
				Brand:    brand,
				Price:    price,
				Stock:    stock,
				InStock:  stock > 0,
			})
			if err != nil {
				return err
			}
			session.Catalog.UpsertProduct(created)
			fmt.Fprintf(cmd.OutOrStdout(), "created product %d\n", created.ID)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "product name")
	create.Flags().StringVar(&category, "category", "", "product category")
	create.Flags().StringVar(&brand, "brand", "", "product brand")
	create.Flags().Float64Var(&price, "price", 0, "product price")
	create.Flags().IntVar(&stock, "stock", 0, "stock on hand")

	var patchPrice float64
	var patchStock int

	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Partially update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			patch := map[string]any{}
			if cmd.Flags().Changed("price") {
				patch["price"] = patchPrice
			}
			if cmd.Flags().Changed("stock") {
				patch["stock"] = patchStock
				patch["inStock"] = patchStock > 0
			}
			if len(patch) == 0 {
				return fmt.Errorf("nothing to update")
			}

			ctx := cmd.Context()
			session, err := newSession(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer session.Close()

			updated, err := session.Gateway.UpdateProduct(ctx, id, patch)
			if err != nil {
				return err
			}
			session.Catalog.ReplaceProduct(updated)
			fmt.Fprintf(cmd.OutOrStdout(), "updated product %d\n", updated.ID)
			return nil
		},
	}
	update.Flags().Float64Var(&patchPrice, "price", 0, "new price")
	update.Flags().IntVar(&patchStock, "stock", 0, "new stock")

	del := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
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

			if err := session.Gateway.DeleteProduct(ctx, id); err != nil {
				return err
			}
			session.Catalog.DropProduct(id)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, update, del)
	return cmd
}
