package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// browseOptions holds the query intent flags for one browse invocation.
type browseOptions struct {
	Search   string
	Category string
	Sort     string
	Order    string
	Page     int
	Pages    int
}

var validSortFields = []string{
	string(domain.SortByName),
	string(domain.SortByPrice),
	string(domain.SortByRating),
	string(domain.SortByReviewCount),
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:     "browse [search-term]",
		Aliases: []string{"search"},
		Short:   "Browse the product catalog",
		Long: `Browse the product catalog with optional search, category filter and sort.
A positional argument is shorthand for --search, so "search jeans" works.
With --pages N, successive pages are accumulated the way an infinite
scroll would append them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && opts.Search == "" {
				opts.Search = args[0]
			}
			return runBrowse(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "free-text search term")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "category filter")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort field (name|price|rating|reviewCount)")
	cmd.Flags().StringVar(&opts.Order, "order", "", "sort order (asc|desc)")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 0, "jump to page number")
	cmd.Flags().IntVar(&opts.Pages, "pages", 1, "number of consecutive pages to accumulate")

	return cmd
}

func runBrowse(rootOpts *RootOptions, opts *browseOptions, cmd *cobra.Command) error {
	if opts.Sort != "" && !contains(validSortFields, opts.Sort) {
		return fmt.Errorf("invalid sort field %q: must be one of %v", opts.Sort, validSortFields)
	}
	if opts.Order != "" && opts.Order != string(domain.OrderAsc) && opts.Order != string(domain.OrderDesc) {
		return fmt.Errorf("invalid order %q: must be asc or desc", opts.Order)
	}

	ctx := cmd.Context()
	session, err := newSession(ctx, rootOpts)
	if err != nil {
		return err
	}
	defer session.Close()

	catalog := session.Catalog
	if opts.Search != "" {
		catalog.SetSearchTerm(opts.Search)
	}
	if opts.Category != "" {
		catalog.UpdateFilter("category", opts.Category)
	}
	if opts.Sort != "" {
		catalog.SetSortField(domain.SortField(opts.Sort))
	}
	if opts.Order != "" {
		catalog.SetSortOrder(domain.SortOrder(opts.Order))
	}
	if opts.Page > 1 {
		catalog.SetPage(opts.Page)
	}

	if err := catalog.Wait(ctx); err != nil {
		return err
	}
	for extra := 1; extra < opts.Pages; extra++ {
		if !catalog.NextPage() {
			break
		}
		if err := catalog.Wait(ctx); err != nil {
			return err
		}
	}

	state := catalog.State()
	if state.Err != "" {
		return fmt.Errorf("catalog fetch failed: %s", state.Err)
	}
	renderProductList(cmd.OutOrStdout(), state)
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
