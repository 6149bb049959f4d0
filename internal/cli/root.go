package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront/internal/config"
	"github.com/light-bringer/storefront/internal/services"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCommand creates the root command for the storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront - browse a remote product catalog and manage personal collections",
		Long: `Storefront is a client for a paginated, searchable product catalog.
It keeps four personal collections (cart, favorites, wishlist, saved)
persisted locally across sessions.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "storefront.yaml", "path to config file")

	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewListCommand(opts, "favorites", "favorite products"))
	cmd.AddCommand(NewListCommand(opts, "wishlist", "wishlist products"))
	cmd.AddCommand(NewListCommand(opts, "saved", "saved-for-later products"))
	cmd.AddCommand(NewAdminCommand(opts))

	return cmd
}

// newSession loads config and wires the full service graph for one command
// invocation. Callers must Close the returned session.
func newSession(ctx context.Context, opts *RootOptions) (*services.ServiceOptions, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return services.NewServiceOptions(ctx, cfg, logger)
}
