package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/light-bringer/storefront/internal/app/catalog/controller"
	"github.com/light-bringer/storefront/internal/app/catalog/gateway"
	"github.com/light-bringer/storefront/internal/app/collections"
	"github.com/light-bringer/storefront/internal/config"
	"github.com/light-bringer/storefront/internal/pkg/clock"
	"github.com/light-bringer/storefront/internal/pkg/storage"
)

// ServiceOptions holds all wired dependencies for one user session.
type ServiceOptions struct {
	Config  config.Config
	Logger  *slog.Logger
	Store   *storage.SQLite
	Gateway *gateway.Client
	Catalog *controller.Controller

	Favorites *collections.Collection
	Wishlist  *collections.Collection
	Saved     *collections.Collection
	Cart      *collections.Cart
}

// NewServiceOptions creates and wires up the session: persistence, gateway,
// controller, the three persisted collections, and the in-memory cart. The
// controller is started before returning.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *slog.Logger) (*ServiceOptions, error) {
	store, err := storage.OpenSQLite(cfg.DBPath, clock.NewRealClock())
	if err != nil {
		return nil, fmt.Errorf("open collection store: %w", err)
	}

	gw := gateway.NewClient(cfg.APIBase, logger)

	catalog := controller.New(cfg.UserID, cfg.PageLimit, gw, logger)
	catalog.Start(ctx)

	return &ServiceOptions{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Gateway:   gw,
		Catalog:   catalog,
		Favorites: collections.NewCollection(collections.KeyFavorites, cfg.UserID, store, logger),
		Wishlist:  collections.NewCollection(collections.KeyWishlist, cfg.UserID, store, logger),
		Saved:     collections.NewCollection(collections.KeySaved, cfg.UserID, store, logger),
		// The cart is deliberately session-only; it never touches the store.
		Cart: collections.NewCart(cfg.UserID),
	}, nil
}

// Close tears down the session: in-flight fetches are cancelled and the
// persistence store is released.
func (s *ServiceOptions) Close() {
	s.Catalog.Close()
	if err := s.Store.Close(); err != nil {
		s.Logger.Warn("close collection store", "error", err)
	}
}
