// Package collections holds the user's personal product collections: the
// three membership sets (favorites, wishlist, saved) and the quantity-aware
// cart. Every mutation is fully derivable from the previous state plus one
// user action; no server round-trip is involved.
package collections

import (
	"log/slog"
	"sync"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
	"github.com/light-bringer/storefront/internal/pkg/storage"
)

// Well-known persistence keys. The cart is intentionally absent: it is
// session-only state.
const (
	KeyFavorites = "favorites"
	KeyWishlist  = "wishlist"
	KeySaved     = "saved"
)

// State is the persisted snapshot of one collection.
type State struct {
	UserID string           `json:"userId"`
	Items  []domain.Product `json:"items"`
}

// Collection is a user-scoped set of products keyed by product id.
// Membership mutations are idempotent; every mutation writes the full
// snapshot to the persistence store. Persistence failures are logged and
// ignored — the in-memory state stays authoritative for the session.
type Collection struct {
	mu    sync.Mutex
	key   string
	state State
	store storage.Store
	log   *slog.Logger
}

// NewCollection creates a collection bound to a persistence key, seeded from
// the persisted snapshot when one exists.
func NewCollection(key, userID string, store storage.Store, logger *slog.Logger) *Collection {
	c := &Collection{
		key:   key,
		state: State{UserID: userID, Items: []domain.Product{}},
		store: store,
		log:   logger,
	}
	var snap State
	if store.Load(key, &snap) && snap.Items != nil {
		c.state.Items = snap.Items
	}
	return c
}

// Toggle sets the desired membership of p. Inserting an already present id is
// a no-op that retains the originally stored copy; removing an absent id is a
// no-op. Returns true when the collection changed.
func (c *Collection) Toggle(p domain.Product, present bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if present {
		for _, item := range c.state.Items {
			if item.ID == p.ID {
				return false
			}
		}
		c.state.Items = append(cloneItems(c.state.Items), p)
		c.persist()
		return true
	}
	return c.removeLocked(p.ID)
}

// Remove drops the product with the given id; shorthand for Toggle(_, false).
func (c *Collection) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(id)
}

// Clear empties the collection unconditionally.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Items = []domain.Product{}
	c.persist()
}

// Contains reports membership by product id. Membership is a derived query
// against the authoritative set, never a cached flag.
func (c *Collection) Contains(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.state.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy in insertion order.
func (c *Collection) Items() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneItems(c.state.Items)
}

// Len returns the number of products in the collection.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.state.Items)
}

// UserID returns the owning user's id.
func (c *Collection) UserID() string {
	return c.state.UserID
}

func (c *Collection) removeLocked(id int) bool {
	items := c.state.Items
	for i, item := range items {
		if item.ID == id {
			next := make([]domain.Product, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			c.state.Items = next
			c.persist()
			return true
		}
	}
	return false
}

// persist writes the full snapshot. Called with the lock held.
func (c *Collection) persist() {
	if err := c.store.Save(c.key, c.state); err != nil {
		c.log.Warn("persist collection failed", "key", c.key, "error", err)
	}
}

func cloneItems(items []domain.Product) []domain.Product {
	out := make([]domain.Product, len(items))
	copy(out, items)
	return out
}
