package collections

import (
	"sync"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// CartItem pairs a product snapshot with a quantity. Quantity is always >= 1;
// a pair that would drop to zero is removed, never zeroed.
type CartItem struct {
	Item     domain.Product `json:"item"`
	Quantity int            `json:"quantity"`
}

// CartSnapshot is an immutable view of the cart for rendering.
type CartSnapshot struct {
	UserID     string     `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalCount int        `json:"totalCount"`
	TotalDue   float64    `json:"totalDue"`
}

// Cart is the quantity-aware collection. At most one pair exists per product
// id. Unlike the membership collections the cart is not persisted across
// sessions; it lives only in memory.
type Cart struct {
	mu     sync.Mutex
	userID string
	items  []CartItem
}

// NewCart creates an empty cart for the user.
func NewCart(userID string) *Cart {
	return &Cart{userID: userID, items: []CartItem{}}
}

// Add inserts the product with quantity 1, or increments the existing pair.
// No upper bound is enforced here; stock-aware clamping is presentation
// policy, not a cart invariant.
func (c *Cart) Add(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ci := range c.items {
		if ci.Item.ID == p.ID {
			next := cloneCartItems(c.items)
			next[i].Quantity++
			c.items = next
			return
		}
	}
	c.items = append(cloneCartItems(c.items), CartItem{Item: p, Quantity: 1})
}

// Increment raises the quantity of the matching pair by 1; no-op if absent.
func (c *Cart) Increment(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ci := range c.items {
		if ci.Item.ID == id {
			next := cloneCartItems(c.items)
			next[i].Quantity++
			c.items = next
			return
		}
	}
}

// Decrement lowers the quantity of the matching pair by 1, removing the pair
// entirely when it would reach zero; no-op if absent.
func (c *Cart) Decrement(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ci := range c.items {
		if ci.Item.ID != id {
			continue
		}
		if ci.Quantity > 1 {
			next := cloneCartItems(c.items)
			next[i].Quantity--
			c.items = next
		} else {
			next := make([]CartItem, 0, len(c.items)-1)
			next = append(next, c.items[:i]...)
			next = append(next, c.items[i+1:]...)
			c.items = next
		}
		return
	}
}

// Remove drops the pair for the product id regardless of its quantity; no-op
// if absent. Reports whether the cart changed.
func (c *Cart) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ci := range c.items {
		if ci.Item.ID == id {
			next := make([]CartItem, 0, len(c.items)-1)
			next = append(next, c.items[:i]...)
			next = append(next, c.items[i+1:]...)
			c.items = next
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []CartItem{}
}

// TotalCount is the sum of all quantities, recomputed from the pair sequence
// so it can never drift from the items.
func (c *Cart) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalOf(c.items)
}

// TotalDue is the sum of price × quantity across all pairs.
func (c *Cart) TotalDue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dueOf(c.items)
}

// Quantity returns the stored quantity for a product id, 0 when absent.
func (c *Cart) Quantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ci := range c.items {
		if ci.Item.ID == id {
			return ci.Quantity
		}
	}
	return 0
}

// Snapshot returns an immutable copy of the cart state.
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CartSnapshot{
		UserID:     c.userID,
		Items:      cloneCartItems(c.items),
		TotalCount: totalOf(c.items),
		TotalDue:   dueOf(c.items),
	}
}

func totalOf(items []CartItem) int {
	var n int
	for _, ci := range items {
		n += ci.Quantity
	}
	return n
}

func dueOf(items []CartItem) float64 {
	var due float64
	for _, ci := range items {
		due += ci.Item.Price * float64(ci.Quantity)
	}
	return due
}

func cloneCartItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
