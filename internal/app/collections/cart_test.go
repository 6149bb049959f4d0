package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

func TestCartAddAndDecrement(t *testing.T) {
	cart := NewCart("user-1")
	p := domain.Product{ID: 1, Name: "boots", Price: 25}

	cart.Add(p)
	cart.Add(p)
	cart.Add(p)
	assert.Equal(t, 3, cart.Quantity(1))
	assert.Equal(t, 3, cart.TotalCount())

	cart.Decrement(1)
	cart.Decrement(1)
	assert.Equal(t, 1, cart.Quantity(1))

	t.Run("decrement at one removes the pair", func(t *testing.T) {
		cart.Decrement(1)
		assert.Equal(t, 0, cart.Quantity(1))
		assert.Equal(t, 0, cart.TotalCount())
		assert.Empty(t, cart.Snapshot().Items)
	})
}

func TestCartOnePairPerProduct(t *testing.T) {
	cart := NewCart("user-1")
	cart.Add(domain.Product{ID: 1, Price: 10})
	cart.Add(domain.Product{ID: 2, Price: 5})
	cart.Add(domain.Product{ID: 1, Price: 10})

	snap := cart.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
	assert.Equal(t, 3, snap.TotalCount)
}

func TestCartIncrementDecrementAbsent(t *testing.T) {
	cart := NewCart("user-1")
	cart.Increment(99)
	cart.Decrement(99)
	assert.Equal(t, 0, cart.TotalCount())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart("user-1")
	cart.Add(domain.Product{ID: 1, Price: 10})
	cart.Add(domain.Product{ID: 1, Price: 10})
	cart.Add(domain.Product{ID: 2, Price: 5})

	assert.True(t, cart.Remove(1), "removes the pair regardless of quantity")
	assert.Equal(t, 0, cart.Quantity(1))
	assert.Equal(t, 1, cart.TotalCount())

	assert.False(t, cart.Remove(99), "absent id is a no-op")
	assert.Equal(t, 1, cart.TotalCount())
}

func TestCartTotals(t *testing.T) {
	cart := NewCart("user-1")
	cart.Add(domain.Product{ID: 1, Price: 10})
	cart.Add(domain.Product{ID: 1, Price: 10})
	cart.Add(domain.Product{ID: 2, Price: 2.5})

	assert.Equal(t, 3, cart.TotalCount())
	assert.InDelta(t, 22.5, cart.TotalDue(), 0.001)
	assert.InDelta(t, 22.5, cart.Snapshot().TotalDue, 0.001)

	t.Run("totals are pure functions of the pairs", func(t *testing.T) {
		cart.Clear()
		assert.Equal(t, 0, cart.TotalCount())
		assert.InDelta(t, 0, cart.TotalDue(), 0.001)
	})
}

func TestCartSnapshotIsImmutable(t *testing.T) {
	cart := NewCart("user-1")
	cart.Add(domain.Product{ID: 1, Name: "boots"})

	snap := cart.Snapshot()
	snap.Items[0].Quantity = 100
	assert.Equal(t, 1, cart.Quantity(1))
	assert.Equal(t, "user-1", snap.UserID)
}
