package collections

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
	"github.com/light-bringer/storefront/internal/pkg/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func product(id int, name string) domain.Product {
	return domain.Product{ID: id, Name: name}
}

func TestToggleIdempotent(t *testing.T) {
	col := NewCollection(KeyFavorites, "user-1", storage.NewMemory(), discardLogger())

	p := product(1, "boots")
	assert.True(t, col.Toggle(p, true))
	assert.False(t, col.Toggle(p, true), "second insert is a no-op")
	assert.Equal(t, 1, col.Len())

	t.Run("original stored copy is retained", func(t *testing.T) {
		col.Toggle(product(1, "renamed boots"), true)
		assert.Equal(t, "boots", col.Items()[0].Name)
	})
}

func TestToggleRoundTrip(t *testing.T) {
	col := NewCollection(KeyWishlist, "user-1", storage.NewMemory(), discardLogger())
	col.Toggle(product(1, "a"), true)
	col.Toggle(product(2, "b"), true)

	p := product(3, "c")
	col.Toggle(p, true)
	col.Toggle(p, false)

	items := col.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	col := NewCollection(KeySaved, "user-1", storage.NewMemory(), discardLogger())
	assert.False(t, col.Remove(42))
	assert.False(t, col.Toggle(product(42, "x"), false))
}

func TestClear(t *testing.T) {
	store := storage.NewMemory()
	col := NewCollection(KeyFavorites, "user-1", store, discardLogger())
	col.Toggle(product(1, "a"), true)
	col.Toggle(product(2, "b"), true)

	col.Clear()
	assert.Equal(t, 0, col.Len())

	t.Run("cleared state is persisted", func(t *testing.T) {
		reloaded := NewCollection(KeyFavorites, "user-1", store, discardLogger())
		assert.Equal(t, 0, reloaded.Len())
	})
}

func TestPersistenceAcrossSessions(t *testing.T) {
	store := storage.NewMemory()

	first := NewCollection(KeyWishlist, "user-1", store, discardLogger())
	first.Toggle(product(7, "lamp"), true)
	first.Toggle(product(9, "rug"), true)
	first.Remove(7)

	second := NewCollection(KeyWishlist, "user-1", store, discardLogger())
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].ID)
	assert.True(t, second.Contains(9))
	assert.False(t, second.Contains(7))
}

// failingStore always rejects writes, standing in for a full quota.
type failingStore struct{}

func (failingStore) Load(string, any) bool  { return false }
func (failingStore) Save(string, any) error { return errors.New("quota exceeded") }

func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	col := NewCollection(KeyFavorites, "user-1", failingStore{}, discardLogger())
	assert.True(t, col.Toggle(product(1, "a"), true))
	assert.Equal(t, 1, col.Len(), "in-memory state survives a failed write")
}

func TestMembershipIsDerived(t *testing.T) {
	col := NewCollection(KeyFavorites, "user-1", storage.NewMemory(), discardLogger())
	p := product(5, "mug")
	assert.False(t, col.Contains(5))
	col.Toggle(p, true)
	assert.True(t, col.Contains(5))
	col.Toggle(p, false)
	assert.False(t, col.Contains(5))
}

func TestItemsReturnsSnapshot(t *testing.T) {
	col := NewCollection(KeyFavorites, "user-1", storage.NewMemory(), discardLogger())
	col.Toggle(product(1, "a"), true)

	snap := col.Items()
	snap[0].Name = "mutated"
	assert.Equal(t, "a", col.Items()[0].Name)
}
