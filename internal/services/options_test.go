package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
	"github.com/light-bringer/storefront/internal/config"
)

func TestNewServiceOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Header().Set("x-total-count", "2")
			json.NewEncoder(w).Encode([]domain.Product{
				{ID: 1, Name: "boots"},
				{ID: 2, Name: "mug"},
			})
		case "/categories":
			json.NewEncoder(w).Encode([]string{"shoes", "kitchen"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := config.Config{
		APIBase:   srv.URL,
		UserID:    "user-1",
		DBPath:    filepath.Join(t.TempDir(), "session.db"),
		PageLimit: 10,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := NewServiceOptions(ctx, cfg, logger)
	require.NoError(t, err)
	defer session.Close()

	waitCtx, waitCancel := context.WithTimeout(ctx, 2*time.Second)
	defer waitCancel()
	require.NoError(t, session.Catalog.Wait(waitCtx))

	state := session.Catalog.State()
	assert.Len(t, state.Products, 2)
	assert.Equal(t, 2, state.Total)

	t.Run("collections share the persistence store", func(t *testing.T) {
		session.Favorites.Toggle(state.Products[0], true)
		assert.True(t, session.Favorites.Contains(1))
		assert.False(t, session.Wishlist.Contains(1), "collections are independent sets")
	})

	t.Run("cart is wired but session-only", func(t *testing.T) {
		session.Cart.Add(state.Products[1])
		assert.Equal(t, 1, session.Cart.TotalCount())
	})
}

func TestCollectionsSurviveReopen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Product{})
	}))
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "session.db")
	cfg := config.Config{APIBase: srv.URL, UserID: "user-1", DBPath: dbPath, PageLimit: 10}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := NewServiceOptions(context.Background(), cfg, logger)
	require.NoError(t, err)
	first.Favorites.Toggle(domain.Product{ID: 3, Name: "lamp"}, true)
	first.Cart.Add(domain.Product{ID: 3, Name: "lamp"})
	first.Close()

	second, err := NewServiceOptions(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer second.Close()

	assert.True(t, second.Favorites.Contains(3), "favorites persist across sessions")
	assert.Equal(t, 0, second.Cart.TotalCount(), "the cart deliberately does not persist")
}
