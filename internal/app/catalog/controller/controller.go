// Package controller owns the UI-facing catalog state: the current query, the
// merged product list, pagination totals, and the loading/error flags.
//
// Correctness hinges on supersession: the last-issued query wins, not the
// last-completed fetch. Every fetch is tagged with a generation; a response is
// applied only if its generation is still current, and stale responses are
// discarded no matter when they arrive.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/light-bringer/storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// State is an immutable snapshot of the controller for rendering. Slices and
// maps are copies; readers never observe a half-applied mutation.
type State struct {
	Products   []domain.Product
	Categories []string
	Query      domain.CatalogQuery

	// Total and TotalPages are meaningful only once TotalsKnown is set, after
	// the first successful fetch.
	Total       int
	TotalPages  int
	TotalsKnown bool

	Loading bool
	// Err is the human-readable message of the last failed fetch, empty when
	// the last fetch succeeded or is still outstanding.
	Err string
}

// Controller is the catalog synchronization controller for one user session.
// All state transitions are serialized under one mutex; fetches run in
// goroutines tagged with the generation that issued them.
type Controller struct {
	mu sync.Mutex

	userID string
	gw     contracts.Gateway
	log    *slog.Logger

	base   context.Context
	cancel context.CancelFunc // cancels the in-flight fetch, nil when idle

	query      domain.CatalogQuery
	products   []domain.Product
	categories []string

	total       int
	totalPages  int
	totalsKnown bool

	loading bool
	errMsg  string

	gen     uint64
	changed chan struct{} // closed and replaced on every state change
	started bool
}

// New creates a controller for the given user. The controller is inert until
// Start is called.
func New(userID string, limit int, gw contracts.Gateway, logger *slog.Logger) *Controller {
	return &Controller{
		userID:  userID,
		gw:      gw,
		log:     logger.With("user_id", userID),
		query:   domain.NewCatalogQuery(limit),
		changed: make(chan struct{}),
	}
}

// Start issues the initial page fetch and the one-time category fetch. The
// given context bounds all work; cancelling it tears the controller down.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	c.base = ctx

	go c.fetchCategories(ctx)
	c.dispatchLocked()
}

// Close cancels any in-flight fetch. Safe to call multiple times.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// SetSearchTerm changes the free-text search term and resets to page 1.
func (c *Controller) SetSearchTerm(term string) {
	c.transition(func(q *domain.CatalogQuery) {
		q.SearchTerm = term
	})
}

// SetSortField changes the sort field and resets to page 1.
func (c *Controller) SetSortField(f domain.SortField) {
	c.transition(func(q *domain.CatalogQuery) {
		q.SortField = f
	})
}

// SetSortOrder changes the sort direction and resets to page 1.
func (c *Controller) SetSortOrder(o domain.SortOrder) {
	c.transition(func(q *domain.CatalogQuery) {
		q.SortOrder = o
	})
}

// UpdateFilter sets or, with an empty value, removes one filter entry, and
// resets to page 1.
func (c *Controller) UpdateFilter(key, value string) {
	c.transition(func(q *domain.CatalogQuery) {
		*q = q.WithFilter(key, value)
	})
}

// ClearFilters removes every filter entry and resets to page 1.
func (c *Controller) ClearFilters() {
	c.transition(func(q *domain.CatalogQuery) {
		q.Filters = map[string]string{}
	})
}

// SetLimit changes the page size and resets to page 1, since accumulated
// pages no longer line up with the new paging.
func (c *Controller) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	c.transition(func(q *domain.CatalogQuery) {
		q.Limit = limit
	})
}

// SetPage jumps to page n without touching any other query field. Callers
// are expected to honor the pagination precondition (see NextPage); the
// controller does not clamp.
func (c *Controller) SetPage(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || n == c.query.Page {
		return
	}
	c.query.Page = n
	c.dispatchLocked()
}

// NextPage advances to the next page when allowed: no fetch may be loading,
// and the current page must be below the known last page (or totals must
// still be unknown). Returns false when the advance was refused.
func (c *Controller) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || c.loading {
		return false
	}
	if c.totalsKnown && c.query.Page >= c.totalPages {
		return false
	}
	c.query.Page++
	c.dispatchLocked()
	return true
}

// Retry re-issues the current query unchanged, typically after a failure.
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return
	}
	c.dispatchLocked()
}

// transition applies a non-page query mutation. Any effective change to
// search, sort, filters, or limit invalidates accumulated pages and resets to
// page 1; an ineffective mutation issues no fetch.
func (c *Controller) transition(mutate func(*domain.CatalogQuery)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		mutate(&c.query)
		c.query.Page = 1
		return
	}

	next := c.query.Clone()
	mutate(&next)
	next.Page = 1
	if next.Equal(c.query) {
		return
	}
	c.query = next
	c.dispatchLocked()
}

// dispatchLocked cancels the previous fetch, advances the generation, and
// launches the fetch for the current query. Called with the lock held.
func (c *Controller) dispatchLocked() {
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(c.base)
	c.cancel = cancel

	c.gen++
	gen := c.gen
	c.loading = true
	c.errMsg = ""
	q := c.query.Clone()
	c.signalLocked()

	go func() {
		res, err := c.gw.FetchPage(ctx, q)
		c.apply(gen, q, res, err)
	}()
}

// apply reconciles one fetch outcome. The generation check is the supersession
// guard: it runs at application time, so a stale response is discarded even
// when its cancellation signal lost the race with the network.
func (c *Controller) apply(gen uint64, q domain.CatalogQuery, res domain.PaginatedResult, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug("discarding superseded response", "generation", gen, "current", c.gen)
		return
	}

	switch {
	case errors.Is(err, domain.ErrCancelled):
		// Torn down mid-flight; nothing to surface.
		return
	case err != nil:
		c.errMsg = err.Error()
		c.loading = false
		c.log.Debug("fetch failed", "generation", gen, "error", err)
	default:
		if q.Page > 1 {
			c.products = append(c.products, res.Items...)
		} else {
			c.products = res.Items
		}
		c.total = res.Total
		c.totalPages = res.TotalPages
		c.totalsKnown = true
		c.loading = false
		c.log.Debug("applied page", "generation", gen, "page", q.Page, "items", len(res.Items), "total", res.Total)
	}
	c.signalLocked()
}

// fetchCategories runs once at start. Failure of any kind degrades to an
// empty category list; categories are an enhancement, not required data.
func (c *Controller) fetchCategories(ctx context.Context) {
	cats, err := c.gw.FetchCategories(ctx)
	if err != nil {
		c.log.Debug("category fetch failed, continuing without", "error", err)
		return
	}
	c.mu.Lock()
	c.categories = cats
	c.signalLocked()
	c.mu.Unlock()
}

// UpsertProduct prepends a product the list does not yet contain; no-op when
// the id is already present. Local reconciliation after an admin create.
func (c *Controller) UpsertProduct(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.products {
		if existing.ID == p.ID {
			return
		}
	}
	c.products = append([]domain.Product{p}, c.products...)
	c.signalLocked()
}

// ReplaceProduct swaps the list entry with the same id; no-op when absent.
// Local reconciliation after an admin update.
func (c *Controller) ReplaceProduct(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.products {
		if existing.ID == p.ID {
			c.products[i] = p
			c.signalLocked()
			return
		}
	}
}

// DropProduct removes the list entry with the given id; no-op when absent.
// Local reconciliation after an admin delete.
func (c *Controller) DropProduct(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.products {
		if existing.ID == id {
			c.products = append(c.products[:i:i], c.products[i+1:]...)
			c.signalLocked()
			return
		}
	}
}

// State returns an immutable snapshot of the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	categories := make([]string, len(c.categories))
	copy(categories, c.categories)

	return State{
		Products:    products,
		Categories:  categories,
		Query:       c.query.Clone(),
		Total:       c.total,
		TotalPages:  c.totalPages,
		TotalsKnown: c.totalsKnown,
		Loading:     c.loading,
		Err:         c.errMsg,
	}
}

// Wait blocks until no fetch is loading, or ctx is done. It lets synchronous
// callers (the CLI) drive the otherwise asynchronous fetch cycle.
func (c *Controller) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		if !c.loading {
			c.mu.Unlock()
			return nil
		}
		ch := c.changed
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// signalLocked wakes all Wait callers. Called with the lock held.
func (c *Controller) signalLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}
