// Package gateway implements the HTTP client for the remote catalog resource.
//
// The remote catalog follows json-server conventions: product pages are plain
// JSON arrays with an optional x-total-count header carrying the true total,
// and the category endpoint returns either strings or loosely shaped objects.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront/internal/app/catalog/domain"
	"github.com/light-bringer/storefront/internal/app/catalog/request"
	"github.com/light-bringer/storefront/internal/pkg/clock"
)

var (
	_ contracts.Gateway      = (*Client)(nil)
	_ contracts.AdminGateway = (*Client)(nil)
)

// TotalCountHeader carries the total row count across all pages.
const TotalCountHeader = "x-total-count"

// errorBodyLimit caps how much of an error response body is retained.
const errorBodyLimit = 64 << 10

// Client talks to one remote catalog base URL. It holds no local state beyond
// its configuration; all methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	clock   clock.Clock
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger,
		clock:   clock.NewRealClock(),
	}
}

// FetchPage retrieves one page of products. Totals come from the
// x-total-count header when present, else from the returned item count.
func (c *Client) FetchPage(ctx context.Context, q domain.CatalogQuery) (domain.PaginatedResult, error) {
	resp, err := c.do(ctx, http.MethodGet, request.Build(q), nil)
	if err != nil {
		return domain.PaginatedResult{}, err
	}
	defer resp.Body.Close()

	var items []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		if cerr := cancelled(ctx, err); cerr != nil {
			return domain.PaginatedResult{}, cerr
		}
		return domain.PaginatedResult{}, fmt.Errorf("decode product page: %w", err)
	}

	total := len(items)
	if h := resp.Header.Get(TotalCountHeader); h != "" {
		if n, err := strconv.Atoi(h); err == nil {
			total = n
		}
	}

	return domain.NewPaginatedResult(items, total, q.Page, q.Limit), nil
}

// FetchByID retrieves a single product. A missing id surfaces as a
// *RemoteError with the server's status.
func (c *Client) FetchByID(ctx context.Context, id int) (domain.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, request.BuildByID(id), nil)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusNotFound {
			return domain.Product{}, fmt.Errorf("%w: %w", domain.ErrProductNotFound, err)
		}
		return domain.Product{}, err
	}
	defer resp.Body.Close()

	var p domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		if cerr := cancelled(ctx, err); cerr != nil {
			return domain.Product{}, cerr
		}
		return domain.Product{}, fmt.Errorf("decode product %d: %w", id, err)
	}
	return p, nil
}

// FetchCategories retrieves the category list: distinct, trimmed,
// case-sensitive names in lexicographic order. The endpoint may return an
// array of strings or an array of objects (name, falling back to title,
// falling back to id). Any other shape yields an empty list, not an error;
// the category list is an enhancement, not required data.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, request.BuildCategories(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if cerr := cancelled(ctx, err); cerr != nil {
			return nil, cerr
		}
		c.log.Debug("categories payload not an array, treating as empty", "error", err)
		return []string{}, nil
	}

	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, el := range raw {
		name, ok := categoryName(el)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// categoryName extracts a display name from one category element.
func categoryName(el json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(el, &s); err == nil {
		return s, true
	}
	var obj struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		ID    any    `json:"id"`
	}
	if err := json.Unmarshal(el, &obj); err != nil {
		return "", false
	}
	switch {
	case obj.Name != "":
		return obj.Name, true
	case obj.Title != "":
		return obj.Title, true
	case obj.ID != nil:
		return fmt.Sprint(obj.ID), true
	}
	return "", false
}

// CreateProduct creates a product on the remote catalog (admin surface).
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("encode product: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, request.Descriptor{Path: request.ProductsPath}, body)
	if err != nil {
		return domain.Product{}, err
	}
	defer resp.Body.Close()

	var created domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.Product{}, fmt.Errorf("decode created product: %w", err)
	}
	return created, nil
}

// UpdateProduct applies a partial update to a product (admin surface).
func (c *Client) UpdateProduct(ctx context.Context, id int, patch map[string]any) (domain.Product, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return domain.Product{}, fmt.Errorf("encode patch: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPatch, request.BuildByID(id), body)
	if err != nil {
		return domain.Product{}, err
	}
	defer resp.Body.Close()

	var updated domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return domain.Product{}, fmt.Errorf("decode updated product: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes a product from the remote catalog (admin surface).
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, request.BuildByID(id), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// do issues one request, classifies failures, and logs the outcome with a
// correlation id. Non-2xx responses become *RemoteError; a cancelled context
// resolves to domain.ErrCancelled.
func (c *Client) do(ctx context.Context, method string, desc request.Descriptor, body []byte) (*http.Response, error) {
	url := c.baseURL + "/" + desc.Encode()
	reqID := uuid.NewString()
	start := c.clock.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		if cerr := cancelled(ctx, err); cerr != nil {
			c.log.Debug("request cancelled", "request_id", reqID, "method", method, "url", url)
			return nil, cerr
		}
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	c.log.Debug("catalog request",
		"request_id", reqID,
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration", c.clock.Now().Sub(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &RemoteError{Status: resp.StatusCode, URL: url}
		// Best effort: a failed body read is swallowed, not surfaced.
		if text, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit)); err == nil {
			remote.Body = strings.TrimSpace(string(text))
		}
		resp.Body.Close()
		return nil, remote
	}
	return resp, nil
}

// cancelled maps a transport or decode failure on a cancelled context to
// domain.ErrCancelled, so callers can tell supersession apart from failure.
func cancelled(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return fmt.Errorf("%w: %v", domain.ErrCancelled, context.Cause(ctx))
	}
	return nil
}
