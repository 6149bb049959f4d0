// Package request builds wire-level request descriptors from catalog queries.
//
// The mapping follows json-server conventions: _page/_limit for pagination,
// q for free-text search, _sort/_order for ordering, and bare key=value pairs
// for filters. Building is pure and deterministic: the same query produces the
// same descriptor regardless of filter map iteration order.
package request

import (
	"net/url"
	"strconv"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// Resource paths on the remote catalog.
const (
	ProductsPath   = "products"
	CategoriesPath = "categories"
)

// Descriptor is a canonical request descriptor: a resource path plus the
// query parameters that are actually set.
type Descriptor struct {
	Path   string
	Params url.Values
}

// Encode renders the descriptor as a relative URL. Parameter order is the
// sorted key order of url.Values.Encode, so the output is stable.
func (d Descriptor) Encode() string {
	if len(d.Params) == 0 {
		return d.Path
	}
	return d.Path + "?" + d.Params.Encode()
}

// Build produces the descriptor for a product page request. Absent or invalid
// intent is omitted rather than serialized: non-positive page and limit,
// empty search term, empty sort field or order, and empty filter values all
// contribute nothing.
func Build(q domain.CatalogQuery) Descriptor {
	params := url.Values{}

	if q.Page > 0 {
		params.Set("_page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("_limit", strconv.Itoa(q.Limit))
	}
	if q.SearchTerm != "" {
		params.Set("q", q.SearchTerm)
	}
	if q.SortField != "" {
		params.Set("_sort", string(q.SortField))
	}
	if q.SortOrder != "" {
		params.Set("_order", string(q.SortOrder))
	}
	for _, key := range q.FilterKeys() {
		if v := q.Filters[key]; v != "" {
			params.Set(key, v)
		}
	}

	return Descriptor{Path: ProductsPath, Params: params}
}

// BuildByID produces the descriptor for a single product lookup.
func BuildByID(id int) Descriptor {
	return Descriptor{Path: ProductsPath + "/" + strconv.Itoa(id), Params: url.Values{}}
}

// BuildCategories produces the descriptor for the category list.
func BuildCategories() Descriptor {
	return Descriptor{Path: CategoriesPath, Params: url.Values{}}
}
