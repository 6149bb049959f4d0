package domain

import "sort"

// SortField enumerates the fields the catalog can sort by.
type SortField string

const (
	SortByName        SortField = "name"
	SortByPrice       SortField = "price"
	SortByRating      SortField = "rating"
	SortByReviewCount SortField = "reviewCount"
)

// SortOrder is the direction of a catalog sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// CatalogQuery captures the full filter/sort/paging intent for one catalog
// request. The zero value is not a valid query; use NewCatalogQuery.
//
// Invariant: Filters never contains an entry with an empty value. An empty or
// removed filter is absent from the map, never stored as "".
type CatalogQuery struct {
	Page       int
	Limit      int
	SearchTerm string
	SortField  SortField
	SortOrder  SortOrder
	Filters    map[string]string
}

// NewCatalogQuery returns a query for the first page with the given page size
// and the default sort (name ascending).
func NewCatalogQuery(limit int) CatalogQuery {
	return CatalogQuery{
		Page:      1,
		Limit:     limit,
		SortField: SortByName,
		SortOrder: OrderAsc,
		Filters:   map[string]string{},
	}
}

// Clone returns a deep copy, so callers can hand out snapshots without
// sharing the filter map.
func (q CatalogQuery) Clone() CatalogQuery {
	filters := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		filters[k] = v
	}
	q.Filters = filters
	return q
}

// WithFilter returns a copy with the filter applied. An empty value removes
// the key, preserving the absent-not-empty invariant.
func (q CatalogQuery) WithFilter(key, value string) CatalogQuery {
	next := q.Clone()
	if value == "" {
		delete(next.Filters, key)
	} else {
		next.Filters[key] = value
	}
	return next
}

// FilterKeys returns the filter keys in sorted order, for deterministic
// serialization and comparison.
func (q CatalogQuery) FilterKeys() []string {
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two queries describe the same effective request,
// independent of filter map iteration order.
func (q CatalogQuery) Equal(other CatalogQuery) bool {
	if q.Page != other.Page || q.Limit != other.Limit ||
		q.SearchTerm != other.SearchTerm ||
		q.SortField != other.SortField || q.SortOrder != other.SortOrder ||
		len(q.Filters) != len(other.Filters) {
		return false
	}
	for k, v := range q.Filters {
		if ov, ok := other.Filters[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
