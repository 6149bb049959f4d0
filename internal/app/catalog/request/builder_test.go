package request

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

func TestBuild(t *testing.T) {
	t.Run("full query", func(t *testing.T) {
		q := domain.NewCatalogQuery(10)
		q.SearchTerm = "shoe"
		q = q.WithFilter("category", "electronics")

		desc := Build(q)
		assert.Equal(t, ProductsPath, desc.Path)
		assert.Equal(t, "1", desc.Params.Get("_page"))
		assert.Equal(t, "10", desc.Params.Get("_limit"))
		assert.Equal(t, "shoe", desc.Params.Get("q"))
		assert.Equal(t, "name", desc.Params.Get("_sort"))
		assert.Equal(t, "asc", desc.Params.Get("_order"))
		assert.Equal(t, "electronics", desc.Params.Get("category"))
	})

	t.Run("invalid page and limit are omitted", func(t *testing.T) {
		q := domain.CatalogQuery{Page: 0, Limit: -5}
		desc := Build(q)
		assert.False(t, desc.Params.Has("_page"))
		assert.False(t, desc.Params.Has("_limit"))
	})

	t.Run("empty search and sort are omitted", func(t *testing.T) {
		q := domain.CatalogQuery{Page: 2, Limit: 10}
		desc := Build(q)
		assert.False(t, desc.Params.Has("q"))
		assert.False(t, desc.Params.Has("_sort"))
		assert.False(t, desc.Params.Has("_order"))
	})

	t.Run("deterministic across filter insertion order", func(t *testing.T) {
		a := domain.NewCatalogQuery(10).WithFilter("brand", "acme").WithFilter("category", "shoes")
		b := domain.NewCatalogQuery(10).WithFilter("category", "shoes").WithFilter("brand", "acme")
		assert.Equal(t, Build(a).Encode(), Build(b).Encode())
	})
}

func TestBuildByID(t *testing.T) {
	desc := BuildByID(42)
	assert.Equal(t, "products/42", desc.Encode())
}

func TestBuildCategories(t *testing.T) {
	assert.Equal(t, "categories", BuildCategories().Encode())
}

func TestDescriptorGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	cases := []struct {
		name  string
		query domain.CatalogQuery
	}{
		{
			name:  "default_first_page",
			query: domain.NewCatalogQuery(30),
		},
		{
			name: "search_with_category",
			query: func() domain.CatalogQuery {
				q := domain.NewCatalogQuery(10)
				q.SearchTerm = "shoe"
				return q.WithFilter("category", "electronics")
			}(),
		},
		{
			name: "deep_page_price_desc",
			query: func() domain.CatalogQuery {
				q := domain.NewCatalogQuery(20)
				q.Page = 7
				q.SortField = domain.SortByPrice
				q.SortOrder = domain.OrderDesc
				return q
			}(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.Assert(t, tc.name, []byte(Build(tc.query).Encode()+"\n"))
		})
	}
}
