package contracts

import (
	"context"

	"github.com/light-bringer/storefront/internal/app/catalog/domain"
)

// Gateway is the read surface of the remote catalog consumed by the
// synchronization controller.
type Gateway interface {
	// FetchPage retrieves one page of products for the given query.
	// Cancellation of ctx resolves to domain.ErrCancelled.
	FetchPage(ctx context.Context, q domain.CatalogQuery) (domain.PaginatedResult, error)

	// FetchCategories retrieves the distinct, sorted category names.
	// Malformed payloads degrade to an empty list rather than an error.
	FetchCategories(ctx context.Context) ([]string, error)

	// FetchByID retrieves a single product.
	FetchByID(ctx context.Context, id int) (domain.Product, error)
}

// AdminGateway is the write surface of the remote catalog, used by
// administrative tooling and never by the synchronization core.
type AdminGateway interface {
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, patch map[string]any) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}
