package graphql

import (
	"context"

	"storefront.GO/service/catalog"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyCatalog contextKey = "catalog"

// WithCatalog attaches cat to ctx for extension resolvers.
func WithCatalog(ctx context.Context, cat *catalog.Catalog) context.Context {
	return context.WithValue(ctx, CtxKeyCatalog, cat)
}

// CatalogFromContext returns the catalog for the current request, or nil.
func CatalogFromContext(ctx context.Context) *catalog.Catalog {
	if v := ctx.Value(CtxKeyCatalog); v != nil {
		if cat, ok := v.(*catalog.Catalog); ok {
			return cat
		}
	}
	return nil
}
