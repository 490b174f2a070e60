package resolvers

import (
	"context"

	gqlmodels "storefront.GO/graphql/models"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

// Resolver answers catalog queries. The catalog is immutable so one Resolver is
// shared by all requests.
type Resolver struct {
	cat *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

func (r *Resolver) Products(ctx context.Context) []*gqlmodels.Product {
	products := r.cat.Products()
	out := make([]*gqlmodels.Product, len(products))
	for i, p := range products {
		out[i] = mapProduct(r.cat, i, p)
	}
	return out
}

// Product returns nil when index is out of range.
func (r *Resolver) Product(ctx context.Context, index int) *gqlmodels.Product {
	p, ok := r.cat.Product(index)
	if !ok {
		return nil
	}
	return mapProduct(r.cat, index, p)
}

func (r *Resolver) Variant(ctx context.Context, id catalogEntity.ID) *gqlmodels.Variant {
	v, ok := r.cat.Variant(id)
	if !ok {
		return nil
	}
	return mapVariant(r.cat, v)
}

// InventoryEnforced is nil for variants outside the catalog.
func (r *Resolver) InventoryEnforced(ctx context.Context, id catalogEntity.ID) *bool {
	enforced, known := r.cat.Oracle().IsEnforced(id)
	if !known {
		return nil
	}
	return &enforced
}
