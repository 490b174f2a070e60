package resolvers

import (
	"context"
	"errors"

	"storefront.GO/graphql"
	"storefront.GO/graphql/registry"
)

// InventorySummaryExtension counts variants by whether their stock limits apply.
const InventorySummaryExtension = "inventorySummary"

func init() {
	registry.Register(InventorySummaryExtension, inventorySummary)
}

func inventorySummary(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	cat := graphql.CatalogFromContext(ctx)
	if cat == nil {
		return nil, errors.New("inventorySummary: no catalog in context")
	}
	var enforced, unenforced int
	for _, p := range cat.Products() {
		for _, v := range p.Variants {
			if on, _ := cat.Oracle().IsEnforced(v.ID); on {
				enforced++
			} else {
				unenforced++
			}
		}
	}
	return map[string]int{"enforced": enforced, "unenforced": unenforced}, nil
}
