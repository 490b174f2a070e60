package resolvers

import (
	gql "github.com/graph-gophers/graphql-go"

	gqlmodels "storefront.GO/graphql/models"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapProduct(cat *catalog.Catalog, i int, p catalogEntity.Product) *gqlmodels.Product {
	out := &gqlmodels.Product{
		ID:          gql.ID(p.ID.String()),
		Index:       int32(i),
		Title:       p.Title,
		PriceText:   p.PriceText,
		Image:       strPtr(p.Image()),
		Images:      nonNil(p.Images),
		OptionNames: nonNil(p.OptionNames),
		Sizes:       []*gqlmodels.SizeOption{},
		Variants:    make([]*gqlmodels.Variant, 0, len(p.Variants)),
	}
	if id := catalog.DefaultVariant(p); !id.IsZero() {
		gid := gql.ID(id.String())
		out.DefaultVariantID = &gid
	}
	for _, o := range catalog.SizeOptions(p) {
		out.Sizes = append(out.Sizes, &gqlmodels.SizeOption{
			Label:     o.Label,
			VariantID: gql.ID(o.VariantID.String()),
			Available: o.Available,
			PriceText: o.PriceText,
		})
	}
	features, model := catalog.HTMLLines(p.DescriptionHTML), catalog.SplitLines(p.ModelInfo)
	out.FeatureLines, out.ModelLines = nonNil(features), nonNil(model)
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, mapVariant(cat, v))
	}
	return out
}

func mapVariant(cat *catalog.Catalog, v catalogEntity.Variant) *gqlmodels.Variant {
	out := &gqlmodels.Variant{
		ID:                  gql.ID(v.ID.String()),
		Title:               v.Title,
		Options:             nonNil(v.Options),
		Available:           v.Available,
		PriceText:           v.PriceText,
		InventoryManagement: strPtr(v.InventoryManagement),
		InventoryPolicy:     strPtr(v.InventoryPolicy),
	}
	if enforced, known := cat.Oracle().IsEnforced(v.ID); known {
		out.InventoryEnforced = &enforced
	}
	return out
}
