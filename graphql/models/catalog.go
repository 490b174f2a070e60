package models

import gql "github.com/graph-gophers/graphql-go"

type Product struct {
	ID               gql.ID
	Index            int32
	Title            string
	PriceText        string
	Image            *string
	Images           []string
	DefaultVariantID *gql.ID
	OptionNames      []string
	Sizes            []*SizeOption
	FeatureLines     []string
	ModelLines       []string
	Variants         []*Variant
}

type Variant struct {
	ID                  gql.ID
	Title               string
	Options             []string
	Available           bool
	PriceText           string
	InventoryManagement *string
	InventoryPolicy     *string
	// InventoryEnforced is nil when the catalog does not know the variant.
	InventoryEnforced *bool
}

type SizeOption struct {
	Label     string
	VariantID gql.ID
	Available bool
	PriceText string
}
