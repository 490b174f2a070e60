package graphqlserver

import (
	"context"
	"encoding/json"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/graphql/registry"
	"storefront.GO/graphql/resolvers"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

// QueryResolver is the graphql-go root: its methods implement the Query fields.
// Delegates to resolvers package.
type QueryResolver struct {
	cat *catalog.Catalog
	res *resolvers.Resolver
}

func (r *QueryResolver) Products(ctx context.Context) []*gqlmodels.Product {
	return r.res.Products(ctx)
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	Index int32
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) *gqlmodels.Product {
	return r.res.Product(ctx, int(args.Index))
}

// VariantArgs matches the variant query arguments.
type VariantArgs struct {
	ID gql.ID
}

func (r *QueryResolver) Variant(ctx context.Context, args VariantArgs) *gqlmodels.Variant {
	return r.res.Variant(ctx, catalogEntity.ID(args.ID))
}

// InventoryEnforcedArgs matches the inventoryEnforced query arguments.
type InventoryEnforcedArgs struct {
	VariantID gql.ID
}

func (r *QueryResolver) InventoryEnforced(ctx context.Context, args InventoryEnforcedArgs) *bool {
	return r.res.InventoryEnforced(ctx, catalogEntity.ID(args.VariantID))
}

// ExtensionArgs matches the extension query arguments.
type ExtensionArgs struct {
	Name string
	Args *string
}

// Extension runs a registered resolver. args is a JSON object; the result is JSON.
func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var in map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &in); err != nil {
			return nil, fmt.Errorf("extension %s: args: %w", args.Name, err)
		}
	}
	out, err := registry.Resolve(graphql.WithCatalog(ctx, r.cat), args.Name, in)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema over cat.
func NewSchema(cat *catalog.Catalog) (*gql.Schema, error) {
	root := &QueryResolver{cat: cat, res: resolvers.NewResolver(cat)}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
